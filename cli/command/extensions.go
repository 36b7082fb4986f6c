// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

// Provides a builtin "extensions" command for auto-extensible groups,
// listing the extensions installed for a group's dependency package
// together with their state. Core programs attach it at definition time so
// users can diagnose which extension packages the core has picked up.

package command

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/klo"

	"github.com/Joacchim/extencli"
)

// Builtin custom-columns templates
const (
	// ExtensionListTemplate defines the custom columns when listing the
	// extensions of a group.
	ExtensionListTemplate = "EXTENSION:{.Name},STATE:{.State}"
	// ExtensionWideListTemplate is like ExtensionListTemplate, but
	// additionally tacks on the dependency package each extension extends.
	ExtensionWideListTemplate = "EXTENSION:{.Name},EXTENDS:{.Extends},STATE:{.State}"
)

// NewExtensionsCommand returns an "extensions" command listing the
// extensions registered for the specified group's dependency package.
func NewExtensionsCommand(g *extencli.Group) *cobra.Command {
	extensionsCmd := &cobra.Command{
		Use:     "extensions",
		Aliases: []string{"ext"},
		Short:   "List the extensions installed for this command group",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listExtensions(cmd, g)
		},
	}
	addOutputFlags(extensionsCmd.Flags())
	return extensionsCmd
}

// addOutputFlags registers the usual output-shaping flags on a listing
// command's flag set.
func addOutputFlags(pf *pflag.FlagSet) {
	pf.StringP("output", "o", "",
		"Output format. One of: json|yaml|wide|custom-columns=...|custom-columns-file=...|jsonpath=...|jsonpath-file=...")
	pf.Bool("no-headers", false,
		"When using the default or custom-column output format, don't print headers (default print headers).")
	pf.String("sort-by", "{.Name}",
		"If non-empty, sort custom-columns using this field specification. The field specification is expressed as a JSONPath expression (e.g. '{.Name}').")
}

// listExtensions prints the extensions known for the group's dependency
// package. It autoloads the group first, so that dynamically installed
// extensions have been discovered and the state column reflects reality.
func listExtensions(cmd *cobra.Command, g *extencli.Group) error {
	if err := g.EnsureLoaded(); err != nil {
		return err
	}
	prn, err := getPrinter(cmd)
	if err != nil {
		return err
	}
	// ...throwing in sorting, if not explicitly forbidden. It depends on the
	// object printer if it will honor the sorted data or will just impose
	// its own order anyway.
	if sortby, err := cmd.LocalFlags().GetString("sort-by"); err == nil && sortby != "" {
		var err error
		prn, err = klo.NewSortingPrinter(sortby, prn)
		if err != nil {
			return err
		}
	}
	infos := g.Extensions()
	log.Debugf("%d extension(s) registered for dependency package %q",
		len(infos), g.DependsOn())
	return prn.Fprint(cmd.OutOrStdout(), infos)
}

// getPrinter returns a value printer configured according to the output
// format chosen by the user, and some more optional output configuration
// flags.
func getPrinter(cmd *cobra.Command) (klo.ValuePrinter, error) {
	outfmt, err := cmd.LocalFlags().GetString("output")
	if err != nil {
		return nil, err
	}
	prn, err := klo.PrinterFromFlag(outfmt, &klo.Specs{
		DefaultColumnSpec: ExtensionListTemplate,
		WideColumnSpec:    ExtensionWideListTemplate,
	})
	if err != nil {
		return nil, err
	}
	if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
		ccprn.Padding = 3
		if noheaders, err := cmd.LocalFlags().GetBool("no-headers"); err == nil {
			ccprn.HideHeaders = noheaders
		}
	}
	return prn, nil
}
