// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

// This is the main entry of the democore example CLI: a "core" program that
// does not know its extension commands at compile time. It only declares an
// auto-extensible group depending on the "democore" package; the hello
// extension package below registers itself as an import side effect and any
// shared-object extensions get picked up through the soplugin loader.

package main

import (
	"errors"
	"os"

	// Pull in the example extension package: it registers itself as
	// needed, but we need the package to get included, as otherwise there
	// are no references in the code which could pull it in anyway.
	_ "github.com/Joacchim/extencli/examples/helloext"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/Joacchim/extencli"
	"github.com/Joacchim/extencli/cli/command"
	"github.com/Joacchim/extencli/soplugin"
)

func main() {
	// Establish logger output format in case we're hitting errors, et
	// cetera.
	f := new(prefixed.TextFormatter)
	f.DisableColors = true
	f.ForceFormatting = true
	f.FullTimestamp = true
	f.TimestampFormat = "15:04:05"
	log.SetFormatter(f)

	core, err := extencli.NewGroup("democore", &extencli.GroupOptions{
		DependsOn: "democore",
		Short:     "An auto-extensible example CLI",
		Long: `democore is an example CLI whose subcommands come from independently
installed extension packages: compiled-in ones register themselves when
their package gets imported, shared-object ones are discovered through
extension manifests on the plugin search path.`,
		Loader: soplugin.New(),
	})
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	pf := core.Command().PersistentFlags()
	debug := pf.Bool("debug", false, "Enable debug logging")
	core.Command().PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debug {
			log.SetLevel(log.DebugLevel)
		}
	}
	core.AddCommand(command.NewExtensionsCommand(core))

	// Cobra prints dispatch errors itself; a failed extension autoload
	// surfaces before cobra ever runs, so that one needs reporting here.
	if err := core.Execute(); err != nil {
		var loaderr *extencli.DependencyLoadError
		if errors.As(err, &loaderr) {
			log.Error(err.Error())
		}
		os.Exit(1)
	}
}
