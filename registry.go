// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

// Implements the process-wide extension registry on top of go-plugger
// plugin groups. Registering an extension is the compiled-in analogue of
// installing a package next to the core program: the extension announces
// which package it extends, and any Group declaring that package as its
// dependency will pick the extension up on first observation.

package extencli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// Extension defines the exposed plugin symbol type for attaching commands
// to an auto-extensible command group. Extension packages register a value
// of this type from their init function, typically via Register.
type Extension struct {
	// Name uniquely identifies this extension, for logging and for the
	// bookkeeping that keeps a retried load from registering the same
	// commands twice.
	Name string
	// Extends is the identifier of the package this extension extends; it
	// must match the DependsOn identifier of the group(s) it wants to
	// attach to. Underscores and dashes are interchangeable.
	Extends string
	// Setup attaches this extension's commands to the group's command. A
	// Setup function must construct its commands per invocation instead of
	// attaching shared package-level command values: when several groups
	// declare the same dependency, Setup runs once per group, and a single
	// cobra command can only ever sit under one parent.
	Setup func(cmd *cobra.Command) error
}

// identRe matches syntactically valid package identifiers.
var identRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._/-]*$`)

// Normalize canonicalizes a package identifier by replacing underscores
// with dashes, so that the two spellings match regardless of which one a
// core or an extension used.
func Normalize(identifier string) string {
	return strings.ReplaceAll(identifier, "_", "-")
}

// validIdentifier reports whether an identifier is syntactically valid
// after normalization. Existence of the identified package is never checked
// here; that happens lazily at load time.
func validIdentifier(identifier string) bool {
	return identRe.MatchString(identifier)
}

// Register records an extension in the process-wide registry. It is meant
// to be called from an extension package's init function and thus panics on
// a malformed extension, as such a registration can never be useful and
// only ever indicates a programming error in the extension package.
func Register(ext Extension) {
	if ext.Name == "" {
		panic("extencli: cannot register an extension without a name")
	}
	if ext.Setup == nil {
		panic(fmt.Sprintf("extencli: extension %q lacks a setup function", ext.Name))
	}
	if !validIdentifier(Normalize(ext.Extends)) {
		panic(fmt.Sprintf("extencli: extension %q extends invalid package identifier %q",
			ext.Name, ext.Extends))
	}
	ext.Extends = Normalize(ext.Extends)
	plugger.Group[Extension]().Register(ext, plugger.WithPlugin(ext.Name))
}

// ExtensionsFor returns the registered extensions extending the specified
// package, in registry (plugin placement) order. The identifier is
// normalized before matching. An unknown identifier simply yields no
// extensions; a core without any installed extensions is a perfectly fine
// core.
func ExtensionsFor(dependency string) []Extension {
	dependency = Normalize(dependency)
	exts := []Extension{}
	for _, ext := range plugger.Group[Extension]().Symbols() {
		if ext.Extends != dependency {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}
