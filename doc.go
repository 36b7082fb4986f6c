// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

/*
Package extencli implements auto-extensible [cobra] command groups:
independently built packages can attach their own subcommands to a shared
CLI without the core program knowing about them at compile time.

A core program declares a [Group] with the identifier of the package that
extension authors build against:

	core, err := extencli.NewGroup("core", &extencli.GroupOptions{
	    DependsOn: "core-module",
	    Short:     "The extensible core CLI",
	})

Extension packages declare, from their init function, which package they
extend and how their commands are attached:

	func init() {
	    extencli.Register(extencli.Extension{
	        Name:    "myext",
	        Extends: "core-module",
	        Setup: func(cmd *cobra.Command) error {
	            cmd.AddCommand(newMyExtCommand())
	            return nil
	        },
	    })
	}

Nothing more is needed: the first time the group's subcommands are listed
(help rendering) or resolved (command dispatch), the group applies every
extension registered for its dependency identifier. Deferring this to the
first observation, instead of doing it when the group is constructed,
matters: extension packages import the core package to reach the group, so
an eager setup at construction time would close an import cycle.

Extensions compiled into the core binary are pulled in with blank imports,
the way any [go-plugger] plugin is. Extensions installed after the fact, as
shared objects, are picked up through the [soplugin] loader instead; both
paths land in the same process-wide registry.

Package identifiers treat underscores and dashes as interchangeable: the
group normalizes both its own dependency identifier and every extension's
Extends declaration before matching, so "core_module" and "core-module"
name the same package.

[cobra]: https://github.com/spf13/cobra
[go-plugger]: https://github.com/thediveo/go-plugger
[soplugin]: https://pkg.go.dev/github.com/Joacchim/extencli/soplugin
*/
package extencli
