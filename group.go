// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

// Implements the auto-extensible command group itself: a cobra command that
// lazily loads and applies the extensions registered for its declared
// dependency package before any consumer gets to see its subcommand set.

package extencli

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GroupOptions configures a Group beyond its name.
type GroupOptions struct {
	// DependsOn is the identifier of the package that extension authors
	// import the group from, and which extensions name in their Extends
	// declaration. Required; validated syntactically at construction time
	// only, as whether any extension actually declares it can only be known
	// at load time.
	DependsOn string
	// Short and Long are passed through to the underlying cobra command.
	Short string
	Long  string
	// Loader optionally locates and loads the dependency's extensions
	// before the registry is consulted. Leave nil when all extensions are
	// compiled into the binary; they have then already registered
	// themselves during process initialization.
	Loader Loader
}

// Group is a cobra command group that, before resolving any subcommand or
// rendering help, ensures the extensions of its declared dependency package
// have been loaded and applied, so that subcommands registered by
// independently installed extension packages are visible on the group.
//
// A Group is safe for concurrent use; CLI dispatch is single-threaded by
// construction, but nothing in the API requires it to be.
type Group struct {
	cmd       *cobra.Command
	dependsOn string // normalized

	mu      sync.Mutex
	loader  Loader
	loaded  bool
	applied map[string]bool // extension names whose setup already ran
}

// ExtensionInfo describes a single extension known for a group's
// dependency package, including whether its setup has run on this group.
type ExtensionInfo struct {
	Name    string
	Extends string
	State   string // "applied" or "pending"
}

// NewGroup constructs an auto-extensible command group with the specified
// name. It fails with a *ConfigurationError when the name is empty or when
// opts carries an empty or syntactically invalid DependsOn identifier.
func NewGroup(name string, opts *GroupOptions) (*Group, error) {
	if name == "" {
		return nil, &ConfigurationError{
			Option: "name", Reason: "must not be empty"}
	}
	if opts == nil {
		opts = &GroupOptions{}
	}
	if opts.DependsOn == "" {
		return nil, &ConfigurationError{
			Option: "depends-on", Reason: "must not be empty"}
	}
	dependsOn := Normalize(opts.DependsOn)
	if !validIdentifier(dependsOn) {
		return nil, &ConfigurationError{
			Option: "depends-on",
			Reason: "not a valid package identifier: " + opts.DependsOn}
	}
	g := &Group{
		dependsOn: dependsOn,
		loader:    opts.Loader,
		applied:   map[string]bool{},
	}
	g.cmd = &cobra.Command{
		Use:   name,
		Short: opts.Short,
		Long:  opts.Long,
		// See: https://github.com/spf13/cobra/issues/340
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	// Help can be reached without going through our Execute, for instance
	// when this group's command was attached below some foreign root
	// command. Cobra's help funcs cannot return errors, so on this path a
	// load failure gets reported on the error stream and the base help is
	// still rendered (showing at least the core commands).
	basehelp := g.cmd.HelpFunc()
	g.cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if err := g.EnsureLoaded(); err != nil {
			cmd.PrintErrln("Error:", err.Error())
		}
		basehelp(cmd, args)
	})
	return g, nil
}

// Name returns the group's display and invocation name.
func (g *Group) Name() string { return g.cmd.Name() }

// DependsOn returns the normalized identifier of the group's dependency
// package.
func (g *Group) DependsOn() string { return g.dependsOn }

// Loaded reports whether the group's dependency extensions have been
// successfully loaded and applied.
func (g *Group) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}

// Command returns the underlying cobra command of this group, for wiring
// flags, output streams, or attaching the group below another command.
func (g *Group) Command() *cobra.Command { return g.cmd }

// AddCommand registers core commands on the group at definition time; it
// never triggers loading the group's extensions.
func (g *Group) AddCommand(cmds ...*cobra.Command) {
	g.cmd.AddCommand(cmds...)
}

// EnsureLoaded forces loading and applying the extensions of the group's
// dependency package. It is idempotent: the first successful call performs
// the load and all later calls are no-ops. On failure it returns a
// *DependencyLoadError wrapping the cause and the group does not count as
// loaded; the next call retries, without re-running setups that already
// succeeded, so commands never get registered twice.
func (g *Group) EnsureLoaded() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.loaded {
		return nil
	}
	log.Debugf("autoloading extensions of dependency package %q", g.dependsOn)
	if g.loader != nil {
		if err := g.loader.Load(g.dependsOn); err != nil {
			return &DependencyLoadError{Dependency: g.dependsOn, Err: err}
		}
	}
	for _, ext := range ExtensionsFor(g.dependsOn) {
		if g.applied[ext.Name] {
			continue
		}
		if err := ext.Setup(g.cmd); err != nil {
			return &DependencyLoadError{Dependency: g.dependsOn, Err: err}
		}
		g.applied[ext.Name] = true
		log.Debugf("applied extension %q to group %q", ext.Name, g.cmd.Name())
	}
	g.loaded = true
	return nil
}

// Commands lists the group's subcommands, loading the dependency's
// extensions first so the list is the union of core commands and all
// installed extension commands.
func (g *Group) Commands() ([]*cobra.Command, error) {
	if err := g.EnsureLoaded(); err != nil {
		return nil, err
	}
	return g.cmd.Commands(), nil
}

// Resolve looks up a subcommand by name or alias, loading the dependency's
// extensions first so lately registered extension commands resolve too. A
// name that still is unknown after a successful load yields (nil, nil):
// unknown commands are the host framework's standard failure during
// dispatch, not a loading problem.
func (g *Group) Resolve(name string) (*cobra.Command, error) {
	if err := g.EnsureLoaded(); err != nil {
		return nil, err
	}
	for _, cmd := range g.cmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return cmd, nil
		}
	}
	return nil, nil
}

// Extensions describes the extensions currently registered for the group's
// dependency package and whether each one has been applied to this group
// yet. It is pure introspection and does not trigger loading.
func (g *Group) Extensions() []ExtensionInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	infos := []ExtensionInfo{}
	for _, ext := range ExtensionsFor(g.dependsOn) {
		state := "pending"
		if g.applied[ext.Name] {
			state = "applied"
		}
		infos = append(infos, ExtensionInfo{
			Name:    ext.Name,
			Extends: ext.Extends,
			State:   state,
		})
	}
	return infos
}

// Execute runs the group as a CLI entry point, loading the dependency's
// extensions first so that dispatch and help both observe the complete
// command set.
func (g *Group) Execute() error {
	return g.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a context passed down to the commands.
func (g *Group) ExecuteContext(ctx context.Context) error {
	if err := g.EnsureLoaded(); err != nil {
		return err
	}
	return g.cmd.ExecuteContext(ctx)
}
