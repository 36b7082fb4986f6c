// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

// Defines the two error kinds of this package. Both are fatal to the
// current CLI invocation: a misconfigured group cannot be built at all, and
// a group whose dependency fails to load would otherwise present an
// incomplete command set.

package extencli

import "fmt"

// ConfigurationError reports that a Group cannot be constructed because one
// of its configuration values is missing or malformed.
type ConfigurationError struct {
	// Option names the offending configuration value, such as "depends-on".
	Option string
	// Reason tells what is wrong with it.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid group configuration: %s: %s", e.Option, e.Reason)
}

// DependencyLoadError reports that the extensions of a group's dependency
// package could not be loaded, either because the dependency could not be
// located at all or because an extension failed during its own setup. It
// always carries the underlying cause: the primary operational need when a
// group comes up short is telling which extension package is broken or
// missing.
type DependencyLoadError struct {
	// Dependency is the normalized package identifier that failed to load.
	Dependency string
	// Err is the underlying cause.
	Err error
}

func (e *DependencyLoadError) Error() string {
	return fmt.Sprintf("cannot load extensions of dependency package %q: %s",
		e.Dependency, e.Err)
}

// Unwrap returns the underlying cause of the failed load.
func (e *DependencyLoadError) Unwrap() error { return e.Err }
