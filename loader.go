// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

package extencli

// A Loader locates and loads the extensions of the identified dependency
// package, so that they end up registered in the process-wide registry. It
// is the single narrow seam behind which the concrete loading mechanism
// hides: the zero mechanism (a nil Loader on a Group) covers extensions
// compiled into the binary, which have registered themselves at process
// initialization already, while the soplugin package supplies a Loader that
// pulls extensions in from shared objects at run time.
//
// Load must surface both "dependency not locatable" and "extension failed
// during its own initialization" conditions as errors; the calling Group
// wraps them into a DependencyLoadError. Loading the same dependency again
// after a failure must be safe: groups retry failed loads on the next
// observation.
type Loader interface {
	Load(dependency string) error
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(dependency string) error

// Load calls f(dependency).
func (f LoaderFunc) Load(dependency string) error { return f(dependency) }
