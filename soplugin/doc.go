// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

/*
Package soplugin loads CLI extensions from shared objects at run time, for
extensions that get installed after the core program was built. It supplies
an [extencli.Loader] that scans a search path for extension manifests and
opens, via the Go plugin mechanism, every shared object declaring that it
extends the requested dependency package. The shared object's init
functions then register their extensions through [extencli.Register],
exactly as a compiled-in extension package would.

A manifest is a file named "extensions.yaml" in a search path directory:

	extensions:
	  - name: myext
	    extends: core-module
	    path: myext.so

Relative shared object paths are resolved against the directory holding the
manifest. The default search path is taken from the EXTENCLI_PLUGIN_PATH
environment variable, falling back to the "extencli" subdirectory of the
user's configuration directory.

The usual Go plugin restrictions apply: shared objects must be built with
"go build -buildmode=plugin" against the same toolchain and dependency
versions as the core program, and the mechanism is only functional on
platforms supported by the standard library plugin package.
*/
package soplugin
