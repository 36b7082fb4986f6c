// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

// Extension manifest handling: manifests are the installation metadata of
// shared-object extensions, telling which dependency package an installed
// artifact extends, so that only the artifacts relevant to a particular
// group ever get opened.

package soplugin

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ManifestName is the name of an extension manifest file inside a search
// path directory.
const ManifestName = "extensions.yaml"

// Manifest lists the shared-object extensions installed in one search path
// directory.
type Manifest struct {
	Extensions []Entry `yaml:"extensions"`
}

// Entry describes a single installed shared-object extension.
type Entry struct {
	// Name identifies the extension, matching the name it registers under.
	Name string `yaml:"name"`
	// Extends is the identifier of the package this extension extends;
	// underscores and dashes are interchangeable.
	Extends string `yaml:"extends"`
	// Path locates the shared object; relative paths are resolved against
	// the directory holding the manifest.
	Path string `yaml:"path"`
}

// readManifest parses the manifest in the specified directory, resolving
// relative shared object paths against that directory. A directory without
// a manifest yields a nil manifest and no error: search path directories
// without installed extensions are perfectly normal.
func readManifest(dir string) (*Manifest, error) {
	name := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "cannot read extension manifest %q", name)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "malformed extension manifest %q", name)
	}
	for i := range m.Extensions {
		e := &m.Extensions[i]
		if e.Name == "" || e.Extends == "" || e.Path == "" {
			return nil, errors.Errorf(
				"incomplete entry %d in extension manifest %q (name, extends, and path are required)",
				i, name)
		}
		if !filepath.IsAbs(e.Path) {
			e.Path = filepath.Join(dir, e.Path)
		}
	}
	return &m, nil
}
