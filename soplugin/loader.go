// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

package soplugin

import (
	"os"
	"path/filepath"
	"plugin"
	"sync"

	"github.com/Joacchim/extencli"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// PluginPathEnvVar optionally overrides the default search path with a list
// of directories, separated by the platform's path list separator.
const PluginPathEnvVar = "EXTENCLI_PLUGIN_PATH"

// Loader loads shared-object extensions of dependency packages, as declared
// by the extension manifests found along its search path. It implements
// extencli.Loader.
type Loader struct {
	// SearchPath lists the directories scanned for extension manifests.
	SearchPath []string

	mu     sync.Mutex
	opened map[string]bool // shared objects already opened
}

// New returns a Loader scanning the specified directories for extension
// manifests, or the default search path if none were given.
func New(searchpath ...string) *Loader {
	if len(searchpath) == 0 {
		searchpath = DefaultSearchPath()
	}
	return &Loader{
		SearchPath: searchpath,
		opened:     map[string]bool{},
	}
}

// DefaultSearchPath returns the directories named in the EXTENCLI_PLUGIN_PATH
// environment variable, falling back to the "extencli" subdirectory of the
// user's configuration directory.
func DefaultSearchPath() []string {
	if path := os.Getenv(PluginPathEnvVar); path != "" {
		return filepath.SplitList(path)
	}
	confdir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(confdir, "extencli")}
}

// Discover returns the manifest entries of all installed shared-object
// extensions along the search path, with shared object paths resolved.
// Directories without a manifest are skipped; a directory appearing twice
// in the search path is only scanned once.
func (l *Loader) Discover() ([]Entry, error) {
	entries := []Entry{}
	scanned := []string{}
	for _, dir := range l.SearchPath {
		if slices.Contains(scanned, dir) {
			continue
		}
		scanned = append(scanned, dir)
		m, err := readManifest(dir)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		entries = append(entries, m.Extensions...)
	}
	return entries, nil
}

// Load opens every installed shared object declaring that it extends the
// specified dependency package; the objects' init functions then register
// their extensions in the process-wide registry. Shared objects already
// opened earlier are skipped, so retrying after a partial failure never
// loads an object twice. A dependency without any matching manifest entries
// loads successfully as a no-op.
func (l *Loader) Load(dependency string) error {
	dependency = extencli.Normalize(dependency)
	entries, err := l.Discover()
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range entries {
		if extencli.Normalize(e.Extends) != dependency {
			continue
		}
		if l.opened[e.Path] {
			continue
		}
		log.Debugf("loading extension %q from %q", e.Name, e.Path)
		if _, err := plugin.Open(e.Path); err != nil {
			return errors.Wrapf(err, "cannot load extension %q from %q", e.Name, e.Path)
		}
		l.opened[e.Path] = true
	}
	return nil
}
