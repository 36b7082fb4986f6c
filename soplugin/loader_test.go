// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

package soplugin

import (
	"path/filepath"
	"strings"

	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("shared-object loader", func() {

	ginkgo.It("derives the default search path from the environment", func() {
		path := strings.Join([]string{"/tmp/a", "/tmp/b"}, string(filepath.ListSeparator))
		ginkgo.GinkgoT().Setenv(PluginPathEnvVar, path)
		Expect(DefaultSearchPath()).Should(Equal([]string{"/tmp/a", "/tmp/b"}))

		ginkgo.GinkgoT().Setenv(PluginPathEnvVar, "")
		Expect(New().SearchPath).Should(Equal(DefaultSearchPath()))
	})

	ginkgo.It("discovers manifest entries along the search path only once per directory", func() {
		dir1 := ginkgo.GinkgoT().TempDir()
		dir2 := ginkgo.GinkgoT().TempDir()
		empty := ginkgo.GinkgoT().TempDir()
		writeManifest(dir1, `
extensions:
  - name: first
    extends: core-module
    path: first.so
`)
		writeManifest(dir2, `
extensions:
  - name: second
    extends: core-module
    path: second.so
`)
		l := New(dir1, empty, dir2, dir1)
		entries, err := l.Discover()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(entries).Should(HaveLen(2))
		Expect(entries[0].Name).Should(Equal("first"))
		Expect(entries[1].Name).Should(Equal("second"))
	})

	ginkgo.It("loads nothing for dependencies without installed extensions", func() {
		dir := ginkgo.GinkgoT().TempDir()
		writeManifest(dir, `
extensions:
  - name: unrelated
    extends: some-other-module
    path: unrelated.so
`)
		Expect(New(dir).Load("core-module")).Should(Succeed())
	})

	ginkgo.It("surfaces broken shared objects, naming the extension", func() {
		dir := ginkgo.GinkgoT().TempDir()
		writeManifest(dir, `
extensions:
  - name: brokenext
    extends: core-module
    path: gone.so
`)
		err := New(dir).Load("core-module")
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`cannot load extension "brokenext"`))
	})

	ginkgo.It("matches underscore and dash identifier spellings", func() {
		dir := ginkgo.GinkgoT().TempDir()
		writeManifest(dir, `
extensions:
  - name: spellext
    extends: core_module
    path: spellext.so
`)
		// The load attempt itself proves the match: the shared object does
		// not exist, so a matching entry must fail, while a non-matching
		// dependency must not even try.
		Expect(New(dir).Load("unrelated-module")).Should(Succeed())
		err := New(dir).Load("core-module")
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("spellext"))
	})

})
