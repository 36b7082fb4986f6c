// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

package soplugin

import (
	"os"
	"path/filepath"

	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// writeManifest drops a manifest with the specified contents into dir.
func writeManifest(dir, contents string) {
	Expect(os.WriteFile(filepath.Join(dir, ManifestName), []byte(contents), 0644)).
		Should(Succeed())
}

var _ = ginkgo.Describe("extension manifests", func() {

	var dir string

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
	})

	ginkgo.It("is fine with directories lacking a manifest", func() {
		m, err := readManifest(dir)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(m).Should(BeNil())
	})

	ginkgo.It("reads entries, resolving relative shared object paths", func() {
		writeManifest(dir, `
extensions:
  - name: myext
    extends: core-module
    path: myext.so
  - name: otherext
    extends: other_module
    path: /opt/extensions/otherext.so
`)
		m, err := readManifest(dir)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(m.Extensions).Should(HaveLen(2))
		Expect(m.Extensions[0].Name).Should(Equal("myext"))
		Expect(m.Extensions[0].Path).Should(Equal(filepath.Join(dir, "myext.so")))
		Expect(m.Extensions[1].Path).Should(Equal("/opt/extensions/otherext.so"))
	})

	ginkgo.It("rejects malformed manifests", func() {
		writeManifest(dir, "extensions: {42:")
		m, err := readManifest(dir)
		Expect(m).Should(BeNil())
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("malformed extension manifest"))
	})

	ginkgo.It("rejects incomplete entries", func() {
		writeManifest(dir, `
extensions:
  - name: incognito
    path: incognito.so
`)
		m, err := readManifest(dir)
		Expect(m).Should(BeNil())
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("incomplete entry 0"))
	})

})
