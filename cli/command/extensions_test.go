// (c) Joacchim 2026
//
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Joacchim/extencli"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extensions command", func() {

	var g *extencli.Group
	var out bytes.Buffer
	var registerOnce sync.Once

	BeforeEach(func() {
		registerOnce.Do(func() {
			extencli.Register(extencli.Extension{
				Name:    "listme",
				Extends: "test-extensions-cmd",
				Setup: func(cmd *cobra.Command) error {
					cmd.AddCommand(&cobra.Command{
						Use: "listme",
						Run: func(cmd *cobra.Command, args []string) {},
					})
					return nil
				},
			})
		})
		var err error
		g, err = extencli.NewGroup("core", &extencli.GroupOptions{
			DependsOn: "test-extensions-cmd",
		})
		Expect(err).ShouldNot(HaveOccurred())
		g.AddCommand(NewExtensionsCommand(g))
		out.Reset()
		g.Command().SetOut(&out)
		g.Command().SetErr(&out)
	})

	It("lists extensions with their state", func() {
		g.Command().SetArgs([]string{"extensions"})
		Expect(g.Execute()).Should(Succeed())
		Expect(out.String()).Should(ContainSubstring("EXTENSION"))
		Expect(out.String()).Should(ContainSubstring("listme"))
		Expect(out.String()).Should(ContainSubstring("applied"))
	})

	It("shows the extended package in wide format", func() {
		g.Command().SetArgs([]string{"extensions", "-o", "wide"})
		Expect(g.Execute()).Should(Succeed())
		Expect(out.String()).Should(ContainSubstring("EXTENDS"))
		Expect(out.String()).Should(ContainSubstring("test-extensions-cmd"))
	})

	It("drops the headers on request", func() {
		g.Command().SetArgs([]string{"extensions", "--no-headers"})
		Expect(g.Execute()).Should(Succeed())
		Expect(out.String()).ShouldNot(ContainSubstring("EXTENSION"))
		Expect(out.String()).Should(ContainSubstring("listme"))
	})

	It("answers to the ext alias", func() {
		g.Command().SetArgs([]string{"ext"})
		Expect(g.Execute()).Should(Succeed())
		Expect(out.String()).Should(ContainSubstring("listme"))
	})

})
