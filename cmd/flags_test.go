package cmd

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/kvdata/pkg/config"
	"github.com/spf13/cobra"
)

var _ = Describe("Flags", func() {
	var c *cobra.Command

	BeforeEach(func() {
		opts = nil
		c = &cobra.Command{Use: "test"}
		c.Flags().IntP("records", "n", 0, "number of records")
		c.Flags().Int64P("seed", "s", 0, "seed")
	})

	AfterEach(func() {
		opts = nil
	})

	Describe("recordsFlag", func() {
		It("keeps default when flag is not given", func() {
			recordsFlag(c)
			Expect(config.New(opts...).RecordsNum).To(Equal(1_048_576))
		})

		It("accepts zero records", func() {
			Expect(c.Flags().Parse([]string{"-n", "0"})).To(Succeed())
			recordsFlag(c)
			Expect(config.New(opts...).RecordsNum).To(Equal(0))
		})

		It("overrides value from the config file", func() {
			opts = append(opts, config.OptRecordsNum(10))
			Expect(c.Flags().Parse([]string{"--records", "3"})).To(Succeed())
			recordsFlag(c)
			Expect(config.New(opts...).RecordsNum).To(Equal(3))
		})
	})

	Describe("seedFlag", func() {
		It("accepts zero seed only when given", func() {
			seedFlag(c)
			Expect(opts).To(BeEmpty())

			Expect(c.Flags().Parse([]string{"-s", "0"})).To(Succeed())
			seedFlag(c)
			Expect(opts).To(HaveLen(1))
		})
	})
})
