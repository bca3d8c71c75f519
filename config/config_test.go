package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/tsp"
)

func parse(args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("salesman", pflag.ContinueOnError)
	config.BindFlags(fs)
	Expect(fs.Parse(args)).To(Succeed())
	return fs
}

var _ = Describe("Config", func() {
	Context("Default", func() {
		It("matches the classic demo run", func() {
			cfg := config.Default()
			Expect(cfg.Nodes).To(Equal(8))
			Expect(cfg.Samples).To(Equal(10))
			Expect(cfg.BruteForceLimit).To(Equal(10))
			Expect(cfg.AnnealOptions()).To(Equal(tsp.DefaultAnnealOptions()))
			Expect(cfg.Format).To(Equal("text"))
			Expect(cfg.Validate()).To(Succeed())
		})

		It("gates brute force strictly below the limit", func() {
			cfg := config.Default()
			Expect(cfg.RunBruteForce(9)).To(BeTrue())
			Expect(cfg.RunBruteForce(10)).To(BeFalse())
		})
	})

	Context("Validate", func() {
		DescribeTable("rejects out-of-range fields",
			func(mutate func(*config.Config)) {
				cfg := config.Default()
				mutate(&cfg)
				Expect(cfg.Validate()).To(HaveOccurred())
			},
			Entry("zero nodes", func(c *config.Config) { c.Nodes = 0 }),
			Entry("non-positive extent", func(c *config.Config) { c.Extent = 0 }),
			Entry("negative samples", func(c *config.Config) { c.Samples = -1 }),
			Entry("zero temperature", func(c *config.Config) { c.Anneal.InitialTemp = 0 }),
			Entry("cooling rate of one", func(c *config.Config) { c.Anneal.CoolingRate = 1 }),
			Entry("negative iterations", func(c *config.Config) { c.Anneal.Iterations = -5 }),
			Entry("unknown format", func(c *config.Config) { c.Format = "json" }),
			Entry("unknown log level", func(c *config.Config) { c.LogLevel = "trace" }),
			Entry("unknown environment", func(c *config.Config) { c.Environment = "staging" }),
		)
	})

	Context("ParseNodeCount", func() {
		It("accepts positive integers", func() {
			Expect(config.ParseNodeCount(" 12 ")).To(Equal(12))
		})

		DescribeTable("rejects everything else",
			func(in string) {
				_, err := config.ParseNodeCount(in)
				Expect(err).To(MatchError(config.ErrInvalidNodeCount))
			},
			Entry("zero", "0"),
			Entry("negative", "-3"),
			Entry("word", "eight"),
			Entry("float", "2.5"),
			Entry("empty", ""),
		)
	})

	Context("Load", func() {
		It("returns defaults with no input", func() {
			cfg, err := config.Load(viper.New(), parse())
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg).To(Equal(config.Default()))
		})

		It("takes the node count from the first positional argument", func() {
			cfg, err := config.Load(viper.New(), parse("5"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Nodes).To(Equal(5))
		})

		It("fails on a malformed node count", func() {
			_, err := config.Load(viper.New(), parse("abc"))
			Expect(err).To(MatchError(config.ErrInvalidNodeCount))
		})

		It("applies flags", func() {
			cfg, err := config.Load(viper.New(), parse(
				"--seed", "7",
				"--temperature", "50",
				"--cooling-rate", "0.9",
				"--iterations", "200",
				"--samples", "3",
				"--brute-force-limit", "6",
				"--format", "yaml",
				"--log-level", "debug",
				"--matrix", "costs.yaml",
				"4",
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Seed).To(Equal(int64(7)))
			Expect(cfg.Anneal).To(Equal(config.AnnealConfig{InitialTemp: 50, CoolingRate: 0.9, Iterations: 200}))
			Expect(cfg.Samples).To(Equal(3))
			Expect(cfg.BruteForceLimit).To(Equal(6))
			Expect(cfg.Format).To(Equal("yaml"))
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.Nodes).To(Equal(4))
			Expect(cfg.MatrixFile).To(Equal("costs.yaml"))
		})

		It("rejects invalid flag values after merging", func() {
			_, err := config.Load(viper.New(), parse("--cooling-rate", "1.5"))
			Expect(err).To(HaveOccurred())
		})

		It("reads environment overrides", func() {
			GinkgoT().Setenv("SALESMAN_SAMPLES", "4")
			GinkgoT().Setenv("SALESMAN_ANNEAL_ITERATIONS", "25")
			cfg, err := config.Load(viper.New(), parse())
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Samples).To(Equal(4))
			Expect(cfg.Anneal.Iterations).To(Equal(25))
		})

		It("lets flags win over the environment", func() {
			GinkgoT().Setenv("SALESMAN_SAMPLES", "4")
			cfg, err := config.Load(viper.New(), parse("--samples", "2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Samples).To(Equal(2))
		})

		Context("with a config file", func() {
			var file string

			BeforeEach(func() {
				file = filepath.Join(GinkgoT().TempDir(), "salesman.yaml")
				body := []byte("nodes: 6\n" +
					"seed: 99\n" +
					"format: yaml\n" +
					"anneal:\n" +
					"  initial_temp: 10\n" +
					"  cooling_rate: 0.5\n" +
					"  iterations: 30\n")
				Expect(os.WriteFile(file, body, 0o600)).To(Succeed())
			})

			It("loads nested keys", func() {
				cfg, err := config.Load(viper.New(), parse("--config", file))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Nodes).To(Equal(6))
				Expect(cfg.Seed).To(Equal(int64(99)))
				Expect(cfg.Format).To(Equal("yaml"))
				Expect(cfg.Anneal).To(Equal(config.AnnealConfig{InitialTemp: 10, CoolingRate: 0.5, Iterations: 30}))
			})

			It("is overridden by flags and the positional count", func() {
				cfg, err := config.Load(viper.New(), parse("--config", file, "--iterations", "5", "3"))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Anneal.Iterations).To(Equal(5))
				Expect(cfg.Nodes).To(Equal(3))
			})

			It("fails when the file is missing", func() {
				_, err := config.Load(viper.New(), parse("--config", file+".missing"))
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
