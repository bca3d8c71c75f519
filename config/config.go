package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SALESMAN"

// Defaults mirror the classic demo run: 8 random nodes, 10 sample routes,
// brute force only below 10 nodes, annealing at 1000° cooling by 0.99 over
// 1000 iterations.
const (
	DefaultNodes           = 8
	DefaultExtent          = geom.DefaultExtent
	DefaultSamples         = 10
	DefaultBruteForceLimit = 10
	DefaultFormat          = "text"
	DefaultLogLevel        = "info"
	DefaultEnvironment     = "development"
)

// Viper keys.
const (
	keyNodes           = "nodes"
	keySeed            = "seed"
	keyExtent          = "extent"
	keySamples         = "samples"
	keyBruteForceLimit = "brute_force_limit"
	keyInitialTemp     = "anneal.initial_temp"
	keyCoolingRate     = "anneal.cooling_rate"
	keyIterations      = "anneal.iterations"
	keyFormat          = "format"
	keyLogLevel        = "log_level"
	keyEnvironment     = "environment"
	keyConfigFile      = "config"
	keyMatrixFile      = "matrix"
)

// ErrInvalidNodeCount is returned when the positional node count is not a
// positive integer.
var ErrInvalidNodeCount = errors.New("config: node count must be a positive integer")

// Config holds everything one CLI run needs.
type Config struct {
	// Nodes is the number of random stops to generate. Ignored when
	// MatrixFile is set.
	Nodes int `mapstructure:"nodes" yaml:"nodes" validate:"gte=1"`

	// MatrixFile names a YAML file holding a precomputed square cost table
	// (a list of rows). When set, the instance is built from it instead of
	// random nodes.
	MatrixFile string `mapstructure:"matrix" yaml:"matrix"`

	// Seed drives every random stream of the run; 0 asks for a fresh one.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// Extent is the side of the square the nodes are drawn from.
	Extent float64 `mapstructure:"extent" yaml:"extent" validate:"gt=0"`

	// Samples is the number of random baseline routes to print.
	Samples int `mapstructure:"samples" yaml:"samples" validate:"gte=0"`

	// BruteForceLimit: brute force runs only when Nodes < BruteForceLimit.
	BruteForceLimit int `mapstructure:"brute_force_limit" yaml:"brute_force_limit" validate:"gte=0"`

	Anneal AnnealConfig `mapstructure:"anneal" yaml:"anneal"`

	Format      string `mapstructure:"format" yaml:"format" validate:"oneof=text yaml"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Environment string `mapstructure:"environment" yaml:"environment" validate:"oneof=development production"`
}

// AnnealConfig is the simulated annealing schedule.
type AnnealConfig struct {
	InitialTemp float64 `mapstructure:"initial_temp" yaml:"initial_temp" validate:"gt=0"`
	CoolingRate float64 `mapstructure:"cooling_rate" yaml:"cooling_rate" validate:"gt=0,lt=1"`
	Iterations  int     `mapstructure:"iterations" yaml:"iterations" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Nodes:           DefaultNodes,
		Extent:          DefaultExtent,
		Samples:         DefaultSamples,
		BruteForceLimit: DefaultBruteForceLimit,
		Anneal: AnnealConfig{
			InitialTemp: tsp.DefaultInitialTemp,
			CoolingRate: tsp.DefaultCoolingRate,
			Iterations:  tsp.DefaultIterations,
		},
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
		Environment: DefaultEnvironment,
	}
}

// AnnealOptions converts the schedule for tsp.SimulatedAnnealing.
func (c *Config) AnnealOptions() tsp.AnnealOptions {
	return tsp.AnnealOptions{
		InitialTemp: c.Anneal.InitialTemp,
		CoolingRate: c.Anneal.CoolingRate,
		Iterations:  c.Anneal.Iterations,
	}
}

// RunBruteForce reports whether the exact solver is affordable for an
// instance of n stops.
func (c *Config) RunBruteForce(n int) bool {
	return n < c.BruteForceLimit
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and cross-field consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: invalid %s (%s=%s, got %v): %w",
				fe.Namespace(), fe.Tag(), fe.Param(), fe.Value(), err)
		}
		return fmt.Errorf("config: %w", err)
	}
	if err := c.AnnealOptions().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// BindFlags registers the CLI flags on fs with their default values.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int64(keySeed, 0, "random seed (0 picks a time-based seed)")
	fs.Float64(keyExtent, d.Extent, "side of the square nodes are drawn from")
	fs.Int(keySamples, d.Samples, "number of random sample routes")
	fs.Int("brute-force-limit", d.BruteForceLimit, "run brute force only when node count is below this")
	fs.Float64("temperature", d.Anneal.InitialTemp, "simulated annealing initial temperature")
	fs.Float64("cooling-rate", d.Anneal.CoolingRate, "simulated annealing cooling rate in (0,1)")
	fs.Int("iterations", d.Anneal.Iterations, "simulated annealing iteration budget")
	fs.String(keyFormat, d.Format, "output format: text or yaml")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.String(keyEnvironment, d.Environment, "logger flavour: development or production")
	fs.String(keyConfigFile, "", "optional YAML config file")
	fs.String(keyMatrixFile, "", "YAML file with a precomputed cost matrix (replaces random nodes)")
}

// flagKeys maps flag names to viper keys where they differ.
var flagKeys = map[string]string{
	keySeed:             keySeed,
	keyExtent:           keyExtent,
	keySamples:          keySamples,
	"brute-force-limit": keyBruteForceLimit,
	"temperature":       keyInitialTemp,
	"cooling-rate":      keyCoolingRate,
	"iterations":        keyIterations,
	keyFormat:           keyFormat,
	"log-level":         keyLogLevel,
	keyEnvironment:      keyEnvironment,
	keyConfigFile:       keyConfigFile,
	keyMatrixFile:       keyMatrixFile,
}

// Load merges defaults, config file, environment, parsed flags and the first
// positional argument of fs into a validated Config. fs must already be
// parsed; flags not registered through BindFlags are ignored.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
				}
			}
		}
	}

	if file := v.GetString(keyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if fs != nil && fs.NArg() > 0 {
		n, err := ParseNodeCount(fs.Arg(0))
		if err != nil {
			return nil, err
		}
		cfg.Nodes = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseNodeCount parses a positive integer node count.
func ParseNodeCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNodeCount, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNodeCount, n)
	}

	return n, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(keyNodes, d.Nodes)
	v.SetDefault(keySeed, d.Seed)
	v.SetDefault(keyExtent, d.Extent)
	v.SetDefault(keySamples, d.Samples)
	v.SetDefault(keyBruteForceLimit, d.BruteForceLimit)
	v.SetDefault(keyInitialTemp, d.Anneal.InitialTemp)
	v.SetDefault(keyCoolingRate, d.Anneal.CoolingRate)
	v.SetDefault(keyIterations, d.Anneal.Iterations)
	v.SetDefault(keyFormat, d.Format)
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyEnvironment, d.Environment)
	v.SetDefault(keyConfigFile, "")
	v.SetDefault(keyMatrixFile, "")
}
