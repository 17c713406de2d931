package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samthor/seqstore/check"
	"github.com/samthor/seqstore/seq"
)

const (
	configName = ".seqcheck"
	configType = "yaml"
	envPrefix  = "SEQCHECK"
)

// Defaults.
const (
	DefaultSeed         = 1
	DefaultFuzzOps      = 200_000
	DefaultFuzzWorkers  = 4
	DefaultMaxLen       = 10_000
	DefaultMaxValue     = 1_000
	DefaultInvalidRatio = 0.05
	DefaultVerifyEvery  = 10_000
	DefaultProgress     = 2 * time.Second
	DefaultBenchOps     = 1_000_000
)

// Config is the seqcheck configuration, from defaults, file, env and flags in increasing priority.
type Config struct {
	Seed       uint64      `mapstructure:"seed"`
	Strategies []string    `mapstructure:"strategies"`
	Fuzz       FuzzConfig  `mapstructure:"fuzz"`
	Bench      BenchConfig `mapstructure:"bench"`
}

// FuzzConfig configures `seqcheck fuzz`.
type FuzzConfig struct {
	Ops          int           `mapstructure:"ops"`
	Workers      int           `mapstructure:"workers"`
	MaxLen       int           `mapstructure:"max_len"`
	MaxValue     int64         `mapstructure:"max_value"`
	InvalidRatio float64       `mapstructure:"invalid_ratio"`
	VerifyEvery  int           `mapstructure:"verify_every"`
	Progress     time.Duration `mapstructure:"progress"`
}

// BenchConfig configures `seqcheck bench`.
type BenchConfig struct {
	Ops    int `mapstructure:"ops"`
	MaxLen int `mapstructure:"max_len"`
}

// LoadConfig reads configuration.
// If configPath is empty, .seqcheck.yaml is searched for in CWD and $HOME, and is optional.
// Each entry of flags overrides the given config key, but only if the flag was set.
func LoadConfig(configPath string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("strategies", []string{seq.Treap.String(), seq.Splay.String()})

	v.SetDefault("fuzz.ops", DefaultFuzzOps)
	v.SetDefault("fuzz.workers", DefaultFuzzWorkers)
	v.SetDefault("fuzz.max_len", DefaultMaxLen)
	v.SetDefault("fuzz.max_value", DefaultMaxValue)
	v.SetDefault("fuzz.invalid_ratio", DefaultInvalidRatio)
	v.SetDefault("fuzz.verify_every", DefaultVerifyEvery)
	v.SetDefault("fuzz.progress", DefaultProgress)

	v.SetDefault("bench.ops", DefaultBenchOps)
	v.SetDefault("bench.max_len", DefaultMaxLen)
}

// Validate checks the config for values that can't work.
func (c *Config) Validate() error {
	if len(c.Strategies) == 0 {
		return errors.New("no strategies")
	}
	if _, err := c.ParsedStrategies(); err != nil {
		return err
	}
	if c.Fuzz.Ops < 0 || c.Bench.Ops < 0 {
		return errors.New("ops must not be negative")
	}
	if c.Fuzz.Workers < 1 {
		return fmt.Errorf("fuzz.workers must be positive, was %d", c.Fuzz.Workers)
	}
	if c.Fuzz.InvalidRatio < 0 || c.Fuzz.InvalidRatio > 1 {
		return fmt.Errorf("fuzz.invalid_ratio must be within [0,1], was %v", c.Fuzz.InvalidRatio)
	}
	if c.Fuzz.MaxLen < 1 || c.Bench.MaxLen < 1 {
		return errors.New("max_len must be positive")
	}
	return nil
}

// ParsedStrategies returns Strategies as seq.Strategy values.
func (c *Config) ParsedStrategies() ([]seq.Strategy, error) {
	out := make([]seq.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, ok := seq.ParseStrategy(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown strategy: %q", name)
		}
		out = append(out, s)
	}
	return out, nil
}

// FuzzCheck returns the check.Config for `seqcheck fuzz`.
func (c *Config) FuzzCheck() check.Config {
	strategies, _ := c.ParsedStrategies()
	return check.Config{
		Ops:          c.Fuzz.Ops,
		Seed:         c.Seed,
		Workers:      c.Fuzz.Workers,
		Strategies:   strategies,
		MaxLen:       c.Fuzz.MaxLen,
		MaxValue:     c.Fuzz.MaxValue,
		InvalidRatio: c.Fuzz.InvalidRatio,
		VerifyEvery:  c.Fuzz.VerifyEvery,
		Progress:     c.Fuzz.Progress,
	}
}

// BenchCheck returns the check.Config for `seqcheck bench`.
func (c *Config) BenchCheck() check.Config {
	strategies, _ := c.ParsedStrategies()
	return check.Config{
		Ops:        c.Bench.Ops,
		Seed:       c.Seed,
		Strategies: strategies,
		MaxLen:     c.Bench.MaxLen,
	}
}
