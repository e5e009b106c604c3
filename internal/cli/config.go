package cli

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/termsweeper/internal/model"
)

// Config holds CLI configuration
type Config struct {
	Width      int
	Height     int
	Mines      int
	Seed       string
	Output     string
	Verbose    bool
	ConfigFile string
	Rules      model.Rules
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Width:      getEnvIntOrDefault("TERMSWEEPER_WIDTH", model.DefaultWidth),
		Height:     getEnvIntOrDefault("TERMSWEEPER_HEIGHT", model.DefaultHeight),
		Mines:      getEnvIntOrDefault("TERMSWEEPER_MINES", model.DefaultMines),
		Seed:       os.Getenv("TERMSWEEPER_SEED"),
		Output:     getEnvOrDefault("TERMSWEEPER_OUTPUT", "text"),
		Verbose:    false,
		ConfigFile: os.Getenv("TERMSWEEPER_CONFIG"),
		Rules:      model.DefaultRules(),
	}
}

// fileConfig is the YAML config file layout. Every field is optional.
type fileConfig struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Mines  *int    `yaml:"mines"`
	Seed   *uint64 `yaml:"seed"`
	Output *string `yaml:"output"`
	Rules  *struct {
		MinDimension   *int     `yaml:"min_dimension"`
		MaxDimension   *int     `yaml:"max_dimension"`
		DensityCeiling *float64 `yaml:"density_ceiling"`
		QuestionMarks  *bool    `yaml:"question_marks"`
		CapFlags       *bool    `yaml:"cap_flags"`
	} `yaml:"rules"`
}

// LoadFile applies the config file, if one is set, on top of the env
// defaults. Values for flags the user set explicitly are left alone.
func (c *Config) LoadFile(flagSet func(name string) bool) error {
	if c.ConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.ConfigFile, err)
	}

	setInt(&c.Width, fc.Width, !flagSet("width"))
	setInt(&c.Height, fc.Height, !flagSet("height"))
	setInt(&c.Mines, fc.Mines, !flagSet("mines"))
	if fc.Seed != nil && !flagSet("seed") {
		c.Seed = strconv.FormatUint(*fc.Seed, 10)
	}
	if fc.Output != nil && !flagSet("output") {
		c.Output = *fc.Output
	}

	if r := fc.Rules; r != nil {
		setInt(&c.Rules.MinDimension, r.MinDimension, true)
		setInt(&c.Rules.MaxDimension, r.MaxDimension, true)
		if r.DensityCeiling != nil {
			c.Rules.DensityCeiling = *r.DensityCeiling
		}
		if r.QuestionMarks != nil {
			c.Rules.QuestionMarks = *r.QuestionMarks
		}
		if r.CapFlags != nil {
			c.Rules.CapFlags = *r.CapFlags
		}
	}

	return nil
}

// SeedValue parses the configured seed. It returns nil when no seed is set.
func (c *Config) SeedValue() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: must be a non-negative integer", c.Seed)
	}
	return &seed, nil
}

func setInt(dst *int, val *int, apply bool) {
	if val != nil && apply {
		*dst = *val
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultVal
}
