package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultOutput    = "text"
	DefaultPrecision = 2
	MaxPrecision     = 10
)

// Environment overrides, applied after the file.
const (
	EnvOutput    = "THERMOCALC_OUTPUT"
	EnvPrecision = "THERMOCALC_PRECISION"
)

// Config holds output defaults for thermocalc.
type Config struct {
	// Output is the result format: text | json.
	Output string `yaml:"output"`

	// Precision is the number of decimals printed in text output.
	Precision int `yaml:"precision"`

	// Quiet suppresses warnings on stderr.
	Quiet bool `yaml:"quiet"`
}

// Default returns a Config pre-populated with default values.
func Default() Config {
	return Config{Output: DefaultOutput, Precision: DefaultPrecision}
}

// Load reads and parses the YAML config file at path.
// Missing fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. Bad values are reported
// through warn and leave the field unchanged.
func (c *Config) ApplyEnv(getenv func(string) string, warn func(format string, a ...any)) {
	if v := strings.TrimSpace(getenv(EnvOutput)); v != "" {
		v = strings.ToLower(v)
		if validOutput(v) {
			c.Output = v
		} else {
			warn("bad %s %q (using %s)", EnvOutput, v, c.Output)
		}
	}
	if v := strings.TrimSpace(getenv(EnvPrecision)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > MaxPrecision {
			warn("bad %s %q (using %d)", EnvPrecision, v, c.Precision)
		} else {
			c.Precision = n
		}
	}
}

// Validate checks enums and ranges.
func (c Config) Validate() error {
	if !validOutput(c.Output) {
		return fmt.Errorf("output must be 'text' or 'json', got %q", c.Output)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}
	return nil
}

func validOutput(s string) bool { return s == "text" || s == "json" }
