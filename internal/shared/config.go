package shared

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// OutputFormats lists the output formats understood by the formatter.
var OutputFormats = []string{"json", "text", "csv", "toon"}

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Filter FilterConfig `toml:"filter"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// OutputConfig contains rendering defaults.
type OutputConfig struct {
	Format string `toml:"format"`
	Pretty bool   `toml:"pretty"`
}

// FilterConfig holds default filter criteria. Nil years mean "no bound".
type FilterConfig struct {
	MinYear *float64 `toml:"min_year"`
	MaxYear *float64 `toml:"max_year"`
	Artist  string   `toml:"artist"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first invalid setting, wrapped in [ErrInvalidConfig].
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}

	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Output.Format)
	}

	for name, year := range map[string]*float64{"min_year": c.Filter.MinYear, "max_year": c.Filter.MaxYear} {
		if year != nil && (math.IsNaN(*year) || math.IsInf(*year, 0)) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, name)
		}
	}

	if c.Filter.MinYear != nil && c.Filter.MaxYear != nil && *c.Filter.MinYear > *c.Filter.MaxYear {
		return fmt.Errorf("%w: min_year %v is after max_year %v", ErrInvalidConfig, *c.Filter.MinYear, *c.Filter.MaxYear)
	}

	return nil
}
