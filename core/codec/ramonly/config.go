package ramonly

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v3"

	"github.com/ironsweet/golucene/core/codec"
)

const (
	DEFAULT_CODEC_NAME = "RAMOnly"
	DEFAULT_EXTENSION  = "ram"
)

// Config controls the codec name stamped into segment blobs, the blob
// extension, write-path checks, logging and metrics.
type Config struct {
	Name           string        `yaml:"name"`
	Extension      string        `yaml:"extension"`
	CheckTermOrder bool          `yaml:"checkTermOrder"`
	LogLevel       string        `yaml:"logLevel"`
	Metrics        MetricsConfig `yaml:"metrics"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:           DEFAULT_CODEC_NAME,
		Extension:      DEFAULT_EXTENSION,
		CheckTermOrder: true,
		LogLevel:       "WARNING",
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "golucene",
		},
	}
}

// ParseConfig overlays YAML onto DefaultConfig() and validates the
// result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing ramonly config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML file. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) Validate() error {
	var errs []error
	if !codec.IsValidCodecName(c.Name) {
		errs = append(errs, fmt.Errorf("name must be simple ASCII, 1 to 127 characters (got %q)", c.Name))
	}
	if c.Extension == "" || strings.HasPrefix(c.Extension, ".") {
		errs = append(errs, fmt.Errorf("extension must be non-empty without a leading '.' (got %q)", c.Extension))
	}
	if _, err := logging.LogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("logLevel %q: %w", c.LogLevel, err))
	}
	if c.Metrics.Enabled && strings.ContainsAny(c.Metrics.Namespace, " -.") {
		errs = append(errs, fmt.Errorf("metrics.namespace %q is not a valid metric prefix", c.Metrics.Namespace))
	}
	return errors.Join(errs...)
}

// ApplyLogLevel sets the level of this package's logger.
func (c *Config) ApplyLogLevel() error {
	level, err := logging.LogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level, MODULE)
	return nil
}
