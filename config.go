package qshor

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can say "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config bundles every tunable of the demonstration pipeline.
type Config struct {
	Shots             int         `yaml:"shots"`
	PrecisionBits     int         `yaml:"precision_bits"` // 0 selects 2t+1 automatically
	MaxBaseAttempts   int         `yaml:"max_base_attempts"`
	MaxResamples      int         `yaml:"max_resamples"`
	Trials            int         `yaml:"trials"`
	Workers           int         `yaml:"workers"`
	Seed              int64       `yaml:"seed"` // 0 seeds from the clock
	SchedulingTimeout Duration    `yaml:"scheduling_timeout"`
	Noise             *NoiseModel `yaml:"noise"`
}

func NewConfig() *Config {
	return &Config{
		Shots:             1024,
		PrecisionBits:     0,
		MaxBaseAttempts:   8,
		MaxResamples:      3,
		Trials:            10,
		Workers:           2,
		SchedulingTimeout: Duration(10 * time.Second),
		Noise:             NoiseModelPreset("ideal"),
	}
}

// LoadConfig reads a YAML file over the defaults from NewConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Shots < 1 {
		return fmt.Errorf("config: shots %d must be positive", c.Shots)
	}
	if c.MaxBaseAttempts < 1 {
		return fmt.Errorf("config: max_base_attempts %d must be positive", c.MaxBaseAttempts)
	}
	if c.MaxResamples < 0 {
		return fmt.Errorf("config: max_resamples %d must not be negative", c.MaxResamples)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers %d must be positive", c.Workers)
	}
	return c.Noise.Validate()
}
