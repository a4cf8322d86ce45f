package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/st3v3nmw/baker/internal/types"
)

const DefaultOutputPath = "blocklist.txt"

var (
	All Config
)

type Config struct {
	Output  OutputConfig `yaml:"output" json:"output"`
	Fetch   FetchConfig  `yaml:"fetch" json:"fetch"`
	Log     LogConfig    `yaml:"log" json:"log"`
	Sources []string     `yaml:"sources" json:"sources" validate:"dive,http_url"`
}

type OutputConfig struct {
	Path   string             `yaml:"path" json:"path" validate:"required"`
	Format types.OutputFormat `yaml:"format" json:"format" validate:"oneof=hosts domains rpz"`
}

type FetchConfig struct {
	// Zero means no timeout, same as http.DefaultClient.
	Timeout   time.Duration `yaml:"timeout" json:"timeout" validate:"min=0"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
}

func Default() Config {
	return Config{
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Format: types.OutputFormatHosts,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func (c *Config) setDefaults() {
	def := Default()
	if c.Output.Path == "" {
		c.Output.Path = def.Output.Path
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Read(filePath string) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	cfg, err := Parse(file)
	if err != nil {
		return err
	}

	All = cfg
	return nil
}
