package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cribbage-trainer/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// ErrInvalidColor is returned when the color setting is not auto, always or never
var ErrInvalidColor = errors.New("color must be one of auto, always, never")

// color settings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config provides configuration for the cribbage trainer
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	// Seed makes the deck reproducible. 0 shuffles from crypto/rand
	Seed         int64  `yaml:"seed"`
	Color        string `yaml:"color"`
	ShowNotation bool   `yaml:"showNotation" envconfig:"show_notation"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	c := Config{
		Color:        ColorAuto,
		ShowNotation: true,
	}
	c.Log.Level = "warning"
	c.Log.Format = "text"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with CRIB_ override it.
func Load() error {
	c, err := load(util.Getenv("CRIB_CONFIG_FILE", "config.yaml"))
	if err != nil {
		return err
	}

	config = c
	config.loaded = true
	return nil
}

func load(configFile string) (Config, error) {
	c := DefaultConfig()

	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	if err == nil {
		defer file.Close()

		// an empty file decodes as io.EOF
		if err := yaml.NewDecoder(file).Decode(&c); err != nil && err != io.EOF {
			return Config{}, fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("crib", &c); err != nil {
		return Config{}, err
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("%w: got %q", ErrInvalidColor, c.Color)
	}

	return c, nil
}
