// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all phonebook configuration. It covers presentation only;
// the command surface and its wording are fixed.
type Config struct {
	UI UI `yaml:"ui"`
}

// UI holds input prompt and display mode settings.
type UI struct {
	Prompt string `yaml:"prompt"`
	Plain  bool   `yaml:"plain"` // Force plain line output even on a TTY.
}

// DefaultConfig returns a Config reproducing the stock transcript.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Prompt: "Enter a command with arguments separated with a ' ' character: ",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.UI.Prompt == "" {
		return errors.New("config: ui.prompt cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PHONEBOOK_PROMPT, PHONEBOOK_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PHONEBOOK_PROMPT"); v != "" {
		c.UI.Prompt = v
	}
	if v := os.Getenv("PHONEBOOK_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid PHONEBOOK_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = plain
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI *rawUI `yaml:"ui"`
}

type rawUI struct {
	Prompt *string `yaml:"prompt"`
	Plain  *bool   `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Prompt != nil {
			c.UI.Prompt = *layer.UI.Prompt
		}
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
}
