// Package config loads the fns command-line settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "FNS_CONFIG"

// DefaultFile is the config file looked up in the home directory.
const DefaultFile = ".fns.yaml"

// Config holds the settings of the fns command.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	Debug       bool   `yaml:"debug"`

	// Path is the file the settings were read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := &Config{
		Prompt: "fns ⇒  ",
		Color:  true,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".fns_history")
	}
	return cfg
}

// Resolve finds and loads the config file. An explicit path wins, then
// $FNS_CONFIG, then ~/.fns.yaml. Explicit files must exist; a missing
// default file yields Default().
func Resolve(explicit string) (*Config, error) {
	home, _ := os.UserHomeDir()
	return resolve(explicit, os.Getenv(EnvVar), home)
}

func resolve(explicit, fromEnv, home string) (*Config, error) {
	switch {
	case explicit != "":
		return Load(explicit)
	case fromEnv != "":
		return Load(fromEnv)
	case home == "":
		return Default(), nil
	}

	cfg, err := Load(filepath.Join(home, DefaultFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads settings from path on top of Default(). Unknown keys are
// rejected; an empty file yields the defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Path = path

	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Prompt) == "" {
		return errors.New("prompt must not be empty")
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
