// Package config loads linkform settings from an optional YAML file and
// LINKFORM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/linkform/internal/form"
)

const envPrefix = "LINKFORM"

// Config holds every runtime setting.
type Config struct {
	// Mode is the validation timing: onChange, onTouched or onSubmit.
	Mode  string  `mapstructure:"mode" yaml:"mode"`
	// Seed is an optional JSON, YAML or HTML file with the initial links.
	Seed  string  `mapstructure:"seed" yaml:"seed"`
	// Theme is one of classic, neon or mono.
	Theme string  `mapstructure:"theme" yaml:"theme"`
	Log   Logging `mapstructure:"log" yaml:"log"`
}

type Logging struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives JSON logs when set. Without it the TUI stays silent
	// and commands log to stderr.
	File  string `mapstructure:"file" yaml:"file"`
}

func Default() Config {
	return Config{
		Mode:  form.OnTouched.String(),
		Theme: "classic",
		Log:   Logging{Level: "info"},
	}
}

// DefaultPath is ~/.linkform/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".linkform", "config.yaml"), nil
}

// Load reads path (DefaultPath when empty). A missing file is not an
// error; defaults and environment still apply.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			if explicit {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Seed = expandHome(cfg.Seed)
	cfg.Log.File = expandHome(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if _, err := form.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown theme %q", c.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unsupported level %q", c.Log.Level)
	}
	return nil
}

// FormMode returns the parsed validation mode.
func (c Config) FormMode() form.Mode {
	m, _ := form.ParseMode(c.Mode)
	return m
}

// YAML renders the effective configuration.
func (c Config) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	return string(b), nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
