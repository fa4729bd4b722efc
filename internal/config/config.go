package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/platekbd/internal/logging"
	"github.com/jask/platekbd/plate"
)

// Config holds application configuration.
type Config struct {
	Keyboard KeyboardConfig      `mapstructure:"keyboard"`
	Log      LogConfig           `mapstructure:"log"`
	Keys     map[string][]string `mapstructure:"keys"`
}

// KeyboardConfig holds the plate type and key geometry.
type KeyboardConfig struct {
	PlateType           string `mapstructure:"plate_type"`
	KeyWidth            int    `mapstructure:"key_width"`
	Spacing             int    `mapstructure:"spacing"`
	ConfirmRequiresFull bool   `mapstructure:"confirm_requires_full"`
}

// LogConfig holds log settings. An empty Path means the default state file.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

const (
	minKeyWidth = 3
	maxKeyWidth = 12
	maxSpacing  = 4
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keyboard: KeyboardConfig{
			PlateType: plate.Civil.String(),
			KeyWidth:  5,
			Spacing:   1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Path returns $PLATEKBD_CONFIG, or config.toml under XDG_CONFIG_HOME
// (falling back to ~/.config) in a platekbd directory.
func Path() (string, error) {
	if p := os.Getenv("PLATEKBD_CONFIG"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "platekbd", "config.toml"), nil
}

// Load reads configuration from file and env. Env var overrides use prefix
// PLATEKBD_, e.g. PLATEKBD_KEYBOARD_PLATE_TYPE. A missing file is not an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	def := Default()
	v.SetDefault("keyboard.plate_type", def.Keyboard.PlateType)
	v.SetDefault("keyboard.key_width", def.Keyboard.KeyWidth)
	v.SetDefault("keyboard.spacing", def.Keyboard.Spacing)
	v.SetDefault("keyboard.confirm_requires_full", def.Keyboard.ConfirmRequiresFull)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.path", def.Log.Path)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("PLATEKBD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), nil
}

// Normalize replaces out-of-range or unparsable values with their defaults.
func Normalize(c Config) Config {
	out := Default()
	if t, err := plate.ParseType(c.Keyboard.PlateType); err == nil {
		out.Keyboard.PlateType = t.String()
	}
	if c.Keyboard.KeyWidth >= minKeyWidth && c.Keyboard.KeyWidth <= maxKeyWidth {
		out.Keyboard.KeyWidth = c.Keyboard.KeyWidth
	}
	if c.Keyboard.Spacing >= 0 && c.Keyboard.Spacing <= maxSpacing {
		out.Keyboard.Spacing = c.Keyboard.Spacing
	}
	out.Keyboard.ConfirmRequiresFull = c.Keyboard.ConfirmRequiresFull

	if _, err := logging.ParseLevel(c.Log.Level); err == nil && strings.TrimSpace(c.Log.Level) != "" {
		out.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	}
	if _, err := logging.ParseFormat(c.Log.Format); err == nil && strings.TrimSpace(c.Log.Format) != "" {
		out.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	}
	out.Log.Path = strings.TrimSpace(c.Log.Path)

	for action, keys := range c.Keys {
		action = strings.ToLower(strings.TrimSpace(action))
		clean := make([]string, 0, len(keys))
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				clean = append(clean, k)
			}
		}
		if action == "" || len(clean) == 0 {
			continue
		}
		if out.Keys == nil {
			out.Keys = make(map[string][]string)
		}
		out.Keys[action] = clean
	}
	return out
}

// PlateType returns the configured plate type. Normalized configs always
// parse; anything else falls back to Civil.
func (c Config) PlateType() plate.Type {
	t, err := plate.ParseType(c.Keyboard.PlateType)
	if err != nil {
		return plate.Civil
	}
	return t
}

// Logging converts the log section to a logging.Config writing to a file.
func (c Config) Logging() logging.Config {
	out := logging.DefaultConfig()
	if lvl, err := logging.ParseLevel(c.Log.Level); err == nil {
		out.Level = lvl
	}
	if f, err := logging.ParseFormat(c.Log.Format); err == nil {
		out.Format = f
	}
	if c.Log.Path != "" {
		out.FilePath = c.Log.Path
	}
	return out
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("keyboard.plate_type", cfg.Keyboard.PlateType)
	v.Set("keyboard.key_width", cfg.Keyboard.KeyWidth)
	v.Set("keyboard.spacing", cfg.Keyboard.Spacing)
	v.Set("keyboard.confirm_requires_full", cfg.Keyboard.ConfirmRequiresFull)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
