// Package config reads the optional settings file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendBubbletea = "bubbletea"
	BackendTcell     = "tcell"

	EnvPrefix = "slotgrid"
	fileName  = ".slotgrid"
)

// Colors are "#rrggbb" strings understood by both renderers.
type Colors struct {
	Empty     string
	Black     string
	White     string
	Highlight string
	Legend    string
}

type Config struct {
	Backend   string
	AltScreen bool
	LogFile   string
	LogLevel  slog.Level
	Keys      map[string][]string
	Colors    Colors
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendBubbletea)
	v.SetDefault("altscreen", true)
	v.SetDefault("logfile", "")
	v.SetDefault("loglevel", "info")
	v.SetDefault("colors.empty", "#cd3131")
	v.SetDefault("colors.black", "#000000")
	v.SetDefault("colors.white", "#ffffff")
	v.SetDefault("colors.highlight", "#767676")
	v.SetDefault("colors.legend", "#e5e510")
}

// Init points v at the config file. With an empty path the home directory
// and the working directory are searched for .slotgrid.toml. A .env file in
// the working directory is loaded first when present.
func Init(v *viper.Viper, path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("toml")
		v.SetConfigName(fileName)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("no config file found, using defaults")
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	return nil
}

// Load extracts and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Backend:   v.GetString("backend"),
		AltScreen: v.GetBool("altscreen"),
		LogFile:   v.GetString("logfile"),
		Keys:      v.GetStringMapStringSlice("keys"),
		Colors: Colors{
			Empty:     v.GetString("colors.empty"),
			Black:     v.GetString("colors.black"),
			White:     v.GetString("colors.white"),
			Highlight: v.GetString("colors.highlight"),
			Legend:    v.GetString("colors.legend"),
		},
	}

	switch c.Backend {
	case BackendBubbletea, BackendTcell:
	default:
		return Config{}, fmt.Errorf("unknown backend %q", c.Backend)
	}

	if err := c.LogLevel.UnmarshalText([]byte(v.GetString("loglevel"))); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}

	for name, value := range map[string]string{
		"empty":     c.Colors.Empty,
		"black":     c.Colors.Black,
		"white":     c.Colors.White,
		"highlight": c.Colors.Highlight,
		"legend":    c.Colors.Legend,
	} {
		if !hexColor.MatchString(value) {
			return Config{}, fmt.Errorf("color %s: %q is not a #rrggbb value", name, value)
		}
	}
	return c, nil
}
