// Package config resolves runtime settings from flags, OPENWHEN_* environment
// variables and an optional TOML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OPENWHEN_SPEED.
const EnvPrefix = "OPENWHEN"

// DefaultFileName is looked up in the home directory when no file is given.
const DefaultFileName = ".openwhen.toml"

// Keys understood by Load.
const (
	KeyLetters   = "letters"
	KeyAssets    = "assets"
	KeySpeed     = "speed"
	KeySignature = "signature"
	KeyHeading   = "heading"
	KeyLogLevel  = "log_level"
	KeyLogFile   = "log_file"
	KeyMouse     = "mouse"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved configuration.
type Config struct {
	Letters   string  // letters file; empty uses the compiled-in letters
	Assets    string  // stamp asset directory
	Speed     float64 // animation speed multiplier
	Signature string  // closing lines under every message
	Heading   string
	LogLevel  string
	LogFile   string // empty discards logs
	Mouse     bool

	// File is the config file that was read, if any.
	File string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLetters, "")
	v.SetDefault(KeyAssets, "")
	v.SetDefault(KeySpeed, 1.0)
	v.SetDefault(KeySignature, "With love,\nYour Name")
	v.SetDefault(KeyHeading, "Open When Letters")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyMouse, true)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (path, or ~/.openwhen.toml if it exists) into v
// and returns the validated result. An explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	file, err := resolveFile(path)
	if err != nil {
		return Config{}, err
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", file, err)
		}
	}

	cfg := Config{
		Letters:   expand(v.GetString(KeyLetters)),
		Assets:    expand(v.GetString(KeyAssets)),
		Speed:     v.GetFloat64(KeySpeed),
		Signature: v.GetString(KeySignature),
		Heading:   v.GetString(KeyHeading),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFile:   expand(v.GetString(KeyLogFile)),
		Mouse:     v.GetBool(KeyMouse),
		File:      file,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidConfig, c.Speed)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

func resolveFile(path string) (string, error) {
	if path != "" {
		p := expand(path)
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file %q: %w", path, err)
		}
		return p, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", nil // no home: run on defaults
	}
	p := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(p); err != nil {
		return "", nil
	}
	return p, nil
}

func expand(p string) string {
	if p == "" {
		return ""
	}
	if e, err := homedir.Expand(p); err == nil {
		return e
	}
	return p
}
