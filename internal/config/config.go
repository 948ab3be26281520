// Package config loads designkit settings from a config file, the
// environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/opencode-ai/designkit/internal/exporters"
	"github.com/opencode-ai/designkit/internal/logging"
	"github.com/opencode-ai/designkit/internal/tokens"
)

// FileName is the config file base name, without extension.
const FileName = "designkit"

// EnvPrefix prefixes environment overrides, e.g. DESIGNKIT_CSS_PREFIX.
const EnvPrefix = "DESIGNKIT"

type Config struct {
	CSS     CSSConfig      `mapstructure:"css"`
	Export  ExportConfig   `mapstructure:"export"`
	Tokens  TokensConfig   `mapstructure:"tokens"`
	Themes  ThemesConfig   `mapstructure:"themes"`
	Logging logging.Config `mapstructure:"logging"`
}

type CSSConfig struct {
	Prefix string `mapstructure:"prefix"`
}

type ExportConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
}

// TokensConfig selects what `designkit tokens` prints when no flags are
// given.
type TokensConfig struct {
	Hue    string `mapstructure:"hue"`
	Mode   string `mapstructure:"mode"`
	Medium string `mapstructure:"medium"`
}

type ThemesConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("css.prefix", exporters.DefaultPrefix)
	v.SetDefault("export.format", string(exporters.FormatCSS))
	v.SetDefault("export.pretty", true)
	v.SetDefault("tokens.hue", "blue")
	v.SetDefault("tokens.mode", string(tokens.ModeDark))
	v.SetDefault("tokens.medium", string(tokens.MediumWeb))
	v.SetDefault("themes.dirs", []string{})
	v.SetDefault("logging.level", zerolog.WarnLevel.String())
	v.SetDefault("logging.format", logging.FormatConsole)
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SearchPaths lists the directories searched for designkit.yaml, highest
// priority first.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", FileName))
	}
	return paths
}

// ReadFile reads an explicit config file, or searches SearchPaths when path
// is empty. A missing file is not an error unless it was named explicitly.
// It returns the file actually used.
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, dir := range SearchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := exporters.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if !slices.Contains(tokens.Hues(), c.Tokens.Hue) {
		return fmt.Errorf("tokens.hue: %w %q", tokens.ErrUnknownHue, c.Tokens.Hue)
	}
	if _, err := tokens.ParseMode(c.Tokens.Mode); err != nil {
		return fmt.Errorf("tokens.mode: %w", err)
	}
	if _, err := tokens.ParseMedium(c.Tokens.Medium); err != nil {
		return fmt.Errorf("tokens.medium: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be one of: %s, %s", logging.FormatConsole, logging.FormatJSON)
	}
	return nil
}
