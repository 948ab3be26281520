// Package cli implements the designkit command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/designkit/internal/config"
	"github.com/opencode-ai/designkit/internal/logging"
	"github.com/opencode-ai/designkit/internal/themes"
)

var (
	cfgFile    string
	jsonOutput bool
	logLevel   string
	noColor    bool
)

// app is the state every command runs against, built before each run.
var app struct {
	viper    *viper.Viper
	config   *config.Config
	registry *themes.Registry
	logger   zerolog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "designkit",
	Short: "Design tokens, themes and exporters",
	Long: `designkit serves a universal design-token catalog: colors, typography,
spacing and motion, composed into named themes and exported as CSS,
TypeScript, W3C design-token JSON or presentation primitives.

Custom themes are read from .designkit/themes, ~/.config/designkit/themes
and any directory listed under themes.dirs in designkit.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./designkit.yaml or ~/.config/designkit/designkit.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&noColor, "no-color", false, "disable color swatches")
}

func setup(cmd *cobra.Command, args []string) error {
	v := config.New()
	if err := v.BindPFlag("logging.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	used, err := config.ReadFile(v, cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logCfg := cfg.Logging
	logCfg.Output = cmd.ErrOrStderr()
	if err := logging.Init(logCfg); err != nil {
		return err
	}
	logger := logging.Component("cli")
	if used != "" {
		logger.Debug().Str("file", used).Msg("loaded config")
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	app.viper = v
	app.config = cfg
	app.registry = registry
	app.logger = logger
	return nil
}

func buildRegistry(cfg *config.Config) (*themes.Registry, error) {
	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = ""
	}
	paths := themes.ThemeSearchPaths(projectDir, cfg.Themes.Dirs...)
	custom, err := themes.LoadThemesFromSearchPaths(paths)
	if err != nil {
		return nil, fmt.Errorf("load custom themes: %w", err)
	}
	return themes.NewRegistry(themes.WithThemes(custom...))
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
