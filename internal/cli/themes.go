package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/designkit/internal/exporters"
	"github.com/opencode-ai/designkit/internal/themes"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesInfoCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List and inspect themes",
	Long:  "List the bundled and custom themes, show their resolved tokens, or describe their configuration.",
}

var themesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		summaries := app.registry.List()
		if IsJSONOutput() {
			return writeJSON(out, summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Key, s.Name, s.Category, strings.Join(s.Tags, ", ")})
		}
		return writeTable(out, []string{"KEY", "NAME", "CATEGORY", "TAGS"}, rows)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <theme>",
	Short: "Show a theme's resolved colors",
	Long:  "Show a theme's semantic colors and defaults. With --json the full resolved token bundle is printed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := app.registry.Get(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, theme)
		}
		return writeThemeColors(out, theme, colorEnabled(out))
	},
}

// writeThemeColors prints a theme's semantic colors. When styled, labels
// are rendered in the theme's own colors and values as swatches.
func writeThemeColors(out io.Writer, theme *themes.Resolved, styled bool) error {
	if theme.Colors == nil {
		return fmt.Errorf("theme %s has no colors", theme.Key)
	}
	styles, err := exporters.BuildStyles(theme)
	if err != nil {
		return err
	}
	title, muted := theme.Metadata.Name, theme.Metadata.Description
	if styled {
		title, muted = styles.Title.Render(title), styles.Muted.Render(muted)
	}
	fmt.Fprintf(out, "%s: %s\n\n", title, muted)

	rows := make([][]string, 0, 40)
	for _, role := range theme.Colors.Semantic.Groups() {
		label := role.Name
		if styled {
			label = styles.Role(role.Name).Render(label)
		}
		for _, v := range role.Group.Variants() {
			value := v.Value
			if styled {
				value = exporters.Swatch(v.Value, v.Value)
			}
			rows = append(rows, []string{label, v.Name, value})
		}
	}
	if err := writeTable(out, []string{"ROLE", "VARIANT", "VALUE"}, rows); err != nil {
		return err
	}

	var footer []string
	if theme.Colors.Gradient != "" {
		footer = append(footer, "gradient: "+theme.Colors.Gradient)
	}
	if theme.Motion != nil && theme.Motion.Defaults != nil {
		d := theme.Motion.Defaults
		footer = append(footer, fmt.Sprintf("motion: %s (%dms), %s, %s spring", d.Duration, d.Resolved.Duration.MS, d.Easing, d.Spring))
	}
	if len(footer) > 0 {
		fmt.Fprintln(out)
	}
	for _, line := range footer {
		if styled {
			line = styles.Muted.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

var themesInfoCmd = &cobra.Command{
	Use:   "info <theme>",
	Short: "Describe a theme's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.registry.Config(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, cfg)
		}

		rows := [][]string{
			{"key", cfg.Key},
			{"name", cfg.Name},
			{"category", cfg.Category},
			{"description", cfg.Description},
			{"tags", strings.Join(cfg.Tags, ", ")},
			{"source", cfg.Source},
			{"primary hue", cfg.Colors.PrimaryHue},
			{"mode", cfg.Colors.Mode},
			{"gradient", cfg.Colors.Gradient},
			{"medium", cfg.Typography.Medium},
			{"fonts", cfg.Typography.PrimaryFont + " / " + cfg.Typography.BodyFont},
			{"density", cfg.Spacing.Density},
			{"safe area", cfg.Spacing.SafeArea},
			{"duration", cfg.Motion.DefaultDuration},
			{"easing", cfg.Motion.DefaultEasing},
			{"spring", cfg.Motion.DefaultSpring},
		}
		filtered := rows[:0]
		for _, row := range rows {
			if row[1] != "" {
				filtered = append(filtered, row)
			}
		}
		return writeTable(out, nil, filtered)
	},
}
