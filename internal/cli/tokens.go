package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/designkit/internal/exporters"
	"github.com/opencode-ai/designkit/internal/tokens"
)

var (
	tokensHue    string
	tokensMode   string
	tokensMedium string
)

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.PersistentFlags().StringVar(&tokensHue, "hue", "", "primary hue for semantic colors (default from tokens.hue)")
	tokensCmd.PersistentFlags().StringVar(&tokensMode, "mode", "", "dark or light (default from tokens.mode)")
	tokensCmd.PersistentFlags().StringVar(&tokensMedium, "medium", "", "web, pptx, video_1080p or video_4k (default from tokens.medium)")

	tokensCmd.AddCommand(tokensColorsCmd)
	tokensCmd.AddCommand(tokensTypographyCmd)
	tokensCmd.AddCommand(tokensSpacingCmd)
	tokensCmd.AddCommand(tokensMotionCmd)
	tokensCmd.AddCommand(tokensAllCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print raw design tokens",
	Long: `Print token tables without choosing a theme.

Examples:
  designkit tokens colors --hue violet --mode light
  designkit tokens typography --medium video_4k
  designkit tokens all --json`,
}

func tokenChoice(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

func colorTokens() (*tokens.ColorTokens, error) {
	mode, err := tokens.ParseMode(tokenChoice(tokensMode, app.config.Tokens.Mode))
	if err != nil {
		return nil, err
	}
	return tokens.AllColorTokens(tokenChoice(tokensHue, app.config.Tokens.Hue), mode)
}

func typographyTokens() (*tokens.TypographyTokens, error) {
	medium, err := tokens.ParseMedium(tokenChoice(tokensMedium, app.config.Tokens.Medium))
	if err != nil {
		return nil, err
	}
	return tokens.AllTypographyTokens(medium)
}

var tokensColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print the palette and semantic colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := colorTokens()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, colors)
		}
		return writeColorTables(out, colors)
	},
}

func writeColorTables(out io.Writer, colors *tokens.ColorTokens) error {
	swatches := colorEnabled(out)
	cell := func(hex string) string {
		if swatches {
			return exporters.Swatch(hex, hex)
		}
		return hex
	}

	headers := []string{"HUE"}
	for _, stop := range tokens.Stops {
		headers = append(headers, strconv.Itoa(int(stop)))
	}
	rows := make([][]string, 0, colors.Palette.Len())
	for pair := colors.Palette.Oldest(); pair != nil; pair = pair.Next() {
		row := []string{pair.Key}
		for _, stop := range tokens.Stops {
			row = append(row, cell(pair.Value[stop]))
		}
		rows = append(rows, row)
	}
	if err := writeTable(out, headers, rows); err != nil {
		return err
	}

	fmt.Fprintln(out)
	rows = rows[:0]
	for _, role := range colors.Semantic.Groups() {
		for _, v := range role.Group.Variants() {
			rows = append(rows, []string{role.Name, v.Name, cell(v.Value)})
		}
	}
	for i, c := range colors.Semantic.Chart {
		rows = append(rows, []string{"chart", strconv.Itoa(i + 1), cell(c)})
	}
	return writeTable(out, []string{"ROLE", "VARIANT", "VALUE"}, rows)
}

var tokensTypographyCmd = &cobra.Command{
	Use:   "typography",
	Short: "Print font families, sizes and text styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typography, err := typographyTokens()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, typography)
		}

		rows := make([][]string, 0, typography.Families.Len())
		for pair := typography.Families.Oldest(); pair != nil; pair = pair.Next() {
			rows = append(rows, []string{pair.Key, pair.Value.Stack(), pair.Value.Usage})
		}
		if err := writeTable(out, []string{"FAMILY", "STACK", "USAGE"}, rows); err != nil {
			return err
		}

		fmt.Fprintln(out)
		rows = rows[:0]
		for _, name := range tokens.TextStyles() {
			style, err := tokens.TextStyleFor(name, typography.Medium)
			if err != nil {
				return err
			}
			rows = append(rows, []string{name, style.FontSize, strconv.Itoa(style.FontWeight), strconv.FormatFloat(style.LineHeight, 'f', -1, 64), style.LetterSpacing, style.FontFamily})
		}
		return writeTable(out, []string{"STYLE", "SIZE (" + string(typography.Medium) + ")", "WEIGHT", "LINE HEIGHT", "TRACKING", "FONT"}, rows)
	},
}

var tokensSpacingCmd = &cobra.Command{
	Use:   "spacing",
	Short: "Print spacing, radius and safe areas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spacing := tokens.AllSpacingTokens()
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, spacing)
		}

		rows := make([][]string, 0, spacing.Spacing.Len())
		for pair := spacing.Spacing.Oldest(); pair != nil; pair = pair.Next() {
			rows = append(rows, []string{pair.Key, pair.Value})
		}
		if err := writeTable(out, []string{"STEP", "VALUE"}, rows); err != nil {
			return err
		}

		fmt.Fprintln(out)
		rows = rows[:0]
		for pair := spacing.SafeAreas.Oldest(); pair != nil; pair = pair.Next() {
			a := pair.Value
			rows = append(rows, []string{pair.Key, a.AspectRatio, fmt.Sprintf("%d %d %d %d", a.Top, a.Right, a.Bottom, a.Left), a.Usage})
		}
		return writeTable(out, []string{"SAFE AREA", "RATIO", "MARGINS (T R B L)", "USAGE"}, rows)
	},
}

var tokensMotionCmd = &cobra.Command{
	Use:   "motion",
	Short: "Print durations, easings and springs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		motion := tokens.AllMotionTokens()
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, motion)
		}

		rows := make([][]string, 0, motion.Durations.Len())
		for pair := motion.Durations.Oldest(); pair != nil; pair = pair.Next() {
			d := pair.Value
			rows = append(rows, []string{pair.Key, d.CSSValue, strconv.Itoa(d.FramesAt30), strconv.Itoa(d.FramesAt60)})
		}
		if err := writeTable(out, []string{"DURATION", "CSS", "@30FPS", "@60FPS"}, rows); err != nil {
			return err
		}

		fmt.Fprintln(out)
		rows = rows[:0]
		for pair := motion.Easings.Oldest(); pair != nil; pair = pair.Next() {
			rows = append(rows, []string{pair.Key, pair.Value.CSSValue})
		}
		if err := writeTable(out, []string{"EASING", "CSS"}, rows); err != nil {
			return err
		}

		fmt.Fprintln(out)
		rows = rows[:0]
		for pair := motion.Springs.Oldest(); pair != nil; pair = pair.Next() {
			s := pair.Value
			rows = append(rows, []string{
				pair.Key,
				strconv.FormatFloat(s.Damping, 'f', -1, 64),
				strconv.FormatFloat(s.Mass, 'f', -1, 64),
				strconv.FormatFloat(s.Stiffness, 'f', -1, 64),
				formatYesNo(s.OvershootClamping),
				s.Feel,
			})
		}
		return writeTable(out, []string{"SPRING", "DAMPING", "MASS", "STIFFNESS", "CLAMPED", "FEEL"}, rows)
	},
}

// allTokens is the `tokens all --json` payload.
type allTokens struct {
	Colors     *tokens.ColorTokens      `json:"colors"`
	Typography *tokens.TypographyTokens `json:"typography"`
	Spacing    *tokens.SpacingTokens    `json:"spacing"`
	Motion     *tokens.MotionTokens     `json:"motion"`
}

var tokensAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Print every token category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsJSONOutput() {
			colors, err := colorTokens()
			if err != nil {
				return err
			}
			typography, err := typographyTokens()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), allTokens{
				Colors:     colors,
				Typography: typography,
				Spacing:    tokens.AllSpacingTokens(),
				Motion:     tokens.AllMotionTokens(),
			})
		}

		for i, sub := range []*cobra.Command{tokensColorsCmd, tokensTypographyCmd, tokensSpacingCmd, tokensMotionCmd} {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", strings.ToUpper(sub.Name()))
			if err := sub.RunE(sub, nil); err != nil {
				return err
			}
		}
		return nil
	},
}
