package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/designkit/internal/exporters"
	"github.com/opencode-ai/designkit/internal/tokens"
)

var gradientSteps int

func init() {
	rootCmd.AddCommand(gradientCmd)
	gradientCmd.Flags().IntVarP(&gradientSteps, "steps", "n", 5, "number of evenly spaced colors to sample")
}

// gradientSample is the `gradient --json` payload.
type gradientSample struct {
	Name   string                `json:"name,omitempty"`
	CSS    string                `json:"css"`
	Stops  []tokens.GradientStop `json:"stops"`
	Colors []string              `json:"colors"`
}

var gradientCmd = &cobra.Command{
	Use:   "gradient [name|css]",
	Short: "Sample colors along a gradient",
	Long: `Sample evenly spaced colors along a catalog gradient or a CSS
linear-gradient. Without arguments the catalog is listed.

Examples:
  designkit gradient sunset --steps 7
  designkit gradient "linear-gradient(90deg, #000000 0%, #ffffff 100%)" -n 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			catalog := tokens.Gradients()
			if IsJSONOutput() {
				return writeJSON(out, catalog)
			}
			rows := make([][]string, 0, catalog.Len())
			for pair := catalog.Oldest(); pair != nil; pair = pair.Next() {
				rows = append(rows, []string{pair.Key, pair.Value})
			}
			return writeTable(out, []string{"GRADIENT", "CSS"}, rows)
		}

		sample := gradientSample{CSS: args[0]}
		if !strings.Contains(args[0], "(") {
			css, err := tokens.Gradient(args[0])
			if err != nil {
				return err
			}
			sample.Name, sample.CSS = args[0], css
		}

		stops, err := tokens.ParseGradient(sample.CSS)
		if err != nil {
			return err
		}
		colors, err := tokens.SampleGradient(sample.CSS, gradientSteps)
		if err != nil {
			return err
		}
		sample.Stops, sample.Colors = stops, colors

		if IsJSONOutput() {
			return writeJSON(out, sample)
		}
		swatches := colorEnabled(out)
		rows := make([][]string, 0, len(colors))
		for i, c := range colors {
			value := c
			if swatches {
				value = exporters.Swatch(c, c)
			}
			rows = append(rows, []string{strconv.Itoa(i + 1), value})
		}
		fmt.Fprintln(out, sample.CSS)
		return writeTable(out, []string{"STEP", "COLOR"}, rows)
	},
}
