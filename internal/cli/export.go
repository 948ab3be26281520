package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/designkit/internal/exporters"
)

var (
	exportFormat  string
	exportPrefix  string
	exportOutput  string
	exportCompact bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	names := make([]string, 0, len(exporters.Formats()))
	for _, f := range exporters.Formats() {
		names = append(names, string(f))
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: "+strings.Join(names, ", ")+" (default from export.format)")
	exportCmd.Flags().StringVarP(&exportPrefix, "prefix", "p", "", "CSS variable prefix (default from css.prefix)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportCompact, "compact", false, "compact JSON output")
}

var exportCmd = &cobra.Command{
	Use:   "export <theme>",
	Short: "Export a theme",
	Long: `Export a theme's tokens for a target platform.

Examples:
  designkit export tech
  designkit export finance --format ts --output tokens.ts
  designkit export gaming --format w3c-json --compact
  designkit export minimal --format canva`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := exporters.ParseFormat(tokenChoice(exportFormat, app.config.Export.Format))
		if err != nil {
			return err
		}
		theme, err := app.registry.Get(args[0])
		if err != nil {
			return err
		}

		opts := exporters.Options{
			Prefix: tokenChoice(exportPrefix, app.config.CSS.Prefix),
			Pretty: app.config.Export.Pretty && !exportCompact,
		}
		content, err := exporters.Export(theme, format, opts)
		if err != nil {
			return fmt.Errorf("export %s as %s: %w", theme.Key, format, err)
		}
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}

		app.logger.Debug().Str("theme", theme.Key).Str("format", string(format)).Int("bytes", len(content)).Msg("exported theme")

		if exportOutput == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		}

		step := startProgress(cmd.ErrOrStderr(), "Writing "+exportOutput)
		if dir := filepath.Dir(exportOutput); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				step.Fail(err)
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(exportOutput, []byte(content), 0o644); err != nil {
			step.Fail(err)
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		step.Done(fmt.Sprintf("%d bytes", len(content)))
		return nil
	},
}
