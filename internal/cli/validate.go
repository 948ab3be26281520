package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/designkit/internal/exporters"
	"github.com/opencode-ai/designkit/internal/themes"
	"github.com/opencode-ai/designkit/internal/tokens"
)

var errChecksFailed = errors.New("validation failed")

func init() {
	rootCmd.AddCommand(validateCmd)
}

// checkResult is one row of `designkit validate`.
type checkResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func newCheck(name string, err error) checkResult {
	r := checkResult{Name: name, OK: err == nil}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

var validateCmd = &cobra.Command{
	Use:   "validate [theme-file...]",
	Short: "Check the token catalog and themes",
	Long: `Without arguments, check the token catalog's internal consistency and
export every registered theme in every format. With arguments, check the
given theme files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []checkResult
		if len(args) > 0 {
			results = validateFiles(args)
		} else {
			results = validateRegistry(app.registry)
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, r := range results {
			if !r.OK {
				failed++
			}
		}
		if IsJSONOutput() {
			if err := writeJSON(out, results); err != nil {
				return err
			}
		} else {
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				var err error
				if !r.OK {
					err = errors.New(r.Error)
				}
				rows = append(rows, []string{formatCheck(out, err), r.Name, r.Error})
			}
			if err := writeTable(out, []string{"STATUS", "CHECK", "DETAIL"}, rows); err != nil {
				return err
			}
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d checks", errChecksFailed, failed, len(results))
		}
		return nil
	},
}

func validateFiles(paths []string) []checkResult {
	results := make([]checkResult, 0, len(paths))
	for _, path := range paths {
		cfg, err := themes.LoadTheme(path)
		if err == nil {
			_, err = themes.Resolve(cfg)
		}
		results = append(results, newCheck(path, err))
	}
	return results
}

func validateRegistry(registry *themes.Registry) []checkResult {
	results := []checkResult{newCheck("tokens", tokens.Validate())}
	for _, key := range registry.Keys() {
		theme, err := registry.Get(key)
		if err == nil {
			err = exportAll(theme)
		}
		results = append(results, newCheck("theme "+key, err))
	}
	return results
}

func exportAll(theme *themes.Resolved) error {
	var errs []error
	for _, format := range exporters.Formats() {
		if _, err := exporters.Export(theme, format, exporters.Options{Pretty: true}); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", format, err))
		}
	}
	if _, err := exporters.BuildStyles(theme); err != nil {
		errs = append(errs, fmt.Errorf("styles: %w", err))
	}
	return errors.Join(errs...)
}
