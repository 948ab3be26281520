package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/opencode-ai/designkit/internal/cli.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the designkit version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return writeJSON(out, map[string]string{
				"version": Version,
				"commit":  Commit,
				"go":      runtime.Version(),
			})
		}
		_, err := fmt.Fprintf(out, "designkit %s (%s, %s)\n", Version, Commit, runtime.Version())
		return err
	},
}
