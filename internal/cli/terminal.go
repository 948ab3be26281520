package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled reports whether swatches may be written to out.
func colorEnabled(out io.Writer) bool {
	if noColor || IsJSONOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTTY(out)
}

func isTTY(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
