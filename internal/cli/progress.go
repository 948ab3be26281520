package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// progressStep prints "label... done (12ms)" on a terminal stderr. A nil
// step is silent.
type progressStep struct {
	out     io.Writer
	started time.Time
}

func startProgress(out io.Writer, label string) *progressStep {
	if !progressEnabled(out) {
		return nil
	}
	fmt.Fprintf(out, "%s... ", label)
	return &progressStep{out: out, started: time.Now()}
}

func (p *progressStep) Done(detail string) {
	if p == nil {
		return
	}
	if detail != "" {
		fmt.Fprintf(p.out, "done, %s (%s)\n", detail, formatDuration(time.Since(p.started)))
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatDuration(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

func progressEnabled(out io.Writer) bool {
	if IsJSONOutput() {
		return false
	}
	if _, ok := os.LookupEnv("DESIGNKIT_NO_PROGRESS"); ok {
		return false
	}
	return isTTY(out)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
