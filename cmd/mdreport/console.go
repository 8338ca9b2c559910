package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	mdreport "github.com/alnah/go-mdreport"
)

// console reports build progress: per-report lines on stdout, render
// failures on stderr, and the final summary.
type console struct {
	stdout  io.Writer
	stderr  io.Writer
	quiet   bool
	verbose bool
	command string

	ok   *color.Color
	fail *color.Color
	dim  *color.Color
}

func newConsole(env *Environment, flags commonFlags, command string) *console {
	c := &console{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		quiet:   flags.quiet,
		verbose: flags.verbose,
		command: command,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	if env.Color {
		c.ok.EnableColor()
		c.fail.EnableColor()
		c.dim.EnableColor()
	} else {
		c.ok.DisableColor()
		c.fail.DisableColor()
		c.dim.DisableColor()
	}
	return c
}

func (c *console) verbosef(format string, args ...any) {
	if c.verbose {
		fmt.Fprintf(c.stderr, format, args...)
	}
}

func (c *console) ReportStarted(r mdreport.Report) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.stdout, "Building %s...\n", r.Title)
	c.verbosef("  source: %s\n", r.Source)
}

func (c *console) HTMLWritten(r mdreport.Report, path string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.stdout, "  %s HTML: %s\n", c.ok.Sprint("✓"), path)
}

func (c *console) ArtifactRendered(r mdreport.Report, a mdreport.Artifact) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.stdout, "  %s PDF: %s %s\n", c.ok.Sprint("✓"), a.Path, c.dim.Sprintf("(%.1f MB)", float64(a.Size)/(1024*1024)))
}

func (c *console) ArtifactFailed(r mdreport.Report, err error) {
	fmt.Fprintf(c.stderr, "  %s PDF error: %v%s\n", c.fail.Sprint("✗"), strings.TrimSpace(err.Error()), renderHint(err, c.command))
}

func (c *console) IndexWritten(path string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.stdout, "\n%s Index: %s\n", c.ok.Sprint("✓"), path)
}

// summary lists every report in order with its size or a failure marker.
func (c *console) summary(run *mdreport.Run, elapsed time.Duration) {
	fmt.Fprintf(c.stdout, "\nReports (%d):\n", len(run.Results))
	for _, res := range run.Results {
		if res.Failed() {
			fmt.Fprintf(c.stdout, "  %s %s\n", res.Report.Title, c.fail.Sprint("(FAILED)"))
			continue
		}
		fmt.Fprintf(c.stdout, "  %s (%s)\n", res.Report.Title, res.FormatSize())
	}

	if failed := len(run.Failures()); failed > 0 {
		fmt.Fprintf(c.stdout, "\n%d of %d artifacts failed\n", failed, len(run.Results))
	}
	c.verbosef("Done in %s\n", elapsed.Round(time.Millisecond))
}

var _ mdreport.Progress = (*console)(nil)
