// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-mdreport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for Chrome launch and connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForRendererNotFound returns a hint for a renderer command missing from PATH.
func ForRendererNotFound(command string) string {
	if command == "weasyprint" {
		return format("install WeasyPrint (pip install weasyprint) or use --engine chrome")
	}
	return format("check renderer.command, " + command + " must be in PATH or an absolute path")
}

// ForTimeout returns a hint about increasing the per-report render timeout.
func ForTimeout() string {
	return format("for large reports, raise renderer.timeout or use --timeout")
}

// ForConfigNotFound suggests --config and the user config location among
// the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-mdreport/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or use --output")
}

// ForReportSource returns hints for unreadable markdown sources.
func ForReportSource() string {
	return format("check reports[].source in the config; relative paths resolve from the working directory")
}

// ForTemplate returns hints for custom template failures.
func ForTemplate() string {
	return format("compare assets.basePath templates with the built-in default set")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
