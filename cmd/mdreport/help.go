package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdreport [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Publish the configured reports (default)")
	fmt.Fprintln(w, "  doctor     Check the renderer, output directory and sources")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdreport help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdreport build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publish every configured report as HTML and PDF, then write index.html.")
	fmt.Fprintln(w, "A failed PDF is reported in the summary; the build goes on.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: built-in run)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -e, --engine <s>          Renderer: weasyprint, chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-report render timeout (e.g. 2m, 90s)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and the summary")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config dates accept \"auto\", \"auto:FORMAT\", or a literal.")
	fmt.Fprintln(w, "  Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "  Presets (case-insensitive): iso, european, us, long, month")
	fmt.Fprintln(w, "  Use [text] to escape literals: [Week of] MMMM D")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary for --engine chrome")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdreport doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a build can run: renderer, output directory, report sources.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Output JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ready, 1 errors, 4 renderer not found.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdreport config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML, built-in defaults merged")
	fmt.Fprintln(w, "with the config file. Use the output as a starting point for a file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printVersionUsage prints usage for the version command.
func printVersionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdreport version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show version information.")
}

// runHelpCmd prints general or command-specific help.
func runHelpCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		printVersionUsage(env.Stdout)
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
