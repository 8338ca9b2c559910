package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	engine  string
	timeout time.Duration
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and the summary")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseBuildFlags parses build command arguments. Positional arguments are rejected.
func parseBuildFlags(args []string) (*buildFlags, error) {
	f := &buildFlags{}

	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.engine, "engine", "e", "", "renderer engine: weasyprint, chrome")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "per-report render timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	if f.timeout < 0 {
		return nil, fmt.Errorf("%w: --timeout must be positive", ErrUsage)
	}
	return f, nil
}

// parseConfigFlags parses config command arguments.
func parseConfigFlags(args []string) (string, error) {
	var name string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&name, "config", "c", "", "config file name or path")

	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return name, nil
}

// parseDoctorFlags parses doctor command arguments.
func parseDoctorFlags(args []string) (configName string, jsonOutput bool, err error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&configName, "config", "c", "", "config file name or path")
	fs.BoolVar(&jsonOutput, "json", false, "output JSON")

	if err := fs.Parse(args); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return "", false, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return configName, jsonOutput, nil
}
