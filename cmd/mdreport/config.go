package main

import (
	"fmt"

	"github.com/alnah/go-mdreport/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) int {
	name, err := parseConfigFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	cfg, err := loadConfig(name, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, name))
		return exitCodeFor(err)
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: encoding config: %v\n", err)
		return ExitGeneral
	}
	_, _ = env.Stdout.Write(out)
	return ExitSuccess
}
