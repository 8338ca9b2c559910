package main

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"version", []string{"mdreport", "version"}, ExitSuccess, "mdreport dev", ""},
		{"--version", []string{"mdreport", "--version"}, ExitSuccess, "mdreport dev", ""},
		{"help", []string{"mdreport", "help"}, ExitSuccess, "Commands:", ""},
		{"-h", []string{"mdreport", "-h"}, ExitSuccess, "Commands:", ""},
		{"help build", []string{"mdreport", "help", "build"}, ExitSuccess, "--engine", ""},
		{"help unknown", []string{"mdreport", "help", "nope"}, ExitUsage, "", "unknown command: nope"},
		{"unknown command", []string{"mdreport", "publish"}, ExitUsage, "", "unknown command: publish"},
		{"flags only go to build", []string{"mdreport", "--bogus"}, ExitUsage, "", "unknown flag"},
		{"build flags", []string{"mdreport", "build", "extra"}, ExitUsage, "", "unexpected argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout should contain %q, got: %s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got: %s", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestRunMain_BuildCommand(t *testing.T) {
	t.Parallel()

	cfgPath, _ := writeRun(t, "")
	env, stdout, stderr := testEnv(&stubRenderer{payload: "pdf"})

	code := runMain([]string{"mdreport", "build", "-c", cfgPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Reports (2):") {
		t.Errorf("stdout should contain the summary, got: %s", stdout.String())
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"build"}, false},
		{[]string{"build", "-v"}, true},
		{[]string{"--verbose"}, true},
		{[]string{"build", "-q"}, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
