package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
	"github.com/alnah/go-mdreport/internal/fileutil"
	"github.com/alnah/go-mdreport/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Renderer rendererInfo `json:"renderer"`
	Output   outputInfo   `json:"output"`
	Sources  []sourceInfo `json:"sources"`
	Env      envInfo      `json:"environment"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// rendererInfo holds renderer detection results.
type rendererInfo struct {
	Engine string `json:"engine"`
	Found  bool   `json:"found"`
	Path   string `json:"path,omitempty"`
}

// outputInfo holds output directory check results.
type outputInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// sourceInfo holds report source check results.
type sourceInfo struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// doctorProbes abstracts renderer lookups for testing.
type doctorProbes struct {
	lookPath   func(file string) (string, error)
	lookChrome func() (string, bool)
}

var defaultProbes = doctorProbes{
	lookPath:   exec.LookPath,
	lookChrome: launcher.LookPath,
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 4 = renderer missing, 1 = other errors.
func runDoctorCmd(args []string, env *Environment) int {
	configName, jsonOutput, err := parseDoctorFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	cfg, err := loadConfig(configName, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configName))
		return exitCodeFor(err)
	}

	result := runDoctor(cfg, defaultProbes)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	switch {
	case !result.Renderer.Found:
		return ExitRenderer
	case result.Status == "errors":
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config, probes doctorProbes) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkRenderer(result, cfg.Renderer, probes)
	checkOutput(result, cfg.OutputDir)
	checkSources(result, cfg.Reports)
	checkEnvironment(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkRenderer detects the configured renderer.
func checkRenderer(result *doctorResult, rc config.RendererConfig, probes doctorProbes) {
	result.Renderer.Engine = rc.Engine

	switch rc.Engine {
	case mdreport.EngineChrome:
		chromePath := result.Env.BrowserBin
		if chromePath == "" {
			var found bool
			chromePath, found = probes.lookChrome()
			if !found {
				result.Errors = append(result.Errors,
					"Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
				return
			}
		}
		result.Renderer.Found = true
		result.Renderer.Path = chromePath
	default:
		path, err := probes.lookPath(rc.Command)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s not found%s", rc.Command, hints.ForRendererNotFound(rc.Command)))
			return
		}
		result.Renderer.Found = true
		result.Renderer.Path = path
	}
}

// checkOutput verifies the output directory, or its nearest existing
// parent, accepts new files.
func checkOutput(result *doctorResult, dir string) {
	result.Output.Dir = dir

	target := dir
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		result.Errors = append(result.Errors, fmt.Sprintf("Output path is not a directory: %s", dir))
		return
	case err == nil:
		result.Output.Exists = true
	default:
		target = existingParent(dir)
	}

	if err := fileutil.CheckWritable(target); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", target))
		return
	}
	result.Output.Writable = true
	if !result.Output.Exists {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Output directory will be created: %s", dir))
	}
}

// existingParent returns the nearest ancestor of dir that exists.
func existingParent(dir string) string {
	p := filepath.Clean(dir)
	for {
		parent := filepath.Dir(p)
		if _, err := os.Stat(parent); err == nil || parent == p {
			return parent
		}
		p = parent
	}
}

// checkSources verifies every report source is readable.
// A missing source aborts the build, so it is an error here.
func checkSources(result *doctorResult, reports []config.ReportConfig) {
	for _, r := range reports {
		found := true
		f, err := os.Open(r.Source)
		if err != nil {
			found = false
			msg := fmt.Sprintf("Report source not readable: %s", r.Source)
			if !errors.Is(err, os.ErrNotExist) {
				msg = fmt.Sprintf("%s (%v)", msg, err)
			}
			result.Errors = append(result.Errors, msg)
		} else {
			_ = f.Close()
		}
		result.Sources = append(result.Sources, sourceInfo{Path: r.Source, Found: found})
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container = hints.IsInContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	// Only Chrome runs sandboxed
	if result.Renderer.Engine == mdreport.EngineChrome &&
		(result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "mdreport doctor")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Renderer (%s)\n", r.Renderer.Engine)
	if r.Renderer.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Renderer.Path)
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	switch {
	case r.Output.Writable && r.Output.Exists:
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Dir)
	case r.Output.Writable:
		fmt.Fprintf(w, "  [OK] %s: will be created\n", r.Output.Dir)
	default:
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sources (%d)\n", len(r.Sources))
	for _, s := range r.Sources {
		if s.Found {
			fmt.Fprintf(w, "  [OK] %s\n", s.Path)
		} else {
			fmt.Fprintf(w, "  [ERROR] %s\n", s.Path)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
