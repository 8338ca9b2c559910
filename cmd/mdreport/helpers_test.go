package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2026, time.February, 14, 9, 30, 0, 0, time.UTC)

// stubRenderer writes a fixed payload, or fails for configured artifact names.
type stubRenderer struct {
	payload string
	failFor map[string]error
	engine  string
	opts    mdreport.RendererOptions
	closed  bool
}

func (s *stubRenderer) Render(ctx context.Context, htmlPath, artifactPath string) (mdreport.Artifact, error) {
	if err, ok := s.failFor[filepath.Base(artifactPath)]; ok {
		return mdreport.Artifact{}, err
	}
	if err := os.WriteFile(artifactPath, []byte(s.payload), 0o644); err != nil {
		return mdreport.Artifact{}, err
	}
	return mdreport.Artifact{Path: artifactPath, Size: int64(len(s.payload))}, nil
}

func (s *stubRenderer) Close() error {
	s.closed = true
	return nil
}

// testEnv returns an environment writing to buffers with the given renderer.
func testEnv(r *stubRenderer) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:        func() time.Time { return fixedNow },
		Stdout:     &stdout,
		Stderr:     &stderr,
		LoadConfig: config.LoadConfig,
		NewRenderer: func(engine string, opts mdreport.RendererOptions) (mdreport.Renderer, error) {
			if r == nil {
				return mdreport.NewRenderer(engine, opts)
			}
			r.engine = engine
			r.opts = opts
			return r, nil
		},
	}
	return env, &stdout, &stderr
}

// writeRun creates two report sources and a config file listing them.
// Returns the config path and the output directory.
func writeRun(t *testing.T, extra string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "site")

	for _, name := range []string{"alpha", "beta"} {
		content := "# " + name + "\n---\n## Table of Contents\n- x\n---\n## Findings\nAbout " + name + "\n"
		if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644); err != nil {
			t.Fatalf("writing source: %v", err)
		}
	}

	cfg := strings.Join([]string{
		"outputDir: " + outDir,
		"date: auto",
		"index:",
		"  period: auto:month",
		"  secondaryOrganization: Partner Co",
		"reports:",
		"  - source: " + filepath.Join(dir, "alpha.md"),
		"    title: Alpha Report",
		"    organization: Lab",
		"    htmlName: alpha.html",
		"    artifactName: alpha.pdf",
		"  - source: " + filepath.Join(dir, "beta.md"),
		"    title: Beta Report",
		"    organization: Partner Co",
		"    htmlName: beta.html",
		"    artifactName: beta.pdf",
	}, "\n") + "\n" + extra

	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path, outDir
}
