package mdreport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/alnah/go-mdreport/internal/fileutil"
	"github.com/alnah/go-mdreport/internal/process"
)

// Renderer engines.
const (
	EngineWeasyPrint = "weasyprint"
	EngineChrome     = "chrome"
)

// DefaultRenderTimeout bounds a single artifact render.
const DefaultRenderTimeout = 120 * time.Second

// maxDiagnosticLength caps the renderer stderr kept on a failed Result.
const maxDiagnosticLength = 200

// Renderer turns a standalone HTML document into a print artifact.
// Render must not modify htmlPath. Close releases any long-lived resources.
type Renderer interface {
	Render(ctx context.Context, htmlPath, artifactPath string) (Artifact, error)
	Close() error
}

// RendererOptions configures NewRenderer.
type RendererOptions struct {
	Command string        // executable for command engines (empty = "weasyprint")
	Timeout time.Duration // per render (0 = DefaultRenderTimeout)
}

// NewRenderer creates the renderer for engine.
func NewRenderer(engine string, opts RendererOptions) (Renderer, error) {
	switch engine {
	case EngineWeasyPrint, "":
		command := opts.Command
		if command == "" {
			command = EngineWeasyPrint
		}
		return NewCommandRenderer(command, opts.Timeout), nil
	case EngineChrome:
		return NewChromeRenderer(opts.Timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
// A non-zero exit is reported through exitCode with a nil error; err is
// reserved for commands that could not be started or were stopped by ctx.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, exitCode int, err error)
}

// ExecRunner implements CommandRunner using os/exec.
// The command runs in its own process group, killed as a whole when ctx is done.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	cmd := exec.Command(name, args...) // #nosec G204 -- renderer command comes from config
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	process.SetNewGroup(cmd)

	if err := cmd.Start(); err != nil {
		return "", 0, fmt.Errorf("starting %s: %w", name, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err == nil {
			return stderr.String(), 0, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stderr.String(), exitErr.ExitCode(), nil
		}
		return stderr.String(), 0, err
	case <-ctx.Done():
		process.KillProcessGroup(cmd.Process.Pid)
		<-done
		return stderr.String(), 0, ctx.Err()
	}
}

// CommandRenderer renders artifacts by invoking an external program as
// `command <html> <artifact>`, WeasyPrint's calling convention.
type CommandRenderer struct {
	Command string
	Timeout time.Duration
	Runner  CommandRunner
}

// NewCommandRenderer creates a CommandRenderer with a real command runner.
func NewCommandRenderer(command string, timeout time.Duration) *CommandRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	return &CommandRenderer{
		Command: command,
		Timeout: timeout,
		Runner:  &ExecRunner{},
	}
}

// Render runs the command and measures the produced artifact.
func (r *CommandRenderer) Render(ctx context.Context, htmlPath, artifactPath string) (Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	stderr, code, err := r.Runner.Run(ctx, r.Command, htmlPath, artifactPath)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Artifact{}, &RenderError{
				Err:        ErrRendererInvoke,
				Diagnostic: fmt.Sprintf("timed out after %s", r.Timeout),
			}
		}
		return Artifact{}, &RenderError{Err: ErrRendererInvoke, Diagnostic: err.Error()}
	}
	if code != 0 {
		return Artifact{}, &RenderError{Err: ErrRendererExit, Diagnostic: truncate(stderr, maxDiagnosticLength)}
	}

	size, err := fileutil.FileSize(artifactPath)
	if err != nil {
		return Artifact{}, &RenderError{
			Err:        ErrRendererInvoke,
			Diagnostic: fmt.Sprintf("measuring artifact: %v", err),
		}
	}
	return Artifact{Path: artifactPath, Size: size}, nil
}

// Close is a no-op: each render is a separate process.
func (r *CommandRenderer) Close() error {
	return nil
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Compile-time interface checks.
var (
	_ Renderer      = (*CommandRenderer)(nil)
	_ CommandRunner = (*ExecRunner)(nil)
)
