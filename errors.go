package mdreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for build operations.
var (
	ErrNoReports        = errors.New("no reports configured")
	ErrOutputDir        = errors.New("cannot create output directory")
	ErrReadMarkdown     = errors.New("cannot read report source")
	ErrWriteHTML        = errors.New("cannot write HTML document")
	ErrWriteIndex       = errors.New("cannot write index page")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrUnknownEngine    = errors.New("unknown renderer engine")

	// Renderer failures, recorded per report.
	ErrRendererExit   = errors.New("renderer exited with non-zero status")
	ErrRendererInvoke = errors.New("renderer could not be invoked")
)

// RenderError describes a failed artifact render.
// Err is ErrRendererExit or ErrRendererInvoke.
type RenderError struct {
	Err        error
	Diagnostic string // truncated stderr, or the invocation failure
}

func (e *RenderError) Error() string {
	if e.Diagnostic == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Diagnostic)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
