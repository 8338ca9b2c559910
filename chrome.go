package mdreport

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-mdreport/internal/fileutil"
)

// PDF page dimensions in inches (US Letter format).
// Margins come from the stylesheet's @page rule.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
)

// ChromeRenderer renders artifacts with headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
// The browser is launched on first use and reused until Close.
type ChromeRenderer struct {
	timeout  time.Duration
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewChromeRenderer creates a ChromeRenderer with the given per-render timeout.
func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	return &ChromeRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *ChromeRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Render opens the HTML file in a new tab and prints it to artifactPath.
func (r *ChromeRenderer) Render(ctx context.Context, htmlPath, artifactPath string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, &RenderError{Err: ErrRendererInvoke, Diagnostic: err.Error()}
	}

	if err := r.ensureBrowser(); err != nil {
		return Artifact{}, &RenderError{Err: ErrRendererInvoke, Diagnostic: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	target, err := fileURL(htmlPath)
	if err != nil {
		return Artifact{}, &RenderError{Err: ErrRendererInvoke, Diagnostic: err.Error()}
	}

	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return Artifact{}, r.pageError(ctx, "creating page", err)
	}
	defer func() { _ = page.Close() }()

	if err := page.WaitLoad(); err != nil {
		return Artifact{}, r.pageError(ctx, "loading page", err)
	}

	stream, err := page.PDF(buildPDFOptions())
	if err != nil {
		return Artifact{}, r.pageError(ctx, "printing page", err)
	}

	size, err := writeStream(artifactPath, stream)
	if err != nil {
		return Artifact{}, r.pageError(ctx, "writing artifact", err)
	}
	return Artifact{Path: artifactPath, Size: size}, nil
}

// pageError converts a browser failure, reporting deadline overruns as timeouts.
func (r *ChromeRenderer) pageError(ctx context.Context, step string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return &RenderError{
			Err:        ErrRendererInvoke,
			Diagnostic: fmt.Sprintf("timed out after %s", r.timeout),
		}
	}
	return &RenderError{Err: ErrRendererInvoke, Diagnostic: fmt.Sprintf("%s: %v", step, err)}
}

// Close releases browser resources and stops the browser process.
func (r *ChromeRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher.Cleanup()
		r.launcher = nil
	}
	return err
}

// buildPDFOptions prints US Letter with backgrounds, letting the
// stylesheet's @page rule take precedence.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// writeStream copies the PDF stream to path, removing the file on failure.
func writeStream(path string, stream io.Reader) (int64, error) {
	// #nosec G304 -- artifact path is built from the configured output directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileutil.FilePerm)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, stream)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return n, nil
}

// fileURL converts a local path to an absolute file:// URL.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// Compile-time interface check.
var _ Renderer = (*ChromeRenderer)(nil)
