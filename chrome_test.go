package mdreport

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	opts := buildPDFOptions()

	if opts.PaperWidth == nil || *opts.PaperWidth != 8.5 {
		t.Errorf("PaperWidth = %v, want 8.5", opts.PaperWidth)
	}
	if opts.PaperHeight == nil || *opts.PaperHeight != 11 {
		t.Errorf("PaperHeight = %v, want 11", opts.PaperHeight)
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be true")
	}
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should be true")
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "absolute", path: "/tmp/out/report.html", want: "file:///tmp/out/report.html"},
		{name: "space escaped", path: "/tmp/my reports/a.html", want: "file:///tmp/my%20reports/a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileURL(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("fileURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	t.Run("relative made absolute", func(t *testing.T) {
		t.Parallel()

		got, err := fileURL("out/report.html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(got, "file:///") || !strings.HasSuffix(got, "/out/report.html") {
			t.Errorf("fileURL = %q, want absolute file URL", got)
		}
	})
}

func TestWriteStream(t *testing.T) {
	t.Parallel()

	t.Run("writes content and returns size", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.pdf")
		n, err := writeStream(path, bytes.NewReader([]byte("%PDF-1.7")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 8 {
			t.Errorf("size = %d, want 8", n)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "%PDF-1.7" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("failed copy removes partial file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.pdf")
		_, err := writeStream(path, &failingReader{})
		if err == nil {
			t.Fatal("expected error")
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("partial artifact should be removed")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.pdf")
		if _, err := writeStream(path, bytes.NewReader(nil)); err == nil {
			t.Fatal("expected error")
		}
	})
}

type failingReader struct{ read bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, "partial"), nil
	}
	return 0, errors.New("stream reset")
}

func TestChromeRenderer_CloseWithoutLaunch(t *testing.T) {
	t.Parallel()

	r := NewChromeRenderer(time.Second)
	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestNewChromeRenderer_DefaultTimeout(t *testing.T) {
	t.Parallel()

	if r := NewChromeRenderer(0); r.timeout != DefaultRenderTimeout {
		t.Errorf("timeout = %v, want %v", r.timeout, DefaultRenderTimeout)
	}
}
