package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "report style has cover page rules",
			styleName:   DefaultStyleName,
			wantContain: ".cover-page",
		},
		{
			name:        "report style has page size",
			styleName:   DefaultStyleName,
			wantContain: "size: letter",
		},
		{
			name:        "index style has cards",
			styleName:   IndexStyleName,
			wantContain: ".card",
		},
		{
			name:      "nonexistent style",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "name with dot",
			styleName: "report.css",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) content should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default set", func(t *testing.T) {
		t.Parallel()

		ts, err := loader.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() unexpected error: %v", err)
		}
		if ts.Name != DefaultTemplateSetName {
			t.Errorf("Name = %q, want %q", ts.Name, DefaultTemplateSetName)
		}
		for _, want := range []string{"cover-page", "toc-list", "{{.Body}}"} {
			if !strings.Contains(ts.Document, want) {
				t.Errorf("Document should contain %q", want)
			}
		}
		for _, want := range []string{"download-btn", "{{range .Sections}}"} {
			if !strings.Contains(ts.Index, want) {
				t.Errorf("Index should contain %q", want)
			}
		}
	})

	t.Run("nonexistent set", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplateSet("nonexistent-set-xyz")
		if !errors.Is(err, ErrTemplateSetNotFound) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrTemplateSetNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplateSet("../secret")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestEmbeddedLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*EmbeddedLoader)(nil)
}
