package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrDocumentRender indicates the document template failed to render.
var ErrDocumentRender = errors.New("document template rendering failed")

// CoverMeta holds the fixed metadata printed on every cover page.
type CoverMeta struct {
	Date   string // e.g. "February 14, 2026"
	Author string // "Prepared by"
}

// DocumentData holds the per-report input of the assembler.
type DocumentData struct {
	Title        string
	Subtitle     string
	Organization string
	Markdown     string
	SourceDir    string // directory of the markdown file, for relative images
}

// DocumentAssembler defines the contract for building a complete report document.
type DocumentAssembler interface {
	Assemble(ctx context.Context, data DocumentData) (string, error)
}

// tocItem is the template view of a TOCEntry.
type tocItem struct {
	Title string
	Sub   bool
}

// documentView is the data the document template renders.
type documentView struct {
	Title        string
	Subtitle     string
	Organization string
	Date         string
	Author       string
	CSS          template.CSS
	TOC          []tocItem
	Body         template.HTML
}

// Assembler combines the preprocessed report, its HTML conversion and the
// cover metadata into a standalone HTML document.
type Assembler struct {
	tmpl         *template.Template
	css          template.CSS
	cover        CoverMeta
	preprocessor MarkdownPreprocessor
	converter    HTMLConverter
}

// NewAssembler parses the document template. The stylesheet is sanitized
// once here and embedded in every document.
func NewAssembler(tmplContent, css string, cover CoverMeta, converter HTMLConverter) (*Assembler, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}

	return &Assembler{
		tmpl: tmpl,
		// #nosec G203 -- stylesheet comes from trusted assets and is sanitized
		css:          template.CSS(sanitizeCSS(css)),
		cover:        cover,
		preprocessor: &ReportPreprocessor{},
		converter:    converter,
	}, nil
}

// Assemble builds the document for one report.
// Title, subtitle, organization and TOC text are escaped by html/template;
// the converted markdown is embedded as-is.
func (a *Assembler) Assemble(ctx context.Context, data DocumentData) (string, error) {
	pre := a.preprocessor.Preprocess(ctx, data.Markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := a.converter.ToHTML(ctx, pre.Markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	body, err = ResolveImagePaths(body, data.SourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving image paths: %w", err)
	}

	view := documentView{
		Title:        data.Title,
		Subtitle:     data.Subtitle,
		Organization: data.Organization,
		Date:         a.cover.Date,
		Author:       a.cover.Author,
		CSS:          a.css,
		TOC:          toTOCItems(pre.Outline),
		// #nosec G203 -- goldmark output, raw HTML omitted unless enabled
		Body: template.HTML(body),
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

func toTOCItems(entries []TOCEntry) []tocItem {
	items := make([]tocItem, len(entries))
	for i, e := range entries {
		items[i] = tocItem{Title: e.Title, Sub: e.Level == LevelSub}
	}
	return items
}

// sanitizeCSS escapes sequences that could close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ DocumentAssembler = (*Assembler)(nil)
