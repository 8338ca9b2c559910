package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// ErrIndexRender indicates the index template failed to render.
var ErrIndexRender = errors.New("index template rendering failed")

// SizeUnavailable is shown in place of a size when rendering failed.
const SizeUnavailable = "N/A"

const bytesPerMB = 1024 * 1024

// FormatSize formats an artifact size in megabytes with one decimal place.
// A size of zero, the failure sentinel, formats as SizeUnavailable.
func FormatSize(size int64) string {
	if size <= 0 {
		return SizeUnavailable
	}
	return fmt.Sprintf("%.1f MB", float64(size)/bytesPerMB)
}

// IndexEntry is one produced (or failed) artifact listed on the index page.
type IndexEntry struct {
	Title        string
	Description  string
	Organization string
	Artifact     string // file name relative to the index page
	Size         int64  // 0 = failed
}

// IndexPage holds the fixed copy of the index page.
type IndexPage struct {
	SiteTitle             string
	Period                string // e.g. "February 2026"
	Author                string
	AuthorTitle           string
	Date                  string // compile date in the footer
	Copyright             string // e.g. "2026 Elm Lake Labs"
	PrimaryHeading        string
	SecondaryHeading      string
	SecondaryOrganization string // entries with this exact organization go to the second section
}

// IndexRenderer defines the contract for building the index page.
type IndexRenderer interface {
	Build(entries []IndexEntry) (string, error)
}

type cardView struct {
	Title       string
	Description string
	Artifact    string
	Size        string
}

type sectionView struct {
	Title string
	Cards []cardView
}

type indexView struct {
	IndexPage
	CSS      template.CSS
	Sections []sectionView
}

// IndexBuilder renders the landing page linking every artifact.
type IndexBuilder struct {
	tmpl *template.Template
	css  template.CSS
	page IndexPage
}

// NewIndexBuilder parses the index template.
func NewIndexBuilder(tmplContent, css string, page IndexPage) (*IndexBuilder, error) {
	tmpl, err := template.New("index").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	return &IndexBuilder{
		tmpl: tmpl,
		// #nosec G203 -- stylesheet comes from trusted assets and is sanitized
		css:  template.CSS(sanitizeCSS(css)),
		page: page,
	}, nil
}

// Build renders the index page, primary section first.
func (b *IndexBuilder) Build(entries []IndexEntry) (string, error) {
	primary, secondary := PartitionEntries(entries, b.page.SecondaryOrganization)

	view := indexView{
		IndexPage: b.page,
		CSS:       b.css,
		Sections: []sectionView{
			{Title: b.page.PrimaryHeading, Cards: toCards(primary)},
			{Title: b.page.SecondaryHeading, Cards: toCards(secondary)},
		},
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}

// PartitionEntries splits entries by exact organization match, keeping
// input order inside each bucket.
func PartitionEntries(entries []IndexEntry, secondaryOrg string) (primary, secondary []IndexEntry) {
	for _, e := range entries {
		if e.Organization == secondaryOrg {
			secondary = append(secondary, e)
		} else {
			primary = append(primary, e)
		}
	}
	return primary, secondary
}

func toCards(entries []IndexEntry) []cardView {
	cards := make([]cardView, len(entries))
	for i, e := range entries {
		cards[i] = cardView{
			Title:       e.Title,
			Description: e.Description,
			Artifact:    e.Artifact,
			Size:        FormatSize(e.Size),
		}
	}
	return cards
}

// Compile-time interface check.
var _ IndexRenderer = (*IndexBuilder)(nil)
