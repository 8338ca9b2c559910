package mdreport

import "github.com/alnah/go-mdreport/internal/pipeline"

// Report describes one Markdown source and its published outputs.
type Report struct {
	Source       string // path to the markdown file
	Title        string
	Subtitle     string
	Organization string
	HTMLName     string // file name under the output directory
	ArtifactName string // file name under the output directory
	Description  string // shown on the index card
}

// Site holds the settings shared by every report of a run.
type Site struct {
	OutputDir   string
	Date        string // cover date and index footer, already formatted
	Author      string
	AuthorTitle string

	// Index page copy.
	SiteTitle             string
	Period                string
	Copyright             string
	PrimaryHeading        string
	SecondaryHeading      string
	SecondaryOrganization string

	// Assets.
	AssetPath   string // custom assets directory (empty = embedded only)
	Style       string // report stylesheet name (empty = "report")
	TemplateSet string // template set name (empty = "default")

	// Markdown.
	HighlightStyle string // chroma style (empty = "github")
	RawHTML        bool
}

// Artifact is a rendered output file.
type Artifact struct {
	Path string
	Size int64
}

// Result is the outcome of publishing one report.
// Size is 0 when the artifact could not be produced.
type Result struct {
	Report       Report
	HTMLPath     string
	ArtifactPath string
	Size         int64
	Err          error // renderer failure, nil on success
}

// Failed reports whether no usable artifact was produced.
func (r Result) Failed() bool {
	return r.Size <= 0
}

// FormatSize returns the artifact size in megabytes, or "N/A" on failure.
func (r Result) FormatSize() string {
	return pipeline.FormatSize(r.Size)
}

// Run is the outcome of a build.
type Run struct {
	Results   []Result // in report order
	IndexPath string
}

// Failures returns the results without a usable artifact.
func (r *Run) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}
