package assets

// TemplateSet holds the HTML templates used to publish a report run.
type TemplateSet struct {
	Name     string // name or directory
	Document string // per-report document (cover, TOC, content)
	Index    string // landing page linking every artifact
}

// Built-in asset names.
const (
	DefaultTemplateSetName = "default"
	DefaultStyleName       = "report"
	IndexStyleName         = "index"
)

// Template file names inside a template set directory.
const (
	documentFile = "document.html"
	indexFile    = "index.html"
)
