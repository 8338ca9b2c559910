package pipeline

import (
	"context"
	"regexp"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessed is the result of preparing a report's markdown for assembly.
type Preprocessed struct {
	Outline  []TOCEntry // headings of the original document, in order
	Markdown string     // markdown without the TOC section and title block
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	Preprocess(ctx context.Context, content string) Preprocessed
}

// ReportPreprocessor extracts the outline and strips the hand-written TOC
// and leading title block, which the cover and TOC pages replace.
type ReportPreprocessor struct{}

// Preprocess extracts the outline from the full document, then strips the
// TOC section followed by the title block.
func (p *ReportPreprocessor) Preprocess(ctx context.Context, content string) Preprocessed {
	if ctx.Err() != nil {
		return Preprocessed{Markdown: content}
	}

	content = normalizeLineEndings(content)
	outline := ExtractOutline(content)

	cleaned := StripTOCSection(content)
	cleaned = StripTitleBlock(cleaned)

	return Preprocessed{Outline: outline, Markdown: cleaned}
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
