package pipeline

import (
	"regexp"
	"strings"
)

// TOCLevel is the depth of a table of contents entry.
type TOCLevel int

// TOC levels, derived from markdown heading depth.
const (
	LevelMain TOCLevel = iota // "## " headings
	LevelSub                  // "### " headings
)

// String returns "main" or "sub".
func (l TOCLevel) String() string {
	if l == LevelSub {
		return "sub"
	}
	return "main"
}

// TOCEntry is one heading destined for the generated table of contents.
type TOCEntry struct {
	Level TOCLevel
	Title string
}

// tocHeading is the heading of a hand-written table of contents.
// Matched as a prefix of the trimmed line.
const tocHeading = "## Table of Contents"

// markdownLink matches [label](url) so headings keep only the label.
var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)

// ExtractOutline returns the level-2 and level-3 headings of content in
// document order. The hand-written "Table of Contents" heading is skipped.
// Fenced code is not special-cased: a "## " line inside a fence counts.
func ExtractOutline(content string) []TOCEntry {
	var entries []TOCEntry
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "## ") && !strings.HasPrefix(line, tocHeading):
			entries = append(entries, TOCEntry{Level: LevelMain, Title: headingText(line)})
		case strings.HasPrefix(line, "### "):
			entries = append(entries, TOCEntry{Level: LevelSub, Title: headingText(line)})
		}
	}
	return entries
}

// headingText strips the leading hashes and any link syntax from a heading line.
func headingText(line string) string {
	title := strings.TrimSpace(strings.TrimLeft(line, "#"))
	return markdownLink.ReplaceAllString(title, "$1")
}
