package pipeline

import "strings"

// scanState is the state of the line scanners below.
type scanState int

const (
	scanning scanState = iota
	skippingTOC
	skippingMetadata
	// passthrough means the title block has been handled and every
	// remaining line is kept.
	passthrough
)

// divider is a markdown thematic break used around title and TOC blocks.
const divider = "---"

// StripTOCSection removes a hand-written "## Table of Contents" section.
//
// Skipping starts at the TOC heading and stops at the next "## " heading or
// level-1 heading (kept), or at a "---" line (dropped). A "### " heading does
// not stop skipping.
func StripTOCSection(content string) string {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	state := scanning

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, tocHeading) {
			state = skippingTOC
			continue
		}

		if state == skippingTOC {
			switch {
			case endsTOCSection(trimmed):
				state = scanning
				kept = append(kept, line)
			case trimmed == divider:
				state = scanning
			}
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// endsTOCSection reports whether a trimmed line terminates TOC skipping.
func endsTOCSection(trimmed string) bool {
	if strings.HasPrefix(trimmed, "## ") {
		return true
	}
	return strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "##")
}

// StripTitleBlock removes the first level-1 heading and the run of blank,
// italic ("*"-prefixed) and "---" lines right after it. The first line that
// is none of those is kept unchanged, along with everything that follows.
func StripTitleBlock(content string) string {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	state := scanning

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch state {
		case scanning:
			if isTitleHeading(trimmed) {
				state = skippingMetadata
				continue
			}
		case skippingMetadata:
			if isMetadataLine(trimmed) {
				continue
			}
			state = passthrough
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func isTitleHeading(trimmed string) bool {
	return strings.HasPrefix(trimmed, "# ") && !strings.HasPrefix(trimmed, "## ")
}

func isMetadataLine(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, "*") || trimmed == divider
}
