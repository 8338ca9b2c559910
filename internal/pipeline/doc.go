// Package pipeline turns report markdown into publishable HTML.
//
// Stages, in the order a report goes through them:
//   - Preprocessing: outline (TOC entry) extraction, removal of a
//     hand-written "Table of Contents" section and of the leading title block
//   - Markdown to HTML fragment conversion via goldmark (tables, highlighted
//     fenced code, heading anchors, smart punctuation)
//   - Document assembly: cover page, generated TOC and content in one
//     html/template document with the print stylesheet embedded
//
// The index page linking every artifact is built by IndexBuilder.
// PDF rendering happens outside this package, in the root mdreport package.
package pipeline
