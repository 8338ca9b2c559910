// Package mdreport publishes a fixed set of Markdown reports as styled HTML
// documents and print-ready PDF artifacts, plus an index page linking them.
//
// # Quick Start
//
// Describe the site and its reports, build, and close when done:
//
//	b, err := mdreport.NewBuilder(mdreport.Site{
//	    OutputDir: "out",
//	    Date:      "February 14, 2026",
//	    Author:    "Henry Clawson",
//	}, []mdreport.Report{{
//	    Source:       "notes/roadmap.md",
//	    Title:        "Roadmap",
//	    HTMLName:     "roadmap.html",
//	    ArtifactName: "roadmap.pdf",
//	}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	run, err := b.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range run.Results {
//	    fmt.Println(r.Report.Title, r.FormatSize())
//	}
//
// # Build Pipeline
//
// Each report goes through these stages, strictly in order:
//
//  1. Outline extraction from level 2 and 3 headings
//  2. Removal of the hand-written TOC section and leading title block
//  3. Markdown to HTML conversion via Goldmark (tables, highlighting)
//  4. Document assembly (cover page, TOC page, content, print CSS)
//  5. Artifact rendering by an external renderer (WeasyPrint or Chrome)
//
// A renderer failure is recorded on the report's Result and the build goes
// on. Source read and output write failures abort the run.
//
// # Renderers
//
// WithRenderer selects how artifacts are produced. NewRenderer builds one
// from an engine name:
//
//	r, err := mdreport.NewRenderer(mdreport.EngineChrome, mdreport.RendererOptions{
//	    Timeout: 2 * time.Minute,
//	})
package mdreport
