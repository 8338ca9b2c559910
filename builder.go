package mdreport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdreport/internal/assets"
	"github.com/alnah/go-mdreport/internal/fileutil"
	"github.com/alnah/go-mdreport/internal/pipeline"
)

// IndexFileName is the name of the landing page under the output directory.
const IndexFileName = "index.html"

// Builder publishes a run of reports. Create with NewBuilder, call Run,
// and Close when done.
type Builder struct {
	site      Site
	reports   []Report
	assembler pipeline.DocumentAssembler
	index     pipeline.IndexRenderer
	renderer  Renderer
	progress  Progress
	readFile  func(string) ([]byte, error)
}

// NewBuilder loads the stylesheet and template set named by site and
// prepares the document and index builders. Without WithRenderer, artifacts
// are rendered by WeasyPrint.
func NewBuilder(site Site, reports []Report, opts ...Option) (*Builder, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	b := &Builder{
		site:     site,
		reports:  reports,
		progress: nopProgress{},
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.assembler == nil || b.index == nil {
		if err := b.loadPipeline(); err != nil {
			return nil, err
		}
	}
	if b.renderer == nil {
		b.renderer = NewCommandRenderer(EngineWeasyPrint, DefaultRenderTimeout)
	}
	return b, nil
}

// loadPipeline builds whichever of the assembler and index builder was not
// injected, from the configured assets.
func (b *Builder) loadPipeline() error {
	resolver, err := assets.NewAssetResolver(b.site.AssetPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	templateSet, err := resolver.LoadTemplateSet(orDefault(b.site.TemplateSet, assets.DefaultTemplateSetName))
	if err != nil {
		return fmt.Errorf("loading template set: %w", err)
	}

	if b.assembler == nil {
		style, err := resolver.LoadStyle(orDefault(b.site.Style, assets.DefaultStyleName))
		if err != nil {
			return fmt.Errorf("loading report style: %w", err)
		}

		converter := pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
			HighlightStyle: b.site.HighlightStyle,
			RawHTML:        b.site.RawHTML,
		})
		highlight, err := converter.HighlightCSS()
		if err != nil {
			return err
		}

		cover := pipeline.CoverMeta{Date: b.site.Date, Author: b.site.Author}
		b.assembler, err = pipeline.NewAssembler(templateSet.Document, style+"\n"+highlight, cover, converter)
		if err != nil {
			return fmt.Errorf("initializing document assembler: %w", err)
		}
	}

	if b.index == nil {
		style, err := resolver.LoadStyle(assets.IndexStyleName)
		if err != nil {
			return fmt.Errorf("loading index style: %w", err)
		}

		b.index, err = pipeline.NewIndexBuilder(templateSet.Index, style, b.indexPage())
		if err != nil {
			return fmt.Errorf("initializing index builder: %w", err)
		}
	}
	return nil
}

func (b *Builder) indexPage() pipeline.IndexPage {
	return pipeline.IndexPage{
		SiteTitle:             b.site.SiteTitle,
		Period:                b.site.Period,
		Author:                b.site.Author,
		AuthorTitle:           b.site.AuthorTitle,
		Date:                  b.site.Date,
		Copyright:             b.site.Copyright,
		PrimaryHeading:        b.site.PrimaryHeading,
		SecondaryHeading:      b.site.SecondaryHeading,
		SecondaryOrganization: b.site.SecondaryOrganization,
	}
}

// Run publishes every report in order, then writes the index page.
// A renderer failure is recorded on the report's Result and the run goes on.
// Read and write failures abort the run; the returned Run then holds the
// results completed so far.
func (b *Builder) Run(ctx context.Context) (*Run, error) {
	run := &Run{Results: make([]Result, 0, len(b.reports))}

	if err := fileutil.EnsureDir(b.site.OutputDir); err != nil {
		return run, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	for _, report := range b.reports {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		result, err := b.publish(ctx, report)
		if err != nil {
			return run, err
		}
		run.Results = append(run.Results, result)
	}

	indexPath, err := b.writeIndex(run.Results)
	if err != nil {
		return run, err
	}
	run.IndexPath = indexPath
	return run, nil
}

// publish writes one report's document and renders its artifact.
func (b *Builder) publish(ctx context.Context, report Report) (Result, error) {
	b.progress.ReportStarted(report)

	source, err := b.readFile(report.Source)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrReadMarkdown, report.Source, err)
	}

	document, err := b.assembler.Assemble(ctx, pipeline.DocumentData{
		Title:        report.Title,
		Subtitle:     report.Subtitle,
		Organization: report.Organization,
		Markdown:     string(source),
		SourceDir:    filepath.Dir(report.Source),
	})
	if err != nil {
		return Result{}, fmt.Errorf("assembling %q: %w", report.Title, err)
	}

	result := Result{
		Report:       report,
		HTMLPath:     filepath.Join(b.site.OutputDir, report.HTMLName),
		ArtifactPath: filepath.Join(b.site.OutputDir, report.ArtifactName),
	}

	if err := fileutil.WriteFile(result.HTMLPath, document); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrWriteHTML, result.HTMLPath, err)
	}
	b.progress.HTMLWritten(report, result.HTMLPath)

	artifact, err := b.renderer.Render(ctx, result.HTMLPath, result.ArtifactPath)
	if err != nil {
		result.Err = err
		b.progress.ArtifactFailed(report, err)
		return result, nil
	}

	result.Size = artifact.Size
	b.progress.ArtifactRendered(report, artifact)
	return result, nil
}

func (b *Builder) writeIndex(results []Result) (string, error) {
	entries := make([]pipeline.IndexEntry, len(results))
	for i, r := range results {
		entries[i] = pipeline.IndexEntry{
			Title:        r.Report.Title,
			Description:  r.Report.Description,
			Organization: r.Report.Organization,
			Artifact:     r.Report.ArtifactName,
			Size:         r.Size,
		}
	}

	page, err := b.index.Build(entries)
	if err != nil {
		return "", fmt.Errorf("building index: %w", err)
	}

	path := filepath.Join(b.site.OutputDir, IndexFileName)
	if err := fileutil.WriteFile(path, page); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteIndex, path, err)
	}
	b.progress.IndexWritten(path)
	return path, nil
}

// Close releases renderer resources.
func (b *Builder) Close() error {
	if b.renderer != nil {
		return b.renderer.Close()
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
