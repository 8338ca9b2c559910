package mdreport

import "github.com/alnah/go-mdreport/internal/pipeline"

// Option configures a Builder.
type Option func(*Builder)

// WithRenderer sets the artifact renderer. The Builder closes it on Close.
func WithRenderer(r Renderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}

// WithProgress sets the observer notified as each report moves through the build.
func WithProgress(p Progress) Option {
	return func(b *Builder) {
		if p != nil {
			b.progress = p
		}
	}
}

// WithReadFile replaces how report sources are read.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(b *Builder) {
		if fn != nil {
			b.readFile = fn
		}
	}
}

// WithAssembler replaces the document assembler.
func WithAssembler(a pipeline.DocumentAssembler) Option {
	return func(b *Builder) {
		b.assembler = a
	}
}

// WithIndexBuilder replaces the index page builder.
func WithIndexBuilder(ib pipeline.IndexRenderer) Option {
	return func(b *Builder) {
		b.index = ib
	}
}
