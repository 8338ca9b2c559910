package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/assets"
	"github.com/alnah/go-mdreport/internal/config"
	"github.com/alnah/go-mdreport/internal/dateutil"
	"github.com/alnah/go-mdreport/internal/hints"
)

// runBuildCmd executes the build command and returns an exit code.
func runBuildCmd(args []string, env *Environment) int {
	flags, err := parseBuildFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printBuildUsage(env.Stderr)
		return ExitUsage
	}

	if err := runBuild(context.Background(), flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags.common.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild loads the configuration, publishes every report and prints the summary.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	if err := applyBuildFlags(cfg, flags); err != nil {
		return err
	}

	site, err := siteFromConfig(cfg, env.Now())
	if err != nil {
		return err
	}

	timeout, err := cfg.Renderer.TimeoutDuration()
	if err != nil {
		return err
	}
	renderer, err := env.NewRenderer(cfg.Renderer.Engine, mdreport.RendererOptions{
		Command: cfg.Renderer.Command,
		Timeout: timeout,
	})
	if err != nil {
		return err
	}

	out := newConsole(env, flags.common, cfg.Renderer.Command)
	out.verbosef("Output directory: %s\n", cfg.OutputDir)
	out.verbosef("Renderer: %s (timeout %s)\n", cfg.Renderer.Engine, timeout)

	b, err := mdreport.NewBuilder(site, reportsFromConfig(cfg.Reports),
		mdreport.WithRenderer(renderer),
		mdreport.WithProgress(out),
	)
	if err != nil {
		_ = renderer.Close()
		return err
	}
	defer func() { _ = b.Close() }()

	start := env.Now()
	run, err := b.Run(ctx)
	if err != nil {
		return err
	}

	out.summary(run, env.Now().Sub(start))
	return nil
}

// loadConfig returns the built-in configuration when name is empty.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return env.LoadConfig(name)
}

// applyBuildFlags overrides config values with explicit flags and revalidates.
func applyBuildFlags(cfg *config.Config, flags *buildFlags) error {
	if flags.output != "" {
		cfg.OutputDir = flags.output
	}
	if flags.engine != "" {
		cfg.Renderer.Engine = flags.engine
	}
	if flags.timeout > 0 {
		cfg.Renderer.Timeout = flags.timeout.String()
	}
	return cfg.Validate()
}

// siteFromConfig resolves "auto" dates against now.
func siteFromConfig(cfg *config.Config, now time.Time) (mdreport.Site, error) {
	date, err := dateutil.ResolveDate(cfg.Date, now)
	if err != nil {
		return mdreport.Site{}, fmt.Errorf("date: %w", err)
	}
	period, err := dateutil.ResolveDate(cfg.Index.Period, now)
	if err != nil {
		return mdreport.Site{}, fmt.Errorf("index.period: %w", err)
	}

	return mdreport.Site{
		OutputDir:             cfg.OutputDir,
		Date:                  date,
		Author:                cfg.Author.Name,
		AuthorTitle:           cfg.Author.Title,
		SiteTitle:             cfg.Index.SiteTitle,
		Period:                period,
		Copyright:             cfg.Index.Copyright,
		PrimaryHeading:        cfg.Index.PrimaryHeading,
		SecondaryHeading:      cfg.Index.SecondaryHeading,
		SecondaryOrganization: cfg.Index.SecondaryOrganization,
		AssetPath:             cfg.Assets.BasePath,
		Style:                 cfg.Style,
		TemplateSet:           cfg.TemplateSet,
		HighlightStyle:        cfg.Markdown.HighlightStyle,
		RawHTML:               cfg.Markdown.RawHTML,
	}, nil
}

func reportsFromConfig(rcs []config.ReportConfig) []mdreport.Report {
	reports := make([]mdreport.Report, len(rcs))
	for i, rc := range rcs {
		reports[i] = mdreport.Report{
			Source:       rc.Source,
			Title:        rc.Title,
			Subtitle:     rc.Subtitle,
			Organization: rc.Organization,
			HTMLName:     rc.HTMLName,
			ArtifactName: rc.ArtifactName,
			Description:  rc.Description,
		}
	}
	return reports
}

// hintFor returns the hint matching a fatal build error, if any.
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, mdreport.ErrReadMarkdown):
		return hints.ForReportSource()
	case errors.Is(err, mdreport.ErrOutputDir),
		errors.Is(err, mdreport.ErrWriteHTML),
		errors.Is(err, mdreport.ErrWriteIndex):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrIncompleteTemplateSet),
		errors.Is(err, assets.ErrTemplateSetNotFound):
		return hints.ForTemplate()
	}
	return ""
}

// renderHint returns the hint matching a per-report render failure, if any.
func renderHint(err error, command string) string {
	var renderErr *mdreport.RenderError
	if !errors.As(err, &renderErr) || !errors.Is(err, mdreport.ErrRendererInvoke) {
		return ""
	}

	switch d := renderErr.Diagnostic; {
	case strings.Contains(d, "timed out"):
		return hints.ForTimeout()
	case strings.Contains(d, "executable file not found"), strings.Contains(d, "no such file or directory"):
		return hints.ForRendererNotFound(command)
	case strings.Contains(d, "browser"):
		return hints.ForBrowserConnect()
	}
	return ""
}
