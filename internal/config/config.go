// Package config loads and validates the report run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdreport/internal/dateutil"
	"github.com/alnah/go-mdreport/internal/fileutil"
	"github.com/alnah/go-mdreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrNoReports       = errors.New("no reports configured")
)

// Field length limits.
const (
	MaxPathLength         = 4096
	MaxFileNameLength     = 255
	MaxNameLength         = 100 // author name
	MaxTitleLength        = 200 // report title, site title
	MaxSubtitleLength     = 300
	MaxOrganizationLength = 100
	MaxDescriptionLength  = 500
	MaxDateLength         = 60 // "February 14, 2026" or "auto:MMMM D, YYYY"
	MaxTextLength         = 200
)

// Renderer engines.
const (
	EngineWeasyPrint = "weasyprint"
	EngineChrome     = "chrome"
)

// Defaults.
const (
	DefaultOutputDir      = "/Users/henry/Projects/ell-reports"
	DefaultDate           = "February 14, 2026"
	DefaultPeriod         = "February 2026"
	DefaultAuthorName     = "Henry Clawson"
	DefaultAuthorTitle    = "Executive Assistant"
	DefaultStyle          = "report"
	DefaultTemplateSet    = "default"
	DefaultHighlightStyle = "github"
	DefaultEngine         = EngineWeasyPrint
	DefaultCommand        = "weasyprint"
	DefaultTimeout        = "120s"
)

// Config holds everything a report run needs.
type Config struct {
	OutputDir   string         `yaml:"outputDir"`
	Date        string         `yaml:"date"` // cover and index footer date, "auto:FORMAT" allowed
	Author      AuthorConfig   `yaml:"author"`
	Style       string         `yaml:"style"`
	TemplateSet string         `yaml:"templateSet"`
	Assets      AssetsConfig   `yaml:"assets"`
	Markdown    MarkdownConfig `yaml:"markdown"`
	Renderer    RendererConfig `yaml:"renderer"`
	Index       IndexConfig    `yaml:"index"`
	Reports     []ReportConfig `yaml:"reports"`
}

// AuthorConfig identifies who prepared the reports.
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"` // shown on the index byline only
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// MarkdownConfig defines markdown conversion options.
type MarkdownConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
	RawHTML        bool   `yaml:"rawHTML"`
}

// RendererConfig selects and tunes the PDF renderer.
type RendererConfig struct {
	Engine  string `yaml:"engine"`  // "weasyprint" or "chrome"
	Command string `yaml:"command"` // binary for the weasyprint engine
	Timeout string `yaml:"timeout"` // per report, Go duration syntax
}

// TimeoutDuration parses Timeout.
func (r RendererConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: renderer.timeout %q: %v", ErrInvalidValue, r.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: renderer.timeout must be positive, got %q", ErrInvalidValue, r.Timeout)
	}
	return d, nil
}

// IndexConfig holds the fixed copy of the index page.
type IndexConfig struct {
	SiteTitle             string `yaml:"siteTitle"`
	Period                string `yaml:"period"` // "auto:FORMAT" allowed
	Copyright             string `yaml:"copyright"`
	PrimaryHeading        string `yaml:"primaryHeading"`
	SecondaryHeading      string `yaml:"secondaryHeading"`
	SecondaryOrganization string `yaml:"secondaryOrganization"`
}

// ReportConfig defines one report of the run.
type ReportConfig struct {
	Source       string `yaml:"source"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	Organization string `yaml:"organization"`
	HTMLName     string `yaml:"htmlName"`
	ArtifactName string `yaml:"artifactName"`
	Description  string `yaml:"description"`
}

// DefaultConfig returns the built-in report run.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		Date:        DefaultDate,
		Author:      AuthorConfig{Name: DefaultAuthorName, Title: DefaultAuthorTitle},
		Style:       DefaultStyle,
		TemplateSet: DefaultTemplateSet,
		Markdown:    MarkdownConfig{HighlightStyle: DefaultHighlightStyle},
		Renderer: RendererConfig{
			Engine:  DefaultEngine,
			Command: DefaultCommand,
			Timeout: DefaultTimeout,
		},
		Index: IndexConfig{
			SiteTitle:             "Elm Lake Labs — Research Reports",
			Period:                DefaultPeriod,
			Copyright:             "2026 Elm Lake Labs",
			PrimaryHeading:        "Elm Lake Labs Reports",
			SecondaryHeading:      "Elm Lake Cranberry Reports",
			SecondaryOrganization: "Elm Lake Cranberry",
		},
		Reports: defaultReports(),
	}
}

func defaultReports() []ReportConfig {
	const sources = "/Users/henry/clawd/memory/projects"
	return []ReportConfig{
		{
			Source:       sources + "/ell/ag-tech-landscape-2026.md",
			Title:        "Ag Tech Competitive Landscape",
			Subtitle:     "Market analysis, key players, and opportunity gaps for Elm Lake Labs in the precision agriculture industry",
			Organization: "Elm Lake Labs",
			HTMLName:     "ag-tech-landscape.html",
			ArtifactName: "ag-tech-landscape.pdf",
			Description:  "Comprehensive analysis of 50+ ag tech companies across autosteer, farm management, drones, AI analytics, and scouting — with identified opportunity gaps.",
		},
		{
			Source:       sources + "/ell/ai-sales-funnel-design.md",
			Title:        "AI Sales Funnel Design",
			Subtitle:     "A complete playbook for selling FJD Dynamics precision ag products through an AI-powered online sales funnel",
			Organization: "Elm Lake Labs",
			HTMLName:     "ai-sales-funnel.html",
			ArtifactName: "ai-sales-funnel.pdf",
			Description:  "Full sales funnel architecture: tractor compatibility tool, AI chatbot, content strategy, paid ads, ROI calculator, and 6-month implementation budget.",
		},
		{
			Source:       sources + "/ell/ai-trading-research.md",
			Title:        "AI Trading Research",
			Subtitle:     "Comprehensive analysis of AI crypto trading bots, commodity hedging strategies, and realistic expectations for retail investors",
			Organization: "Elm Lake Labs",
			HTMLName:     "ai-trading-research.html",
			ArtifactName: "ai-trading-research.pdf",
			Description:  "Deep dive into Stoic.ai, Pionex, 3Commas, and 15+ platforms — plus agricultural commodity hedging strategies for cranberry operations.",
		},
		{
			Source:       sources + "/elc/hiring-process-improvement.md",
			Title:        "Farm Hiring Process Improvement",
			Subtitle:     "Wisconsin labor market analysis, recruiting channels, pay benchmarks, and a 90-day action plan for Elm Lake Cranberry",
			Organization: "Elm Lake Cranberry",
			HTMLName:     "hiring-process.html",
			ArtifactName: "hiring-process.pdf",
			Description:  "Complete hiring playbook: pay benchmarks, MSTC partnership strategy, H-2A analysis, AI hiring tools, job postings, retention bonuses, and 90-day action plan.",
		},
		{
			Source:       sources + "/ell/company-rename-research.md",
			Title:        "Company Rename Research",
			Subtitle:     "Domain availability analysis, naming patterns, and top 10 recommended company names for Elm Lake Labs",
			Organization: "Elm Lake Labs",
			HTMLName:     "company-rename.html",
			ArtifactName: "company-rename.pdf",
			Description:  "300+ domains checked, 10 finalists evaluated — from premium .com acquisitions (Fallow, Tillage, Swath) to free coined alternatives (Culteon, Callivar).",
		},
		{
			Source:       sources + "/ell/fjd-dealer-territory-map.md",
			Title:        "FJD Dealer Territory Map",
			Subtitle:     "Complete US dealer database, competitor analysis, state-by-state territory map, and negotiation strategy for FJD Dynamics dealership expansion",
			Organization: "Elm Lake Labs",
			HTMLName:     "fjd-dealer-map.html",
			ArtifactName: "fjd-dealer-map.pdf",
			Description:  "All 50 states mapped — 37 open territories identified. Deep competitive analysis of DST, plus negotiation playbook for claiming 6-state Midwest exclusive.",
		},
	}
}

// IndexFileName is the name of the index page inside the output directory.
const IndexFileName = "index.html"

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("outputDir", c.OutputDir, MaxPathLength); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: outputDir is required", ErrInvalidValue)
	}
	if err := validateDate("date", c.Date); err != nil {
		return err
	}
	if err := validateDate("index.period", c.Index.Period); err != nil {
		return err
	}

	if err := validateFieldLength("author.name", c.Author.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("author.title", c.Author.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	switch c.Renderer.Engine {
	case EngineWeasyPrint, EngineChrome:
	default:
		return fmt.Errorf("%w: renderer.engine %q (must be %s or %s)", ErrInvalidValue, c.Renderer.Engine, EngineWeasyPrint, EngineChrome)
	}
	if err := validateFieldLength("renderer.command", c.Renderer.Command, MaxPathLength); err != nil {
		return err
	}
	if c.Renderer.Engine == EngineWeasyPrint && c.Renderer.Command == "" {
		return fmt.Errorf("%w: renderer.command is required for engine %s", ErrInvalidValue, EngineWeasyPrint)
	}
	if _, err := c.Renderer.TimeoutDuration(); err != nil {
		return err
	}

	for _, f := range []struct {
		name, value string
	}{
		{"index.siteTitle", c.Index.SiteTitle},
		{"index.copyright", c.Index.Copyright},
		{"index.primaryHeading", c.Index.PrimaryHeading},
		{"index.secondaryHeading", c.Index.SecondaryHeading},
		{"index.secondaryOrganization", c.Index.SecondaryOrganization},
	} {
		if err := validateFieldLength(f.name, f.value, MaxTextLength); err != nil {
			return err
		}
	}

	return c.validateReports()
}

func (c *Config) validateReports() error {
	if len(c.Reports) == 0 {
		return ErrNoReports
	}

	seen := make(map[string]string, len(c.Reports)*2)
	seen[IndexFileName] = "the index page"

	for i, r := range c.Reports {
		prefix := fmt.Sprintf("reports[%d]", i)

		for _, f := range []struct {
			name, value string
			max         int
		}{
			{".source", r.Source, MaxPathLength},
			{".title", r.Title, MaxTitleLength},
			{".subtitle", r.Subtitle, MaxSubtitleLength},
			{".organization", r.Organization, MaxOrganizationLength},
			{".htmlName", r.HTMLName, MaxFileNameLength},
			{".artifactName", r.ArtifactName, MaxFileNameLength},
			{".description", r.Description, MaxDescriptionLength},
		} {
			if err := validateFieldLength(prefix+f.name, f.value, f.max); err != nil {
				return err
			}
		}

		if r.Source == "" {
			return fmt.Errorf("%w: %s.source is required", ErrInvalidValue, prefix)
		}
		if r.Title == "" {
			return fmt.Errorf("%w: %s.title is required", ErrInvalidValue, prefix)
		}

		for _, f := range []struct {
			name, value string
		}{
			{prefix + ".htmlName", r.HTMLName},
			{prefix + ".artifactName", r.ArtifactName},
		} {
			if err := validateFileName(f.name, f.value); err != nil {
				return err
			}
			if owner, dup := seen[f.value]; dup {
				return fmt.Errorf("%w: %s %q already used by %s", ErrInvalidValue, f.name, f.value, owner)
			}
			seen[f.value] = f.name
		}
	}
	return nil
}

// validateFileName requires a bare file name written inside the output directory.
func validateFileName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidValue, field)
	}
	if fileutil.IsFilePath(name) || name == "." || name == ".." {
		return fmt.Errorf("%w: %s %q must be a file name, not a path", ErrInvalidValue, field, name)
	}
	return nil
}

func validateDate(field, value string) error {
	if err := validateFieldLength(field, value, MaxDateLength); err != nil {
		return err
	}
	if _, err := dateutil.ResolveDate(value, time.Time{}); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
//
// Fields missing from the file keep their DefaultConfig value; a reports
// list in the file replaces the built-in one.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yamlutil.DecodeStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := DefaultConfig()
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every non-zero field of o onto c.
func (c *Config) merge(o *Config) {
	setString(&c.OutputDir, o.OutputDir)
	setString(&c.Date, o.Date)
	setString(&c.Author.Name, o.Author.Name)
	setString(&c.Author.Title, o.Author.Title)
	setString(&c.Style, o.Style)
	setString(&c.TemplateSet, o.TemplateSet)
	setString(&c.Assets.BasePath, o.Assets.BasePath)
	setString(&c.Markdown.HighlightStyle, o.Markdown.HighlightStyle)
	if o.Markdown.RawHTML {
		c.Markdown.RawHTML = true
	}
	setString(&c.Renderer.Engine, o.Renderer.Engine)
	setString(&c.Renderer.Command, o.Renderer.Command)
	setString(&c.Renderer.Timeout, o.Renderer.Timeout)
	setString(&c.Index.SiteTitle, o.Index.SiteTitle)
	setString(&c.Index.Period, o.Index.Period)
	setString(&c.Index.Copyright, o.Index.Copyright)
	setString(&c.Index.PrimaryHeading, o.Index.PrimaryHeading)
	setString(&c.Index.SecondaryHeading, o.Index.SecondaryHeading)
	setString(&c.Index.SecondaryOrganization, o.Index.SecondaryOrganization)
	if len(o.Reports) > 0 {
		c.Reports = o.Reports
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// SearchPaths returns the files tried, in order, when looking up a config by name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-mdreport", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
