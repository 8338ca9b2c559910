package main

import (
	"errors"
	"os"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/assets"
	"github.com/alnah/go-mdreport/internal/config"
	"github.com/alnah/go-mdreport/internal/dateutil"
)

// Exit codes for mdreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Failed renders are reported in the summary and do not change the exit code.
const (
	ExitSuccess  = 0 // Build completed (individual renders may have failed)
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or assets
	ExitIO       = 3 // Source not readable, output not writable
	ExitRenderer = 4 // No renderer available (doctor)
)

// ErrUsage marks invalid command line input.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, mdreport.ErrReadMarkdown) ||
		errors.Is(err, mdreport.ErrWriteHTML) ||
		errors.Is(err, mdreport.ErrWriteIndex) ||
		errors.Is(err, mdreport.ErrOutputDir) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrNoReports) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, mdreport.ErrNoReports) ||
		errors.Is(err, mdreport.ErrUnknownEngine) ||
		errors.Is(err, mdreport.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
