package main

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, config loading, and renderer construction.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Color       bool // colorize console markers
	LoadConfig  func(nameOrPath string) (*config.Config, error)
	NewRenderer func(engine string, opts mdreport.RendererOptions) (mdreport.Renderer, error)
}

// DefaultEnv returns the production environment.
// Color follows fatih/color's terminal and NO_COLOR detection.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Color:       !color.NoColor,
		LoadConfig:  config.LoadConfig,
		NewRenderer: mdreport.NewRenderer,
	}
}
