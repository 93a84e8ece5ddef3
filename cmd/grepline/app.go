package main

import (
	"io"

	"github.com/pverhoeven/grepline/pkg/config"
	"github.com/pverhoeven/grepline/pkg/format"
	"github.com/pverhoeven/grepline/pkg/matcher"
	"github.com/pverhoeven/grepline/pkg/scanner"
)

// Dependencies holds all the dependencies for the application. Everything
// here is resolved before the first source is opened, so a bad pattern or
// format selector fails without producing partial output.
type Dependencies struct {
	Config    *config.Config
	Pattern   *matcher.Pattern
	Registry  *format.Registry
	Formatter format.Formatter
	Scanner   *scanner.Scanner
}

// NewDependencies compiles the pattern, resolves the formatter and wires the
// scanner. Formatted matches are written to out.
func NewDependencies(cfg *config.Config, regex string, formatType format.Type, out io.Writer) (*Dependencies, error) {
	pattern, err := matcher.Compile(regex)
	if err != nil {
		return nil, err
	}

	registry := format.DefaultRegistry(cfg.HighlightColor)
	formatter, err := registry.Get(formatType)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:    cfg,
		Pattern:   pattern,
		Registry:  registry,
		Formatter: formatter,
		Scanner:   scanner.New(cfg, pattern, formatter, out),
	}, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run scans the given sources, reading standard input when none are given.
func (a *Application) Run(sources []string) error {
	return a.deps.Scanner.Scan(sources)
}

// selectFormat picks the output format from the mutually exclusive format
// flags, falling back to the configured default when none is set. Flag
// exclusivity is enforced by the caller.
func selectFormat(cfg *config.Config, underscore, color, machine bool) (format.Type, error) {
	switch {
	case underscore:
		return format.TypeUnderscore, nil
	case color:
		return format.TypeColor, nil
	case machine:
		return format.TypeMachine, nil
	default:
		return format.ParseType(cfg.Format)
	}
}
