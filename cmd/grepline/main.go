package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/pverhoeven/grepline/pkg/config"
	"github.com/pverhoeven/grepline/pkg/logging"
)

func main() {
	var (
		regex      string
		underscore bool
		color      bool
		machine    bool
		configPath string
		verbosity  int
		help       bool
	)

	flag.StringVarP(&regex, "regex", "r", "", "regular expression to search for")
	flag.BoolVarP(&underscore, "underscore", "u", false, "print '^' under the matching text")
	flag.BoolVarP(&color, "color", "c", false, "highlight the matching text")
	flag.BoolVarP(&machine, "machine", "m", false, "machine-readable output: file:line:start:text")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flag.BoolVarP(&help, "help", "h", false, "show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	logging.SetupLogger(verbosity)

	if regex == "" {
		fmt.Fprintf(os.Stderr, "Error: a pattern is required (-r/--regex)\n\n")
		printUsage()
		os.Exit(2)
	}

	selected := 0
	for _, on := range []bool{underscore, color, machine} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		fmt.Fprintf(os.Stderr, "Error: only one of --underscore, --color and --machine may be given\n")
		os.Exit(2)
	}

	// Make an explicit --config path visible to the loader
	if configPath != "" {
		if err := os.Setenv("GREPLINE_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The flag wins; a configured verbosity only raises the default
	if verbosity == 0 && cfg.Verbosity > 0 {
		logging.SetupLogger(cfg.Verbosity)
	}

	formatType, err := selectFormat(cfg, underscore, color, machine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	deps, err := NewDependencies(cfg, regex, formatType, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := NewApplication(deps)
	if err := app.Run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("grepline - search files or standard input for a pattern, line by line")
	fmt.Println()
	fmt.Println("Usage: grepline -r PATTERN [OPTIONS] [FILE...]")
	fmt.Println()
	fmt.Println("With no FILE arguments, grepline reads standard input.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GREPLINE_FORMAT           Output format when no format flag is given")
	fmt.Println("  GREPLINE_HIGHLIGHT_COLOR  SGR code used by the color format (default: 95)")
	fmt.Println("  GREPLINE_MAX_LINE_BYTES   Maximum length of a single input line")
	fmt.Println("  GREPLINE_CONFIG           Path to config file")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/grepline/config.yaml")
}
