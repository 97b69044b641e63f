// Package cli wires the command line to the detection pipeline.
package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options bundles everything parsed from the command line.
type options struct {
	roots    []string
	excludes []string
	minSize  int64
	output   string
	xlsPath  string
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		finddups locates duplicate files in one or more directory trees.

		Usage:

			finddups [flags] [directory ...]

		Positional Arguments:
		  directory              Directories to scan. Defaults to the current directory.
		                         Every given directory must exist. If one given directory
		                         contains another, files under the overlap are reported
		                         once per containing root.

		Files are first grouped by size; only files that share a size with at
		least one other file are hashed (SHA-1). Zero-byte files are counted
		separately and never hashed.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		opts        options
		minSizeStr  string
		showVersion bool
	)

	allowedOutputs := []string{"table", "json"}

	pflag.StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	pflag.StringVarP(&opts.xlsPath, "xls", "x", "", "Write results to the given file in Excel format")
	pflag.StringSliceVarP(&opts.excludes, "exclude", "e", nil, "Regex patterns to exclude")
	pflag.StringVar(&minSizeStr, "min-size", "0B", "Minimum file size to consider (e.g., 1KB)")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if showVersion {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, opts.output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", opts.output, allowedOutputs)
	}

	if pflag.NArg() == 0 {
		opts.roots = []string{"."}
	} else {
		opts.roots = pflag.Args()
	}

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		opts.minSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return logic(opts)
}
