package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/pacopablo/finddups/internal/export"
	"github.com/pacopablo/finddups/internal/finddups"
)

func logic(opts options) error {
	enableProgress := strings.ToLower(opts.output) != "json" &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	records, skipped, err := finddups.Collect(ctx, opts.roots, finddups.CollectOptions{
		Excludes: opts.excludes,
		MinSize:  opts.minSize,
		Warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	result, err := finddups.NewResolver().Resolve(records)
	if err != nil {
		return err
	}

	result.SkippedEntries = skipped

	// Hash-bucket iteration order is not stable across runs; sort for
	// reproducible output.
	result.Sort()

	// The renderer is picked here so the core stays free of any output
	// dependency.
	var render func(*finddups.Result) error

	switch {
	case opts.xlsPath != "":
		render = func(res *finddups.Result) error {
			if err := export.WriteWorkbook(res, opts.xlsPath); err != nil {
				return fmt.Errorf("writing workbook: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Results written to %s\n", opts.xlsPath)

			return nil
		}
	case strings.ToLower(opts.output) == "json":
		render = func(res *finddups.Result) error {
			return PrintJSON(res, os.Stdout)
		}
	default:
		render = func(res *finddups.Result) error {
			return PrintTable(res, os.Stdout)
		}
	}

	return render(result)
}
