package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/pacopablo/finddups/internal/finddups"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// TimestampFormat renders file times in the reports.
	TimestampFormat = "01/02/2006 15:04:05"
)

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *finddups.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs a line-oriented report: one header per duplicate group
// followed by one line per member, then the zero-byte file count and a run
// summary.
func PrintTable(result *finddups.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	for _, group := range result.Groups {
		fmt.Fprintf(w, "%s:\n", group.Hash)

		for _, file := range group.Files {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				file.CreatedAt.Format(TimestampFormat),
				file.ModifiedAt.Format(TimestampFormat),
				humanize.IBytes(uint64(file.Size)), //nolint:gosec // Size is never negative
				file.Hash,
				file.Path)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Number of zero byte files: %d\n", result.ZeroByteCount)

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Files scanned:\t%d\n", result.FilesScanned)
	fmt.Fprintf(w, "Files hashed:\t%d\n", result.FilesHashed)
	fmt.Fprintf(w, "Duplicate groups:\t%d\n", len(result.Groups))
	fmt.Fprintf(w, "Duplicate files:\t%d\n", result.DuplicateFiles())
	fmt.Fprintf(w, "Reclaimable:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.WastedBytes)), result.WastedBytes) //nolint:gosec // Never negative

	if result.SkippedEntries > 0 {
		fmt.Fprintf(w, "Skipped entries:\t%d\n", result.SkippedEntries)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
