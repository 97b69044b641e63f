package finddups

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// CollectOptions configures the collection walk.
type CollectOptions struct {
	// Excludes contains regex patterns matched against slash-format paths.
	// Matching directories are pruned, matching files skipped.
	Excludes []string
	// MinSize drops files smaller than this many bytes (0 = keep all).
	MinSize int64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Warn receives one message per entry skipped due to a walk error.
	// Nil disables warnings; skipped entries are still counted.
	Warn func(format string, args ...any)
}

// collector accumulates records from concurrent fastwalk callbacks using a
// mutex, since fastwalk calls the callback from multiple goroutines.
type collector struct {
	mu         sync.Mutex
	records    []*FileRecord
	totalBytes int64
	skipped    int64
}

func (c *collector) add(rec *FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
	c.totalBytes += rec.Size
}

func (c *collector) addSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.skipped++
}

func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.records)), c.totalBytes
}

// ValidateRoots checks that every given root exists and is a directory.
// The first failing root aborts validation, so a run never starts traversing
// with a partially valid input set.
func ValidateRoots(roots []string) error {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return &InvalidInputPathError{Path: root, Err: err}
		}

		if !info.IsDir() {
			return &InvalidInputPathError{Path: root}
		}
	}

	return nil
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is
// done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := c.snapshot()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Collect validates the given roots and walks each of them, producing one
// FileRecord per discovered regular file. Roots are walked in the given
// order; if two roots overlap, files under the overlap are visited once per
// root, matching the caller's explicit request.
//
// Non-regular entries (directories, symlinks, devices) never become records.
// Entries that fail to stat are skipped with a warning rather than aborting
// the walk; the returned count says how many were skipped.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Collect(
	ctx context.Context,
	roots []string,
	opts CollectOptions,
	progressHook func(files, bytes int64),
) ([]*FileRecord, int64, error) {
	if err := ValidateRoots(roots); err != nil {
		return nil, 0, err
	}

	warn := opts.Warn
	if warn == nil {
		warn = func(string, ...any) {}
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opts.Excludes))

	for _, p := range opts.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, 0, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	collector := &collector{}

	// Child context so the progress reporter stops with the walk.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opts.ProgressInterval)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warn("skipping %s: %v", path, err)
			collector.addSkipped()

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if matched := shouldExcludeByPattern(path, excludeRegexes); matched != nil {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			warn("skipping %s: %v", path, err)
			collector.addSkipped()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if info.Size() < opts.MinSize {
			return nil
		}

		rec, err := NewFileRecord(path, info)
		if err != nil {
			warn("skipping %s: %v", path, err)
			collector.addSkipped()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.add(rec)

		return nil
	}

	for _, root := range roots {
		if err := fastwalk.Walk(conf, root, walkFn); err != nil {
			return nil, collector.skipped, fmt.Errorf("walking %q: %w", root, err)
		}
	}

	return collector.records, collector.skipped, nil
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}
