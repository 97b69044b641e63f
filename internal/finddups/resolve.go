package finddups

import (
	"runtime"
	"sync"
	"time"

	"github.com/pacopablo/finddups/internal/hasher"
)

// Resolver groups collected records into duplicate sets.
type Resolver struct {
	hashFile func(path string) (string, error)
	workers  int
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithHashFunc overrides the content digest function.
func WithHashFunc(fn func(path string) (string, error)) ResolverOption {
	return func(r *Resolver) { r.hashFile = fn }
}

// WithWorkers sets the number of concurrent hashing workers.
func WithWorkers(n int) ResolverOption {
	return func(r *Resolver) { r.workers = n }
}

// NewResolver creates a resolver hashing with SHA-1 on one worker per CPU.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		hashFile: hasher.HashFile,
		workers:  runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve buckets records by size, hashes only files sharing a size with at
// least one other record, and groups equal digests into duplicate sets.
//
// Zero-byte files are counted and listed without ever being hashed: they are
// all trivially identical, so a digest proves nothing. Size buckets with a
// single member are skipped entirely; their files are never read.
//
// The first read failure aborts the run with an UnreadableFileError naming
// the offending path.
func (r *Resolver) Resolve(records []*FileRecord) (*Result, error) {
	start := time.Now()

	bySize := make(map[int64][]*FileRecord)
	for _, rec := range records {
		bySize[rec.Size] = append(bySize[rec.Size], rec)
	}

	zero := bySize[0]
	delete(bySize, 0)

	// Files sharing a size with at least one other file are the only
	// hashing candidates.
	var candidates []*FileRecord

	for _, bucket := range bySize {
		if len(bucket) < 2 {
			continue
		}

		candidates = append(candidates, bucket...)
	}

	if err := r.hashAll(candidates); err != nil {
		return nil, err
	}

	// Build hash buckets in candidate order so each bucket keeps its
	// members in discovery order regardless of worker completion order.
	byHash := make(map[string][]*FileRecord)
	hashes := make([]string, 0, len(candidates))

	for _, rec := range candidates {
		if _, ok := byHash[rec.Hash]; !ok {
			hashes = append(hashes, rec.Hash)
		}

		byHash[rec.Hash] = append(byHash[rec.Hash], rec)
	}

	result := &Result{
		ZeroByteCount: len(zero),
		ZeroByteFiles: zero,
		FilesScanned:  int64(len(records)),
		FilesHashed:   int64(len(candidates)),
	}

	for _, hash := range hashes {
		bucket := byHash[hash]
		if len(bucket) < 2 {
			continue
		}

		result.Groups = append(result.Groups, DuplicateGroup{Hash: hash, Files: bucket})

		for _, rec := range bucket[1:] {
			result.WastedBytes += rec.Size
		}
	}

	result.Elapsed = time.Since(start)

	return result, nil
}

// hashAll computes missing digests with a worker pool and stores them on the
// records in place. Records that already carry a digest keep it.
func (r *Resolver) hashAll(records []*FileRecord) error {
	workers := r.workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan *FileRecord, len(records))
	errs := make(chan error, len(records))

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for rec := range jobs {
				if rec.Hash != "" {
					continue
				}

				sum, err := r.hashFile(rec.Path)
				if err != nil {
					errs <- &UnreadableFileError{Path: rec.Path, Err: err}

					continue
				}

				rec.Hash = sum
			}
		}()
	}

	for _, rec := range records {
		jobs <- rec
	}

	close(jobs)
	wg.Wait()
	close(errs)

	// First failure wins; the run aborts either way.
	for err := range errs {
		return err
	}

	return nil
}
