package finddups

import (
	"sort"
	"time"
)

// DuplicateGroup is a set of at least two records sharing one content digest.
type DuplicateGroup struct {
	// Hash is the hex digest shared by every member.
	Hash string `json:"hash"`
	// Files lists the members in discovery order.
	Files []*FileRecord `json:"files"`
}

// Result is the outcome of one full detection run.
type Result struct {
	// ZeroByteCount is the number of discovered zero-byte files.
	ZeroByteCount int `json:"zero_byte_count"`
	// ZeroByteFiles lists the zero-byte records. They are never hashed.
	ZeroByteFiles []*FileRecord `json:"zero_byte_files"`
	// Groups contains every hash bucket with at least two members.
	Groups []DuplicateGroup `json:"duplicate_groups"`
	// FilesScanned is the total number of records fed into the resolver.
	FilesScanned int64 `json:"files_scanned"`
	// FilesHashed is the number of records whose content was actually read.
	FilesHashed int64 `json:"files_hashed"`
	// SkippedEntries is the number of entries skipped during the walk.
	SkippedEntries int64 `json:"skipped_entries"`
	// WastedBytes is the total size of the removable copies (every group
	// member beyond the first).
	WastedBytes int64 `json:"wasted_bytes"`
	// Elapsed is the time taken by the resolver.
	Elapsed time.Duration `json:"elapsed"`
}

// DuplicateFiles returns the number of removable copies across all groups.
func (r *Result) DuplicateFiles() int64 {
	var n int64
	for _, g := range r.Groups {
		n += int64(len(g.Files) - 1)
	}

	return n
}

// Sort orders groups by the path of their first member, group members by
// path, and zero-byte files by path. Hash-bucket iteration order is not
// stable across runs; callers wanting reproducible output sort before
// rendering. Group membership is unaffected.
func (r *Result) Sort() {
	for i := range r.Groups {
		files := r.Groups[i].Files
		sort.Slice(files, func(a, b int) bool { return files[a].Path < files[b].Path })
	}

	sort.Slice(r.Groups, func(a, b int) bool {
		return r.Groups[a].Files[0].Path < r.Groups[b].Files[0].Path
	})

	sort.Slice(r.ZeroByteFiles, func(a, b int) bool {
		return r.ZeroByteFiles[a].Path < r.ZeroByteFiles[b].Path
	})
}
