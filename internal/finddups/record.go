package finddups

import (
	"io/fs"
	"path/filepath"
	"time"
)

// FileRecord holds the metadata snapshot taken for one discovered regular
// file. Path, size and timestamps are fixed at discovery time; the tool takes
// a single consistent snapshot per run and does not detect concurrent
// modification.
type FileRecord struct {
	// Path is the absolute, cleaned path of the file.
	Path string `json:"path"`
	// Size is the byte length at discovery time.
	Size int64 `json:"size"`
	// CreatedAt is the inode change time where the platform exposes it,
	// falling back to the modification time elsewhere.
	CreatedAt time.Time `json:"created_at"`
	// ModifiedAt is the modification time.
	ModifiedAt time.Time `json:"modified_at"`
	// Hash is the hex digest of the full file content. It stays empty until
	// the resolver decides the file needs hashing and is never recomputed
	// afterwards.
	Hash string `json:"hash,omitempty"`
}

// NewFileRecord builds a record for path from an already obtained metadata
// snapshot. No file content is read.
func NewFileRecord(path string, info fs.FileInfo) (*FileRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &FileRecord{
		Path:       abs,
		Size:       info.Size(),
		CreatedAt:  changeTime(info),
		ModifiedAt: info.ModTime(),
	}, nil
}
