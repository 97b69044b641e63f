// Package hasher computes content digests for duplicate detection.
package hasher

import (
	"crypto/sha1" //nolint:gosec // Content identity, not security
	"encoding/hex"
	"io"
	"os"
	"sync"
)

// BlockSize is the read chunk size. Memory use per digest stays at one block
// regardless of file size.
const BlockSize = 32 * 1024

// bufferPool reuses read buffers across files.
var bufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, BlockSize)
		return &b
	},
}

// HashFile returns the hex SHA-1 digest of the full content of path, read in
// BlockSize chunks. Two files with equal digests are treated as duplicates;
// no byte-by-byte confirmation pass follows.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest := sha1.New() //nolint:gosec // Content identity, not security

	bufPtr := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(bufPtr)

	if _, err := io.CopyBuffer(digest, file, *bufPtr); err != nil {
		return "", err
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
