package hasher_test

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // Reference digest
	"encoding/hex"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pacopablo/finddups/internal/hasher"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	return path
}

func TestHashFileKnownDigest(t *testing.T) {
	path := writeFile(t, "hello.txt", []byte("hello"))

	sum, err := hasher.HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	// sha1("hello")
	if want := "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"; sum != want {
		t.Fatalf("expected %s, got %s", want, sum)
	}
}

func TestHashFileEmpty(t *testing.T) {
	path := writeFile(t, "empty", nil)

	sum, err := hasher.HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	// sha1("")
	if want := "da39a3ee5e6b4b0d3255bfef95601890afd80709"; sum != want {
		t.Fatalf("expected %s, got %s", want, sum)
	}
}

func TestHashFileSpansMultipleBlocks(t *testing.T) {
	content := make([]byte, hasher.BlockSize*3+17)
	rand.New(rand.NewSource(1)).Read(content)

	path := writeFile(t, "big.bin", content)

	sum, err := hasher.HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	want := sha1.Sum(content) //nolint:gosec // Reference digest
	if sum != hex.EncodeToString(want[:]) {
		t.Fatalf("chunked digest %s does not match whole-content digest", sum)
	}
}

func TestHashFileDiffersOnContent(t *testing.T) {
	content := bytes.Repeat([]byte("a"), 100)
	first := writeFile(t, "first", content)

	content[99] = 'b'
	second := writeFile(t, "second", content)

	sumFirst, err := hasher.HashFile(first)
	if err != nil {
		t.Fatalf("hash first: %v", err)
	}

	sumSecond, err := hasher.HashFile(second)
	if err != nil {
		t.Fatalf("hash second: %v", err)
	}

	if sumFirst == sumSecond {
		t.Fatalf("expected differing digests for differing content")
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := hasher.HashFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
