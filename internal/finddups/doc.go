// Package finddups implements duplicate file detection over directory trees.
//
// It walks the given roots using fastwalk for parallel traversal, buckets
// the discovered files by size, hashes only files that share a size with at
// least one other file, and groups equal digests into duplicate sets.
// Zero-byte files are counted and reported separately, never hashed.
package finddups
