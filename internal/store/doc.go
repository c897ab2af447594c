// Package store provides file-based persistence for bigsum.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking, and every write goes through a temp file that is renamed
// over the target so a crash never leaves a truncated file behind. Stored
// files live under the user's configured home directory.
//
// The package includes:
//   - Computation history (HistoryFileStore)
package store
