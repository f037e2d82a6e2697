// Package fs provides a small filesystem seam between the imgFS container
// engine and the OS, so tests can substitute an in-memory implementation
// without touching internal/imgfs.
//
// Unlike a general-purpose VFS, this package intentionally does not offer
// crash-consistency or fault-injection implementations: imgFS's spec makes
// no durability promises across crashes (no journaling, no fsync protocol),
// so there would be nothing for such an implementation to exercise.
package fs

import (
	"io"
	"os"
)

// File represents an open file descriptor.
//
// Satisfied by [os.File]. The container engine addresses the header, slot
// table, and blob region by absolute offset, so File exposes ReaderAt/
// WriterAt rather than relying on a shared seek cursor; Write+Seek remain
// available for append-only blob writes.
type File interface {
	io.Closer
	io.ReaderAt
	io.WriterAt
	io.Writer
	io.Seeker

	// Stat returns file metadata, used to locate end-of-file for appends.
	Stat() (os.FileInfo, error)

	// Sync commits the file's contents to the OS. See [os.File.Sync].
	Sync() error
}

// FS opens and creates the single file backing an imgFS container.
//
// All methods mirror their [os] package equivalents. Implementations must be
// safe for concurrent use, though in practice every call an imgFS Store
// makes is already serialized by the store's concurrency gate.
type FS interface {
	// OpenReadWrite opens an existing file for reading and writing.
	// See [os.OpenFile] with O_RDWR.
	OpenReadWrite(path string) (File, error)

	// OpenFile opens a file with specific flags and permissions.
	// See [os.OpenFile].
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// Stat returns file info. See [os.Stat].
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a file exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)

	// Remove deletes a file. See [os.Remove].
	Remove(path string) error
}

// Compile-time interface check.
var _ File = (*os.File)(nil)
