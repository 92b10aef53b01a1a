// Package storage provides a filesystem abstraction for uploaded assets
// (product images). Two drivers are available:
//
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// The active default disk is chosen by STORAGE_DISK.
package storage

import "io"

// Disk is the driver contract.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error
	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error
	// Get returns the file content at path.
	Get(path string) ([]byte, error)
	// GetStream returns a ReadCloser for path.
	GetStream(path string) (io.ReadCloser, error)
	// Exists reports whether path exists.
	Exists(path string) bool
	// Delete removes path. Deleting a missing path is not an error.
	Delete(path string) error
	// URL returns the public URL for path.
	URL(path string) string
	// Files lists files directly under directory.
	Files(directory string) ([]string, error)
}
