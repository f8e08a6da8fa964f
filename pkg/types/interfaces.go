package types

import (
	"io/fs"
)

// FS is the filesystem interface required for native loading and persistence
type FS interface {
	// File operations
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}
