// Package storage persists small named values in platform-appropriate
// places.
//
// FileStore writes files under the XDG cache, config or data directory;
// WebStore writes entries into a browser-style key/value area (session
// storage for Cache, persistent storage otherwise). Both expose the same
// Store interface: structured values go through a codec, raw values are
// stored verbatim (or base64 encoded where the backing area only takes
// text).
//
// Every operation is independent: writes are whole-value overwrites, there
// are no transactions and nothing is cached.
package storage

import (
	"github.com/arthur-debert/loadfile/pkg/types"
)

// Store saves and loads named values.
type Store interface {
	// Save serializes v and stores it under profile.
	Save(loc types.Location, app, profile string, v any) error
	// SaveRaw stores data verbatim under profile.
	SaveRaw(loc types.Location, app, profile string, data []byte) error
	// Load deserializes the value stored under profile into v.
	Load(loc types.Location, app, profile string, v any) error
	// LoadRaw returns the bytes stored under profile.
	LoadRaw(loc types.Location, app, profile string) ([]byte, error)
}
