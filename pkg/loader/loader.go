// Package loader is the native byte loader: it reads a whole file from the
// filesystem and hands the outcome back as an already-completed future.
package loader

import (
	"github.com/arthur-debert/loadfile/pkg/future"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/arthur-debert/loadfile/pkg/types"
)

// FileSource loads files from a filesystem.
type FileSource struct {
	fs types.FS
}

// NewFileSource creates a FileSource reading through fs.
func NewFileSource(fs types.FS) *FileSource {
	return &FileSource{fs: fs}
}

// Load reads path eagerly. The returned future never suspends; filesystem
// errors are passed through untouched so callers can match them with
// errors.Is(err, fs.ErrNotExist) and friends.
func (s *FileSource) Load(path string) future.Future {
	logger := logging.GetLogger("loader")
	data, err := s.fs.ReadFile(path)
	if err != nil {
		logger.Debug().Str("path", path).Err(err).Msg("read failed")
		return future.Ready(nil, err)
	}
	logger.Trace().Str("path", path).Int("bytes", len(data)).Msg("file read")
	return future.Ready(data, nil)
}
