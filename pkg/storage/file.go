package storage

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/loadfile/pkg/codec"
	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/arthur-debert/loadfile/pkg/paths"
	"github.com/arthur-debert/loadfile/pkg/types"
)

// FileStore keeps each value in its own file at
// <base_dir(location)>/<app>/<profile>.
type FileStore struct {
	fs    types.FS
	paths paths.Paths
	codec codec.Codec
}

// NewFileStore creates a FileStore. A nil codec selects JSON.
func NewFileStore(fs types.FS, p paths.Paths, c codec.Codec) *FileStore {
	if c == nil {
		c = codec.JSON()
	}
	return &FileStore{
		fs:    fs,
		paths: p,
		codec: c,
	}
}

func (s *FileStore) Save(loc types.Location, app, profile string, v any) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSerialize, "failed to serialize %q as %s", profile, s.codec.Name()).
			WithDetail("profile", profile)
	}
	return s.write(loc, app, profile, data)
}

func (s *FileStore) SaveRaw(loc types.Location, app, profile string, data []byte) error {
	return s.write(loc, app, profile, data)
}

func (s *FileStore) Load(loc types.Location, app, profile string, v any) error {
	data, err := s.read(loc, app, profile)
	if err != nil {
		return err
	}
	if err := s.codec.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, errors.ErrDeserialize, "failed to deserialize %q as %s", profile, s.codec.Name()).
			WithDetail("profile", profile)
	}
	return nil
}

func (s *FileStore) LoadRaw(loc types.Location, app, profile string) ([]byte, error) {
	return s.read(loc, app, profile)
}

// write creates the app folder (recursively, no error if present) and
// overwrites the profile file in place.
func (s *FileStore) write(loc types.Location, app, profile string, data []byte) error {
	logger := logging.GetLogger("storage")
	defer logging.LogOperationStart(logger, "save "+profile)()

	folder, err := s.paths.SaveFolder(loc, app)
	if err != nil {
		return err
	}
	path, err := s.paths.SaveLocation(loc, app, profile)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(folder, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create save folder %s", folder).
			WithDetail("path", folder)
	}
	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %q", profile).
			WithDetail("profile", profile).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("saved")
	return nil
}

func (s *FileStore) read(loc types.Location, app, profile string) ([]byte, error) {
	logger := logging.GetLogger("storage")
	defer logging.LogOperationStart(logger, "load "+profile)()

	path, err := s.paths.SaveLocation(loc, app, profile)
	if err != nil {
		return nil, err
	}
	data, err := s.fs.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrSaveNotFound, "save %q not found", profile).
			WithDetail("profile", profile).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %q", profile).
			WithDetail("profile", profile).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("loaded")
	return data, nil
}
