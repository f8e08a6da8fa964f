package storage

import (
	"encoding/base64"

	"github.com/arthur-debert/loadfile/pkg/codec"
	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/arthur-debert/loadfile/pkg/types"
)

// Area is a text key/value storage area such as window.localStorage.
type Area interface {
	// GetItem returns ok=false when key is absent.
	GetItem(key string) (value string, ok bool, err error)
	// SetItem fails when the area rejects the write, e.g. over quota.
	SetItem(key, value string) error
}

// AreaProvider hands out the session-scoped or the persistent area.
type AreaProvider interface {
	Area(session bool) (Area, error)
}

// WebStore keeps values in browser-style storage areas. The key is the
// profile alone; the app name does not take part in it, as each origin
// already has its own areas.
type WebStore struct {
	areas AreaProvider
	codec codec.Codec
}

// NewWebStore creates a WebStore. A nil codec selects JSON.
func NewWebStore(areas AreaProvider, c codec.Codec) *WebStore {
	if c == nil {
		c = codec.JSON()
	}
	return &WebStore{
		areas: areas,
		codec: c,
	}
}

func (s *WebStore) Save(loc types.Location, _ string, profile string, v any) error {
	text, err := s.codec.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSerialize, "failed to serialize %q as %s", profile, s.codec.Name()).
			WithDetail("profile", profile)
	}
	return s.set(loc, profile, string(text))
}

func (s *WebStore) SaveRaw(loc types.Location, _ string, profile string, data []byte) error {
	return s.set(loc, profile, base64.StdEncoding.EncodeToString(data))
}

func (s *WebStore) Load(loc types.Location, _ string, profile string, v any) error {
	text, err := s.get(loc, profile)
	if err != nil {
		return err
	}
	if err := s.codec.Unmarshal([]byte(text), v); err != nil {
		return errors.Wrapf(err, errors.ErrDeserialize, "failed to deserialize %q as %s", profile, s.codec.Name()).
			WithDetail("profile", profile)
	}
	return nil
}

func (s *WebStore) LoadRaw(loc types.Location, _ string, profile string) ([]byte, error) {
	text, err := s.get(loc, profile)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "failed to decode raw value %q", profile).
			WithDetail("profile", profile)
	}
	return data, nil
}

func (s *WebStore) area(loc types.Location) (Area, error) {
	if s.areas == nil {
		return nil, errors.Newf(errors.ErrLocationNotFound, "save location not found for %s", loc)
	}
	a, err := s.areas.Area(loc.IsSession())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocationNotFound, "save location not found for %s", loc).
			WithDetail("location", loc.String())
	}
	if a == nil {
		return nil, errors.Newf(errors.ErrLocationNotFound, "save location not found for %s", loc).
			WithDetail("location", loc.String())
	}
	return a, nil
}

func (s *WebStore) set(loc types.Location, profile, value string) error {
	a, err := s.area(loc)
	if err != nil {
		return err
	}
	if err := a.SetItem(profile, value); err != nil {
		return errors.Wrapf(err, errors.ErrSaveWriteFailed, "failed to write %q", profile).
			WithDetail("profile", profile)
	}
	logger := logging.GetLogger("storage")
	logger.Debug().Str("key", profile).Bool("session", loc.IsSession()).Int("chars", len(value)).Msg("saved")
	return nil
}

func (s *WebStore) get(loc types.Location, profile string) (string, error) {
	a, err := s.area(loc)
	if err != nil {
		return "", err
	}
	value, ok, err := a.GetItem(profile)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLocationNotFound, "save location not found for %s", loc).
			WithDetail("profile", profile)
	}
	if !ok {
		return "", errors.Newf(errors.ErrSaveNotFound, "save %q not found", profile).
			WithDetail("profile", profile)
	}
	return value, nil
}
