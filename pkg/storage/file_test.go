// pkg/storage/file_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Test native persistence: layout, round-trips and error taxonomy

package storage

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/loadfile/pkg/codec"
	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/filesystem"
	"github.com/arthur-debert/loadfile/pkg/paths"
	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameSave struct {
	Level   int      `json:"level" toml:"level" yaml:"level"`
	Player  string   `json:"player" toml:"player" yaml:"player"`
	Visited []string `json:"visited" toml:"visited" yaml:"visited"`
}

func testPaths() paths.Paths {
	return paths.New(paths.Overrides{
		Cache:  "/home/u/.cache",
		Config: "/home/u/.config",
		Data:   "/home/u/.local/share",
	})
}

func newTestFileStore(t *testing.T, c codec.Codec) (*FileStore, types.FS) {
	t.Helper()
	mem := filesystem.NewMemory()
	return NewFileStore(mem, testPaths(), c), mem
}

func TestFileStoreLayout(t *testing.T) {
	store, mem := newTestFileStore(t, nil)

	require.NoError(t, store.SaveRaw(types.Config, "mygame", "keys", []byte("up=w")))

	data, err := mem.ReadFile(filepath.Join("/home/u/.config", "mygame", "keys"))
	require.NoError(t, err)
	assert.Equal(t, []byte("up=w"), data)

	for _, loc := range types.Locations {
		require.NoError(t, store.SaveRaw(loc, "mygame", "probe", []byte(loc.String())))
	}
	data, err = mem.ReadFile(filepath.Join("/home/u/.cache", "mygame", "probe"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cache"), data)
	data, err = mem.ReadFile(filepath.Join("/home/u/.local/share", "mygame", "probe"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestFileStoreRawRoundTrip(t *testing.T) {
	store, _ := newTestFileStore(t, nil)

	payloads := [][]byte{
		{},
		{0x00, 0x01, 0x02},
		{0xff, 0xfe, 0x00, 0x0a, 0x0d},
		[]byte("plain text\n"),
	}
	for i, want := range payloads {
		profile := "blob-" + string(rune('a'+i))
		require.NoError(t, store.SaveRaw(types.Data, "app", profile, want))
		got, err := store.LoadRaw(types.Data, "app", profile)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFileStoreStructuredRoundTrip(t *testing.T) {
	want := gameSave{Level: 3, Player: "ada", Visited: []string{"cave", "forest"}}

	for _, name := range []string{"json", "toml", "yaml"} {
		t.Run(name, func(t *testing.T) {
			c, err := codec.Lookup(name)
			require.NoError(t, err)
			store, _ := newTestFileStore(t, c)

			require.NoError(t, store.Save(types.Data, "mygame", "slot1", want))

			var got gameSave
			require.NoError(t, store.Load(types.Data, "mygame", "slot1", &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	store, _ := newTestFileStore(t, nil)

	require.NoError(t, store.SaveRaw(types.Cache, "app", "p", []byte("a much longer first value")))
	require.NoError(t, store.SaveRaw(types.Cache, "app", "p", []byte("short")))

	got, err := store.LoadRaw(types.Cache, "app", "p")
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), got)
}

func TestFileStoreNotFound(t *testing.T) {
	store, _ := newTestFileStore(t, nil)

	_, err := store.LoadRaw(types.Data, "mygame", "never-saved")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSaveNotFound))
	assert.Contains(t, err.Error(), "never-saved")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var v gameSave
	err = store.Load(types.Data, "mygame", "never-saved", &v)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSaveNotFound))
	assert.Equal(t, "never-saved", errors.GetErrorDetails(err)["profile"])
}

func TestFileStoreSerializationErrors(t *testing.T) {
	store, _ := newTestFileStore(t, nil)

	err := store.Save(types.Data, "app", "bad", map[string]any{"f": func() {}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrSerialize))

	require.NoError(t, store.SaveRaw(types.Data, "app", "garbage", []byte("{not json")))
	var v gameSave
	err = store.Load(types.Data, "app", "garbage", &v)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeserialize))
}

func TestFileStoreIOErrors(t *testing.T) {
	ro := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	store := NewFileStore(ro, testPaths(), nil)

	err := store.SaveRaw(types.Data, "app", "p", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))

	err = store.Save(types.Data, "app", "p", gameSave{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

type noPaths struct{ paths.Paths }

func (noPaths) SaveFolder(types.Location, string) (string, error) {
	return "", errors.New(errors.ErrLocationNotFound, "save location not found")
}

func (noPaths) SaveLocation(types.Location, string, string) (string, error) {
	return "", errors.New(errors.ErrLocationNotFound, "save location not found")
}

func TestFileStoreLocationNotFound(t *testing.T) {
	store := NewFileStore(filesystem.NewMemory(), noPaths{}, nil)

	err := store.SaveRaw(types.Config, "app", "p", []byte("x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrLocationNotFound))

	_, err = store.LoadRaw(types.Config, "app", "p")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLocationNotFound))
}

func TestFileStoreRejectsEmptyProfile(t *testing.T) {
	store, _ := newTestFileStore(t, nil)

	err := store.SaveRaw(types.Data, "app", "", []byte("x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
