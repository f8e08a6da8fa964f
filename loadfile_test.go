package loadfile

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/loadfile/pkg/config"
	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/filesystem"
	"github.com/arthur-debert/loadfile/pkg/loader"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/arthur-debert/loadfile/pkg/storage"
	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Volume int    `json:"volume"`
	Name   string `json:"name"`
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// nativeConfig returns a config whose directories all live under a temp dir
// and that ignores any user config file.
func nativeConfig(t *testing.T, overrides map[string]interface{}) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	t.Setenv(config.EnvConfigFile, empty)

	values := map[string]interface{}{
		"dirs.cache":  filepath.Join(dir, "cache"),
		"dirs.config": filepath.Join(dir, "config"),
		"dirs.data":   filepath.Join(dir, "data"),
	}
	for k, v := range overrides {
		values[k] = v
	}
	cfg, err := config.Load(config.WithOverrides(values))
	require.NoError(t, err)
	return cfg, dir
}

func TestClientWithInjectedBackends(t *testing.T) {
	memfs := filesystem.NewMemory()
	require.NoError(t, memfs.WriteFile("/assets/data.bin", []byte{0x00, 0x01, 0x02}, 0644))
	c := New(loader.NewFileSource(memfs), storage.NewWebStore(storage.NewMemoryAreas(), nil))

	data, err := c.LoadFile("/assets/data.bin").Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, data)

	require.NoError(t, c.SaveRaw(types.Cache, "game", "blob", []byte{0xff, 0x00}))
	raw, err := c.LoadRaw(types.Cache, "game", "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x00}, raw)

	require.NoError(t, c.Save(types.Config, "game", "settings", settings{Volume: 7, Name: "p1"}))
	var got settings
	require.NoError(t, c.Load(types.Config, "game", "settings", &got))
	assert.Equal(t, settings{Volume: 7, Name: "p1"}, got)
}

func TestNativeClientRoundTrip(t *testing.T) {
	cfg, dir := nativeConfig(t, nil)
	c, err := NewFromConfig(cfg)
	require.NoError(t, err)

	require.NoError(t, c.SaveRaw(types.Data, "game", "save1", []byte("hello")))
	assert.FileExists(t, filepath.Join(dir, "data", "game", "save1"))

	raw, err := c.LoadRaw(types.Data, "game", "save1")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw)

	require.NoError(t, c.Save(types.Cache, "game", "prefs", settings{Volume: 3}))
	var got settings
	require.NoError(t, c.Load(types.Cache, "game", "prefs", &got))
	assert.Equal(t, 3, got.Volume)

	_, err = c.LoadRaw(types.Config, "game", "never-saved")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSaveNotFound))
	assert.Contains(t, err.Error(), "never-saved")
}

func TestNativeLoadFileReadsDisk(t *testing.T) {
	cfg, dir := nativeConfig(t, nil)
	c, err := NewFromConfig(cfg)
	require.NoError(t, err)

	path := filepath.Join(dir, "level.map")
	require.NoError(t, os.WriteFile(path, []byte("map"), 0644))

	data, err := c.LoadFile(path).Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []byte("map"), data)

	_, err = c.LoadFile(filepath.Join(dir, "nope")).Wait(waitCtx(t))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNativeLoadFileRoutesURLsToFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/data.bin", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0x00, 0x01, 0x02})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg, _ := nativeConfig(t, map[string]interface{}{"fetch.min_poll_interval": "1ms"})
	c, err := NewFromConfig(cfg)
	require.NoError(t, err)

	data, err := c.LoadFile(srv.URL + "/data.bin").Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, data)

	_, err = c.LoadFile(srv.URL + "/missing.bin").Wait(waitCtx(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHTTPStatus))
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"http://example.com/a", true},
		{"HTTPS://example.com/a", true},
		{"/var/data/a", false},
		{"assets/http://x", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isRemote(tt.path))
		})
	}
}

func TestNewFromConfigRejectsBadBaseURL(t *testing.T) {
	cfg, _ := nativeConfig(t, map[string]interface{}{"fetch.base_url": "http://[::1"})
	_, err := NewFromConfig(cfg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPackageLevelFunctions(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	t.Setenv(config.EnvConfigFile, empty)
	t.Setenv("LOADFILE_DIRS__CONFIG", filepath.Join(dir, "config"))

	require.NoError(t, Save(types.Config, "game", "settings", settings{Name: "default"}))
	var got settings
	require.NoError(t, Load(types.Config, "game", "settings", &got))
	assert.Equal(t, "default", got.Name)

	require.NoError(t, SaveRaw(types.Config, "game", "raw", []byte{1}))
	raw, err := LoadRaw(types.Config, "game", "raw")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, raw)

	data, err := LoadFile(filepath.Join(dir, "config", "game", "raw")).Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)
}

func TestLoadFileLogsThroughConfiguredLogger(t *testing.T) {
	memfs := filesystem.NewMemory()
	require.NoError(t, memfs.WriteFile("/a.bin", []byte{1}, 0644))
	c := New(loader.NewFileSource(memfs), storage.NewWebStore(storage.NewMemoryAreas(), nil))

	var buf bytes.Buffer
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logging.SetLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
	defer func() {
		logging.SetLogger(zerolog.Nop())
		zerolog.SetGlobalLevel(prev)
	}()

	_, err := c.LoadFile("/a.bin").Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"component":"loadfile"`)
	assert.Contains(t, buf.String(), `"path":"/a.bin"`)
}
