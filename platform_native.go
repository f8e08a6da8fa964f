//go:build !(js && wasm)

package loadfile

import (
	"net/http"
	"strings"

	"github.com/arthur-debert/loadfile/pkg/config"
	"github.com/arthur-debert/loadfile/pkg/fetch"
	"github.com/arthur-debert/loadfile/pkg/filesystem"
	"github.com/arthur-debert/loadfile/pkg/future"
	"github.com/arthur-debert/loadfile/pkg/loader"
	"github.com/arthur-debert/loadfile/pkg/paths"
	"github.com/arthur-debert/loadfile/pkg/storage"
)

func platform(cfg *config.Config) (Source, storage.Store, error) {
	c, err := cfg.ResolveCodec()
	if err != nil {
		return nil, nil, err
	}
	fsys := filesystem.NewOS()
	remote, err := fetch.NewSource(
		fetch.NewHTTPFactory(http.DefaultClient),
		cfg.Fetch.BaseURL,
		fetch.WithPollInterval(cfg.Fetch.MinPollInterval, cfg.Fetch.MaxPollInterval),
	)
	if err != nil {
		return nil, nil, err
	}
	source := &routedSource{local: loader.NewFileSource(fsys), remote: remote}
	store := storage.NewFileStore(fsys, paths.New(cfg.PathOverrides()), c)
	return source, store, nil
}

// routedSource reads local paths from disk and fetches http(s) URLs.
type routedSource struct {
	local  Source
	remote Source
}

func (s *routedSource) Load(path string) future.Future {
	if isRemote(path) {
		return s.remote.Load(path)
	}
	return s.local.Load(path)
}

func isRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
