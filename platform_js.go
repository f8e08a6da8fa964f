//go:build js && wasm

package loadfile

import (
	"github.com/arthur-debert/loadfile/pkg/config"
	"github.com/arthur-debert/loadfile/pkg/fetch"
	"github.com/arthur-debert/loadfile/pkg/storage"
)

// In the browser every path is a URL, relative to the page unless
// fetch.base_url is set. Values go to local or session storage.
func platform(cfg *config.Config) (Source, storage.Store, error) {
	c, err := cfg.ResolveCodec()
	if err != nil {
		return nil, nil, err
	}
	source, err := fetch.NewSource(
		fetch.NewXHRFactory(),
		cfg.Fetch.BaseURL,
		fetch.WithPollInterval(cfg.Fetch.MinPollInterval, cfg.Fetch.MaxPollInterval),
	)
	if err != nil {
		return nil, nil, err
	}
	return source, storage.NewWebStore(storage.BrowserAreas(), c), nil
}
