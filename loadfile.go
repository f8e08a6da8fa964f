// Package loadfile loads files and persists small values the same way on a
// native host and in a browser.
//
// LoadFile returns a future for the bytes at a path. Natively the path is
// read from the filesystem (or fetched, when it is an http(s) URL); under
// js/wasm it is fetched with XMLHttpRequest relative to the page. Save, Load
// and their raw variants keep values under <base dir>/<app>/<profile> on
// disk, or in local/session storage in the browser.
//
// The package-level functions use a client built on first use from the
// layered configuration in pkg/config. Programs that need different wiring
// construct their own Client with New.
package loadfile

import (
	"sync"

	"github.com/arthur-debert/loadfile/pkg/config"
	"github.com/arthur-debert/loadfile/pkg/future"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/arthur-debert/loadfile/pkg/storage"
	"github.com/arthur-debert/loadfile/pkg/types"
)

// Source produces file contents for a path.
type Source interface {
	Load(path string) future.Future
}

// Client pairs a byte source with a value store.
type Client struct {
	source Source
	store  storage.Store
}

// New creates a Client from an explicit source and store.
func New(source Source, store storage.Store) *Client {
	return &Client{source: source, store: store}
}

// NewFromConfig builds the platform client described by cfg.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	source, store, err := platform(cfg)
	if err != nil {
		return nil, err
	}
	return New(source, store), nil
}

// LoadFile starts loading path.
func (c *Client) LoadFile(path string) future.Future {
	logger := logging.GetLogger("loadfile")
	logger.Trace().Str("path", path).Msg("load file")
	return c.source.Load(path)
}

func (c *Client) Save(loc types.Location, app, profile string, v any) error {
	return c.store.Save(loc, app, profile, v)
}

func (c *Client) SaveRaw(loc types.Location, app, profile string, data []byte) error {
	return c.store.SaveRaw(loc, app, profile, data)
}

func (c *Client) Load(loc types.Location, app, profile string, v any) error {
	return c.store.Load(loc, app, profile, v)
}

func (c *Client) LoadRaw(loc types.Location, app, profile string) ([]byte, error) {
	return c.store.LoadRaw(loc, app, profile)
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the shared client, building it on first call.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			defaultErr = err
			return
		}
		defaultClient, defaultErr = NewFromConfig(cfg)
	})
	return defaultClient, defaultErr
}

// LoadFile starts loading path with the default client.
func LoadFile(path string) future.Future {
	c, err := Default()
	if err != nil {
		return future.Ready(nil, err)
	}
	return c.LoadFile(path)
}

// Save stores v under profile with the default client.
func Save(loc types.Location, app, profile string, v any) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Save(loc, app, profile, v)
}

// SaveRaw stores data under profile with the default client.
func SaveRaw(loc types.Location, app, profile string, data []byte) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.SaveRaw(loc, app, profile, data)
}

// Load reads the value under profile into v with the default client.
func Load(loc types.Location, app, profile string, v any) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Load(loc, app, profile, v)
}

// LoadRaw returns the bytes under profile with the default client.
func LoadRaw(loc types.Location, app, profile string) ([]byte, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.LoadRaw(loc, app, profile)
}
