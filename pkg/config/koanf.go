package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/loadfile/pkg/codec"
	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "LOADFILE_"

	// EnvConfigFile points at an explicit config file
	EnvConfigFile = "LOADFILE_CONFIG"
)

// Config is the resolved configuration
type Config struct {
	Codec string `koanf:"codec"`
	App   string `koanf:"app"`
	Dirs  Dirs   `koanf:"dirs"`
	Fetch Fetch  `koanf:"fetch"`
}

// Dirs overrides the base directory of each location
type Dirs struct {
	Cache  string `koanf:"cache"`
	Config string `koanf:"config"`
	Data   string `koanf:"data"`
}

// Fetch configures HTTP loading
type Fetch struct {
	BaseURL         string        `koanf:"base_url"`
	MinPollInterval time.Duration `koanf:"min_poll_interval"`
	MaxPollInterval time.Duration `koanf:"max_poll_interval"`
}

// PathOverrides converts Dirs for paths.New
func (c *Config) PathOverrides() paths.Overrides {
	return paths.Overrides{
		Cache:  c.Dirs.Cache,
		Config: c.Dirs.Config,
		Data:   c.Dirs.Data,
	}
}

// ResolveCodec returns the configured codec
func (c *Config) ResolveCodec() (codec.Codec, error) {
	return codec.Lookup(c.Codec)
}

type loadOptions struct {
	file      string
	overrides map[string]interface{}
}

// Option customizes Load
type Option func(*loadOptions)

// WithFile loads path instead of searching for a user config file. A
// missing explicit file is an error.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.file = path }
}

// WithOverrides applies dotted keys (e.g. "fetch.base_url") last
func WithOverrides(values map[string]interface{}) Option {
	return func(o *loadOptions) { o.overrides = values }
}

// Load builds the configuration from all sources
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user file if there is one
	path, explicit := o.file, o.file != ""
	if path == "" {
		path = os.Getenv(EnvConfigFile)
		explicit = path != ""
	}
	if path == "" {
		path = findUserConfig()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if explicit {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
					WithDetail("path", path)
			}
		} else if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Programmatic overrides
	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	if _, err := cfg.ResolveCodec(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid codec")
	}
	if cfg.Fetch.MaxPollInterval < cfg.Fetch.MinPollInterval {
		cfg.Fetch.MaxPollInterval = cfg.Fetch.MinPollInterval
	}
	return &cfg, nil
}

// envKey maps LOADFILE_FETCH__BASE_URL to fetch.base_url
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func findUserConfig() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(xdg.ConfigHome, paths.AppDirName, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
