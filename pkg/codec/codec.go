// Package codec serializes structured values to the textual formats that
// persistence writes: JSON by default, TOML and YAML on request.
package codec

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec converts structured values to and from text.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Default is the codec used when none is configured.
const Default = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type tomlCodec struct{}

func (tomlCodec) Name() string                       { return "toml" }
func (tomlCodec) Marshal(v any) ([]byte, error)      { return toml.Marshal(v) }
func (tomlCodec) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

var registry = map[string]Codec{
	"json": jsonCodec{},
	"toml": tomlCodec{},
	"yaml": yamlCodec{},
	"yml":  yamlCodec{},
}

// JSON returns the JSON codec.
func JSON() Codec { return jsonCodec{} }

// Lookup returns the codec registered under name. An empty name selects
// the default codec.
func Lookup(name string) (Codec, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = Default
	}
	c, ok := registry[name]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown codec %q (available: %s)",
			name, strings.Join(Names(), ", ")).WithDetail("codec", name)
	}
	return c, nil
}

// Names lists the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
