package fetch

import (
	"net/url"
	"path/filepath"

	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/future"
)

// Source loads paths by fetching them over HTTP.
type Source struct {
	factory Factory
	base    *url.URL
	opts    []Option
}

// NewSource creates a Source. When baseURL is non-empty, relative paths are
// resolved against it; otherwise paths are used as URLs unchanged, which in
// a browser makes them relative to the page.
func NewSource(factory Factory, baseURL string, opts ...Option) (*Source, error) {
	s := &Source{factory: factory, opts: opts}
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid base URL %q", baseURL)
		}
		s.base = u
	}
	return s, nil
}

// Load starts a GET for path.
func (s *Source) Load(path string) future.Future {
	return Start(s.factory, s.Resolve(path), s.opts...)
}

// Resolve returns the URL that Load would request for path.
func (s *Source) Resolve(path string) string {
	path = filepath.ToSlash(path)
	if s.base == nil {
		return path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	return s.base.ResolveReference(ref).String()
}
