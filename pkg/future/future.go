// Package future defines the poll-based asynchronous byte result shared by
// every loader backend.
package future

import "context"

// Future is the eventual outcome of a single load.
//
// Poll performs one non-blocking check. It returns done=false while the
// load is still in flight; once done is true the data or error is final and
// every later call returns the same outcome. Wait drives Poll until the
// outcome is final or ctx ends; ending ctx only abandons the wait, it does
// not cancel the underlying load.
type Future interface {
	Poll() (data []byte, done bool, err error)
	Wait(ctx context.Context) ([]byte, error)
}

type ready struct {
	data []byte
	err  error
}

// Ready returns a Future whose outcome is already known. It is done on the
// first poll.
func Ready(data []byte, err error) Future {
	if err != nil {
		return &ready{err: err}
	}
	return &ready{data: data}
}

func (r *ready) Poll() ([]byte, bool, error) {
	return r.data, true, r.err
}

func (r *ready) Wait(ctx context.Context) ([]byte, error) {
	return r.data, r.err
}
