package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/rs/zerolog"
)

// State is the progress of a single fetch.
type State int

const (
	// Created means the request object exists but has not been sent.
	Created State = iota
	// Sent means the GET was dispatched and has not been polled yet.
	Sent
	// Pending means at least one poll found the response incomplete.
	Pending
	// Succeeded is terminal: the body was decoded.
	Succeeded
	// Failed is terminal: setup, transport, status or decoding failed.
	Failed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Sent:
		return "sent"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

const (
	// DefaultMinPollInterval is the first delay between polls of a request
	// that cannot notify completion.
	DefaultMinPollInterval = 5 * time.Millisecond
	// DefaultMaxPollInterval caps the doubling delay.
	DefaultMaxPollInterval = 250 * time.Millisecond
)

type options struct {
	minPoll time.Duration
	maxPoll time.Duration
}

// Option configures a fetch.
type Option func(*options)

// WithPollInterval bounds the delay Wait uses between polls of requests
// that do not implement Notifier. Non-positive values keep the defaults.
func WithPollInterval(min, max time.Duration) Option {
	return func(o *options) {
		if min > 0 {
			o.minPoll = min
		}
		if max > 0 {
			o.maxPoll = max
		}
		if o.maxPoll < o.minPoll {
			o.maxPoll = o.minPoll
		}
	}
}

// Fetch is one in-flight GET request exposed as a future.Future.
//
// A Fetch owns its request object and shares nothing with other fetches.
// It is meant to be driven by a single goroutine; Poll and Wait must not
// be called concurrently on the same Fetch.
type Fetch struct {
	url   string
	req   Request
	state State
	data  []byte
	err   error
	polls int

	// watched is set once the completion callback has been considered,
	// so registration happens at most once per request.
	watched bool
	// settled receives a token when a Notifier request completes; nil for
	// requests that must be polled.
	settled chan struct{}

	opts   options
	logger zerolog.Logger
}

// Start creates a request with factory and sends a GET for url. Failures
// while creating, opening, configuring or sending the request produce a
// Fetch that is already Failed; Start itself never returns an error.
func Start(factory Factory, url string, opts ...Option) *Fetch {
	f := &Fetch{
		url:   url,
		state: Created,
		opts: options{
			minPoll: DefaultMinPollInterval,
			maxPoll: DefaultMaxPollInterval,
		},
		logger: logging.GetLogger("fetch").With().Str("url", url).Logger(),
	}
	for _, opt := range opts {
		opt(&f.opts)
	}

	if factory == nil {
		f.fail(errors.New(errors.ErrRequestCreate, "failed to create an HTTP request: no request factory"))
		return f
	}
	req, err := factory()
	if err != nil {
		f.fail(errors.Wrap(err, errors.ErrRequestCreate, "failed to create an HTTP request"))
		return f
	}
	if req == nil {
		f.fail(errors.New(errors.ErrRequestCreate, "failed to create an HTTP request: factory returned nil"))
		return f
	}
	f.req = req

	if err := req.Open(http.MethodGet, url); err != nil {
		f.fail(errors.Wrap(err, errors.ErrRequestCreate, "failed to create a GET request"))
		return f
	}
	// The response type is configured before the single send; sending
	// first would leave the request streaming text.
	if err := req.SetResponseType(ResponseTypeArrayBuffer); err != nil {
		f.fail(errors.Wrap(err, errors.ErrResponseType, "failed to set the response type"))
		return f
	}
	if err := req.Send(); err != nil {
		f.fail(errors.Wrap(err, errors.ErrRequestSend, "failed to send a GET request"))
		return f
	}

	f.state = Sent
	f.logger.Debug().Msg("GET sent")
	return f
}

// URL returns the requested URL.
func (f *Fetch) URL() string {
	return f.url
}

// State returns the current lifecycle state.
func (f *Fetch) State() State {
	return f.state
}

// Polls returns how many non-terminal polls inspected the request.
func (f *Fetch) Polls() int {
	return f.polls
}

// Poll checks the request once without blocking.
func (f *Fetch) Poll() ([]byte, bool, error) {
	switch f.state {
	case Succeeded:
		return f.data, true, nil
	case Failed:
		return nil, true, f.err
	}

	f.polls++
	f.watch()

	status, err := f.req.Status()
	if err != nil {
		f.fail(errors.Wrap(err, errors.ErrRequestSend, "failed to get the request status"))
		return nil, true, f.err
	}
	ready := f.req.ReadyState()

	switch {
	case status/100 == 2 && ready == Done:
		body, err := f.req.Response()
		if err != nil {
			f.fail(errors.Wrap(err, errors.ErrResponseDecode, "failed to get HTTP response"))
			return nil, true, f.err
		}
		data, err := decodeBody(body)
		if err != nil {
			loadErr, ok := err.(*errors.LoadError)
			if !ok {
				loadErr = errors.Wrap(err, errors.ErrResponseDecode, "failed to decode response")
			}
			f.fail(loadErr)
			return nil, true, f.err
		}
		f.data = data
		f.state = Succeeded
		f.logger.Debug().Int("status", status).Int("bytes", len(data)).Int("polls", f.polls).Msg("fetch succeeded")
		return f.data, true, nil

	case status/100 == 2, status/100 == 0 && ready != Done:
		f.state = Pending
		f.logger.Trace().Int("status", status).Stringer("ready", ready).Msg("fetch pending")
		return nil, false, nil

	case status/100 == 0:
		// Done without a status: the transport gave up (DNS, CORS,
		// connection reset) and no response will ever arrive.
		f.fail(errors.New(errors.ErrRequestSend, "request failed before a response was received"))
		return nil, true, f.err

	default:
		f.fail(errors.Newf(errors.ErrHTTPStatus, "non-success status code %d returned", status).
			WithDetail("status", status))
		return nil, true, f.err
	}
}

// Wait polls until the fetch is terminal or ctx ends. Ending ctx abandons
// the wait only: the request is not aborted and Poll may still be called
// later.
func (f *Fetch) Wait(ctx context.Context) ([]byte, error) {
	delay := f.opts.minPoll
	for {
		data, done, err := f.Poll()
		if done {
			return data, err
		}

		if f.settled != nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-f.settled:
			}
			continue
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		if delay < f.opts.maxPoll {
			delay *= 2
			if delay > f.opts.maxPoll {
				delay = f.opts.maxPoll
			}
		}
	}
}

// watch registers the completion callback on the first poll.
func (f *Fetch) watch() {
	if f.watched {
		return
	}
	f.watched = true

	n, ok := f.req.(Notifier)
	if !ok {
		return
	}
	settled := make(chan struct{}, 1)
	f.settled = settled
	n.OnSettled(func() {
		select {
		case settled <- struct{}{}:
		default:
		}
	})
	f.logger.Trace().Msg("completion callback registered")
}

func (f *Fetch) fail(err *errors.LoadError) {
	f.err = err.WithDetail("url", f.url)
	f.state = Failed
	f.logger.Debug().Err(err).Int("polls", f.polls).Msg("fetch failed")
}
