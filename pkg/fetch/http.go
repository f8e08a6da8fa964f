package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// NewHTTPFactory returns a Factory whose requests run on net/http while
// presenting the same lifecycle as a browser XMLHttpRequest: status stays 0
// until headers arrive, ready-state advances to Done when the body has been
// read, and a transport failure ends in Done with status 0. Requests
// implement Notifier. A nil client uses http.DefaultClient.
func NewHTTPFactory(client *http.Client) Factory {
	if client == nil {
		client = http.DefaultClient
	}
	return func() (Request, error) {
		return &httpRequest{client: client}, nil
	}
}

type httpRequest struct {
	client *http.Client

	mu           sync.Mutex
	method       string
	url          string
	responseType ResponseType
	ready        ReadyState
	status       int
	body         []byte
	sent         bool
	settled      bool
	listeners    []func()
}

func (r *httpRequest) Open(method, rawURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sent {
		return fmt.Errorf("request already sent")
	}
	if method != http.MethodGet {
		return fmt.Errorf("unsupported method %q", method)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q in %q", u.Scheme, rawURL)
	}
	r.method = method
	r.url = rawURL
	r.ready = Opened
	return nil
}

func (r *httpRequest) SetResponseType(t ResponseType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sent {
		return fmt.Errorf("response type cannot change after send")
	}
	if t != ResponseTypeArrayBuffer && t != "" {
		return fmt.Errorf("unsupported response type %q", t)
	}
	r.responseType = t
	return nil
}

func (r *httpRequest) Send() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready != Opened || r.sent {
		return fmt.Errorf("request is not open (state %s)", r.ready)
	}
	req, err := http.NewRequest(r.method, r.url, nil)
	if err != nil {
		return err
	}
	r.sent = true
	go r.run(req)
	return nil
}

// run performs the exchange. There is no cancellation: once sent, the
// request runs to completion even if nobody polls it anymore.
func (r *httpRequest) run(req *http.Request) {
	resp, err := r.client.Do(req)
	if err != nil {
		r.finish(0, nil)
		return
	}
	defer resp.Body.Close()

	r.mu.Lock()
	r.status = resp.StatusCode
	r.ready = HeadersReceived
	r.mu.Unlock()

	r.mu.Lock()
	r.ready = Loading
	r.mu.Unlock()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.finish(0, nil)
		return
	}
	r.finish(resp.StatusCode, body)
}

func (r *httpRequest) finish(status int, body []byte) {
	r.mu.Lock()
	r.status = status
	r.body = body
	r.ready = Done
	r.settled = true
	listeners := r.listeners
	r.listeners = nil
	r.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (r *httpRequest) Status() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status, nil
}

func (r *httpRequest) ReadyState() ReadyState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

func (r *httpRequest) Response() (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready != Done || r.body == nil {
		return nil, nil
	}
	return r.body, nil
}

func (r *httpRequest) OnSettled(fn func()) {
	r.mu.Lock()
	if r.settled {
		r.mu.Unlock()
		fn()
		return
	}
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}
