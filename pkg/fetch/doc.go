// Package fetch bridges a single-shot, callback-driven HTTP request object
// (the browser's XMLHttpRequest, or an emulation of it) to the poll-based
// future.Future used by the rest of loadfile.
//
// # Lifecycle
//
// Start creates the request, opens a GET, asks for a binary response and
// sends it exactly once. Each Poll then inspects the status code and the
// ready-state without blocking:
//
//	status 2xx, ready-state Done  -> Succeeded, body decoded into []byte
//	status 2xx, not yet Done      -> pending
//	status 0,   not yet Done      -> pending (status not known yet)
//	status 0,   Done              -> Failed (network error)
//	any other status              -> Failed (non-success status code)
//
// Terminal outcomes are sticky. Nothing is retried and no timeout is
// applied; a stalled request stays pending until the caller stops waiting.
//
// # Waking
//
// Requests that implement Notifier get one completion callback registered
// on the first poll, and Wait sleeps until it fires. Other requests are
// polled with a doubling delay between the configured minimum and maximum.
//
// # Hosts
//
// NewHTTPFactory emulates the request object on top of net/http and is what
// native builds use for http:// and https:// paths. Under GOOS=js
// GOARCH=wasm, NewXHRFactory drives the browser's XMLHttpRequest through
// syscall/js.
package fetch
