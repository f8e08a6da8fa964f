//go:build js && wasm

package fetch

import (
	"fmt"
	"syscall/js"
)

// NewXHRFactory returns a Factory backed by the browser's XMLHttpRequest.
// JavaScript exceptions thrown by the request object are returned as
// errors rather than panics.
func NewXHRFactory() Factory {
	return func() (req Request, err error) {
		defer catchJS(&err)
		ctor := js.Global().Get("XMLHttpRequest")
		if !ctor.Truthy() {
			return nil, fmt.Errorf("XMLHttpRequest is not available")
		}
		return &xhrRequest{v: ctor.New()}, nil
	}
}

type xhrRequest struct {
	v js.Value
}

func (r *xhrRequest) Open(method, url string) (err error) {
	defer catchJS(&err)
	r.v.Call("open", method, url)
	return nil
}

func (r *xhrRequest) SetResponseType(t ResponseType) (err error) {
	defer catchJS(&err)
	r.v.Set("responseType", string(t))
	// Unsupported values are silently ignored by the browser.
	if got := r.v.Get("responseType").String(); got != string(t) {
		return fmt.Errorf("response type %q not supported, got %q", t, got)
	}
	return nil
}

func (r *xhrRequest) Send() (err error) {
	defer catchJS(&err)
	r.v.Call("send")
	return nil
}

func (r *xhrRequest) Status() (status int, err error) {
	defer catchJS(&err)
	return r.v.Get("status").Int(), nil
}

func (r *xhrRequest) ReadyState() ReadyState {
	return ReadyState(r.v.Get("readyState").Int())
}

func (r *xhrRequest) Response() (body any, err error) {
	defer catchJS(&err)
	resp := r.v.Get("response")
	if resp.IsNull() || resp.IsUndefined() {
		return nil, nil
	}
	uint8Array := js.Global().Get("Uint8Array")
	switch {
	case resp.InstanceOf(uint8Array):
		return jsBytes{resp}, nil
	case resp.InstanceOf(js.Global().Get("ArrayBuffer")):
		return jsBytes{uint8Array.New(resp)}, nil
	}
	return resp, nil
}

// OnSettled hooks load and error. Both handlers are released after the
// first one fires.
func (r *xhrRequest) OnSettled(fn func()) {
	var onload, onerror js.Func
	settle := func(this js.Value, args []js.Value) any {
		r.v.Set("onload", js.Null())
		r.v.Set("onerror", js.Null())
		onload.Release()
		onerror.Release()
		fn()
		return nil
	}
	onload = js.FuncOf(settle)
	onerror = js.FuncOf(settle)
	r.v.Set("onload", onload)
	r.v.Set("onerror", onerror)
}

// jsBytes is a JavaScript Uint8Array.
type jsBytes struct {
	v js.Value
}

func (b jsBytes) Len() int {
	return b.v.Get("length").Int()
}

func (b jsBytes) CopyTo(dst []byte) int {
	return js.CopyBytesToGo(dst, b.v)
}

func catchJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = jsErr
		return
	}
	*err = fmt.Errorf("%v", r)
}
