//go:build js && wasm

package storage

import (
	"fmt"
	"syscall/js"
)

// BrowserAreas returns the page's window.sessionStorage and
// window.localStorage. Access is checked on every call since storage can be
// disabled or throw (private browsing, sandboxed frames).
func BrowserAreas() AreaProvider {
	return browserAreas{}
}

type browserAreas struct{}

func (browserAreas) Area(session bool) (area Area, err error) {
	defer catchJS(&err)
	window := js.Global().Get("window")
	if !window.Truthy() {
		return nil, fmt.Errorf("no window object")
	}
	name := "localStorage"
	if session {
		name = "sessionStorage"
	}
	storage := window.Get(name)
	if !storage.Truthy() {
		return nil, fmt.Errorf("%s is not available", name)
	}
	return &jsArea{v: storage}, nil
}

// jsArea wraps a DOM Storage object.
type jsArea struct {
	v js.Value
}

func (a *jsArea) GetItem(key string) (value string, ok bool, err error) {
	defer catchJS(&err)
	v := a.v.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// SetItem throws QuotaExceededError when the origin is out of space.
func (a *jsArea) SetItem(key, value string) (err error) {
	defer catchJS(&err)
	a.v.Call("setItem", key, value)
	return nil
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
