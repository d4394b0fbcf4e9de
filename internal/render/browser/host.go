//go:build js && wasm

package browser

import (
	"errors"
	"strconv"
	"syscall/js"

	"chartd/internal/render"
)

// Element is a DOM element found by id.
type Element struct {
	id string
	v  js.Value
}

func (e *Element) ID() string { return e.id }

// Host looks elements up in the page document.
type Host struct {
	doc js.Value
}

func NewHost() *Host { return &Host{doc: js.Global().Get("document")} }

func (h *Host) ElementByID(id string) (render.Element, bool) {
	v := h.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &Element{id: id, v: v}, true
}

// EnsureElement appends a sized div with id to the body unless one exists.
func (h *Host) EnsureElement(id string, width, height int) {
	if _, ok := h.ElementByID(id); ok {
		return
	}
	div := h.doc.Call("createElement", "div")
	div.Set("id", id)
	style := div.Get("style")
	style.Set("width", strconv.Itoa(width)+"px")
	style.Set("height", strconv.Itoa(height)+"px")
	h.doc.Get("body").Call("appendChild", div)
}

type observer struct {
	ro js.Value
	cb js.Func
}

// ObserveResize installs a ResizeObserver on el.
func (h *Host) ObserveResize(el render.Element, fn func()) (render.Observer, error) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return nil, errors.New("browser: element not from this host")
	}
	ctor := js.Global().Get("ResizeObserver")
	if ctor.IsUndefined() {
		return nil, errors.New("browser: ResizeObserver is not available")
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	ro := ctor.New(cb)
	ro.Call("observe", e.v)
	return &observer{ro: ro, cb: cb}, nil
}

func (o *observer) Disconnect() {
	o.ro.Call("disconnect")
	o.cb.Release()
}
