package memory

import (
	"fmt"
	"sync"

	"chartd/internal/render"
)

// Element is a sized host element.
type Element struct {
	id     string
	width  int
	height int
}

func (e *Element) ID() string { return e.id }

// Host implements render.Host over a set of named elements. Size changes are
// reported synchronously to every observer of the element.
type Host struct {
	mu        sync.Mutex
	elements  map[string]*Element
	observers map[*Element][]*observer
}

type observer struct {
	h  *Host
	el *Element
	fn func()
}

var _ render.Host = (*Host)(nil)

// NewHost returns a host with no elements.
func NewHost() *Host {
	return &Host{
		elements:  make(map[string]*Element),
		observers: make(map[*Element][]*observer),
	}
}

// AddElement creates (or returns the existing) element with id.
func (h *Host) AddElement(id string, width, height int) *Element {
	h.mu.Lock()
	defer h.mu.Unlock()
	if el, ok := h.elements[id]; ok {
		return el
	}
	el := &Element{id: id, width: width, height: height}
	h.elements[id] = el
	return el
}

// RemoveElement drops the element and its observers.
func (h *Host) RemoveElement(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if el, ok := h.elements[id]; ok {
		delete(h.observers, el)
		delete(h.elements, id)
	}
}

func (h *Host) ElementByID(id string) (render.Element, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (h *Host) ObserveResize(el render.Element, fn func()) (render.Observer, error) {
	me, ok := el.(*Element)
	if !ok {
		return nil, fmt.Errorf("memory: element %T not owned by this host", el)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.elements[me.id] != me {
		return nil, fmt.Errorf("memory: element %q is detached", me.id)
	}
	o := &observer{h: h, el: me, fn: fn}
	h.observers[me] = append(h.observers[me], o)
	return o, nil
}

// Size returns the current size of element id.
func (h *Host) Size(id string) (width, height int, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.elements[id]
	if !ok {
		return 0, 0, false
	}
	return el.width, el.height, true
}

// SetSize changes the size of element id and notifies its observers when the
// size actually changed.
func (h *Host) SetSize(id string, width, height int) error {
	h.mu.Lock()
	el, ok := h.elements[id]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("memory: no element %q", id)
	}
	if el.width == width && el.height == height {
		h.mu.Unlock()
		return nil
	}
	el.width, el.height = width, height
	obs := append([]*observer(nil), h.observers[el]...)
	h.mu.Unlock()
	for _, o := range obs {
		o.fn()
	}
	return nil
}

// Observers returns the number of active observers on element id.
func (h *Host) Observers(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.elements[id]
	if !ok {
		return 0
	}
	return len(h.observers[el])
}

func (o *observer) Disconnect() {
	o.h.mu.Lock()
	defer o.h.mu.Unlock()
	list := o.h.observers[o.el]
	for i, x := range list {
		if x == o {
			o.h.observers[o.el] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
