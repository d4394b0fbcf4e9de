//go:build js && wasm

package browser

import (
	"errors"
	"sync"
	"syscall/js"

	"chartd/internal/render"
	"chartd/pkg/types"
)

// Renderer drives the global echarts object.
type Renderer struct {
	echarts js.Value
}

// New binds to window.echarts; it fails when the library is not loaded.
func New() (*Renderer, error) {
	e := js.Global().Get("echarts")
	if e.IsUndefined() || e.IsNull() {
		return nil, errors.New("browser: echarts is not loaded")
	}
	return &Renderer{echarts: e}, nil
}

func (r *Renderer) Init(el render.Element, theme string) (render.Handle, error) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return nil, errors.New("browser: element not from this host")
	}
	var th any
	if theme != "" {
		th = theme
	}
	inst := r.echarts.Call("init", e.v, th)
	return &Handle{inst: inst, listeners: make(map[render.ListenerID]listener)}, nil
}

func (r *Renderer) Connect(g render.GroupID)    { r.echarts.Call("connect", string(g)) }
func (r *Renderer) Disconnect(g render.GroupID) { r.echarts.Call("disconnect", string(g)) }

func (r *Renderer) RegisterTheme(name string, theme map[string]any) {
	v, err := toJS(theme)
	if err != nil {
		return
	}
	r.echarts.Call("registerTheme", name, v)
}

type listener struct {
	eventType string
	fn        js.Func
}

// Handle wraps one echarts instance.
type Handle struct {
	mu        sync.Mutex
	inst      js.Value
	nextID    render.ListenerID
	listeners map[render.ListenerID]listener
}

func (h *Handle) SetOption(opt types.Option, notMerge bool) {
	v, err := toJS(opt)
	if err != nil {
		return
	}
	h.inst.Call("setOption", v, notMerge)
}

func (h *Handle) Option() types.Option {
	m, err := fromJS(h.inst.Call("getOption"))
	if err != nil {
		return nil
	}
	return types.Option(m)
}

func (h *Handle) On(eventType string, fn render.Handler) render.ListenerID {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var p render.Params
		if len(args) > 0 {
			p = render.Params(paramsFromJS(args[0]))
		}
		fn(p)
		return nil
	})
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = listener{eventType: eventType, fn: cb}
	h.mu.Unlock()
	h.inst.Call("on", eventType, cb)
	return id
}

func (h *Handle) Off(eventType string, id render.ListenerID) {
	h.mu.Lock()
	l, ok := h.listeners[id]
	if ok && l.eventType == eventType {
		delete(h.listeners, id)
	}
	h.mu.Unlock()
	if !ok || l.eventType != eventType {
		return
	}
	h.inst.Call("off", eventType, l.fn)
	l.fn.Release()
}

func (h *Handle) OffAll(eventType string) {
	h.inst.Call("off", eventType)
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, l := range h.listeners {
		if l.eventType == eventType {
			l.fn.Release()
			delete(h.listeners, id)
		}
	}
}

func (h *Handle) Resize() { h.inst.Call("resize") }

func (h *Handle) Dispose() {
	if h.IsDisposed() {
		return
	}
	h.inst.Call("dispose")
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, l := range h.listeners {
		l.fn.Release()
		delete(h.listeners, id)
	}
}

func (h *Handle) IsDisposed() bool { return h.inst.Call("isDisposed").Bool() }

func (h *Handle) Group() render.GroupID {
	g := h.inst.Get("group")
	if g.Type() != js.TypeString {
		return ""
	}
	return render.GroupID(g.String())
}

func (h *Handle) SetGroup(g render.GroupID) { h.inst.Set("group", string(g)) }
