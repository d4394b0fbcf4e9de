// Package memory is a headless, in-process rendering library. It keeps the
// effective option of every chart, applies ECharts merge and replace rules,
// dispatches events to subscribed listeners and mirrors interaction events
// across connected sync groups. It never draws anything.
package memory

import (
	"errors"
	"sync"

	"chartd/internal/render"
	"chartd/pkg/types"
)

// syncedEvents are the interaction events ECharts mirrors across charts that
// share a connected group.
var syncedEvents = map[string]bool{
	"mouseover":           true,
	"mouseout":            true,
	"highlight":           true,
	"downplay":            true,
	"showTip":             true,
	"hideTip":             true,
	"updateAxisPointer":   true,
	"datazoom":            true,
	"legendselectchanged": true,
}

// IsSynced reports whether eventType propagates across a connected group.
func IsSynced(eventType string) bool { return syncedEvents[eventType] }

// Renderer implements render.Renderer.
type Renderer struct {
	mu        sync.Mutex
	nextID    render.ListenerID
	handles   []*Handle
	connected map[render.GroupID]bool
	themes    map[string]map[string]any
}

// New returns an empty renderer.
func New() *Renderer {
	return &Renderer{
		connected: make(map[render.GroupID]bool),
		themes:    make(map[string]map[string]any),
	}
}

type listener struct {
	eventType string
	id        render.ListenerID
	fn        render.Handler
}

// Handle implements render.Handle.
type Handle struct {
	r         *Renderer
	el        render.Element
	theme     string
	option    map[string]any
	listeners []listener
	group     render.GroupID
	disposed  bool
	resizes   int
}

var _ render.Renderer = (*Renderer)(nil)
var _ render.Handle = (*Handle)(nil)

// Init creates a chart bound to el. An unregistered theme name falls back to
// the default theme, as ECharts does.
func (r *Renderer) Init(el render.Element, theme string) (render.Handle, error) {
	if el == nil {
		return nil, errors.New("memory: nil element")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h := &Handle{r: r, el: el, option: map[string]any{}}
	if _, ok := r.themes[theme]; ok {
		h.theme = theme
	}
	r.handles = append(r.handles, h)
	return h, nil
}

func (r *Renderer) Connect(g render.GroupID) {
	if g == "" {
		return
	}
	r.mu.Lock()
	r.connected[g] = true
	r.mu.Unlock()
}

func (r *Renderer) Disconnect(g render.GroupID) {
	r.mu.Lock()
	delete(r.connected, g)
	r.mu.Unlock()
}

// IsConnected reports whether g is registered for event mirroring.
func (r *Renderer) IsConnected(g render.GroupID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected[g]
}

func (r *Renderer) RegisterTheme(name string, theme map[string]any) {
	r.mu.Lock()
	r.themes[name] = normalizeMap(theme)
	r.mu.Unlock()
}

// Theme returns the data registered under name.
func (r *Renderer) Theme(name string) (map[string]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.themes[name]
	if !ok {
		return nil, false
	}
	return normalizeMap(t), true
}

// Dispatch fires eventType on h as if the user interacted with it. When h
// belongs to a connected group and the event is an interaction event, every
// other live member of the group receives it too. It returns the number of
// listeners invoked.
func (r *Renderer) Dispatch(h render.Handle, eventType string, p render.Params) (int, error) {
	mh, ok := h.(*Handle)
	if !ok || mh.r != r {
		return 0, errors.New("memory: handle not owned by this renderer")
	}
	r.mu.Lock()
	if mh.disposed {
		r.mu.Unlock()
		return 0, errors.New("memory: instance has been disposed")
	}
	targets := []*Handle{mh}
	if mh.group != "" && r.connected[mh.group] && syncedEvents[eventType] {
		for _, other := range r.handles {
			if other != mh && !other.disposed && other.group == mh.group {
				targets = append(targets, other)
			}
		}
	}
	var fns []render.Handler
	for _, t := range targets {
		for _, l := range t.listeners {
			if l.eventType == eventType {
				fns = append(fns, l.fn)
			}
		}
	}
	r.mu.Unlock()

	for _, fn := range fns {
		var cp render.Params
		if p != nil {
			cp = render.Params(normalizeMap(p))
		}
		fn(cp)
	}
	return len(fns), nil
}

// SetOption merges or replaces the effective option. Calls on a disposed
// chart are ignored.
func (h *Handle) SetOption(opt types.Option, notMerge bool) {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	if h.disposed {
		return
	}
	if notMerge {
		h.option = normalizeMap(opt)
		if h.option == nil {
			h.option = map[string]any{}
		}
		return
	}
	mergeOption(h.option, opt)
}

func (h *Handle) Option() types.Option {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return types.Option(normalizeMap(h.option))
}

func (h *Handle) On(eventType string, fn render.Handler) render.ListenerID {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	h.r.nextID++
	id := h.r.nextID
	if !h.disposed {
		h.listeners = append(h.listeners, listener{eventType: eventType, id: id, fn: fn})
	}
	return id
}

func (h *Handle) Off(eventType string, id render.ListenerID) {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	kept := h.listeners[:0]
	for _, l := range h.listeners {
		if l.eventType == eventType && l.id == id {
			continue
		}
		kept = append(kept, l)
	}
	h.listeners = kept
}

func (h *Handle) OffAll(eventType string) {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	kept := h.listeners[:0]
	for _, l := range h.listeners {
		if l.eventType != eventType {
			kept = append(kept, l)
		}
	}
	h.listeners = kept
}

// Listeners returns the number of listeners subscribed for eventType, or for
// all types when eventType is empty.
func (h *Handle) Listeners(eventType string) int {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	if eventType == "" {
		return len(h.listeners)
	}
	n := 0
	for _, l := range h.listeners {
		if l.eventType == eventType {
			n++
		}
	}
	return n
}

func (h *Handle) Resize() {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	if !h.disposed {
		h.resizes++
	}
}

// Resizes returns how many times Resize ran on a live chart.
func (h *Handle) Resizes() int {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return h.resizes
}

// Dispose releases the chart. It drops listeners and leaves the handle inert.
func (h *Handle) Dispose() {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	if h.disposed {
		return
	}
	h.disposed = true
	h.listeners = nil
	h.option = map[string]any{}
	for i, other := range h.r.handles {
		if other == h {
			h.r.handles = append(h.r.handles[:i], h.r.handles[i+1:]...)
			break
		}
	}
}

func (h *Handle) IsDisposed() bool {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return h.disposed
}

func (h *Handle) Group() render.GroupID {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return h.group
}

func (h *Handle) SetGroup(g render.GroupID) {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	h.group = g
}

// Theme returns the theme the chart was created with ("" for default).
func (h *Handle) Theme() string { return h.theme }

// Element returns the element the chart is mounted on.
func (h *Handle) Element() render.Element { return h.el }
