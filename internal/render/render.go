// Package render declares the contracts of the external collaborators the
// chart facade orchestrates: the rendering library (ECharts or a stand-in)
// and the host environment that owns elements and size observation.
//
// Two implementations exist: render/memory, a headless in-process library
// used by the server and the tests, and render/browser, a js/wasm bridge to
// window.echarts.
package render

import "chartd/pkg/types"

// ListenerID identifies one callback subscribed on a Handle. It stands in for
// the function identity ECharts uses in chart.off(type, handler).
type ListenerID uint64

// GroupID is a sync group token shared by connected chart handles.
type GroupID string

// Params carries event parameters (componentType, seriesName, dataIndex, ...).
type Params map[string]any

// Handler receives event parameters.
type Handler func(Params)

// Element is a host element a chart can be mounted on.
type Element interface {
	ID() string
}

// Handle is one live chart owned by the rendering library.
type Handle interface {
	// SetOption applies opt. notMerge discards the current option first;
	// otherwise opt is merged into it.
	SetOption(opt types.Option, notMerge bool)
	// Option returns a copy of the current effective option.
	Option() types.Option
	On(eventType string, fn Handler) ListenerID
	Off(eventType string, id ListenerID)
	// OffAll removes every listener of eventType.
	OffAll(eventType string)
	Resize()
	Dispose()
	IsDisposed() bool
	Group() GroupID
	SetGroup(g GroupID)
}

// Renderer is the global surface of the rendering library.
type Renderer interface {
	Init(el Element, theme string) (Handle, error)
	Connect(g GroupID)
	Disconnect(g GroupID)
	RegisterTheme(name string, theme map[string]any)
}

// Observer is an active size observation.
type Observer interface {
	Disconnect()
}

// Host resolves elements and observes their size.
type Host interface {
	ElementByID(id string) (Element, bool)
	ObserveResize(el Element, fn func()) (Observer, error)
}
