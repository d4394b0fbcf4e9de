package dashboard

// Event represents a dashboard lifecycle event.
// Minimal and stable: name + chart ID and optional fields via key/values.
type Event struct {
	Name    string
	ChartID string
	Fields  map[string]any
}

// Event names.
const (
	EventChartCreated      = "chart_created"
	EventChartCreateFailed = "chart_create_failed"
	EventSeriesUpdated     = "series_updated"
	EventChartDestroyed    = "chart_destroyed"
	EventGroupConnected    = "group_connected"
	EventGroupDisconnected = "group_disconnected"
	EventThemeRegistered   = "theme_registered"
	EventThemeFailed       = "theme_failed"
	EventChartInteraction  = "chart_event"
)

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
