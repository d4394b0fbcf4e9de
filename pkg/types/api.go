package types

// ChartSummary describes one managed chart for GET /charts.
type ChartSummary struct {
	// Chart identifier inside the dashboard.
	// example: traffic
	ID string `json:"id" example:"traffic"`
	// DOM element id the chart is bound to.
	// example: traffic-chart
	Element string `json:"element" example:"traffic-chart"`
	// Registered theme name, empty for the default theme.
	// example: dark
	Theme string `json:"theme,omitempty" example:"dark"`
	// Sync group the chart currently belongs to.
	// example: overview
	Group string `json:"group,omitempty" example:"overview"`
	// Whether size changes of the element trigger a resize.
	// example: true
	Resize bool `json:"resize" example:"true"`
	// Number of registered event listeners.
	// example: 2
	Listeners int `json:"listeners" example:"2"`
	// Number of series in the current option.
	// example: 1
	SeriesCount int `json:"series_count" example:"1"`
}

// ChartsResponse wraps the list returned by GET /charts.
type ChartsResponse struct {
	Charts []ChartSummary `json:"charts"`
}

// UpdateSeriesRequest is the body of PUT /charts/{id}/series. Series may be
// nested arbitrarily deep; it is flattened before being applied.
type UpdateSeriesRequest struct {
	Series []any `json:"series"`
	// Replace the whole option instead of merging into it.
	// example: false
	NotMerge bool `json:"not_merge,omitempty" example:"false"`
}

// EventView is a read-only projection of one event registration.
type EventView struct {
	// example: click
	EventType string `json:"event_type" example:"click"`
	// example: 3
	ListenerID uint64 `json:"listener_id" example:"3"`
	// example: count clicks
	Description string `json:"description,omitempty" example:"count clicks"`
}

// EventsResponse wraps GET /charts/{id}/events.
type EventsResponse struct {
	Events []EventView `json:"events"`
}

// DispatchRequest simulates a user interaction on a chart.
type DispatchRequest struct {
	// example: mouseover
	Type   string         `json:"type" example:"mouseover"`
	Params map[string]any `json:"params,omitempty"`
}

// ResizeRequest reports a new size for a chart's host element.
type ResizeRequest struct {
	// example: 800
	Width int `json:"width" example:"800"`
	// example: 400
	Height int `json:"height" example:"400"`
}

// ConnectRequest places charts into a sync group. An empty group asks the
// server to generate one.
type ConnectRequest struct {
	// example: overview
	Group  string   `json:"group,omitempty" example:"overview"`
	Charts []string `json:"charts"`
}

// ConnectResponse reports the group the charts were connected under.
type ConnectResponse struct {
	// example: overview
	Group string `json:"group" example:"overview"`
}

// ThemeRequest asks the server to fetch and register a theme.
type ThemeRequest struct {
	// example: https://example.com/themes/dark.json
	URL string `json:"url" example:"https://example.com/themes/dark.json"`
	// Optional; derived from the URL when empty.
	// example: dark
	Name string `json:"name,omitempty" example:"dark"`
}

// ThemeResponse reports the name a theme was registered under.
type ThemeResponse struct {
	// example: dark
	Name string `json:"name" example:"dark"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: chart not found: traffic
	Error string `json:"error" example:"chart not found: traffic"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// DispatchResponse reports how many listeners ran for a dispatched event,
// counting mirrored deliveries to connected charts.
type DispatchResponse struct {
	// example: 2
	Listeners int `json:"listeners" example:"2"`
}

// ThemesResponse lists the themes registered at runtime.
type ThemesResponse struct {
	Themes []string `json:"themes"`
}
