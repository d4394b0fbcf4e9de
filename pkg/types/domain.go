package types

// Option is a chart configuration object as understood by ECharts
// (title, tooltip, legend, xAxis, yAxis, series, ...). Values are plain
// JSON-compatible Go values: maps, slices, strings, numbers, bools.
type Option map[string]any

// Clone returns a shallow copy of the option.
func (o Option) Clone() Option {
	if o == nil {
		return nil
	}
	out := make(Option, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Series is one series descriptor: name, type, data and style attributes.
type Series map[string]any

// Name returns the series name, or "" when unset.
func (s Series) Name() string {
	n, _ := s["name"].(string)
	return n
}

// Type returns the ECharts series type (line, bar, pie, candlestick, ...).
func (s Series) Type() string {
	t, _ := s["type"].(string)
	return t
}

// PieItem is one slice of a pie or donut series.
type PieItem struct {
	// example: 1048
	Value float64 `json:"value" yaml:"value" toml:"value" example:"1048"`
	// example: Search Engine
	Name string `json:"name" yaml:"name" toml:"name" example:"Search Engine"`
}
