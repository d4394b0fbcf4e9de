package chart

import (
	"chartd/internal/render"
	"chartd/internal/series"
	"chartd/pkg/types"
)

// Config describes a chart to create.
type Config struct {
	// ElementID is the id of the host element to mount on.
	ElementID string
	// Option is the caller's base option (title, axes, ...).
	Option types.Option
	// Series may nest arbitrarily; it is flattened before use.
	Series []any
	// Theme is a registered theme name; empty for the default theme.
	Theme string
}

// Chart is one managed chart instance.
type Chart struct {
	renderer  render.Renderer
	host      render.Host
	handle    render.Handle
	el        render.Element
	elementID string
	option    types.Option
	series    []types.Series
	theme     string
	events    Registry
	observer  render.Observer
	disposed  bool
}

// New resolves the host element, creates the chart on it and applies the
// base option together with the flattened series. A missing element is
// logged and reported as an element-not-found error with a nil Chart.
func New(r render.Renderer, host render.Host, cfg Config) (*Chart, error) {
	el, ok := host.ElementByID(cfg.ElementID)
	if !ok {
		err := ErrElementNotFound(cfg.ElementID)
		logger.Error().Str("element", cfg.ElementID).Err(err).Msg("cannot find chart element")
		return nil, err
	}
	h, err := r.Init(el, cfg.Theme)
	if err != nil {
		logger.Error().Str("element", cfg.ElementID).Err(err).Msg("chart init failed")
		return nil, err
	}
	c := &Chart{
		renderer:  r,
		host:      host,
		handle:    h,
		el:        el,
		elementID: cfg.ElementID,
		option:    cfg.Option.Clone(),
		series:    series.Flatten(cfg.Series...),
		theme:     cfg.Theme,
	}
	initial := c.option.Clone()
	if initial == nil {
		initial = types.Option{}
	}
	initial["series"] = c.series
	h.SetOption(initial, false)
	logger.Debug().Str("element", c.elementID).Int("series", len(c.series)).Msg("chart created")
	return c, nil
}

// live guards every operation that talks to the handle.
func (c *Chart) live(op string) error {
	if c == nil || c.handle == nil {
		err := notInitializedError{}
		logger.Error().Str("op", op).Err(err).Msg("chart operation rejected")
		return err
	}
	if c.disposed {
		err := disposedError{id: c.elementID}
		logger.Error().Str("op", op).Err(err).Msg("chart operation rejected")
		return err
	}
	return nil
}

// Chart returns the underlying rendering-library handle.
func (c *Chart) Chart() render.Handle {
	if c == nil {
		return nil
	}
	return c.handle
}

// TargetElement returns the element the chart is mounted on.
func (c *Chart) TargetElement() render.Element {
	if c == nil {
		return nil
	}
	return c.el
}

// TargetElementID returns the id the element was resolved from.
func (c *Chart) TargetElementID() string {
	if c == nil {
		return ""
	}
	return c.elementID
}

// BaseOption returns a copy of the option the chart was created with.
func (c *Chart) BaseOption() types.Option {
	if c == nil {
		return nil
	}
	return c.option.Clone()
}

// Series returns the flattened series list last applied through New or
// UpdateSeriesData. After a merge update the rendered option can hold more
// series than this; Chart().Option() reports what is rendered.
func (c *Chart) Series() []types.Series {
	if c == nil {
		return nil
	}
	return append([]types.Series(nil), c.series...)
}

// Theme returns the theme name the chart was created with.
func (c *Chart) Theme() string {
	if c == nil {
		return ""
	}
	return c.theme
}

// Destroyed reports whether Destroy has run.
func (c *Chart) Destroyed() bool { return c != nil && c.disposed }

// SetOption forwards opt to the rendering library.
func (c *Chart) SetOption(opt types.Option, notMerge bool) error {
	if err := c.live("set_option"); err != nil {
		return err
	}
	c.handle.SetOption(opt, notMerge)
	return nil
}

// UpdateSeriesData flattens data and applies it as the series of the chart.
// notMerge replaces the whole option; otherwise unspecified fields of the
// existing series at the same index are kept. An empty list, or one holding
// only values that are not series, is rejected and leaves the chart
// unchanged. Nested empty lists apply an empty series list.
func (c *Chart) UpdateSeriesData(data []any, notMerge bool) error {
	if err := c.live("update_series"); err != nil {
		return err
	}
	if len(data) == 0 {
		err := emptySeriesError{}
		logger.Error().Str("element", c.elementID).Err(err).Msg("series update rejected")
		return err
	}
	flat, skipped := series.FlattenSkipped(data...)
	if len(skipped) > 0 {
		if len(flat) == 0 {
			err := emptySeriesError{}
			logger.Error().Str("element", c.elementID).Int("skipped", len(skipped)).Err(err).Msg("series update rejected: no series descriptors")
			return err
		}
		logger.Warn().Str("element", c.elementID).Int("skipped", len(skipped)).Interface("values", skipped).Msg("series update skipped non-series values")
	}
	c.handle.SetOption(types.Option{"series": flat}, notMerge)
	c.series = flat
	return nil
}

// Destroy stops resize observation and disposes the chart. Later calls are
// no-ops.
func (c *Chart) Destroy() error {
	if c == nil || c.handle == nil {
		return notInitializedError{}
	}
	if c.disposed {
		return nil
	}
	c.StopResizeObserver()
	c.handle.Dispose()
	c.events.clear()
	c.disposed = true
	logger.Debug().Str("element", c.elementID).Msg("chart destroyed")
	return nil
}
