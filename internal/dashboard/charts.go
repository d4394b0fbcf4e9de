package dashboard

import (
	"chartd/internal/chart"
	"chartd/internal/config"
	"chartd/internal/render"
	"chartd/internal/series"
	"chartd/pkg/types"
)

// Create builds and mounts the chart described by spec. A failure is logged
// and published as chart_create_failed; nothing is registered in that case.
func (m *Manager) Create(spec config.ChartSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	err := m.createLocked(spec)
	if err != nil {
		m.log.Error().Str("chart", spec.ID).Err(err).Msg("chart create failed")
		m.publish(Event{Name: EventChartCreateFailed, ChartID: spec.ID, Fields: map[string]any{"error": err.Error()}})
	}
	return err
}

func (m *Manager) createLocked(spec config.ChartSpec) error {
	if _, ok := m.charts[spec.ID]; ok {
		return chartExistsError{id: spec.ID}
	}
	data, err := BuildSeries(spec)
	if err != nil {
		return err
	}
	c, err := chart.New(m.renderer, m.host, chart.Config{
		ElementID: spec.ElementID(),
		Option:    BuildOption(spec),
		Series:    data,
		Theme:     spec.Theme,
	})
	if err != nil {
		return err
	}
	if spec.Resize {
		if err := c.StartResizeObserver(); err != nil {
			m.log.Warn().Str("chart", spec.ID).Err(err).Msg("resize observer not started")
		}
	}
	for _, et := range spec.TrackEvents {
		if _, err := c.On(et, m.track(spec.ID, et), "metrics"); err != nil {
			m.log.Warn().Str("chart", spec.ID).Str("event", et).Err(err).Msg("event tracking not registered")
		}
	}
	m.charts[spec.ID] = &entry{spec: spec, chart: c}
	m.order = append(m.order, spec.ID)
	chartsActive.Inc()
	m.log.Info().Str("chart", spec.ID).Str("element", spec.ElementID()).Int("series", len(c.Series())).Msg("chart created")
	m.publish(Event{Name: EventChartCreated, ChartID: spec.ID, Fields: map[string]any{"element": spec.ElementID(), "series": len(c.Series())}})
	return nil
}

// track returns the listener that counts and publishes one interaction event.
func (m *Manager) track(chartID, eventType string) render.Handler {
	return func(p render.Params) {
		chartEventsTotal.WithLabelValues(chartID, eventType).Inc()
		m.publish(Event{Name: EventChartInteraction, ChartID: chartID, Fields: map[string]any{"type": eventType, "params": map[string]any(p)}})
	}
}

func (m *Manager) get(id string) (*entry, error) {
	e, ok := m.charts[id]
	if !ok {
		return nil, chartNotFoundError{id: id}
	}
	return e, nil
}

// List returns a summary of every chart in creation order.
func (m *Manager) List() []types.ChartSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.ChartSummary, 0, len(m.order))
	for _, id := range m.order {
		e, ok := m.charts[id]
		if !ok {
			continue
		}
		out = append(out, m.summarize(id, e))
	}
	return out
}

// summarize reports a chart's group only while the group is connected.
func (m *Manager) summarize(id string, e *entry) types.ChartSummary {
	c := e.chart
	var group string
	if g := c.GroupName(); g != "" {
		if _, ok := m.groups[g]; ok {
			group = string(g)
		}
	}
	return types.ChartSummary{
		ID:          id,
		Element:     c.TargetElementID(),
		Theme:       c.Theme(),
		Group:       group,
		Resize:      c.ResizeObserving(),
		Listeners:   len(c.EventList()),
		SeriesCount: len(series.Flatten(c.Chart().Option()["series"])),
	}
}

// Option returns the option currently held by the chart's handle.
func (m *Manager) Option(id string) (types.Option, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return e.chart.Chart().Option(), nil
}

// UpdateSeries replaces or merges the series of a chart.
func (m *Manager) UpdateSeries(id string, data []any, notMerge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	if err := e.chart.UpdateSeriesData(data, notMerge); err != nil {
		return err
	}
	m.publish(Event{Name: EventSeriesUpdated, ChartID: id, Fields: map[string]any{"series": len(e.chart.Series()), "not_merge": notMerge}})
	return nil
}

// Destroy disposes a chart and forgets it.
func (m *Manager) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	if err := e.chart.Destroy(); err != nil {
		return err
	}
	delete(m.charts, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	chartsActive.Dec()
	m.log.Info().Str("chart", id).Msg("chart destroyed")
	m.publish(Event{Name: EventChartDestroyed, ChartID: id})
	return nil
}

// Events lists the listeners registered on a chart.
func (m *Manager) Events(id string) ([]types.EventView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.get(id)
	if err != nil {
		return nil, err
	}
	regs := e.chart.EventList()
	out := make([]types.EventView, len(regs))
	for i, r := range regs {
		out[i] = types.EventView{EventType: r.EventType, ListenerID: uint64(r.ID), Description: r.Description}
	}
	return out, nil
}

// With runs fn with the chart registered under id while holding the
// manager lock. fn must not call back into the manager.
func (m *Manager) With(id string, fn func(*chart.Chart) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	return fn(e.chart)
}
