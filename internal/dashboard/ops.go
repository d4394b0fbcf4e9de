package dashboard

import (
	"context"

	"chartd/internal/chart"
	"chartd/internal/render"
)

// Dispatcher is implemented by renderers that can simulate user interaction.
type Dispatcher interface {
	Dispatch(h render.Handle, eventType string, p render.Params) (int, error)
}

// Sizer is implemented by hosts whose element sizes can be changed.
type Sizer interface {
	SetSize(id string, width, height int) error
}

// ThemeSource is implemented by renderers that expose registered themes.
type ThemeSource interface {
	Theme(name string) (map[string]any, bool)
}

// Connect joins the charts with the given ids into group, generating a
// group name when empty, and returns the group used.
func (m *Manager) Connect(group string, ids []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	members := make([]chart.Member, 0, len(ids))
	for _, id := range ids {
		e, err := m.get(id)
		if err != nil {
			return "", err
		}
		members = append(members, e.chart)
	}
	g, err := chart.Connect(m.renderer, render.GroupID(group), members...)
	if err != nil {
		return "", err
	}
	m.groups[g] = struct{}{}
	groupsConnected.Set(float64(len(m.groups)))
	m.log.Info().Str("group", string(g)).Strs("charts", ids).Msg("group connected")
	m.publish(Event{Name: EventGroupConnected, Fields: map[string]any{"group": string(g), "charts": ids}})
	return string(g), nil
}

// Disconnect stops mirroring for each target. A target naming a chart
// disconnects that chart's group; any other target is taken as a group name.
func (m *Manager) Disconnect(targets []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	resolved := make([]any, 0, len(targets))
	for _, t := range targets {
		if e, ok := m.charts[t]; ok {
			resolved = append(resolved, e.chart)
			continue
		}
		resolved = append(resolved, render.GroupID(t))
	}
	if err := chart.Disconnect(m.renderer, resolved...); err != nil {
		return err
	}
	for _, t := range resolved {
		var g render.GroupID
		switch v := t.(type) {
		case render.GroupID:
			g = v
		case *chart.Chart:
			g = v.GroupName()
		}
		if _, ok := m.groups[g]; ok {
			delete(m.groups, g)
			m.publish(Event{Name: EventGroupDisconnected, Fields: map[string]any{"group": string(g)}})
		}
	}
	groupsConnected.Set(float64(len(m.groups)))
	return nil
}

// Dispatch simulates an interaction event on a chart and returns how many
// listeners ran across the chart and its connected peers.
func (m *Manager) Dispatch(id, eventType string, params map[string]any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return 0, err
	}
	d, ok := m.renderer.(Dispatcher)
	if !ok {
		return 0, unsupportedError{op: "dispatch"}
	}
	return d.Dispatch(e.chart.Chart(), eventType, render.Params(params))
}

// Resize changes the size of a chart's element; observing charts resize.
func (m *Manager) Resize(id string, width, height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	s, ok := m.host.(Sizer)
	if !ok {
		return unsupportedError{op: "resize"}
	}
	return s.SetSize(e.chart.TargetElementID(), width, height)
}

// RegisterTheme fetches the theme at url and registers it under name
// (derived from the url when empty).
func (m *Manager) RegisterTheme(ctx context.Context, url, name string) (string, error) {
	got, err := m.themes.FetchAndRegister(ctx, url, name)
	if err != nil {
		themeFetchTotal.WithLabelValues("error").Inc()
		m.publish(Event{Name: EventThemeFailed, Fields: map[string]any{"url": url, "error": err.Error()}})
		return "", err
	}
	themeFetchTotal.WithLabelValues("ok").Inc()
	m.mu.Lock()
	if !contains(m.themeNames, got) {
		m.themeNames = append(m.themeNames, got)
	}
	m.mu.Unlock()
	m.publish(Event{Name: EventThemeRegistered, Fields: map[string]any{"url": url, "theme": got}})
	return got, nil
}

// Theme returns the registered theme document for name.
func (m *Manager) Theme(name string) (map[string]any, error) {
	src, ok := m.renderer.(ThemeSource)
	if !ok {
		return nil, unsupportedError{op: "theme"}
	}
	t, ok := src.Theme(name)
	if !ok {
		return nil, themeNotFoundError{name: name}
	}
	return t, nil
}

// Themes lists the names registered through RegisterTheme.
func (m *Manager) Themes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.themeNames...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
