package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"chartd/internal/chart"
	"chartd/internal/config"
	"chartd/internal/render"
	"chartd/internal/theme"
)

type entry struct {
	spec  config.ChartSpec
	chart *chart.Chart
}

// Manager owns the charts of one dashboard.
type Manager struct {
	mu       sync.RWMutex
	renderer render.Renderer
	host     render.Host
	themes   *theme.Registrar
	log      zerolog.Logger

	// pubMu guards pub; publish runs with or without mu held.
	pubMu sync.RWMutex
	pub   EventPublisher

	cfg    config.Config
	charts map[string]*entry
	order  []string
	groups map[render.GroupID]struct{}
	loaded bool

	themeNames []string
}

// SetEventPublisher installs an EventPublisher.
func (m *Manager) SetEventPublisher(p EventPublisher) {
	m.pubMu.Lock()
	defer m.pubMu.Unlock()
	if p == nil {
		p = noopPublisher{}
	}
	m.pub = p
}

func (m *Manager) publish(e Event) {
	m.pubMu.RLock()
	p := m.pub
	m.pubMu.RUnlock()
	if p != nil {
		p.Publish(e)
	}
}

// Load registers the themes of cfg, creates its charts and connects its
// groups. Each failure is logged and published; Load keeps going and
// returns the failures joined.
func (m *Manager) Load(ctx context.Context, cfg config.Config) error {
	var errs []error
	for _, t := range cfg.Themes {
		if _, err := m.RegisterTheme(ctx, t.URL, t.Name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, spec := range cfg.Charts {
		if err := m.Create(spec); err != nil {
			errs = append(errs, err)
		}
	}
	for _, g := range cfg.Groups {
		if _, err := m.Connect(g.Name, g.Charts); err != nil {
			m.log.Warn().Str("group", g.Name).Err(err).Msg("group connect failed")
			errs = append(errs, err)
		}
	}
	m.mu.Lock()
	m.cfg = cfg
	m.loaded = true
	n := len(m.charts)
	m.mu.Unlock()
	m.log.Info().Int("charts", n).Int("failures", len(errs)).Msg("dashboard loaded")
	return errors.Join(errs...)
}

// Config returns the configuration last passed to Load.
func (m *Manager) Config() config.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Ready reports whether Load has completed and at least one chart is live.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded && len(m.charts) > 0
}

// Close destroys every chart and disconnects the groups the manager created.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for g := range m.groups {
		m.renderer.Disconnect(g)
		delete(m.groups, g)
	}
	for _, id := range m.order {
		if e, ok := m.charts[id]; ok {
			_ = e.chart.Destroy()
			delete(m.charts, id)
			chartsActive.Dec()
		}
	}
	m.order = nil
	groupsConnected.Set(0)
}
