package dashboard

import (
	"net/http"

	"github.com/rs/zerolog"

	"chartd/internal/config"
	"chartd/internal/render"
	"chartd/internal/render/memory"
	"chartd/internal/theme"
)

// Default element size used when laying out a headless dashboard.
const (
	defaultWidth  = 600
	defaultHeight = 400
)

// ManagerConfig encapsulates all collaborators for Manager construction.
type ManagerConfig struct {
	Renderer render.Renderer
	Host     render.Host
	// Client fetches remote themes; http.DefaultClient when nil.
	Client    *http.Client
	Publisher EventPublisher
	Logger    zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		renderer: cfg.Renderer,
		host:     cfg.Host,
		themes:   &theme.Registrar{Renderer: cfg.Renderer, Client: cfg.Client},
		pub:      cfg.Publisher,
		log:      cfg.Logger,
		charts:   make(map[string]*entry),
		groups:   make(map[render.GroupID]struct{}),
	}
	if m.pub == nil {
		m.pub = noopPublisher{}
	}
	return m
}

// Headless returns a ManagerConfig backed by the in-memory renderer, with
// one element per chart in cfg laid out on the host.
func Headless(cfg config.Config) (ManagerConfig, *memory.Renderer, *memory.Host) {
	r := memory.New()
	host := memory.NewHost()
	for _, spec := range cfg.Charts {
		w, h := spec.Width, spec.Height
		if w <= 0 {
			w = defaultWidth
		}
		if h <= 0 {
			h = defaultHeight
		}
		host.AddElement(spec.ElementID(), w, h)
	}
	return ManagerConfig{Renderer: r, Host: host}, r, host
}
