package dashboard

import (
	"context"
	"testing"

	"chartd/internal/config"
	"chartd/internal/render/memory"
)

func sampleConfig() config.Config {
	return config.Config{
		Charts: []config.ChartSpec{
			{
				ID:          "traffic",
				Title:       "Traffic",
				Categories:  []string{"Mon", "Tue", "Wed"},
				Resize:      true,
				TrackEvents: []string{"click", "mouseover"},
				Series: []config.SeriesSpec{
					{Kind: "line", Name: "visits", Data: []any{1.0, 2.0, 3.0}},
					{Kind: "bar", Name: "orders", Data: []any{4.0, 5.0, 6.0}},
				},
			},
			{
				ID:          "share",
				Title:       "Share",
				TrackEvents: []string{"mouseover"},
				Series: []config.SeriesSpec{
					{Kind: "donut", Name: "sources", Data: []any{
						map[string]any{"value": 1048.0, "name": "Search"},
						map[string]any{"value": 735.0, "name": "Direct"},
					}},
				},
			},
		},
		Groups: []config.GroupSpec{{Name: "main", Charts: []string{"traffic", "share"}}},
	}
}

func newLoaded(t *testing.T, cfg config.Config) (*Manager, *memory.Renderer, *memory.Host, *MemoryPublisher) {
	t.Helper()
	mc, r, host := Headless(cfg)
	pub := NewMemoryPublisher()
	mc.Publisher = pub
	m := NewWithConfig(mc)
	if err := m.Load(context.Background(), cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m, r, host, pub
}
