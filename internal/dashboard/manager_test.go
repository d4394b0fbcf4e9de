package dashboard

import (
	"context"
	"testing"

	"chartd/internal/config"
	"chartd/internal/render/memory"
)

func TestLoad_CreatesChartsAndGroups(t *testing.T) {
	m, r, host, _ := newLoaded(t, sampleConfig())
	defer m.Close()

	if !m.Ready() {
		t.Fatalf("expected ready after load")
	}
	list := m.List()
	if len(list) != 2 || list[0].ID != "traffic" || list[1].ID != "share" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list[0].SeriesCount != 2 || list[0].Listeners != 2 || !list[0].Resize {
		t.Fatalf("unexpected traffic summary: %+v", list[0])
	}
	if list[0].Group != "main" || list[1].Group != "main" {
		t.Fatalf("expected both charts in group main: %+v", list)
	}
	if !r.IsConnected("main") {
		t.Fatalf("group main not connected on renderer")
	}
	if host.Observers("traffic") != 1 || host.Observers("share") != 0 {
		t.Fatalf("unexpected observers traffic=%d share=%d", host.Observers("traffic"), host.Observers("share"))
	}
}

func TestLoad_ContinuesPastFailures(t *testing.T) {
	cfg := sampleConfig()
	cfg.Charts = append(cfg.Charts, config.ChartSpec{
		ID:     "broken",
		Series: []config.SeriesSpec{{Kind: "radar", Data: []any{}}},
	})
	mc, _, _ := Headless(cfg)
	pub := NewMemoryPublisher()
	mc.Publisher = pub
	m := NewWithConfig(mc)
	err := m.Load(context.Background(), cfg)
	if err == nil {
		t.Fatalf("expected joined error for broken chart")
	}
	if len(m.List()) != 2 {
		t.Fatalf("healthy charts should still load; got %+v", m.List())
	}
	var failed bool
	for _, e := range pub.Events() {
		if e.Name == EventChartCreateFailed && e.ChartID == "broken" {
			failed = true
		}
	}
	if !failed {
		t.Fatalf("expected chart_create_failed event; got %v", pub.Names())
	}
}

func TestCreate_MissingElement(t *testing.T) {
	m := NewWithConfig(ManagerConfig{Renderer: memory.New(), Host: memory.NewHost()})
	err := m.Create(config.ChartSpec{ID: "ghost", Series: []config.SeriesSpec{{Kind: "line", Data: []any{1.0}}}})
	if err == nil {
		t.Fatalf("expected element error")
	}
	if m.Ready() {
		t.Fatalf("manager without charts must not be ready")
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	m, _, _, _ := newLoaded(t, sampleConfig())
	defer m.Close()
	err := m.Create(config.ChartSpec{ID: "traffic"})
	if !IsChartExists(err) {
		t.Fatalf("expected chart exists error, got %v", err)
	}
}

func TestClose_DestroysEverything(t *testing.T) {
	m, r, host, _ := newLoaded(t, sampleConfig())
	m.Close()
	if len(m.List()) != 0 {
		t.Fatalf("expected no charts after close")
	}
	if r.IsConnected("main") {
		t.Fatalf("group should be disconnected after close")
	}
	if host.Observers("traffic") != 0 {
		t.Fatalf("resize observer should be released")
	}
}

func TestConfig_ReturnsLoaded(t *testing.T) {
	cfg := sampleConfig()
	m, _, _, _ := newLoaded(t, cfg)
	defer m.Close()
	if got := m.Config(); len(got.Charts) != len(cfg.Charts) {
		t.Fatalf("config charts = %d, want %d", len(got.Charts), len(cfg.Charts))
	}
}
