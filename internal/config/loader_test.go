package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

const yamlDashboard = `
addr: :9999
log_level: debug
themes:
  - url: https://example.com/themes/dark.json
charts:
  - id: traffic
    element: traffic-chart
    theme: dark
    title: Traffic
    categories: [Mon, Tue, Wed]
    resize: true
    track_events: [click]
    series:
      - kind: bar
        name: visits
        data: [120, 200, 150]
  - id: share
    series:
      - kind: donut
        name: browsers
        corner_rounding: false
        data:
          - {value: 1048, name: Search}
groups:
  - name: overview
    charts: [traffic, share]
`

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", yamlDashboard)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.LogLevel != "debug" || len(cfg.Themes) != 1 || len(cfg.Charts) != 2 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	tr := cfg.Charts[0]
	if tr.ElementID() != "traffic-chart" || !tr.Resize || tr.Series[0].Kind != "bar" || len(tr.Categories) != 3 {
		t.Fatalf("unexpected chart: %+v", tr)
	}
	share := cfg.Charts[1]
	if share.ElementID() != "share" || share.Series[0].CornerRounding == nil || *share.Series[0].CornerRounding {
		t.Fatalf("unexpected donut: %+v", share)
	}
	if len(cfg.Groups) != 1 || cfg.Groups[0].Charts[1] != "share" {
		t.Fatalf("groups: %+v", cfg.Groups)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","echarts_url":"/static/echarts.js","charts":[{"id":"a","series":[{"kind":"line","name":"l","data":[1,2]}]}],"cors":{"enabled":true,"allowed_origins":["*"]}}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.EChartsURL != "/static/echarts.js" || !cfg.CORS.Enabled || cfg.Charts[0].Series[0].Kind != "line" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", `addr = ":8081"

[[charts]]
id = "box"
title = "Latency"

[[charts.series]]
kind = "boxplot"
name = "p"
data = [[20, 34, 10, 38]]
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || len(cfg.Charts) != 1 || cfg.Charts[0].Series[0].Kind != "boxplot" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	if cfg.Addr != DefaultAddr || cfg.LogLevel != DefaultLogLevel || cfg.EChartsURL != DefaultEChartsURL {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	cfg = Config{Addr: ":1"}
	cfg.Defaults()
	if cfg.Addr != ":1" {
		t.Fatalf("explicit addr overwritten")
	}
}
