//go:build js && wasm

// Command chartwasm boots a dashboard inside the browser: it fetches the
// dashboard config from the chartd server and drives ECharts directly.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"syscall/js"

	"github.com/rs/zerolog"

	"chartd/internal/chart"
	"chartd/internal/config"
	"chartd/internal/dashboard"
	"chartd/internal/render/browser"
	"chartd/internal/theme"
)

const defaultDashboardURL = "/dashboard"

func fetchConfig(ctx context.Context, url string) (config.Config, error) {
	var cfg config.Config
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return cfg, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return cfg, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return cfg, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
	chart.SetLogger(log)
	theme.SetLogger(log)

	url := defaultDashboardURL
	if v := js.Global().Get("chartdDashboardURL"); v.Type() == js.TypeString {
		url = v.String()
	}
	ctx := context.Background()
	cfg, err := fetchConfig(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("dashboard config unavailable")
		return
	}

	r, err := browser.New()
	if err != nil {
		log.Error().Err(err).Msg("renderer unavailable")
		return
	}
	host := browser.NewHost()
	for _, c := range cfg.Charts {
		w, h := c.Width, c.Height
		if w <= 0 {
			w = 600
		}
		if h <= 0 {
			h = 400
		}
		host.EnsureElement(c.ElementID(), w, h)
	}
	m := dashboard.NewWithConfig(dashboard.ManagerConfig{
		Renderer:  r,
		Host:      host,
		Logger:    log,
		Publisher: dashboard.LogPublisher{Logger: log},
	})
	if err := m.Load(ctx, cfg); err != nil {
		log.Warn().Err(err).Msg("dashboard loaded with failures")
	}
	expose(m, log)
	select {}
}

// expose publishes a small control surface on window.chartd.
func expose(m *dashboard.Manager, log zerolog.Logger) {
	api := js.Global().Get("Object").New()
	api.Set("updateSeries", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return "usage: updateSeries(id, seriesJSON, notMerge)"
		}
		var data []any
		if err := json.Unmarshal([]byte(args[1].String()), &data); err != nil {
			return err.Error()
		}
		notMerge := len(args) > 2 && args[2].Truthy()
		if err := m.UpdateSeries(args[0].String(), data, notMerge); err != nil {
			log.Error().Err(err).Msg("updateSeries")
			return err.Error()
		}
		return nil
	}))
	api.Set("destroy", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return "usage: destroy(id)"
		}
		if err := m.Destroy(args[0].String()); err != nil {
			return err.Error()
		}
		return nil
	}))
	api.Set("charts", js.FuncOf(func(this js.Value, args []js.Value) any {
		b, _ := json.Marshal(m.List())
		return string(b)
	}))
	js.Global().Set("chartd", api)
}
