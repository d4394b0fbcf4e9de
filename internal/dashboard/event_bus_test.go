package dashboard

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogPublisher_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	p := LogPublisher{Logger: zerolog.New(&buf)}
	p.Publish(Event{Name: EventChartCreated, ChartID: "traffic", Fields: map[string]any{"series": 2}})
	out := buf.String()
	for _, want := range []string{`"event":"chart_created"`, `"chart":"traffic"`, `"series":2`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %s", out, want)
		}
	}
}

func TestSetEventPublisher_Nil(t *testing.T) {
	cfg := sampleConfig()
	mc, _, _ := Headless(cfg)
	m := NewWithConfig(mc)
	m.SetEventPublisher(nil)
	if err := m.Create(cfg.Charts[0]); err != nil {
		t.Fatalf("Create with nil publisher: %v", err)
	}
	m.Close()
}

func TestSetEventPublisher_ConcurrentWithRegisterTheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"color":["#4992ff"]}`))
	}))
	defer srv.Close()

	mc, _, _ := Headless(sampleConfig())
	m := NewWithConfig(mc)
	defer m.Close()

	pubs := []*MemoryPublisher{NewMemoryPublisher(), NewMemoryPublisher()}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			m.SetEventPublisher(pubs[i%2])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			if _, err := m.RegisterTheme(context.Background(), srv.URL+"/dark.json", ""); err != nil {
				t.Errorf("RegisterTheme: %v", err)
			}
		}
	}()
	wg.Wait()

	if n := len(pubs[0].Events()) + len(pubs[1].Events()); n > 10 {
		t.Fatalf("expected at most one event per registration, got %d", n)
	}
}
