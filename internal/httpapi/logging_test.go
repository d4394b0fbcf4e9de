package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("short query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	SetRequestLogLevel("off")
	defer SetRequestLogLevel("info")
	if got := requestLogLevel(httptest.NewRequest("GET", "/x", nil)); got != LevelOff {
		t.Fatalf("default level not applied: %v", got)
	}
}

func TestRequestLogger_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	ok := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/charts?log=debug", nil))
	out := buf.String()
	for _, want := range []string{`"path":"/charts"`, `"status":204`, `"query":"log=debug"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %q missing %s", out, want)
		}
	}

	buf.Reset()
	req := httptest.NewRequest("GET", "/charts", nil)
	req.Header.Set("X-Log-Level", "error")
	ok.ServeHTTP(httptest.NewRecorder(), req)
	if buf.Len() != 0 {
		t.Fatalf("error level should skip successful requests: %q", buf.String())
	}

	failing := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	failing.ServeHTTP(httptest.NewRecorder(), req)
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("server error should log at error level: %q", buf.String())
	}
}
