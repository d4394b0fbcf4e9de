package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chartd/internal/render/memory"
)

func TestNameFromURL(t *testing.T) {
	cases := map[string]string{
		"https://cdn.example.com/themes/dark.json":        "dark",
		"https://cdn.example.com/themes/vintage.json?v=2": "vintage",
		"/static/walden.json":                             "walden",
		"macarons":                                        "macarons",
		"https://cdn.example.com":                         "",
		"https://cdn.example.com/themes/":                 "",
		"https://cdn.example.com/.json":                   "",
	}
	for in, want := range cases {
		if got := NameFromURL(in); got != want {
			t.Fatalf("NameFromURL(%q)=%q want %q", in, got, want)
		}
	}
}

func TestFetchAndRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"backgroundColor":"#100c2a","color":["#4992ff"]}`))
	}))
	defer srv.Close()

	r := memory.New()
	reg := &Registrar{Renderer: r, Client: srv.Client()}
	name, err := reg.FetchAndRegister(context.Background(), srv.URL+"/themes/dark.json", "")
	if err != nil || name != "dark" {
		t.Fatalf("name=%q err=%v", name, err)
	}
	data, ok := r.Theme("dark")
	if !ok || data["backgroundColor"] != "#100c2a" {
		t.Fatalf("theme not registered: %v", data)
	}

	name, err = reg.FetchAndRegister(context.Background(), srv.URL+"/themes/dark.json", "night")
	if err != nil || name != "night" {
		t.Fatalf("explicit name=%q err=%v", name, err)
	}
}

func TestFetchAndRegister_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad.json" {
			_, _ = w.Write([]byte("not json"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()
	unreachable := httptest.NewServer(http.NotFoundHandler())
	unreachableURL := unreachable.URL
	unreachable.Close()

	r := memory.New()
	reg := &Registrar{Renderer: r}
	for _, u := range []string{srv.URL + "/missing.json", srv.URL + "/bad.json", unreachableURL + "/gone.json"} {
		name, err := reg.FetchAndRegister(context.Background(), u, "")
		if err == nil || name != "" {
			t.Fatalf("%s: name=%q err=%v", u, name, err)
		}
	}
	for _, n := range []string{"missing", "bad", "gone"} {
		if _, ok := r.Theme(n); ok {
			t.Fatalf("theme %q registered despite failure", n)
		}
	}
}

func TestFetchAndRegister_NoDerivableName(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"color":["#000"]}`))
	}))
	defer srv.Close()

	r := memory.New()
	reg := &Registrar{Renderer: r}
	for _, u := range []string{srv.URL, srv.URL + "/themes/"} {
		name, err := reg.FetchAndRegister(context.Background(), u, "")
		if !IsNoName(err) || name != "" {
			t.Fatalf("%s: name=%q err=%v", u, name, err)
		}
	}
	if hits != 0 {
		t.Fatalf("nothing should be fetched without a name, got %d requests", hits)
	}
	if name, err := reg.FetchAndRegister(context.Background(), srv.URL+"/themes/", "plain"); err != nil || name != "plain" {
		t.Fatalf("explicit name=%q err=%v", name, err)
	}
}
