// Package theme fetches ECharts theme documents over HTTP and registers them
// with the rendering library.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"chartd/internal/render"
)

var logger = zerolog.Nop()

// SetLogger installs the logger used for theme diagnostics.
func SetLogger(l zerolog.Logger) { logger = l }

// Registrar registers remote themes under a name.
type Registrar struct {
	Renderer render.Renderer
	// Client performs the fetch; http.DefaultClient when nil. No timeout is
	// applied beyond what the client and ctx impose.
	Client *http.Client
}

// NameFromURL derives a theme name from the last path segment of rawURL,
// without a trailing ".json". It returns "" when the URL has no file
// segment to name the theme after.
func NameFromURL(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	if p == "" || strings.HasSuffix(p, "/") {
		return ""
	}
	switch name := strings.TrimSuffix(path.Base(p), ".json"); name {
	case ".", "..", "/":
		return ""
	default:
		return name
	}
}

type noNameError struct{ url string }

func (e noNameError) Error() string { return "cannot derive a theme name from " + e.url }

// IsNoName reports whether err came from a URL no theme name could be
// derived from.
func IsNoName(err error) bool {
	var e noNameError
	return errors.As(err, &e)
}

// FetchAndRegister downloads the theme at resourceURL, registers it as
// name (derived from the URL when empty) and returns the name used. Any
// failure is logged and returned; nothing is registered in that case.
func (r *Registrar) FetchAndRegister(ctx context.Context, resourceURL, name string) (string, error) {
	if name == "" {
		name = NameFromURL(resourceURL)
	}
	if name == "" {
		err := noNameError{url: resourceURL}
		logger.Error().Str("url", resourceURL).Err(err).Msg("theme registration failed")
		return "", err
	}
	data, err := r.fetch(ctx, resourceURL)
	if err != nil {
		logger.Error().Str("url", resourceURL).Str("theme", name).Err(err).Msg("theme registration failed")
		return "", err
	}
	r.Renderer.RegisterTheme(name, data)
	logger.Info().Str("url", resourceURL).Str("theme", name).Msg("theme registered")
	return name, nil
}

func (r *Registrar) fetch(ctx context.Context, resourceURL string) (map[string]any, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("theme request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("theme download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("theme download failed: status %d", resp.StatusCode)
	}
	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("theme decode: %w", err)
	}
	return data, nil
}
