package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chartd/internal/config"
	"chartd/internal/page"
	"chartd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	List() []types.ChartSummary
	Option(id string) (types.Option, error)
	UpdateSeries(id string, data []any, notMerge bool) error
	Destroy(id string) error
	Events(id string) ([]types.EventView, error)
	Dispatch(id, eventType string, params map[string]any) (int, error)
	Resize(id string, width, height int) error
	Connect(group string, ids []string) (string, error)
	Disconnect(targets []string) error
	RegisterTheme(ctx context.Context, url, name string) (string, error)
	Theme(name string) (map[string]any, error)
	Themes() []string
	Config() config.Config
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", pageHandler(svc))
	r.Get("/dashboard", dashboardHandler(svc))

	r.Route("/charts", func(r chi.Router) {
		r.Get("/", listCharts(svc))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/option", chartOption(svc))
			r.Put("/series", updateSeries(svc))
			r.Delete("/", destroyChart(svc))
			r.Get("/events", chartEvents(svc))
			r.Post("/dispatch", dispatchEvent(svc))
			r.Post("/resize", resizeChart(svc))
		})
	})

	r.Post("/groups", connectGroup(svc))
	r.Delete("/groups/{group}", disconnectGroup(svc))

	r.Get("/themes", listThemes(svc))
	r.Post("/themes", registerTheme(svc))
	r.Get("/themes/{name}", getTheme(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// decodeJSON enforces a JSON content type and the body size limit, then
// decodes into dst. It writes the error response and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		IncrementRejected("content_type")
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		// If exceeded size, MaxBytesReader may cause an error; still return 400 to avoid size leak details
		IncrementRejected("body")
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func badRequest(w http.ResponseWriter, msg string) {
	IncrementRejected("validation")
	writeJSONError(w, http.StatusBadRequest, msg)
}

// @Summary  Dashboard page
// @Produce  html
// @Success  200
// @Router   / [get]
func pageHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := page.Render(&buf, svc); err != nil {
			zlog.Error().Err(err).Msg("page render failed")
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}

// @Summary  Dashboard configuration
// @Produce  json
// @Success  200
// @Router   /dashboard [get]
func dashboardHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Config())
	}
}

// @Summary  List charts
// @Produce  json
// @Success  200  {object}  types.ChartsResponse
// @Router   /charts [get]
func listCharts(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.ChartsResponse{Charts: svc.List()})
	}
}

// @Summary  Current option of a chart
// @Produce  json
// @Param    id   path  string  true  "chart id"
// @Success  200
// @Failure  404  {object}  types.ErrorResponse
// @Router   /charts/{id}/option [get]
func chartOption(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opt, err := svc.Option(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, opt)
	}
}

// @Summary  Update the series of a chart
// @Accept   json
// @Param    id         path   string                     true   "chart id"
// @Param    not_merge  query  bool                       false  "replace the whole option"
// @Param    body       body   types.UpdateSeriesRequest  true   "series"
// @Success  204
// @Failure  400  {object}  types.ErrorResponse
// @Failure  404  {object}  types.ErrorResponse
// @Router   /charts/{id}/series [put]
func updateSeries(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.UpdateSeriesRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		notMerge := req.NotMerge
		if v := r.URL.Query().Get("not_merge"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				badRequest(w, "not_merge must be a boolean")
				return
			}
			notMerge = b
		}
		if err := svc.UpdateSeries(chi.URLParam(r, "id"), req.Series, notMerge); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary  Destroy a chart
// @Param    id  path  string  true  "chart id"
// @Success  204
// @Failure  404  {object}  types.ErrorResponse
// @Router   /charts/{id} [delete]
func destroyChart(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Destroy(chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary  Registered listeners of a chart
// @Produce  json
// @Param    id  path  string  true  "chart id"
// @Success  200  {object}  types.EventsResponse
// @Failure  404  {object}  types.ErrorResponse
// @Router   /charts/{id}/events [get]
func chartEvents(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evs, err := svc.Events(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, types.EventsResponse{Events: evs})
	}
}

// @Summary  Simulate an interaction event
// @Accept   json
// @Produce  json
// @Param    id    path  string                 true  "chart id"
// @Param    body  body  types.DispatchRequest  true  "event"
// @Success  200  {object}  types.DispatchResponse
// @Failure  404  {object}  types.ErrorResponse
// @Failure  501  {object}  types.ErrorResponse
// @Router   /charts/{id}/dispatch [post]
func dispatchEvent(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DispatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Type) == "" {
			badRequest(w, "type is required")
			return
		}
		n, err := svc.Dispatch(chi.URLParam(r, "id"), req.Type, req.Params)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, types.DispatchResponse{Listeners: n})
	}
}

// @Summary  Resize a chart's element
// @Accept   json
// @Param    id    path  string               true  "chart id"
// @Param    body  body  types.ResizeRequest  true  "size"
// @Success  204
// @Failure  400  {object}  types.ErrorResponse
// @Router   /charts/{id}/resize [post]
func resizeChart(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ResizeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Width <= 0 || req.Height <= 0 {
			badRequest(w, "width and height must be positive")
			return
		}
		if err := svc.Resize(chi.URLParam(r, "id"), req.Width, req.Height); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary  Connect charts into a sync group
// @Accept   json
// @Produce  json
// @Param    body  body  types.ConnectRequest  true  "group"
// @Success  200  {object}  types.ConnectResponse
// @Failure  400  {object}  types.ErrorResponse
// @Router   /groups [post]
func connectGroup(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ConnectRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		g, err := svc.Connect(req.Group, req.Charts)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, types.ConnectResponse{Group: g})
	}
}

// @Summary  Disconnect a sync group
// @Param    group  path  string  true  "group name or chart id"
// @Success  204
// @Router   /groups/{group} [delete]
func disconnectGroup(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Disconnect([]string{chi.URLParam(r, "group")}); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary  List registered themes
// @Produce  json
// @Success  200  {object}  types.ThemesResponse
// @Router   /themes [get]
func listThemes(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.ThemesResponse{Themes: svc.Themes()})
	}
}

// @Summary  Fetch and register a theme
// @Accept   json
// @Produce  json
// @Param    body  body  types.ThemeRequest  true  "theme location"
// @Success  201  {object}  types.ThemeResponse
// @Failure  502  {object}  types.ErrorResponse
// @Router   /themes [post]
func registerTheme(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ThemeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.URL) == "" {
			badRequest(w, "url is required")
			return
		}
		ctx, cancel := fetchContext(r, themeTimeout)
		defer cancel()
		name, err := svc.RegisterTheme(ctx, req.URL, req.Name)
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				status = http.StatusBadGateway
			}
			writeJSONError(w, status, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.ThemeResponse{Name: name})
	}
}

// @Summary  Registered theme document
// @Produce  json
// @Param    name  path  string  true  "theme name"
// @Success  200
// @Failure  404  {object}  types.ErrorResponse
// @Router   /themes/{name} [get]
func getTheme(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		th, err := svc.Theme(chi.URLParam(r, "name"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, th)
	}
}
