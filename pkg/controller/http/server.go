package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/idwatch/frontend"
	slackCtrl "github.com/secmon-lab/idwatch/pkg/controller/slack"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// Option configures the HTTP server
type Option func(*serverOptions)

type serverOptions struct {
	frontendFS   http.FileSystem
	corsOrigins  []string
	slackHandler *slackCtrl.Handler
}

// WithFrontendFS serves the dashboard from fs instead of the embedded build
func WithFrontendFS(fs http.FileSystem) Option {
	return func(o *serverOptions) {
		o.frontendFS = fs
	}
}

// WithCORSOrigins sets the origins allowed to call /api. Empty means any origin.
func WithCORSOrigins(origins []string) Option {
	return func(o *serverOptions) {
		o.corsOrigins = origins
	}
}

// WithSlackHandler enables the Slack slash command endpoint
func WithSlackHandler(h *slackCtrl.Handler) Option {
	return func(o *serverOptions) {
		o.slackHandler = h
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, forecastUC interfaces.Forecast, opts ...Option) (*Server, error) {
	options := &serverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	router := chi.NewRouter()
	h := &handler{forecast: forecastUC}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Use(CORS(options.corsOrigins))

		r.Get("/tables", h.listTables)
		r.Get("/tables/{table}/forecast", h.getForecast)
		r.Get("/tables/{table}/advice", h.getAdvice)
		r.Get("/forecasts", h.listForecasts)
		r.Get("/tiers", h.listTiers)
		r.Get("/mitigations", h.listMitigations)
	})

	if options.slackHandler != nil {
		router.Route("/hooks/slack", func(r chi.Router) {
			r.Post("/command", options.slackHandler.HandleCommand)
		})
	}

	fs := options.frontendFS
	if fs == nil {
		embedded, err := frontend.GetHTTPFS()
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback", "error", err)
		}
		fs = embedded
	}

	if fs != nil {
		spa, err := NewSPAHandler(fs)
		if err != nil {
			ctxlog.From(ctx).Warn("Frontend has no index.html, using fallback", "error", err)
			router.Get("/*", handleFallbackHome)
		} else {
			router.Handle("/*", spa)
		}
	} else {
		router.Get("/*", handleFallbackHome)
	}

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// ServeHTTP dispatches the request to the router
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>idwatch</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            max-width: 40rem;
            margin: 4rem auto;
            color: #1f1f1f;
        }
        code { background: #f5f5f5; padding: 0.1rem 0.3rem; }
    </style>
</head>
<body>
    <h1>idwatch</h1>
    <p>Integer primary key overflow monitor.</p>
    <p>The dashboard is not built. Forecasts are available from <code>/api/tables</code>.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}
