package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

// Router mounts the API and health probes.
//
//	GET  /healthz               liveness
//	GET  /readyz                readiness, pings storage when configured
//	POST /api/generate          PNG, or JSON with ?format=json
//	POST /api/save              store the PNG, 501 without storage
//	GET  /api/types             content type choices
//	GET  /api/palette/random    random color scheme
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	var ready []func(context.Context) error
	if h.storage != nil {
		ready = append(ready, h.storage.Ping)
	}
	r.Get("/healthz", httpserver.HealthCheckHandler(h.logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(h.logger, ready...))

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(h.cfg.RequestTimeout))

		api.Post("/generate", h.generate)
		api.Post("/save", h.save)
		api.Get("/types", h.types)
		api.Get("/palette/random", h.randomPalette)
	})

	return r
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
