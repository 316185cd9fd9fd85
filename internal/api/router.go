// Package api exposes the advisory operations over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sells-group/advisory-cli/internal/advisory"
)

// NewRouter creates the advisory HTTP router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "advisory-cli"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/agents", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, advisory.Agents())
		})

		r.Post("/underwriting/evaluate", h.EvaluateClient)
		r.Post("/policies", h.IssuePolicy)
		r.Post("/claims", h.AdjudicateClaim)
		r.Post("/support", h.CustomerSupport)
		r.Post("/exposure/report", h.ExposureReport)
		r.Post("/esg/report", h.ESGReport)
	})

	return r
}

// requestLogger logs one line per request through the global zap logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("api: request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
