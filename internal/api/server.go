// Package api exposes the scorer over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/sodam-labs/sodam/internal/model"
	"github.com/sodam-labs/sodam/internal/scorer"
	"github.com/sodam-labs/sodam/internal/store"
)

// AreaLister supplies the stored sample areas.
type AreaLister interface {
	ListAreas(ctx context.Context, filter store.AreaFilter) ([]model.Area, error)
}

// Options tunes request limits.
type Options struct {
	MaxItems       int
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
}

// Handler serves the /api/v1/recs routes.
type Handler struct {
	svc      *scorer.Service
	areas    AreaLister
	maxItems int
	limiter  *rate.Limiter
	origins  []string
}

// New builds a Handler. areas may be nil, in which case the sample endpoint
// serves the built-in sample areas.
func New(svc *scorer.Service, areas AreaLister, opts Options) *Handler {
	h := &Handler{
		svc:      svc,
		areas:    areas,
		maxItems: opts.MaxItems,
		origins:  opts.CORSOrigins,
	}
	if opts.RateLimitRPS > 0 {
		burst := max(opts.RateLimitBurst, 1)
		h.limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), burst)
	}
	if len(h.origins) == 0 {
		h.origins = []string{"*"}
	}
	return h
}

// Routes returns the router with middleware applied.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, RequestLogger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Length", "X-Request-Id"},
		MaxAge:         300,
	}))
	if h.limiter != nil {
		r.Use(RateLimit(h.limiter))
	}

	r.Get("/health", h.health)
	r.Route("/api/v1/recs", func(rr chi.Router) {
		rr.Post("/score", h.score)
		rr.Post("/batch", h.batch)
		rr.Get("/categories", h.categories)
		rr.Get("/sample", h.sample)
		rr.Get("/health", h.health)
	})
	return r
}
