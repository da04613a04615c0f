package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/minivenmo/internal/api/handlers"
	"github.com/baharkarakas/minivenmo/internal/metrics"
	"github.com/baharkarakas/minivenmo/internal/middleware"
)

type RouterDeps struct {
	RateRPS int
	Users   *handlers.UsersHandler
	Feed    *handlers.FeedHandler
	// Ping checks storage for /health. Nil skips the check.
	Ping func(ctx context.Context) error
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.Logging, middleware.HTTPMetrics, middleware.RateLimit(d.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if d.Ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := d.Ping(ctx); err != nil {
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", d.Users.Create)
			r.Get("/", d.Users.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Users.Get)
				r.Get("/wallet", d.Users.Wallet)
				r.Post("/pay", d.Users.Pay)
				r.Post("/friends", d.Users.AddFriend)
				r.Get("/friends", d.Users.Friends)
				r.Get("/activity", d.Users.Activity)
			})
		})
		r.Get("/feed", d.Feed.Get)
	})

	return r
}
