package hc

import (
	"net/http"
	"time"

	"dao/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Handle health check, reports the app name, version and uptime
func Handle(name, version string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Get("/", handle(name, version, time.Now()))
	return r
}

func handle(name, version string, startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{
			"name":       name,
			"version":    version,
			"started_at": startedAt.Format(time.RFC3339),
			"uptime":     time.Since(startedAt).Truncate(time.Millisecond).String(),
		})
	}
}
