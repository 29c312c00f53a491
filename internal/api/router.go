package api

import (
	"encoding/json"
	"net/http"

	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/internal/version"
)

// HealthHandler reports liveness; the browser-launch wait loop polls it.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": version.Version,
		})
	})
}

// RegisterRoutes mounts the JSON API and the health endpoint on mux.
func RegisterRoutes(mux *http.ServeMux, srv server.Server) {
	mux.Handle("/health", HealthHandler())
	mux.Handle("/api/docs", DocumentsHandler(srv))
	mux.Handle("/api/docs/", DocumentsHandler(srv))
	mux.Handle("/api/export", ExportHandler(srv))
	mux.Handle("/api/export/", ExportHandler(srv))
	mux.Handle("/api/search", SearchHandler(srv))
}
