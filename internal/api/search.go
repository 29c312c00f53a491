package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/refdock/refdock/internal/server"
)

// SearchHandler handles GET /api/search?q=...&limit=N over the section
// index.
func SearchHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if srv.Search == nil {
			http.Error(w, "Search is disabled", http.StatusNotFound)
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "Query parameter q is required", http.StatusBadRequest)
			return
		}

		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		results, err := srv.Search.Search(query, limit)
		if err != nil {
			srv.Logger.Error("search failed", "query", query, "error", err)
			http.Error(w, "Search failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"query":   query,
			"results": results,
			"count":   len(results),
		})
	})
}
