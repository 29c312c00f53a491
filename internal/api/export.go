package api

import (
	"encoding/json"
	"net/http"

	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/pkg/export"
)

// ExportHandler handles the bulk export endpoints.
// Routes:
//
//	GET /api/export           - Aggregate every loadable unit as JSON
//	GET /api/export/download  - Combined export file (format query param)
//
// Aggregation is best-effort: a unit that fails to load is logged and
// omitted from the result, never failing the whole request.
func ExportHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		switch r.URL.Path {
		case "/api/export", "/api/export/":
			aggregateExport(w, r, srv)
		case "/api/export/download":
			downloadExport(w, r, srv)
		default:
			http.Error(w, "Invalid path", http.StatusBadRequest)
		}
	})
}

// exportEntry is one unit of the aggregation response.
type exportEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content any    `json:"content"`
}

func aggregateExport(w http.ResponseWriter, _ *http.Request, srv server.Server) {
	units, err := srv.Store.All()
	if err != nil {
		srv.Logger.Error("failed to aggregate documentation", "error", err)
		http.Error(w, "Failed to aggregate documentation", http.StatusInternalServerError)
		return
	}

	entries := make([]exportEntry, 0, len(units))
	for _, u := range units {
		entries = append(entries, exportEntry{
			ID:      u.ID,
			Name:    u.Name,
			Content: bodyPayload(u.Body),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"apis": entries})
}

func downloadExport(w http.ResponseWriter, r *http.Request, srv server.Server) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	includeMetadata := parseMetadataParam(r.URL.Query().Get("metadata"))

	units, err := srv.Store.All()
	if err != nil {
		srv.Logger.Error("failed to load documentation for export", "error", err)
		http.Error(w, "Failed to load documentation", http.StatusInternalServerError)
		return
	}

	res, err := srv.Exporter.Collection(format, units, includeMetadata)
	if err != nil {
		srv.Logger.Error("failed to build combined export",
			"format", format, "error", err)
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	writeDownload(w, res)
}
