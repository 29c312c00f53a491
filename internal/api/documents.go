package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/pkg/document"
	"github.com/refdock/refdock/pkg/export"
	"github.com/refdock/refdock/pkg/store"
)

// DocumentsHandler handles documentation read and export endpoints.
// Routes:
//
//	GET /api/docs              - List all documentation units
//	GET /api/docs/:id          - Get one unit with full contents
//	GET /api/docs/:id/export   - Download one unit (format query param)
//	GET /api/docs/:id/prompt   - Unit formatted as an AI assistant prompt
func DocumentsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		path := r.URL.Path
		if path == "/api/docs" || path == "/api/docs/" {
			listDocuments(w, r, srv)
			return
		}

		id, action, err := parseDocPath(path)
		if err != nil {
			http.Error(w, "Invalid path", http.StatusBadRequest)
			return
		}

		switch action {
		case "":
			getDocument(w, r, srv, id)
		case "export":
			exportDocument(w, r, srv, id)
		case "prompt":
			promptDocument(w, r, srv, id)
		default:
			http.Error(w, "Invalid path", http.StatusBadRequest)
		}
	})
}

// documentSummary is one entry of the list response.
type documentSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sections int    `json:"sections"`
}

func listDocuments(w http.ResponseWriter, _ *http.Request, srv server.Server) {
	units, err := srv.Store.All()
	if err != nil {
		srv.Logger.Error("failed to list documentation", "error", err)
		http.Error(w, "Failed to list documentation", http.StatusInternalServerError)
		return
	}

	summaries := make([]documentSummary, 0, len(units))
	for _, u := range units {
		summaries = append(summaries, documentSummary{
			ID:       u.ID,
			Name:     u.Name,
			Sections: u.SectionCount(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"apis":  summaries,
		"count": len(summaries),
	})
}

func getDocument(w http.ResponseWriter, _ *http.Request, srv server.Server, id string) {
	unit, ok := loadUnit(w, srv, id)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      unit.ID,
		"name":    unit.Name,
		"content": bodyPayload(unit.Body),
	})
}

func exportDocument(w http.ResponseWriter, r *http.Request, srv server.Server, id string) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	includeMetadata := parseMetadataParam(r.URL.Query().Get("metadata"))

	unit, ok := loadUnit(w, srv, id)
	if !ok {
		return
	}

	res, err := srv.Exporter.Document(format, unit, includeMetadata)
	if err != nil {
		srv.Logger.Error("failed to export documentation",
			"id", id, "format", format, "error", err)
		http.Error(w, "Failed to export documentation", http.StatusInternalServerError)
		return
	}

	writeDownload(w, res)
}

func promptDocument(w http.ResponseWriter, _ *http.Request, srv server.Server, id string) {
	unit, ok := loadUnit(w, srv, id)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, export.Prompt(unit))
}

// loadUnit fetches a unit, translating a store miss into a 404. The false
// return means the response has already been written.
func loadUnit(w http.ResponseWriter, srv server.Server, id string) (document.Unit, bool) {
	unit, err := srv.Store.Get(id)
	if err != nil {
		var nfe *store.NotFoundError
		if errors.As(err, &nfe) {
			http.Error(w, "Documentation not found", http.StatusNotFound)
			return unit, false
		}
		srv.Logger.Error("failed to load documentation", "id", id, "error", err)
		http.Error(w, "Failed to load documentation", http.StatusInternalServerError)
		return unit, false
	}
	return unit, true
}

// writeDownload sends an export result as a file attachment.
func writeDownload(w http.ResponseWriter, res *export.Result) {
	w.Header().Set("Content-Type", res.MIMEType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Write(res.Bytes)
}
