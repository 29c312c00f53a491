package export

import (
	"encoding/json"
	"time"

	"github.com/refdock/refdock/pkg/document"
)

// jsonMetadata is the fixed metadata block attached to single-unit JSON
// exports when metadata is requested.
type jsonMetadata struct {
	Version string `json:"version"`
	URL     string `json:"url"`
	Purpose string `json:"purpose"`
}

// jsonCollectionMetadata additionally carries the unit count for bulk
// exports.
type jsonCollectionMetadata struct {
	Version   string `json:"version"`
	URL       string `json:"url"`
	Purpose   string `json:"purpose"`
	TotalAPIs int    `json:"totalApis"`
}

type jsonDocument struct {
	API           string        `json:"api"`
	ExportDate    string        `json:"exportDate"`
	Source        string        `json:"source"`
	Metadata      *jsonMetadata `json:"metadata,omitempty"`
	Documentation any           `json:"documentation"`
}

type jsonCollection struct {
	ExportDate string                  `json:"exportDate"`
	Source     string                  `json:"source"`
	Metadata   *jsonCollectionMetadata `json:"metadata,omitempty"`
	APIs       []jsonCollectionEntry   `json:"apis"`
}

type jsonCollectionEntry struct {
	Name          string `json:"name"`
	Documentation any    `json:"documentation"`
}

// jsonBody maps a document body to its JSON payload shape: bare content is
// wrapped as {"content": ...}, structured content passes the sections
// array through unchanged.
func jsonBody(body document.Body) any {
	switch b := body.(type) {
	case document.Sections:
		return []document.Section(b)
	case document.PlainText:
		return struct {
			Content string `json:"content"`
		}{Content: string(b)}
	default:
		return nil
	}
}

func (e *Exporter) documentJSON(
	unit document.Unit, includeMetadata bool,
) ([]byte, error) {
	doc := jsonDocument{
		API:           unit.Name,
		ExportDate:    e.now().Format(time.RFC3339),
		Source:        sourceName,
		Documentation: jsonBody(unit.Body),
	}
	if includeMetadata {
		doc.Metadata = &jsonMetadata{
			Version: metadataVersion,
			URL:     metadataURL,
			Purpose: metadataPurpose,
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}

func (e *Exporter) collectionJSON(
	units []document.Unit, includeMetadata bool,
) ([]byte, error) {
	coll := jsonCollection{
		ExportDate: e.now().Format(time.RFC3339),
		Source:     sourceName,
		APIs:       make([]jsonCollectionEntry, 0, len(units)),
	}
	if includeMetadata {
		coll.Metadata = &jsonCollectionMetadata{
			Version:   metadataVersion,
			URL:       metadataURL,
			Purpose:   metadataPurpose,
			TotalAPIs: len(units),
		}
	}
	for _, u := range units {
		coll.APIs = append(coll.APIs, jsonCollectionEntry{
			Name:          u.Name,
			Documentation: jsonBody(u.Body),
		})
	}

	return json.MarshalIndent(coll, "", "  ")
}
