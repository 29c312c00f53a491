package api

import (
	"fmt"
	"strings"

	"github.com/refdock/refdock/pkg/document"
)

// parseDocPath parses a URL path with the format
// "/api/docs/{id}" or "/api/docs/{id}/{action}" and returns the id and
// the (possibly empty) action.
func parseDocPath(url string) (string, string, error) {
	url = strings.TrimPrefix(url, "/api/docs")

	// Remove empty entries and validate path.
	var parts []string
	for _, v := range strings.Split(url, "/") {
		// Only append non-empty values, this removes any empty strings
		// in the slice.
		if v != "" {
			parts = append(parts, v)
		}
	}

	switch len(parts) {
	case 1:
		return parts[0], "", nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid URL path")
	}
}

// bodyPayload maps a document body to its JSON payload shape: structured
// content is the sections array, bare content is wrapped as {content}.
func bodyPayload(body document.Body) any {
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

// parseMetadataParam interprets the optional "metadata" query parameter;
// metadata is included unless it is explicitly turned off.
func parseMetadataParam(v string) bool {
	switch strings.ToLower(v) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}
