package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdock/refdock/internal/config"
	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/pkg/export"
	"github.com/refdock/refdock/pkg/search"
	"github.com/refdock/refdock/pkg/store"
)

func testServer(t *testing.T) server.Server {
	t.Helper()
	fs := afero.NewMemMapFs()

	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	write("content/stripe/manifest.yaml",
		"name: Stripe\ntopics:\n  - payment-intents\n  - customers\n")
	write("content/stripe/payment-intents.md",
		"# Payment Intents\nCreate a **PaymentIntent** first.")
	write("content/stripe/customers.md", "# Customers\nSaved payment methods.")
	write("content/sendgrid/mail-send.md", "# Mail Send\nSend email via v3.")

	logger := hclog.NewNullLogger()
	st := store.New(fs, "content", logger)

	idx, err := search.NewMemoryIndex(logger)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	units, err := st.All()
	require.NoError(t, err)
	require.NoError(t, idx.IndexUnits(units))

	return server.Server{
		Config: config.Default(),
		Store:  st,
		Exporter: &export.Exporter{Now: func() time.Time {
			return time.Date(2025, time.June, 19, 12, 0, 0, 0, time.UTC)
		}},
		Search: idx,
		Logger: logger,
	}
}

func serve(t *testing.T, srv server.Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	RegisterRoutes(mux, srv)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListDocuments(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/docs")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		APIs []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Sections int    `json:"sections"`
		} `json:"apis"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Count)
	require.Len(t, body.APIs, 2)
	assert.Equal(t, "sendgrid", body.APIs[0].ID)
	assert.Equal(t, "stripe", body.APIs[1].ID)
	assert.Equal(t, "Stripe", body.APIs[1].Name)
	assert.Equal(t, 2, body.APIs[1].Sections)
}

func TestGetDocument(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/docs/stripe")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Content []struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "stripe", body.ID)
	require.Len(t, body.Content, 2)
	assert.Equal(t, "Payment Intents", body.Content[0].Title)
}

func TestGetDocument_NotFound(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/docs/twilio")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportDocument(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet,
		"/api/docs/stripe/export?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="stripe-api-docs-2025-06-19.json"`,
		rec.Header().Get("Content-Disposition"))

	var body struct {
		API      string          `json:"api"`
		Metadata json.RawMessage `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Stripe", body.API)
	assert.NotEmpty(t, body.Metadata)
}

func TestExportDocument_NoMetadata(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet,
		"/api/docs/stripe/export?format=json&metadata=false")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "metadata")
}

func TestExportDocument_BadFormat(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet,
		"/api/docs/stripe/export?format=pdf")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported export format")
}

func TestPromptDocument(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/docs/stripe/prompt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "You are assisting with the Stripe API.")
}

func TestAggregateExport(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/export")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		APIs []struct {
			ID      string          `json:"id"`
			Name    string          `json:"name"`
			Content json.RawMessage `json:"content"`
		} `json:"apis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.APIs, 2)
	assert.Equal(t, "sendgrid", body.APIs[0].ID)
	assert.NotEmpty(t, body.APIs[0].Content)
}

func TestAggregateExport_SkipsBrokenUnit(t *testing.T) {
	srv := testServer(t)

	// Wedge in a unit whose manifest points at a missing topic; the
	// aggregation must drop it and still succeed.
	fs := afero.NewMemMapFs()
	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	write("content/good/intro.md", "# Intro\nHello.")
	write("content/broken/manifest.yaml",
		"name: Broken\ntopics:\n  - missing\n")
	srv.Store = store.New(fs, "content", hclog.NewNullLogger())

	rec := serve(t, srv, http.MethodGet, "/api/export")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		APIs []struct {
			ID string `json:"id"`
		} `json:"apis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.APIs, 1)
	assert.Equal(t, "good", body.APIs[0].ID)
}

func TestDownloadExport(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet,
		"/api/export/download?format=markdown")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "# API Documentation Collection")
	assert.Contains(t, rec.Body.String(), "1. [Sendgrid API](#sendgrid-api)")
}

func TestSearch(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/search?q=payment")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Query   string `json:"query"`
		Count   int    `json:"count"`
		Results []struct {
			ID      string `json:"id"`
			Section string `json:"section"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "payment", body.Query)
	require.NotZero(t, body.Count)
	assert.Equal(t, "stripe", body.Results[0].ID)
}

func TestSearch_MissingQuery(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodGet, "/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_Disabled(t *testing.T) {
	srv := testServer(t)
	srv.Search = nil

	rec := serve(t, srv, http.MethodGet, "/api/search?q=payment")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, testServer(t), http.MethodPost, "/api/docs")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
