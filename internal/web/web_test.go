package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdock/refdock/internal/config"
	"github.com/refdock/refdock/internal/i18n"
	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/pkg/export"
	"github.com/refdock/refdock/pkg/store"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "content/stripe/payment-intents.md",
		[]byte("# Payment Intents\nUse `stripe.PaymentIntent.create` like:\n\n```python\nstripe.PaymentIntent.create(amount=2000)\n```\n"),
		0o644))

	bundle, err := i18n.Load()
	require.NoError(t, err)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	srv := server.Server{
		Config:   config.Default(),
		Store:    store.New(fs, "content", nil),
		Exporter: export.New(),
		I18n:     bundle,
		Logger:   hclog.NewNullLogger(),
	}
	return PagesHandler(srv, renderer)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndexPage(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "RefDock")
	assert.Contains(t, body, `href="/docs/stripe"`)
	assert.Contains(t, body, `data-theme="light"`)
}

func TestDocPage_RendersMarkdown(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/docs/stripe")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// Section title derived from the filename, Markdown rendered to HTML
	// with highlighted code.
	assert.Contains(t, body, "Payment Intents")
	assert.Contains(t, body, "<h1")
	assert.Contains(t, body, "<pre")
	assert.Contains(t, body, "/api/docs/stripe/export?format=json")
	assert.Contains(t, body, "copyPrompt")
}

func TestDocPage_NotFound(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/docs/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestThemeToggle(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/theme?set=dark")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var theme string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "theme" {
			theme = c.Value
		}
	}
	assert.Equal(t, "dark", theme)

	rec = get(t, h, "/theme?set=sepia")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocaleSwitch(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/locale?set=ko")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = get(t, h, "/locale?set=fr")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStylesheetServed(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/static/style.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--bg")
}
