package store

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdock/refdock/pkg/document"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	// Stripe has a manifest with an explicit reading order that differs
	// from the lexical one.
	write("content/stripe/manifest.yaml",
		"name: Stripe\ntopics:\n  - payment-intents\n  - customers\n")
	write("content/stripe/payment-intents.md",
		"# Payment Intents\nCreate a PaymentIntent to collect a payment.")
	write("content/stripe/customers.md",
		"# Customers\nCustomers hold saved payment methods.")

	// Sendgrid has no manifest; name and order are derived.
	write("content/sendgrid/mail-send.md", "# Mail Send\nSend email via v3.")
	write("content/sendgrid/webhooks.md", "# Webhooks\nEvent callbacks.")

	// A directory with no topic files at all.
	require.NoError(t, fs.MkdirAll("content/empty", 0o755))

	return fs
}

func TestStore_List(t *testing.T) {
	s := New(testFs(t), "content", nil)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "sendgrid", "stripe"}, ids)
}

func TestStore_Get_ManifestOrder(t *testing.T) {
	s := New(testFs(t), "content", nil)

	unit, err := s.Get("stripe")
	require.NoError(t, err)

	assert.Equal(t, "stripe", unit.ID)
	assert.Equal(t, "Stripe", unit.Name)

	sections, ok := unit.Body.(document.Sections)
	require.True(t, ok)
	require.Len(t, sections, 2)

	// Manifest order wins over lexical order.
	assert.Equal(t, "Payment Intents", sections[0].Title)
	assert.Equal(t, "Customers", sections[1].Title)
	assert.Contains(t, sections[0].Content, "PaymentIntent")
}

func TestStore_Get_DerivedNameAndOrder(t *testing.T) {
	s := New(testFs(t), "content", nil)

	unit, err := s.Get("sendgrid")
	require.NoError(t, err)

	assert.Equal(t, "Sendgrid", unit.Name)

	sections := unit.Body.(document.Sections)
	require.Len(t, sections, 2)
	assert.Equal(t, "Mail Send", sections[0].Title)
	assert.Equal(t, "Webhooks", sections[1].Title)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := New(testFs(t), "content", nil)

	_, err := s.Get("twilio")
	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "twilio", nfe.ID)

	// A directory without topic files is also not found.
	_, err = s.Get("empty")
	require.True(t, errors.As(err, &nfe))
}

func TestStore_All_SkipsBrokenUnits(t *testing.T) {
	fs := testFs(t)

	// A manifest that references a missing topic file makes the unit
	// unloadable; All must skip it and still return the rest.
	require.NoError(t, afero.WriteFile(fs, "content/broken/manifest.yaml",
		[]byte("name: Broken\ntopics:\n  - missing-topic\n"), 0o644))

	s := New(fs, "content", nil)

	units, err := s.All()
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "sendgrid", units[0].ID)
	assert.Equal(t, "stripe", units[1].ID)
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "Payment Intents", TitleFromFilename("payment-intents.md"))
	assert.Equal(t, "Payment Intents", TitleFromFilename("payment-intents"))
	assert.Equal(t, "Mail Send", TitleFromFilename("mail-send.md"))
	assert.Equal(t, "Webhooks", TitleFromFilename("webhooks.md"))
}
