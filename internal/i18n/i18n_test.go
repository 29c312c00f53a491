package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "ko"}, b.Locales())
	assert.True(t, b.Has("en"))
	assert.False(t, b.Has("fr"))
}

func TestT_FallbackChain(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	// Direct hit.
	assert.Equal(t, "Export", b.T("en", "doc.export"))
	assert.Equal(t, "내보내기", b.T("ko", "doc.export"))

	// Unknown locale falls back to English.
	assert.Equal(t, "Export", b.T("fr", "doc.export"))

	// Unknown key falls back to the key itself.
	assert.Equal(t, "doc.nonexistent", b.T("en", "doc.nonexistent"))
	assert.Equal(t, "doc.nonexistent", b.T("fr", "doc.nonexistent"))
}
