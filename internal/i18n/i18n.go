// Package i18n resolves UI strings from embedded locale files. Lookup
// falls back to English, then to the key itself, so a missing translation
// never breaks a page.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const fallbackLocale = "en"

// Bundle holds the message tables for every embedded locale.
type Bundle struct {
	messages map[string]map[string]string
}

// Load parses every embedded locale file.
func Load() (*Bundle, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("error listing locales: %w", err)
	}

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, e := range entries {
		locale := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))

		raw, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("error reading locale %q: %w", locale, err)
		}

		var table map[string]string
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("error parsing locale %q: %w", locale, err)
		}
		b.messages[locale] = table
	}

	if _, ok := b.messages[fallbackLocale]; !ok {
		return nil, fmt.Errorf("fallback locale %q missing", fallbackLocale)
	}
	return b, nil
}

// T resolves key in the given locale, falling back to English and finally
// to the key itself.
func (b *Bundle) T(locale, key string) string {
	if table, ok := b.messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := b.messages[fallbackLocale][key]; ok {
		return msg
	}
	return key
}

// Locales returns the available locale codes, sorted.
func (b *Bundle) Locales() []string {
	locales := make([]string, 0, len(b.messages))
	for l := range b.messages {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// Has reports whether a locale is available.
func (b *Bundle) Has(locale string) bool {
	_, ok := b.messages[locale]
	return ok
}
