package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/refdock/refdock/pkg/document"
)

const ruleWidth = 50

// Markdown-stripping substitutions, applied in this order. The order is
// part of the exporter's observable contract: heading markers, bold,
// italics, inline code, fenced code blocks (deleted with their contents),
// then links. Applying the transform to already-stripped text is a no-op.
var (
	reATXHeading = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	reBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*\n]+)\*`)
	reInlineCode = regexp.MustCompile("`([^`\n]+)`")
	reCodeFence  = regexp.MustCompile("(?s)```.*?```")
	reLink       = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
)

// StripMarkdown removes Markdown syntax from s for plain-text output.
// This is an ad hoc sequential-substitution stripper, kept behind one
// named function so an AST-based implementation could replace it without
// touching the serializers.
func StripMarkdown(s string) string {
	s = reATXHeading.ReplaceAllString(s, "")
	s = reBold.ReplaceAllString(s, "$1")
	s = reItalic.ReplaceAllString(s, "$1")
	s = reInlineCode.ReplaceAllString(s, "$1")
	s = reCodeFence.ReplaceAllString(s, "")
	s = reLink.ReplaceAllString(s, "$1")
	return s
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

// underlined emits a title line followed by a rule of the same length.
func underlined(b *strings.Builder, title, ch string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(rule(ch, len(title)))
	b.WriteString("\n")
}

func (e *Exporter) textMetadataBlock(
	b *strings.Builder, lines ...string,
) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(rule("=", ruleWidth))
	b.WriteString("\n\n")
}

// textSections writes each section with its title upper-cased and
// dash-underlined, sections separated by a 50-character dash rule.
func textSections(b *strings.Builder, sections document.Sections) {
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
			b.WriteString(rule("-", ruleWidth))
			b.WriteString("\n\n")
		}
		underlined(b, strings.ToUpper(s.Title), "-")
		b.WriteString("\n")
		b.WriteString(StripMarkdown(s.Content))
	}
}

func (e *Exporter) documentText(
	unit document.Unit, includeMetadata bool,
) ([]byte, error) {
	var b strings.Builder
	if includeMetadata {
		e.textMetadataBlock(&b,
			fmt.Sprintf("API: %s", unit.Name),
			fmt.Sprintf("Export Date: %s", e.now().Format(time.RFC3339)),
			fmt.Sprintf("Source: %s", sourceName),
			fmt.Sprintf("Purpose: %s", metadataPurpose),
		)
	}

	underlined(&b, strings.ToUpper(unit.Name)+" API DOCUMENTATION", "=")
	b.WriteString("\n")

	switch body := unit.Body.(type) {
	case document.Sections:
		textSections(&b, body)
	case document.PlainText:
		b.WriteString(StripMarkdown(string(body)))
	}
	b.WriteString("\n")

	return []byte(b.String()), nil
}

func (e *Exporter) collectionText(
	units []document.Unit, includeMetadata bool,
) ([]byte, error) {
	var b strings.Builder
	if includeMetadata {
		e.textMetadataBlock(&b,
			fmt.Sprintf("Export Date: %s", e.now().Format(time.RFC3339)),
			fmt.Sprintf("Source: %s", sourceName),
			fmt.Sprintf("Purpose: %s", metadataPurpose),
			fmt.Sprintf("Total APIs: %d", len(units)),
		)
	}

	underlined(&b, "API DOCUMENTATION COLLECTION", "=")
	b.WriteString("\n")

	underlined(&b, "TABLE OF CONTENTS", "-")
	for i, u := range units {
		fmt.Fprintf(&b, "%d. %s\n", i+1, u.Name)
	}
	b.WriteString("\n")

	for i, u := range units {
		if i > 0 {
			b.WriteString("\n\n")
			b.WriteString(rule("=", ruleWidth))
			b.WriteString("\n\n")
		}
		underlined(&b, strings.ToUpper(u.Name)+" API", "=")
		b.WriteString("\n")
		switch body := u.Body.(type) {
		case document.Sections:
			textSections(&b, body)
		case document.PlainText:
			b.WriteString(StripMarkdown(string(body)))
		}
	}
	b.WriteString("\n")

	return []byte(b.String()), nil
}
