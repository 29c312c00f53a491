package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/refdock/refdock/pkg/document"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// xmlEscaper covers the five standard entities. Ampersand replacement
// must come first so already-replaced entities are not re-escaped; the
// strings.Replacer applies patterns in one pass, which gives the same
// guarantee.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five standard XML entities in s.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// cdata wraps raw text in a CDATA section, splitting any embedded "]]>"
// terminator across adjacent sections.
func cdata(s string) string {
	return "<![CDATA[" + strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>") + "]]>"
}

// xmlSection writes one <section> element at the given indent. Raw
// Markdown passes through CDATA unstripped; the title element is present
// only for structured (titled) sections.
func xmlSection(b *strings.Builder, indent string, title, content string, titled bool) {
	b.WriteString(indent + "<section>\n")
	if titled {
		fmt.Fprintf(b, "%s  <title>%s</title>\n", indent, EscapeXML(title))
	}
	fmt.Fprintf(b, "%s  <data>%s</data>\n", indent, cdata(content))
	b.WriteString(indent + "</section>\n")
}

func xmlBody(b *strings.Builder, indent string, body document.Body) {
	switch body := body.(type) {
	case document.Sections:
		for _, s := range body {
			xmlSection(b, indent, s.Title, s.Content, true)
		}
	case document.PlainText:
		xmlSection(b, indent, "", string(body), false)
	}
}

func (e *Exporter) documentXML(
	unit document.Unit, includeMetadata bool,
) ([]byte, error) {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<apiDocumentation>\n")

	if includeMetadata {
		b.WriteString("  <metadata>\n")
		fmt.Fprintf(&b, "    <api>%s</api>\n", EscapeXML(unit.Name))
		fmt.Fprintf(&b, "    <exportDate>%s</exportDate>\n",
			e.now().Format(time.RFC3339))
		fmt.Fprintf(&b, "    <source>%s</source>\n", EscapeXML(sourceName))
		fmt.Fprintf(&b, "    <purpose>%s</purpose>\n", EscapeXML(metadataPurpose))
		b.WriteString("  </metadata>\n")
	}

	b.WriteString("  <content>\n")
	xmlBody(&b, "    ", unit.Body)
	b.WriteString("  </content>\n")
	b.WriteString("</apiDocumentation>\n")

	return []byte(b.String()), nil
}

func (e *Exporter) collectionXML(
	units []document.Unit, includeMetadata bool,
) ([]byte, error) {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString("<apiDocumentationCollection>\n")

	if includeMetadata {
		b.WriteString("  <metadata>\n")
		fmt.Fprintf(&b, "    <exportDate>%s</exportDate>\n",
			e.now().Format(time.RFC3339))
		fmt.Fprintf(&b, "    <source>%s</source>\n", EscapeXML(sourceName))
		fmt.Fprintf(&b, "    <purpose>%s</purpose>\n", EscapeXML(metadataPurpose))
		fmt.Fprintf(&b, "    <totalApis>%d</totalApis>\n", len(units))
		b.WriteString("  </metadata>\n")
	}

	b.WriteString("  <apis>\n")
	for _, u := range units {
		b.WriteString("    <api>\n")
		fmt.Fprintf(&b, "      <name>%s</name>\n", EscapeXML(u.Name))
		b.WriteString("      <documentation>\n")
		xmlBody(&b, "        ", u.Body)
		b.WriteString("      </documentation>\n")
		b.WriteString("    </api>\n")
	}
	b.WriteString("  </apis>\n")
	b.WriteString("</apiDocumentationCollection>\n")

	return []byte(b.String()), nil
}
