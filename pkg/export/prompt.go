package export

import (
	"fmt"
	"strings"

	"github.com/refdock/refdock/pkg/document"
)

// Prompt formats a unit as a copy-pasteable AI assistant prompt: a short
// preamble identifying the API followed by the raw Markdown documentation.
// The Markdown is left intact since assistants handle it natively.
func Prompt(unit document.Unit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are assisting with the %s API.\n", unit.Name)
	b.WriteString("Use the reference documentation below to answer questions " +
		"accurately. Prefer it over prior knowledge when they disagree.\n\n")
	fmt.Fprintf(&b, "# %s API Reference\n\n", unit.Name)

	switch body := unit.Body.(type) {
	case document.Sections:
		for i, s := range body {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "## %s\n\n%s", s.Title, s.Content)
		}
	case document.PlainText:
		b.WriteString(string(body))
	}
	b.WriteString("\n")

	return b.String()
}
