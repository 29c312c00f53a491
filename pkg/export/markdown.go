package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/refdock/refdock/pkg/document"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// headingAnchor derives the GitHub-style anchor for a heading: lower-cased
// with whitespace runs replaced by hyphens.
func headingAnchor(heading string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(heading), "-")
}

func (e *Exporter) documentMarkdown(
	unit document.Unit, includeMetadata bool,
) ([]byte, error) {
	now := e.now()

	var b strings.Builder
	if includeMetadata {
		b.WriteString("---\n")
		fmt.Fprintf(&b, "api: %s\n", unit.Name)
		fmt.Fprintf(&b, "exportDate: %s\n", now.Format(time.RFC3339))
		fmt.Fprintf(&b, "source: %s\n", sourceName)
		fmt.Fprintf(&b, "purpose: %s\n", metadataPurpose)
		b.WriteString("---\n\n")
	}

	fmt.Fprintf(&b, "# %s API Documentation\n\n", unit.Name)
	fmt.Fprintf(&b, "*Exported on %s*\n\n", now.Format("January 2, 2006"))

	switch body := unit.Body.(type) {
	case document.Sections:
		for i, s := range body {
			if i > 0 {
				b.WriteString("\n\n---\n\n")
			}
			fmt.Fprintf(&b, "## %s\n\n%s", s.Title, s.Content)
		}
	case document.PlainText:
		b.WriteString(string(body))
	}
	b.WriteString("\n")

	return []byte(b.String()), nil
}

func (e *Exporter) collectionMarkdown(
	units []document.Unit, includeMetadata bool,
) ([]byte, error) {
	now := e.now()

	var b strings.Builder
	if includeMetadata {
		b.WriteString("---\n")
		fmt.Fprintf(&b, "exportDate: %s\n", now.Format(time.RFC3339))
		fmt.Fprintf(&b, "source: %s\n", sourceName)
		fmt.Fprintf(&b, "purpose: %s\n", metadataPurpose)
		fmt.Fprintf(&b, "totalApis: %d\n", len(units))
		b.WriteString("---\n\n")
	}

	b.WriteString("# API Documentation Collection\n\n")
	fmt.Fprintf(&b, "*Exported on %s*\n\n", now.Format("January 2, 2006"))

	b.WriteString("## Table of Contents\n\n")
	for i, u := range units {
		heading := u.Name + " API"
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, heading, headingAnchor(heading))
	}
	b.WriteString("\n")

	for i, u := range units {
		if i > 0 {
			b.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&b, "# %s API\n\n", u.Name)
		switch body := u.Body.(type) {
		case document.Sections:
			for j, s := range body {
				if j > 0 {
					b.WriteString("\n\n")
				}
				fmt.Fprintf(&b, "## %s\n\n%s", s.Title, s.Content)
			}
		case document.PlainText:
			b.WriteString(string(body))
		}
	}
	b.WriteString("\n")

	return []byte(b.String()), nil
}
