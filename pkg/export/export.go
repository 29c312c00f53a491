// Package export implements the multi-format document export engine. It
// serializes one documentation unit (or the whole collection) into JSON,
// Markdown, plain text, or XML, and derives download filenames. Exports
// are pure transforms: no I/O, no shared state, each call runs to
// completion or returns an error with no partial output.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/refdock/refdock/pkg/document"
)

// Format selects the export serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatXML      Format = "xml"
)

// Fixed metadata literals identifying the exporting tool. These appear in
// every export that carries metadata.
const (
	sourceName      = "RefDock Documentation Hub"
	metadataVersion = "1.0"
	metadataURL     = "https://refdock.dev"
	metadataPurpose = "Offline reference and AI assistant context"
)

// UnsupportedFormatError is returned when an export is requested in a
// format outside the supported set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}

// ParseFormat validates a raw format string.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatMarkdown, FormatText, FormatXML:
		return f, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

// MIMEType returns the MIME type declared on download responses for the
// format.
func (f Format) MIMEType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown"
	case FormatXML:
		return "application/xml"
	default:
		return "text/plain"
	}
}

// FileExtension maps a format to its download file extension. Unknown
// formats default to ".txt" rather than failing; this is deliberately more
// lenient than the exporter itself.
func FileExtension(f Format) string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatXML:
		return ".xml"
	default:
		return ".txt"
	}
}

// Result is the outcome of one export call, handed straight to the caller
// for download. It is never cached or stored.
type Result struct {
	Bytes    []byte
	MIMEType string
	Filename string
}

// Exporter serializes documentation units. The zero value is not usable;
// construct with New. Now is the clock used for export dates and
// filenames, injectable so tests get deterministic output.
type Exporter struct {
	Now func() time.Time
}

// New returns an Exporter using the wall clock.
func New() *Exporter {
	return &Exporter{Now: time.Now}
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Filename builds the suggested download filename for a single-unit
// export: "{lowercased name}-api-docs-{YYYY-MM-DD}{ext}". The date comes
// from the exporter clock, not from any document metadata.
func (e *Exporter) Filename(apiName string, format Format) string {
	return strings.ToLower(apiName) + "-api-docs-" +
		e.now().Format("2006-01-02") + FileExtension(format)
}

// Document exports a single documentation unit in the requested format.
func (e *Exporter) Document(
	format Format, unit document.Unit, includeMetadata bool,
) (*Result, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatJSON:
		body, err = e.documentJSON(unit, includeMetadata)
	case FormatMarkdown:
		body, err = e.documentMarkdown(unit, includeMetadata)
	case FormatText:
		body, err = e.documentText(unit, includeMetadata)
	case FormatXML:
		body, err = e.documentXML(unit, includeMetadata)
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Bytes:    body,
		MIMEType: format.MIMEType(),
		Filename: e.Filename(unit.Name, format),
	}, nil
}

// Collection exports every unit into one combined document in the
// requested format. An empty unit list still yields a well-formed
// document.
func (e *Exporter) Collection(
	format Format, units []document.Unit, includeMetadata bool,
) (*Result, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatJSON:
		body, err = e.collectionJSON(units, includeMetadata)
	case FormatMarkdown:
		body, err = e.collectionMarkdown(units, includeMetadata)
	case FormatText:
		body, err = e.collectionText(units, includeMetadata)
	case FormatXML:
		body, err = e.collectionXML(units, includeMetadata)
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Bytes:    body,
		MIMEType: format.MIMEType(),
		Filename: e.Filename("all", format),
	}, nil
}
