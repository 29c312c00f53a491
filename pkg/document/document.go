// Package document defines the documentation payload types shared by the
// content store, the export engine, and the HTTP API.
package document

// Section is one titled chunk of Markdown content within a unit. Order of
// sections is significant and reflects the logical reading order.
type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Body is the documentation content of a unit. It is a closed union:
// either PlainText (bare content with no section titles) or Sections
// (ordered, titled). Serializers type-switch on it exactly once.
type Body interface {
	isBody()
}

// PlainText is bare documentation content supplied as a single untitled
// string.
type PlainText string

func (PlainText) isBody() {}

// Sections is structured documentation content. A valid value is never
// empty.
type Sections []Section

func (Sections) isBody() {}

// Unit is one third-party API's documentation payload.
type Unit struct {
	// ID is the short identifier ("stripe"), unique across the store and
	// used for lookups and filenames.
	ID string

	// Name is the display name ("Stripe") used in headers and titles.
	Name string

	Body Body
}

// SectionCount returns the number of sections in the unit's body. A
// plain-text body counts as one implicit section.
func (u Unit) SectionCount() int {
	switch b := u.Body.(type) {
	case Sections:
		return len(b)
	case PlainText:
		return 1
	default:
		return 0
	}
}
