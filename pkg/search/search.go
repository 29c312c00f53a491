// Package search provides full-text search over documentation sections,
// backed by an in-memory bleve index built at startup. Content is
// read-only at runtime, so the index is rebuilt whenever the content is
// regenerated rather than updated incrementally.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/refdock/refdock/pkg/document"
)

// Result is one search hit: a section of one API's documentation.
type Result struct {
	APIID        string  `json:"id"`
	APIName      string  `json:"name"`
	SectionTitle string  `json:"section"`
	Score        float64 `json:"score"`
}

// sectionDoc is the indexed representation of one section.
type sectionDoc struct {
	API     string `json:"api"`
	APIName string `json:"apiName"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Index wraps a bleve index over documentation sections.
type Index struct {
	idx    bleve.Index
	logger hclog.Logger
}

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex(logger hclog.Logger) (*Index, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("error creating search index: %w", err)
	}

	return &Index{idx: idx, logger: logger.Named("search")}, nil
}

// IndexUnits indexes every section of every unit. A plain-text body is
// indexed as one untitled section.
func (i *Index) IndexUnits(units []document.Unit) error {
	batch := i.idx.NewBatch()

	for _, u := range units {
		switch body := u.Body.(type) {
		case document.Sections:
			for n, s := range body {
				id := fmt.Sprintf("%s/%d", u.ID, n)
				if err := batch.Index(id, sectionDoc{
					API:     u.ID,
					APIName: u.Name,
					Title:   s.Title,
					Content: s.Content,
				}); err != nil {
					return fmt.Errorf("error indexing %s: %w", id, err)
				}
			}
		case document.PlainText:
			if err := batch.Index(u.ID, sectionDoc{
				API:     u.ID,
				APIName: u.Name,
				Content: string(body),
			}); err != nil {
				return fmt.Errorf("error indexing %s: %w", u.ID, err)
			}
		}
	}

	if err := i.idx.Batch(batch); err != nil {
		return fmt.Errorf("error committing index batch: %w", err)
	}

	i.logger.Debug("indexed documentation units", "units", len(units))
	return nil
}

// Search runs a match query over section titles and contents and returns
// up to limit hits, best first.
func (i *Index) Search(query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequestOptions(
		bleve.NewMatchQuery(query), limit, 0, false)
	req.Fields = []string{"api", "apiName", "title"}

	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("error searching index: %w", err)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		r := Result{Score: hit.Score}
		if v, ok := hit.Fields["api"].(string); ok {
			r.APIID = v
		}
		if v, ok := hit.Fields["apiName"].(string); ok {
			r.APIName = v
		}
		if v, ok := hit.Fields["title"].(string); ok {
			r.SectionTitle = v
		}
		results = append(results, r)
	}

	return results, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.idx.Close()
}
