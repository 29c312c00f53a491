// Package store implements the ContentStore: a read-only view over a
// directory of pre-generated Markdown documentation, one subdirectory per
// API id, one file per topic. It carries no cache; results reflect the
// current state of the filesystem.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/refdock/refdock/pkg/document"
)

// ManifestFilename is the optional per-API manifest carrying the display
// name and the ordered topic list. Directory listings cannot express a
// logical reading order, so the generator writes one alongside the topic
// files.
const ManifestFilename = "manifest.yaml"

var titleCaser = cases.Title(language.English)

// NotFoundError is returned when no documentation exists for an API id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no documentation found for API %q", e.ID)
}

// manifest is the on-disk schema of manifest.yaml.
type manifest struct {
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

// Store reads documentation units from a content root.
type Store struct {
	fs     afero.Fs
	root   string
	logger hclog.Logger
}

// New returns a Store over the given filesystem and content root.
func New(fs afero.Fs, root string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{fs: fs, root: root, logger: logger.Named("store")}
}

// List returns the ids of every API present under the content root, in
// lexical order.
func (s *Store) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("error reading content root: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Get loads one API's documentation unit. Unknown ids, and ids with no
// topic files, yield a NotFoundError.
func (s *Store) Get(id string) (document.Unit, error) {
	dir := filepath.Join(s.root, id)

	info, err := s.fs.Stat(dir)
	if os.IsNotExist(err) {
		return document.Unit{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return document.Unit{}, fmt.Errorf("error reading API directory: %w", err)
	}
	if !info.IsDir() {
		return document.Unit{}, &NotFoundError{ID: id}
	}

	name, topics, err := s.readManifest(dir, id)
	if err != nil {
		return document.Unit{}, err
	}

	sections := make(document.Sections, 0, len(topics))
	for _, topic := range topics {
		content, err := afero.ReadFile(s.fs, filepath.Join(dir, topic+".md"))
		if err != nil {
			return document.Unit{}, fmt.Errorf(
				"error reading topic %q for API %q: %w", topic, id, err)
		}
		sections = append(sections, document.Section{
			Title:   TitleFromFilename(topic),
			Content: string(content),
		})
	}

	if len(sections) == 0 {
		return document.Unit{}, &NotFoundError{ID: id}
	}

	return document.Unit{ID: id, Name: name, Body: sections}, nil
}

// All loads every unit in List order. A unit that fails to load is logged
// and skipped; the overall call still succeeds. This best-effort policy
// keeps one bad entry from failing the whole batch.
func (s *Store) All() ([]document.Unit, error) {
	ids, err := s.List()
	if err != nil {
		return nil, err
	}

	var (
		units   []document.Unit
		skipped *multierror.Error
	)
	for _, id := range ids {
		unit, err := s.Get(id)
		if err != nil {
			s.logger.Warn("skipping API in bulk load", "id", id, "error", err)
			skipped = multierror.Append(skipped, err)
			continue
		}
		units = append(units, unit)
	}
	if skipped.ErrorOrNil() != nil {
		s.logger.Warn("bulk load finished with skipped APIs",
			"skipped", skipped.Len(), "loaded", len(units))
	}

	return units, nil
}

// readManifest resolves the display name and ordered topic list for an API
// directory. Without a manifest the name is the title-cased id and the
// topics are the directory's Markdown files in lexical order.
func (s *Store) readManifest(dir, id string) (string, []string, error) {
	raw, err := afero.ReadFile(s.fs, filepath.Join(dir, ManifestFilename))
	if err == nil {
		var m manifest
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return "", nil, fmt.Errorf(
				"error parsing manifest for API %q: %w", id, err)
		}
		name := m.Name
		if name == "" {
			name = TitleFromFilename(id)
		}
		if len(m.Topics) > 0 {
			return name, m.Topics, nil
		}
		topics, err := s.scanTopics(dir)
		return name, topics, err
	}
	if !os.IsNotExist(err) {
		return "", nil, fmt.Errorf("error reading manifest for API %q: %w", id, err)
	}

	topics, err := s.scanTopics(dir)
	return TitleFromFilename(id), topics, err
}

func (s *Store) scanTopics(dir string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("error listing API directory: %w", err)
	}

	var topics []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

// TitleFromFilename derives a section title from a topic filename: strip
// the extension, replace hyphens with spaces, title-case each word.
// "payment-intents" becomes "Payment Intents".
func TitleFromFilename(name string) string {
	name = strings.TrimSuffix(name, ".md")
	name = strings.ReplaceAll(name, "-", " ")
	return titleCaser.String(name)
}
