// Package generator produces the Markdown content the store serves: one
// directory per API, one file per topic, plus the ordering manifest. The
// sources are hardcoded templates, so regeneration is idempotent and safe
// to re-run on a schedule.
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/refdock/refdock/pkg/store"
)

// manifest mirrors the store's manifest.yaml schema.
type manifest struct {
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

// Generator writes the content tree.
type Generator struct {
	fs     afero.Fs
	root   string
	logger hclog.Logger
}

// New returns a Generator writing under root on the given filesystem.
func New(fs afero.Fs, root string, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{fs: fs, root: root, logger: logger.Named("generator")}
}

// Run regenerates every API's content files and manifest.
func (g *Generator) Run() error {
	for _, src := range apiSources {
		if err := g.writeAPI(src); err != nil {
			return err
		}
	}
	g.logger.Info("content regenerated",
		"apis", len(apiSources), "root", g.root)
	return nil
}

func (g *Generator) writeAPI(src apiSource) error {
	id := src.ID
	dir := filepath.Join(g.root, id)

	if err := g.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory for %q: %w", id, err)
	}

	m := manifest{Name: src.Name}
	for _, t := range src.Topics {
		slug := strcase.ToKebab(t.Title)
		m.Topics = append(m.Topics, slug)

		path := filepath.Join(dir, slug+".md")
		if err := afero.WriteFile(g.fs, path, []byte(t.Markdown), 0o644); err != nil {
			return fmt.Errorf("error writing topic %q for %q: %w", slug, id, err)
		}
	}

	raw, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshaling manifest for %q: %w", id, err)
	}
	manifestPath := filepath.Join(dir, store.ManifestFilename)
	if err := afero.WriteFile(g.fs, manifestPath, raw, 0o644); err != nil {
		return fmt.Errorf("error writing manifest for %q: %w", id, err)
	}

	g.logger.Debug("wrote API content", "id", id, "topics", len(src.Topics))
	return nil
}
