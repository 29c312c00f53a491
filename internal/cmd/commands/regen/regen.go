package regen

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/refdock/refdock/internal/cmd/base"
	"github.com/refdock/refdock/internal/config"
	"github.com/refdock/refdock/internal/generator"
)

type Command struct {
	*base.Command

	flagContentDir string
}

func (c *Command) Synopsis() string {
	return "Regenerate the Markdown content from the built-in sources"
}

func (c *Command) Help() string {
	return `Usage: refdock regen [options]

  Regenerate every API's Markdown files and manifests. Safe to re-run:
  unchanged sources produce identical files.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("regen")
	f.StringVar(&c.flagContentDir, "content-dir", config.DefaultContentDir,
		"Directory the content is written to")
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	gen := generator.New(afero.NewOsFs(), c.flagContentDir, c.Log)
	if err := gen.Run(); err != nil {
		c.UI.Error(fmt.Sprintf("error regenerating content: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Content regenerated at %s", c.flagContentDir))
	return 0
}
