package export

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/afero"

	"github.com/refdock/refdock/internal/cmd/base"
	"github.com/refdock/refdock/internal/config"
	"github.com/refdock/refdock/pkg/export"
	"github.com/refdock/refdock/pkg/store"
)

type Command struct {
	*base.Command

	flagAPI        string
	flagAll        bool
	flagFormat     string
	flagOutput     string
	flagContentDir string
	flagDate       string
	flagNoMetadata bool
}

func (c *Command) Synopsis() string {
	return "Export documentation to a file"
}

func (c *Command) Help() string {
	return `Usage: refdock export -api=ID [options]
       refdock export -all [options]

  Serialize one API's documentation, or the whole collection, to a file
  in json, markdown, text, or xml format.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("export")
	f.StringVar(&c.flagAPI, "api", "", "API id to export")
	f.BoolVar(&c.flagAll, "all", false, "Export every API into one file")
	f.StringVar(&c.flagFormat, "format", "json",
		"Export format: json, markdown, text, or xml")
	f.StringVar(&c.flagOutput, "o", "",
		"Output path (defaults to the generated filename)")
	f.StringVar(&c.flagContentDir, "content-dir", config.DefaultContentDir,
		"Content directory to read from")
	f.StringVar(&c.flagDate, "date", "",
		"Pin the export date (any common date format) for reproducible output")
	f.BoolVar(&c.flagNoMetadata, "no-metadata", false,
		"Omit the metadata block from the export")
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagAll == (c.flagAPI != "") {
		c.UI.Error("exactly one of -api or -all is required")
		return 1
	}

	format, err := export.ParseFormat(c.flagFormat)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	exporter := export.New()
	if c.flagDate != "" {
		ts, err := dateparse.ParseAny(c.flagDate)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error parsing -date: %v", err))
			return 1
		}
		exporter.Now = func() time.Time { return ts }
	}

	fs := afero.NewOsFs()
	st := store.New(fs, c.flagContentDir, c.Log)

	var res *export.Result
	if c.flagAll {
		units, err := st.All()
		if err != nil {
			c.UI.Error(fmt.Sprintf("error loading content: %v", err))
			return 1
		}
		res, err = exporter.Collection(format, units, !c.flagNoMetadata)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error exporting: %v", err))
			return 1
		}
	} else {
		unit, err := st.Get(c.flagAPI)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error loading %q: %v", c.flagAPI, err))
			return 1
		}
		res, err = exporter.Document(format, unit, !c.flagNoMetadata)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error exporting: %v", err))
			return 1
		}
	}

	out := c.flagOutput
	if out == "" {
		out = res.Filename
	}
	if err := afero.WriteFile(fs, out, res.Bytes, 0o644); err != nil {
		c.UI.Error(fmt.Sprintf("error writing %q: %v", out, err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Wrote %s (%d bytes)", out, len(res.Bytes)))
	return 0
}
