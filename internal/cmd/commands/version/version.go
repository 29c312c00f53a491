package version

import (
	"github.com/refdock/refdock/internal/cmd/base"
	"github.com/refdock/refdock/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: refdock version\n"
}

func (c *Command) Run([]string) int {
	c.UI.Output(version.Version)
	return 0
}
