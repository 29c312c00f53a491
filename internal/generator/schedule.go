package generator

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Schedule starts a cron scheduler running the generator on the given
// standard cron expression. The returned cron must be stopped by the
// caller on shutdown.
func Schedule(spec string, g *Generator) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := g.Run(); err != nil {
			g.logger.Error("scheduled regeneration failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing regen schedule %q: %w", spec, err)
	}

	c.Start()
	g.logger.Info("scheduled content regeneration", "schedule", spec)
	return c, nil
}
