package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/refdock/refdock/internal/api"
	"github.com/refdock/refdock/internal/cmd/base"
	"github.com/refdock/refdock/internal/config"
	"github.com/refdock/refdock/internal/generator"
	"github.com/refdock/refdock/internal/i18n"
	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/internal/web"
	"github.com/refdock/refdock/pkg/export"
	"github.com/refdock/refdock/pkg/search"
	"github.com/refdock/refdock/pkg/store"
)

type Command struct {
	*base.Command

	flagConfig     string
	flagAddr       string
	flagContentDir string
	flagBrowser    bool
}

func (c *Command) Synopsis() string {
	return "Run the documentation server"
}

func (c *Command) Help() string {
	return `Usage: refdock serve [options]

  Run the RefDock documentation server.

  Without -config, a zero-config default is used: content is generated
  under ./docs-content if missing and the server starts on
  http://127.0.0.1:8000.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet("serve")
	f.StringVar(&c.flagConfig, "config", "", "Path to an HCL config file")
	f.StringVar(&c.flagAddr, "addr", "", "Listen address (overrides config)")
	f.StringVar(&c.flagContentDir, "content-dir", "",
		"Content directory (overrides config)")
	f.BoolVar(&c.flagBrowser, "browser", false,
		"Open the UI in a browser once the server is ready")
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg := config.Default()
	if c.flagConfig != "" {
		loaded, err := config.Load(c.flagConfig)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error loading config: %v", err))
			return 1
		}
		cfg = loaded
	}
	if c.flagAddr != "" {
		cfg.ListenAddr = c.flagAddr
	}
	if c.flagContentDir != "" {
		cfg.ContentDir = c.flagContentDir
	}

	fs := afero.NewOsFs()
	gen := generator.New(fs, cfg.ContentDir, c.Log)

	// Bootstrap the content tree on first run.
	if exists, _ := afero.DirExists(fs, cfg.ContentDir); !exists {
		c.UI.Info(fmt.Sprintf("Initializing content at %s", cfg.ContentDir))
		if err := gen.Run(); err != nil {
			c.UI.Error(fmt.Sprintf("error generating content: %v", err))
			return 1
		}
	}

	st := store.New(fs, cfg.ContentDir, c.Log)

	var idx *search.Index
	if !cfg.DisableSearch {
		var err error
		idx, err = search.NewMemoryIndex(c.Log)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error creating search index: %v", err))
			return 1
		}
		defer idx.Close()

		units, err := st.All()
		if err != nil {
			c.UI.Error(fmt.Sprintf("error loading content: %v", err))
			return 1
		}
		if err := idx.IndexUnits(units); err != nil {
			c.UI.Error(fmt.Sprintf("error indexing content: %v", err))
			return 1
		}
	}

	bundle, err := i18n.Load()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading locales: %v", err))
		return 1
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error building renderer: %v", err))
		return 1
	}

	srv := server.Server{
		Config:   cfg,
		Store:    st,
		Exporter: export.New(),
		Search:   idx,
		I18n:     bundle,
		Logger:   c.Log,
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, srv)
	mux.Handle("/", web.PagesHandler(srv, renderer))

	if cfg.Regen.Enabled {
		cronJob, err := generator.Schedule(cfg.Regen.Schedule, gen)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error scheduling regeneration: %v", err))
			return 1
		}
		defer cronJob.Stop()
	}

	httpSrv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.WithRequestLogging(c.Log, mux),
	}

	serverURL := "http://" + cfg.ListenAddr
	c.UI.Info(fmt.Sprintf("RefDock listening on %s", serverURL))

	if c.flagBrowser {
		go func() {
			if err := waitForServer(serverURL, 10*time.Second); err != nil {
				c.UI.Warn(fmt.Sprintf(
					"Server not ready, skipping browser launch: %v", err))
				return
			}
			if err := openBrowser(serverURL); err != nil {
				c.UI.Warn(fmt.Sprintf("Could not open browser: %v", err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.UI.Error(fmt.Sprintf("server error: %v", err))
			return 1
		}
	case sig := <-sigCh:
		c.UI.Info(fmt.Sprintf("Received %v, shutting down", sig))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			c.UI.Error(fmt.Sprintf("error during shutdown: %v", err))
			return 1
		}
	}

	return 0
}
