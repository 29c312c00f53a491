package server

import (
	"github.com/hashicorp/go-hclog"

	"github.com/refdock/refdock/internal/config"
	"github.com/refdock/refdock/internal/i18n"
	"github.com/refdock/refdock/pkg/export"
	"github.com/refdock/refdock/pkg/search"
	"github.com/refdock/refdock/pkg/store"
)

// Server carries the shared dependencies handed to every HTTP handler.
type Server struct {
	// Config is the application configuration.
	Config *config.Config

	// Store is the content store the documentation is read from.
	Store *store.Store

	// Exporter is the multi-format document export engine.
	Exporter *export.Exporter

	// Search is the section search index. Nil when search is disabled.
	Search *search.Index

	// I18n resolves UI strings for the presentation layer.
	I18n *i18n.Bundle

	// Logger is the logger for the server.
	Logger hclog.Logger
}
