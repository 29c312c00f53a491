package web

import (
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/refdock/refdock/internal/server"
	"github.com/refdock/refdock/pkg/document"
	"github.com/refdock/refdock/pkg/store"
)

// sidebarEntry is one API in the navigation sidebar.
type sidebarEntry struct {
	ID     string
	Name   string
	Active bool
}

// pageData is the template payload shared by every page.
type pageData struct {
	Title   string
	Theme   string
	Locale  string
	Sidebar []sidebarEntry

	// Doc page fields.
	Doc      *docView
	NotFound bool

	bundle interface {
		T(locale, key string) string
	}
}

// T resolves a UI string for the page's locale; templates call it as
// {{.T "doc.export"}}.
func (p pageData) T(key string) string {
	return p.bundle.T(p.Locale, key)
}

type docView struct {
	ID       string
	Name     string
	Sections []renderedSection
}

type renderedSection struct {
	Title string
	HTML  template.HTML
}

// PagesHandler serves the HTML UI: the index at "/", per-API pages at
// "/docs/{id}", the theme toggle, and the embedded stylesheet.
func PagesHandler(srv server.Server, renderer *Renderer) http.Handler {
	mux := http.NewServeMux()

	staticFS, _ := fs.Sub(assetFS, "assets")
	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServerFS(staticFS)))

	mux.HandleFunc("/theme", func(w http.ResponseWriter, r *http.Request) {
		theme := r.URL.Query().Get("set")
		if theme != "light" && theme != "dark" {
			http.Error(w, "Invalid theme", http.StatusBadRequest)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name: "theme", Value: theme, Path: "/",
		})
		redirectBack(w, r)
	})

	mux.HandleFunc("/locale", func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("set")
		if !srv.I18n.Has(locale) {
			http.Error(w, "Unknown locale", http.StatusBadRequest)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name: "locale", Value: locale, Path: "/",
		})
		redirectBack(w, r)
	})

	mux.HandleFunc("/docs/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/docs/"), "/")
		if id == "" || strings.Contains(id, "/") {
			http.NotFound(w, r)
			return
		}
		docPage(w, r, srv, renderer, id)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		indexPage(w, r, srv, renderer)
	})

	return mux
}

func redirectBack(w http.ResponseWriter, r *http.Request) {
	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// basePage fills the fields every page shares, reading theme and locale
// preferences from cookies with config defaults.
func basePage(r *http.Request, srv server.Server, active string) (pageData, error) {
	theme := srv.Config.DefaultTheme
	if c, err := r.Cookie("theme"); err == nil &&
		(c.Value == "light" || c.Value == "dark") {
		theme = c.Value
	}
	locale := srv.Config.DefaultLocale
	if c, err := r.Cookie("locale"); err == nil && srv.I18n.Has(c.Value) {
		locale = c.Value
	}

	units, err := srv.Store.All()
	if err != nil {
		return pageData{}, err
	}
	sidebar := make([]sidebarEntry, 0, len(units))
	for _, u := range units {
		sidebar = append(sidebar, sidebarEntry{
			ID:     u.ID,
			Name:   u.Name,
			Active: u.ID == active,
		})
	}

	return pageData{
		Theme:   theme,
		Locale:  locale,
		Sidebar: sidebar,
		bundle:  srv.I18n,
	}, nil
}

func indexPage(w http.ResponseWriter, r *http.Request, srv server.Server, renderer *Renderer) {
	page, err := basePage(r, srv, "")
	if err != nil {
		srv.Logger.Error("failed to build index page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	page.Title = srv.I18n.T(page.Locale, "site.title")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.execute(w, "index.html.tmpl", page); err != nil {
		srv.Logger.Error("failed to render index page", "error", err)
	}
}

func docPage(w http.ResponseWriter, r *http.Request, srv server.Server, renderer *Renderer, id string) {
	page, err := basePage(r, srv, id)
	if err != nil {
		srv.Logger.Error("failed to build doc page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	unit, err := srv.Store.Get(id)
	if err != nil {
		var nfe *store.NotFoundError
		if errors.As(err, &nfe) {
			page.Title = srv.I18n.T(page.Locale, "doc.not_found")
			page.NotFound = true
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			if err := renderer.execute(w, "doc.html.tmpl", page); err != nil {
				srv.Logger.Error("failed to render not-found page", "error", err)
			}
			return
		}
		srv.Logger.Error("failed to load documentation", "id", id, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	view := &docView{ID: unit.ID, Name: unit.Name}
	switch body := unit.Body.(type) {
	case document.Sections:
		for _, s := range body {
			html, err := renderer.HTML(s.Content)
			if err != nil {
				srv.Logger.Error("failed to render section",
					"id", id, "section", s.Title, "error", err)
				continue
			}
			view.Sections = append(view.Sections, renderedSection{
				Title: s.Title,
				HTML:  html,
			})
		}
	case document.PlainText:
		html, err := renderer.HTML(string(body))
		if err == nil {
			view.Sections = append(view.Sections, renderedSection{HTML: html})
		}
	}

	page.Title = unit.Name
	page.Doc = view

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.execute(w, "doc.html.tmpl", page); err != nil {
		srv.Logger.Error("failed to render doc page", "error", err)
	}
}
