// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the storefront page.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/middleware"
	"storefront/internal/money"
	"storefront/internal/sections"
	"storefront/internal/storefront"
)

//go:embed templates/store/*.html
var storeFS embed.FS

// Fragment names rendered by Partial.
const (
	CartPanel    = "cart_panel"
	Catalog      = "catalog"
	CartBadge    = "cart_badge"
	CartBadgeOOB = "cart_badge_oob"
)

// PageData holds all data passed to storefront templates.
type PageData struct {
	Title     string            // Page title for <title> tag
	Content   *sections.Content // Static copy of the page
	View      storefront.View   // Snapshot of the visitor's controller
	CSRFToken string            // CSRF token for forms and HTMX headers
}

// tabData feeds the category_tab template.
type tabData struct {
	Value     string
	Label     string
	Count     int
	Active    bool
	CSRFToken string
}

// Renderer executes the storefront templates.
type Renderer struct {
	tmpl    *template.Template
	content *sections.Content
}

// New parses the embedded storefront templates. Prices are formatted with
// prices; when devMode is true the layout loads unminified assets.
func New(content *sections.Content, prices *money.Formatter, devMode bool) (*Renderer, error) {
	funcMap := template.FuncMap{
		"price": prices.Format,
		"activeClass": func(active bool) string {
			if active {
				return "is-active"
			}
			return ""
		},
		"tab": func(value, label string, count int, active bool, csrf string) tabData {
			return tabData{Value: value, Label: label, Count: count, Active: active, CSRFToken: csrf}
		},
		"allCategory": func() string {
			return catalog.All
		},
		// isDev returns true when the app runs in development mode.
		"isDev": func() bool {
			return devMode
		},
	}

	tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(storeFS, "templates/store/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	for _, name := range []string{"base.html", "content", CartPanel, Catalog, CartBadge, CartBadgeOOB} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q not defined", name)
		}
	}

	return &Renderer{tmpl: tmpl, content: content}, nil
}

// Page renders the full storefront page or, for HTMX requests, only the
// "content" block.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, data *PageData) {
	rn.prepare(r, data)

	name := "base.html"
	if IsHTMX(r) {
		name = "content"
	}
	rn.write(w, http.StatusOK, data, name)
}

// Partial renders the named fragments one after another, e.g. a cart panel
// followed by an out-of-band badge update.
func (rn *Renderer) Partial(w http.ResponseWriter, r *http.Request, data *PageData, names ...string) {
	rn.prepare(r, data)
	rn.write(w, http.StatusOK, data, names...)
}

// prepare fills the request-scoped fields of data.
func (rn *Renderer) prepare(r *http.Request, data *PageData) {
	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Content == nil {
		data.Content = rn.content
	}
	if data.Title == "" && data.Content != nil {
		data.Title = data.Content.ShopName
	}
}

// write executes templates into a buffer so a failing template never
// leaves a half-written response.
func (rn *Renderer) write(w http.ResponseWriter, status int, data *PageData, names ...string) {
	var buf bytes.Buffer
	for _, name := range names {
		if err := rn.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			slog.Error("template execution failed", "template", name, "error", err)
			http.Error(w, "template error", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
