// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"storefront/internal/catalog"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/render"
	"storefront/internal/session"
	"storefront/internal/storefront"
)

// Storefront groups the handlers of the shop page. Every request rebuilds
// the visitor's controller from the session, applies one action and saves
// the new state back.
type Storefront struct {
	catalog  *catalog.Catalog
	sessions *session.Store
	renderer *render.Renderer
	metrics  *metrics.Metrics
}

// NewStorefront creates the storefront handler group. m may be nil.
func NewStorefront(c *catalog.Catalog, sessions *session.Store, renderer *render.Renderer, m *metrics.Metrics) *Storefront {
	return &Storefront{
		catalog:  c,
		sessions: sessions,
		renderer: renderer,
		metrics:  m,
	}
}

// Index renders the full page. An optional ?category= query selects a
// category and is remembered for the visitor.
func (s *Storefront) Index(w http.ResponseWriter, r *http.Request) {
	sess, ctrl := s.load(r)

	if category := r.URL.Query().Get("category"); category != "" {
		ctrl.SelectCategory(category)
		if !s.commit(w, r, sess, ctrl) {
			return
		}
	}

	s.renderer.Page(w, r, &render.PageData{View: ctrl.View()})
}

// Catalog renders the catalog section for the current selection.
func (s *Storefront) Catalog(w http.ResponseWriter, r *http.Request) {
	_, ctrl := s.load(r)
	s.renderer.Partial(w, r, &render.PageData{View: ctrl.View()}, render.Catalog)
}

// SelectCategory replaces the category selection.
func (s *Storefront) SelectCategory(w http.ResponseWriter, r *http.Request) {
	form, err := parseCategoryForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, ctrl := s.load(r)
	ctrl.SelectCategory(form.Category)
	if !s.commit(w, r, sess, ctrl) {
		return
	}
	s.respond(w, r, ctrl, render.Catalog)
}

// Cart renders the cart panel for HTMX, or the full page with the panel
// shown. Viewing the cart does not change the stored panel flag.
func (s *Storefront) Cart(w http.ResponseWriter, r *http.Request) {
	_, ctrl := s.load(r)
	view := ctrl.View()

	if render.IsHTMX(r) {
		s.renderer.Partial(w, r, &render.PageData{View: view}, render.CartPanel, render.CartBadgeOOB)
		return
	}

	view.CartOpen = true
	s.renderer.Page(w, r, &render.PageData{View: view})
}

// OpenCart shows the cart panel.
func (s *Storefront) OpenCart(w http.ResponseWriter, r *http.Request) {
	s.cartAction(w, r, metrics.ActionOpen, func(ctrl *storefront.Controller) {
		ctrl.OpenCart()
	})
}

// CloseCart hides the cart panel.
func (s *Storefront) CloseCart(w http.ResponseWriter, r *http.Request) {
	s.cartAction(w, r, metrics.ActionClose, func(ctrl *storefront.Controller) {
		ctrl.CloseCart()
	})
}

// AddToCart adds one unit of the submitted product and opens the panel.
// Unknown products are answered with 404.
func (s *Storefront) AddToCart(w http.ResponseWriter, r *http.Request) {
	form, err := parseAddForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, ctrl := s.load(r)
	if !ctrl.AddToCartByID(form.ProductID) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if !s.commit(w, r, sess, ctrl) {
		return
	}
	s.metrics.IncCartAction(metrics.ActionAdd)
	s.respond(w, r, ctrl, render.CartPanel, render.CartBadgeOOB)
}

// SetQuantity replaces a line's quantity. Values below one become one.
func (s *Storefront) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form, err := parseQuantityForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.cartAction(w, r, metrics.ActionQuantity, func(ctrl *storefront.Controller) {
		ctrl.SetQuantity(id, form.Quantity)
	})
}

// Increment raises a line's quantity by one.
func (s *Storefront) Increment(w http.ResponseWriter, r *http.Request) {
	s.lineAction(w, r, metrics.ActionIncrement, (*storefront.Controller).Increment)
}

// Decrement lowers a line's quantity by one, never below one.
func (s *Storefront) Decrement(w http.ResponseWriter, r *http.Request) {
	s.lineAction(w, r, metrics.ActionDecrement, (*storefront.Controller).Decrement)
}

// Remove deletes a line from the cart.
func (s *Storefront) Remove(w http.ResponseWriter, r *http.Request) {
	s.lineAction(w, r, metrics.ActionRemove, (*storefront.Controller).RemoveLine)
}

// ResetSession destroys the visitor's session, starting over with an empty
// cart and no filter. HTMX clients are told to reload the page.
func (s *Storefront) ResetSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.metrics.IncCartAction(metrics.ActionReset)

	if render.IsHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// lineAction applies a per-product controller method named by the {id}
// URL parameter.
func (s *Storefront) lineAction(w http.ResponseWriter, r *http.Request, action string, fn func(*storefront.Controller, int)) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.cartAction(w, r, action, func(ctrl *storefront.Controller) {
		fn(ctrl, id)
	})
}

// cartAction applies fn, saves the session and answers with the cart panel.
func (s *Storefront) cartAction(w http.ResponseWriter, r *http.Request, action string, fn func(*storefront.Controller)) {
	sess, ctrl := s.load(r)
	fn(ctrl)
	if !s.commit(w, r, sess, ctrl) {
		return
	}
	s.metrics.IncCartAction(action)
	s.respond(w, r, ctrl, render.CartPanel, render.CartBadgeOOB)
}

// load returns the request's session and the controller restored from it.
func (s *Storefront) load(r *http.Request) (*session.Data, *storefront.Controller) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		// Routes are mounted behind LoadSession; this only guards misuse.
		fresh, err := s.sessions.New()
		if err != nil {
			slog.Error("session create failed", "error", err)
			fresh = &session.Data{}
		}
		sess = fresh
	}
	return sess, storefront.Restore(s.catalog, sess.State)
}

// commit stores the controller state in the session and refreshes the
// cookie. It answers 500 and returns false when the backend fails.
func (s *Storefront) commit(w http.ResponseWriter, r *http.Request, sess *session.Data, ctrl *storefront.Controller) bool {
	sess.State = ctrl.State()
	if err := s.sessions.Commit(r.Context(), w, sess); err != nil {
		slog.Error("session save failed", "error", err, "path", r.URL.Path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return false
	}
	return true
}

// respond renders fragments for HTMX requests and redirects plain form
// posts back to the page.
func (s *Storefront) respond(w http.ResponseWriter, r *http.Request, ctrl *storefront.Controller, fragments ...string) {
	if render.IsHTMX(r) {
		s.renderer.Partial(w, r, &render.PageData{View: ctrl.View()}, fragments...)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
