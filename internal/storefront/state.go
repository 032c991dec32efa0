package storefront

import (
	"storefront/internal/cart"
	"storefront/internal/catalog"
)

// State is the serializable form of a Controller, stored in the visitor's
// session between requests.
//
// Category is nil when no selection was ever stored, which restores to the
// "all" sentinel. Any stored value, the empty string included, is restored
// as is.
type State struct {
	Category *string      `json:"category,omitempty"`
	CartOpen bool         `json:"cart_open"`
	Lines    []cart.Entry `json:"lines"`
}

// State captures the controller's current state.
func (c *Controller) State() State {
	selection := c.selection
	return State{
		Category: &selection,
		CartOpen: c.cartOpen,
		Lines:    c.cart.Entries(),
	}
}

// Restore rebuilds a controller from a saved state.
func Restore(c *catalog.Catalog, s State) *Controller {
	ctrl := New(c)
	if s.Category != nil {
		ctrl.selection = *s.Category
	}
	ctrl.cartOpen = s.CartOpen
	ctrl.cart = cart.Restore(s.Lines, c.Find)
	return ctrl
}
