// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storefront holds the page-level controller of one browsing
// session. It owns the category selection, the cart and the cart panel
// visibility flag, and derives everything the page displays from them.
package storefront

import (
	"storefront/internal/cart"
	"storefront/internal/catalog"
)

// Controller is the state of one visitor's page. A controller lives for a
// single session and is never shared between sessions or goroutines.
type Controller struct {
	catalog   *catalog.Catalog
	cart      *cart.Cart
	selection string
	cartOpen  bool
}

// New returns a controller with no filter, an empty cart and the cart
// panel closed.
func New(c *catalog.Catalog) *Controller {
	return &Controller{
		catalog:   c,
		cart:      cart.New(),
		selection: catalog.All,
	}
}

// Catalog returns the catalog the controller reads from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Selection returns the current category selection.
func (c *Controller) Selection() string {
	return c.selection
}

// SelectCategory replaces the category selection. The name is not checked
// against the known categories; an unknown one simply filters everything out.
func (c *Controller) SelectCategory(name string) {
	c.selection = name
}

// AddToCart adds one unit of p and opens the cart panel.
func (c *Controller) AddToCart(p catalog.Product) {
	c.cart.Add(p)
	c.OpenCart()
}

// AddToCartByID looks the product up in the catalog and adds it. It
// returns false without touching any state when the ID is unknown.
func (c *Controller) AddToCartByID(id int) bool {
	p, ok := c.catalog.Find(id)
	if !ok {
		return false
	}
	c.AddToCart(p)
	return true
}

// SetQuantity sets the quantity of a cart line; see cart.Cart.SetQuantity.
func (c *Controller) SetQuantity(productID, quantity int) {
	c.cart.SetQuantity(productID, quantity)
}

// Increment is the "+" button of a cart line.
func (c *Controller) Increment(productID int) {
	if q, ok := c.cart.Quantity(productID); ok {
		c.cart.SetQuantity(productID, q+1)
	}
}

// Decrement is the "−" button of a cart line. It never asks for less than
// one unit; removing a line is a separate action.
func (c *Controller) Decrement(productID int) {
	if q, ok := c.cart.Quantity(productID); ok {
		c.cart.SetQuantity(productID, max(1, q-1))
	}
}

// RemoveLine deletes a cart line; unknown IDs are ignored.
func (c *Controller) RemoveLine(productID int) {
	c.cart.Remove(productID)
}

// OpenCart shows the cart panel.
func (c *Controller) OpenCart() {
	c.cartOpen = true
}

// CloseCart hides the cart panel.
func (c *Controller) CloseCart() {
	c.cartOpen = false
}

// CartOpen reports whether the cart panel is visible.
func (c *Controller) CartOpen() bool {
	return c.cartOpen
}

// Cart exposes the cart for read access.
func (c *Controller) Cart() *cart.Cart {
	return c.cart
}
