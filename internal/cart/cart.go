// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cart implements the shopping cart held by a single storefront
// session: an ordered set of lines keyed by product ID.
package cart

import (
	"github.com/elliotchance/orderedmap/v3"

	"storefront/internal/catalog"
)

// Line is one product's entry in the cart. Quantity is always at least 1;
// a line that would drop to zero is removed instead.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal returns the line price at the product's current unit price.
func (l Line) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart holds lines in the order their products were first added.
// It is not safe for concurrent use; it belongs to one session.
type Cart struct {
	lines *orderedmap.OrderedMap[int, *Line]
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: orderedmap.NewOrderedMap[int, *Line]()}
}

// Add puts one unit of p into the cart. An existing line is incremented in
// place; otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p catalog.Product) {
	if line, ok := c.lines.Get(p.ID); ok {
		line.Quantity++
		return
	}
	c.lines.Set(p.ID, &Line{Product: p, Quantity: 1})
}

// SetQuantity replaces the quantity of the line for productID, clamping
// anything below 1 to 1. Unknown IDs are ignored.
func (c *Cart) SetQuantity(productID, quantity int) {
	line, ok := c.lines.Get(productID)
	if !ok {
		return
	}
	line.Quantity = max(1, quantity)
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID int) {
	c.lines.Delete(productID)
}

// Quantity returns the quantity of the line for productID.
func (c *Cart) Quantity(productID int) (int, bool) {
	line, ok := c.lines.Get(productID)
	if !ok {
		return 0, false
	}
	return line.Quantity, true
}

// Len returns the number of lines (not units).
func (c *Cart) Len() int {
	return c.lines.Len()
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, c.lines.Len())
	for _, line := range c.lines.AllFromFront() {
		out = append(out, *line)
	}
	return out
}

// TotalItems returns the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines.AllFromFront() {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum of price × quantity over all lines.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, line := range c.lines.AllFromFront() {
		total += line.Subtotal()
	}
	return total
}
