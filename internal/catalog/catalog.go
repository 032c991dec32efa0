// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the immutable product list shown by the storefront
// and the category filtering rules applied to it.
package catalog

// All is the category selection that disables filtering.
const All = "all"

// Catalog is a read-only, ordered list of products together with the set
// of known category names. It is safe for concurrent use because nothing
// mutates it after New returns.
type Catalog struct {
	products   []Product
	categories []string
	byID       map[int]int // product ID -> index into products
}

// New builds a catalog from products. The category set defaults to the
// distinct product categories in order of first appearance; callers may
// pass an explicit set instead (e.g. to show empty tabs).
func New(products []Product, categories ...string) *Catalog {
	c := &Catalog{
		products: append([]Product(nil), products...),
		byID:     make(map[int]int, len(products)),
	}
	for i, p := range c.products {
		c.byID[p.ID] = i
	}

	if len(categories) > 0 {
		c.categories = append([]string(nil), categories...)
		return c
	}

	seen := make(map[string]bool)
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
	}
	return c
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the known category names in display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Find looks a product up by ID.
func (c *Catalog) Find(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// FilterByCategory returns the products whose category equals selection
// exactly, preserving catalog order. The All sentinel returns the whole
// list. An unknown category yields an empty, non-nil slice.
func (c *Catalog) FilterByCategory(selection string) []Product {
	if selection == All {
		return c.All()
	}
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.Category == selection {
			out = append(out, p)
		}
	}
	return out
}

// CountsByCategory returns the number of products per category. Categories
// without products are absent from the map.
func (c *Catalog) CountsByCategory() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.products {
		counts[p.Category]++
	}
	return counts
}
