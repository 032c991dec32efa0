// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storefront

import (
	"storefront/internal/cart"
	"storefront/internal/catalog"
)

// CategoryTab is one button of the category filter.
type CategoryTab struct {
	Name   string
	Count  int
	Active bool
}

// View is everything the page shows, recomputed from the controller on
// every call.
type View struct {
	Selection  string
	AllActive  bool
	AllCount   int
	Categories []CategoryTab
	Products   []catalog.Product

	Lines      []cart.Line
	ItemCount  int
	TotalPrice int64
	CartOpen   bool
}

// CartEmpty reports whether the cart has no lines.
func (v View) CartEmpty() bool {
	return len(v.Lines) == 0
}

// View derives the display snapshot from the current state.
func (c *Controller) View() View {
	counts := c.catalog.CountsByCategory()
	names := c.catalog.Categories()

	tabs := make([]CategoryTab, 0, len(names))
	all := 0
	for _, name := range names {
		tabs = append(tabs, CategoryTab{
			Name:   name,
			Count:  counts[name],
			Active: name == c.selection,
		})
	}
	for _, n := range counts {
		all += n
	}

	return View{
		Selection:  c.selection,
		AllActive:  c.selection == catalog.All,
		AllCount:   all,
		Categories: tabs,
		Products:   c.catalog.FilterByCategory(c.selection),
		Lines:      c.cart.Lines(),
		ItemCount:  c.cart.TotalItems(),
		TotalPrice: c.cart.TotalPrice(),
		CartOpen:   c.cartOpen,
	}
}
