// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "github.com/shopspring/decimal"

// Product is a single catalog entry. Products are loaded once and never
// mutated afterwards, so they are passed around by value.
type Product struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`                    // Minor currency units
	OriginalPrice int64  `json:"original_price,omitempty"` // 0 when the product is not discounted
	Image         string `json:"image"`                    // Opaque image URL
	Category      string `json:"category"`
	IsNew         bool   `json:"is_new,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// HasDiscount reports whether the product carries an original price above
// its current price.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercent returns the discount relative to the original price,
// rounded half-up to a whole percent. Returns 0 when there is no original
// price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	orig := decimal.NewFromInt(p.OriginalPrice)
	diff := orig.Sub(decimal.NewFromInt(p.Price))
	return int(diff.Div(orig).Mul(hundred).Round(0).IntPart())
}
