package cart

import "storefront/internal/catalog"

// Entry is the serialized form of a Line. Only the product ID is kept;
// product data is resolved against the catalog on Restore.
type Entry struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Entries returns the cart contents in insertion order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, 0, c.lines.Len())
	for id, line := range c.lines.AllFromFront() {
		out = append(out, Entry{ProductID: id, Quantity: line.Quantity})
	}
	return out
}

// Restore rebuilds a cart from entries. Entries whose product can no longer
// be found are dropped, duplicates are merged into the first occurrence,
// and quantities are clamped to at least 1.
func Restore(entries []Entry, lookup func(id int) (catalog.Product, bool)) *Cart {
	c := New()
	for _, e := range entries {
		p, ok := lookup(e.ProductID)
		if !ok {
			continue
		}
		q := max(1, e.Quantity)
		if line, exists := c.lines.Get(p.ID); exists {
			line.Quantity += q
			continue
		}
		c.lines.Set(p.ID, &Line{Product: p, Quantity: q})
	}
	return c
}
