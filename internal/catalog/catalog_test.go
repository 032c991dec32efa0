package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoProductCatalog() *Catalog {
	return New([]Product{
		{ID: 1, Name: "Oil", Price: 1290, Category: "A"},
		{ID: 2, Name: "Mask", Price: 890, Category: "B"},
	})
}

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	c := Default()

	t.Run("all sentinel returns every product in order", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(c.FilterByCategory(All)))
	})

	t.Run("specific category keeps relative order", func(t *testing.T) {
		assert.Equal(t, []int{2, 6}, ids(c.FilterByCategory(CategoryAccessories)))
	})

	t.Run("unknown category yields empty sequence", func(t *testing.T) {
		got := c.FilterByCategory("Nope")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		assert.Empty(t, twoProductCatalog().FilterByCategory("a"))
	})

	t.Run("scenario selects B", func(t *testing.T) {
		assert.Equal(t, []int{2}, ids(twoProductCatalog().FilterByCategory("B")))
	})
}

func TestFilterByCategoryReturnsCopy(t *testing.T) {
	c := twoProductCatalog()
	got := c.FilterByCategory(All)
	got[0].Name = "changed"

	p, ok := c.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Oil", p.Name)
}

func TestCountsByCategory(t *testing.T) {
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, twoProductCatalog().CountsByCategory())

	counts := Default().CountsByCategory()
	assert.Equal(t, 2, counts[CategoryAccessories])
	assert.Equal(t, 1, counts[CategoryMassage])
	assert.Len(t, counts, 5)
}

func TestCountsOmitEmptyCategories(t *testing.T) {
	c := New([]Product{{ID: 1, Category: "A"}}, "A", "Empty")

	assert.Equal(t, []string{"A", "Empty"}, c.Categories())
	_, present := c.CountsByCategory()["Empty"]
	assert.False(t, present)
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	assert.Equal(t, []string{
		CategoryMassage,
		CategoryAccessories,
		CategoryAtmosphere,
		CategoryGiftSets,
		CategoryBodyCare,
	}, Default().Categories())
}

func TestFind(t *testing.T) {
	c := Default()

	p, ok := c.Find(4)
	require.True(t, ok)
	assert.Equal(t, int64(4990), p.Price)
	assert.True(t, p.IsNew)

	_, ok = c.Find(99)
	assert.False(t, ok)
	assert.Equal(t, 6, c.Len())
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		want     int
		discount bool
	}{
		{"no original price", Product{Price: 890}, 0, false},
		{"rounds up", Product{Price: 1290, OriginalPrice: 1590}, 19, true},
		{"rounds down", Product{Price: 790, OriginalPrice: 990}, 20, true},
		{"half rounds up", Product{Price: 995, OriginalPrice: 1000}, 1, true},
		{"equal prices", Product{Price: 500, OriginalPrice: 500}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.DiscountPercent())
			assert.Equal(t, tt.discount, tt.product.HasDiscount())
		})
	}
}
