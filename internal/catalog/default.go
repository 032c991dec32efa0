// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

// Category names of the default catalog.
const (
	CategoryMassage     = "Массажные средства"
	CategoryAccessories = "Аксессуары"
	CategoryAtmosphere  = "Атмосфера"
	CategoryGiftSets    = "Подарочные наборы"
	CategoryBodyCare    = "Уход за телом"
)

// Default returns the hard-coded catalog the storefront ships with.
func Default() *Catalog {
	return New([]Product{
		{
			ID:            1,
			Name:          "Массажное масло с ароматом ванили",
			Price:         1290,
			OriginalPrice: 1590,
			Image:         "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=500&h=500&fit=crop",
			Category:      CategoryMassage,
			IsNew:         true,
		},
		{
			ID:       2,
			Name:     "Шелковая маска для сна",
			Price:    890,
			Image:    "https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=500&h=500&fit=crop",
			Category: CategoryAccessories,
		},
		{
			ID:            3,
			Name:          "Ароматические свечи набор 3 шт",
			Price:         2190,
			OriginalPrice: 2690,
			Image:         "https://images.unsplash.com/photo-1602874801006-94c3a1dfd18f?w=500&h=500&fit=crop",
			Category:      CategoryAtmosphere,
		},
		{
			ID:       4,
			Name:     "Премиум подарочный набор",
			Price:    4990,
			Image:    "https://images.unsplash.com/photo-1549062572-544a64fb0c56?w=500&h=500&fit=crop",
			Category: CategoryGiftSets,
			IsNew:    true,
		},
		{
			ID:       5,
			Name:     "Гель для душа с феромонами",
			Price:    1490,
			Image:    "https://images.unsplash.com/photo-1556229010-aa3e6e30f380?w=500&h=500&fit=crop",
			Category: CategoryBodyCare,
		},
		{
			ID:            6,
			Name:          "Атласные наручники",
			Price:         790,
			OriginalPrice: 990,
			Image:         "https://images.unsplash.com/photo-1583500557349-fb5238f8d946?w=500&h=500&fit=crop",
			Category:      CategoryAccessories,
		},
	})
}
