package catalog

import (
	"sort"

	"github.com/hopecreatives/officialhope/pkg/types"
)

// AvailableBrands computes the offerable brand values for the searched pool.
// The brand predicate itself is excluded so selecting a brand never removes its
// own checkbox, and every currently selected brand stays in the output even
// when no product in the narrowed pool carries it.
func AvailableBrands(searched []types.Product, filter Filter) []string {
	pool := Filter{
		Conditions:  filter.Conditions,
		OnlyInStock: filter.OnlyInStock,
		MinPrice:    filter.MinPrice,
		MaxPrice:    filter.MaxPrice,
	}

	unique := make(map[string]struct{})
	for _, p := range searched {
		if pool.Matches(p) {
			unique[p.Brand] = struct{}{}
		}
	}
	for _, brand := range filter.Brands {
		unique[brand] = struct{}{}
	}

	brands := make([]string, 0, len(unique))
	for brand := range unique {
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	return brands
}
