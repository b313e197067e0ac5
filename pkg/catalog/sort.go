package catalog

import (
	"sort"

	"github.com/hopecreatives/officialhope/pkg/types"
)

// Sort orders the filtered set in place. Every ordering is a fresh stable sort
// of the whole set; equal keys keep their incoming relative order.
func Sort(products []types.Product, order types.SortOrder) {
	switch order {
	case types.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectiveTimestamp() > products[j].EffectiveTimestamp()
		})
	case types.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRWF < products[j].PriceRWF
		})
	case types.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceRWF > products[j].PriceRWF
		})
	default:
		// Featured first, recency within each partition.
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Featured != products[j].Featured {
				return products[i].Featured
			}
			return products[i].EffectiveTimestamp() > products[j].EffectiveTimestamp()
		})
	}
}
