package catalog

import "github.com/hopecreatives/officialhope/pkg/types"

// Scope narrows the catalog for one view. A non-empty Forced set locks the view
// to those categories and makes Active irrelevant; a nil Active with no Forced
// set leaves the catalog unrestricted.
type Scope struct {
	Forced []types.Category
	Active *types.Category
}

func (s Scope) IsForced() bool {
	return len(s.Forced) > 0
}

func (s Scope) Apply(products []types.Product) []types.Product {
	if s.IsForced() {
		scoped := make([]types.Product, 0, len(products))
		for _, p := range products {
			for _, c := range s.Forced {
				if p.Category == c {
					scoped = append(scoped, p)
					break
				}
			}
		}
		return scoped
	}

	if s.Active == nil {
		return products
	}

	scoped := make([]types.Product, 0, len(products))
	for _, p := range products {
		if p.Category == *s.Active {
			scoped = append(scoped, p)
		}
	}
	return scoped
}

// PriceBounds returns the min and max price over the scoped set. An empty set
// anchors both bounds at zero.
func PriceBounds(products []types.Product) (int, int) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max := products[0].PriceRWF, products[0].PriceRWF
	for _, p := range products[1:] {
		if p.PriceRWF < min {
			min = p.PriceRWF
		}
		if p.PriceRWF > max {
			max = p.PriceRWF
		}
	}
	return min, max
}
