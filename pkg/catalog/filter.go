package catalog

import (
	"strings"

	"github.com/hopecreatives/officialhope/pkg/types"
)

// Filter holds the user-chosen predicates. Empty slices and a blank query are
// pass-through; all active predicates are conjunctive.
type Filter struct {
	Query       string
	Brands      []string
	Conditions  []types.Condition
	OnlyInStock bool
	MinPrice    int
	MaxPrice    int
}

// Search keeps products whose name, short description, category or brand
// contains the trimmed query, case-insensitively. It runs before the other
// predicates so facet computation can operate on the searched pool.
func Search(products []types.Product, query string) []types.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	matched := make([]types.Product, 0, len(products))
	for _, p := range products {
		target := strings.ToLower(p.Name + " " + p.ShortDesc + " " + string(p.Category) + " " + p.Brand)
		if strings.Contains(target, q) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (f Filter) matchesBrand(p types.Product) bool {
	if len(f.Brands) == 0 {
		return true
	}
	for _, b := range f.Brands {
		if p.Brand == b {
			return true
		}
	}
	return false
}

func (f Filter) matchesCondition(p types.Product) bool {
	if len(f.Conditions) == 0 {
		return true
	}
	for _, c := range f.Conditions {
		if p.Condition == c {
			return true
		}
	}
	return false
}

func (f Filter) matchesAvailability(p types.Product) bool {
	return !f.OnlyInStock || p.InStock
}

func (f Filter) matchesPrice(p types.Product) bool {
	return p.PriceRWF >= f.MinPrice && p.PriceRWF <= f.MaxPrice
}

// Matches reports whether every active predicate except search holds.
func (f Filter) Matches(p types.Product) bool {
	return f.matchesBrand(p) && f.matchesCondition(p) && f.matchesAvailability(p) && f.matchesPrice(p)
}

// Apply filters an already searched pool down to the products satisfying the
// brand, condition, availability and price predicates.
func (f Filter) Apply(searched []types.Product) []types.Product {
	filtered := make([]types.Product, 0, len(searched))
	for _, p := range searched {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
