package shop

import (
	"github.com/hopecreatives/officialhope/pkg/types"
)

// FilterState is the session-local filter selection for one shop view. It is
// owned by the View and lives exactly as long as the view does.
type FilterState struct {
	SearchText         string
	ActiveCategory     *types.Category
	SelectedBrands     []string
	SelectedConditions []types.Condition
	OnlyInStock        bool
	SortBy             types.SortOrder
	MinPrice           int
	MaxPrice           int
}

func (s FilterState) hasBrand(brand string) bool {
	for _, b := range s.SelectedBrands {
		if b == brand {
			return true
		}
	}
	return false
}

func (s FilterState) hasCondition(condition types.Condition) bool {
	for _, c := range s.SelectedConditions {
		if c == condition {
			return true
		}
	}
	return false
}

func toggle[T comparable](current []T, value T) []T {
	for i, v := range current {
		if v == value {
			return append(append([]T{}, current[:i]...), current[i+1:]...)
		}
	}
	return append(append([]T{}, current...), value)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Snapshot flattens the state into its wire form for tracking events.
func (s FilterState) Snapshot() types.FilterSnapshot {
	return types.FilterSnapshot{
		Query:      s.SearchText,
		Category:   s.ActiveCategory,
		Brands:     s.SelectedBrands,
		Conditions: s.SelectedConditions,
		InStock:    s.OnlyInStock,
		Sort:       s.SortBy,
		MinPrice:   s.MinPrice,
		MaxPrice:   s.MaxPrice,
	}
}
