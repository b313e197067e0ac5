package types

type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

type SortOption struct {
	Value SortOrder `json:"value"`
	Label string    `json:"label"`
}

var SortOptions = []SortOption{
	{Value: SortFeatured, Label: "Featured"},
	{Value: SortNewest, Label: "Newest"},
	{Value: SortPriceAsc, Label: "Price: Low to High"},
	{Value: SortPriceDesc, Label: "Price: High to Low"},
}

// ParseSortOrder falls back to the featured ordering for unknown values instead
// of failing, matching how every other malformed shop input degrades.
func ParseSortOrder(value string) SortOrder {
	for _, option := range SortOptions {
		if string(option.Value) == value {
			return option.Value
		}
	}
	return SortFeatured
}
