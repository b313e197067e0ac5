package types

// FilterSnapshot is the wire form of an applied filter set, shared between the
// shop engine and the tracking events so neither depends on the other.
type FilterSnapshot struct {
	Query      string      `json:"query,omitempty"`
	Category   *Category   `json:"category,omitempty"`
	Brands     []string    `json:"brands,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
	InStock    bool        `json:"in_stock,omitempty"`
	Sort       SortOrder   `json:"sort,omitempty"`
	MinPrice   int         `json:"min_price,omitempty"`
	MaxPrice   int         `json:"max_price,omitempty"`
}
