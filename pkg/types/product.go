package types

import "time"

type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

var Conditions = []Condition{ConditionNew, ConditionUsed}

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	Id          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	Category    Category  `json:"category"`
	Brand       string    `json:"brand"`
	Condition   Condition `json:"condition"`
	PriceRWF    int       `json:"priceRWF"`
	InStock     bool      `json:"inStock"`
	Featured    bool      `json:"featured"`
	ShortDesc   string    `json:"shortDesc"`
	Description string    `json:"description"`
	Specs       []Spec    `json:"specs"`
	Images      []string  `json:"images"`
}

// EffectiveTimestamp is the ordering key for recency sorts. Products without a
// parseable createdAt fall back to their id so they still order deterministically.
func (p *Product) EffectiveTimestamp() int64 {
	if p.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			return t.UnixMilli()
		}
	}
	return int64(p.Id)
}
