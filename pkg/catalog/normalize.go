package catalog

import (
	"fmt"
	"strings"

	"github.com/hopecreatives/officialhope/pkg/types"
)

// RawProduct is a product record as it arrives from a content source, before
// any field is trusted. Pointer fields distinguish absent from zero.
type RawProduct struct {
	Id          *float64      `json:"id"`
	Name        *string       `json:"name"`
	Slug        *string       `json:"slug"`
	CreatedAt   string        `json:"createdAt"`
	Category    string        `json:"category"`
	Brand       string        `json:"brand"`
	Condition   string        `json:"condition"`
	PriceRWF    *float64      `json:"priceRWF"`
	InStock     bool          `json:"inStock"`
	Featured    bool          `json:"featured"`
	ShortDesc   string        `json:"shortDesc"`
	Description string        `json:"description"`
	Specs       []types.Spec  `json:"specs"`
	Images      []string      `json:"images"`
}

// Normalize coerces a possibly nil list of partial records into well-formed
// products, preserving order. Identifiers and slugs missing from the source are
// derived from the record's position. No product past this point needs further
// defensive checks.
func Normalize(raw []RawProduct) []types.Product {
	if raw == nil {
		return []types.Product{}
	}

	products := make([]types.Product, 0, len(raw))
	for index, r := range raw {
		products = append(products, normalizeOne(r, index))
	}
	return products
}

func normalizeOne(r RawProduct, index int) types.Product {
	p := types.Product{
		Id:          uint(index + 1),
		Name:        fmt.Sprintf("Product %d", index+1),
		Slug:        fmt.Sprintf("product-%d", index+1),
		CreatedAt:   r.CreatedAt,
		Brand:       "Unknown",
		Condition:   types.ConditionNew,
		InStock:     r.InStock,
		Featured:    r.Featured,
		ShortDesc:   r.ShortDesc,
		Description: r.Description,
		Specs:       r.Specs,
		Images:      r.Images,
	}

	if r.Id != nil && *r.Id >= 0 {
		p.Id = uint(*r.Id)
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Slug != nil {
		p.Slug = *r.Slug
	}
	if brand := strings.TrimSpace(r.Brand); brand != "" {
		p.Brand = brand
	}
	if r.Condition == string(types.ConditionUsed) {
		p.Condition = types.ConditionUsed
	}
	if r.PriceRWF != nil && *r.PriceRWF >= 0 {
		p.PriceRWF = int(*r.PriceRWF)
	}
	if c, ok := types.ParseCategory(r.Category); ok {
		p.Category = c
	} else {
		// Unknown labels are carried through untouched; they simply never
		// match a scope. The content layer already drops unmappable documents.
		p.Category = types.Category(r.Category)
	}
	if p.Specs == nil {
		p.Specs = []types.Spec{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}

// Raw converts a normalized product back into its raw form, used by the static
// fallback catalog so every source yields the same record shape.
func Raw(p types.Product) RawProduct {
	id := float64(p.Id)
	price := float64(p.PriceRWF)
	name := p.Name
	slug := p.Slug
	return RawProduct{
		Id:          &id,
		Name:        &name,
		Slug:        &slug,
		CreatedAt:   p.CreatedAt,
		Category:    string(p.Category),
		Brand:       p.Brand,
		Condition:   string(p.Condition),
		PriceRWF:    &price,
		InStock:     p.InStock,
		Featured:    p.Featured,
		ShortDesc:   p.ShortDesc,
		Description: p.Description,
		Specs:       p.Specs,
		Images:      p.Images,
	}
}
