package content

import (
	"context"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/hopecreatives/officialhope/pkg/types"
)

// FallbackProductImage is substituted at render time for products without any
// image reference.
const FallbackProductImage = "/images/product-placeholder.webp"

// StaticSource serves the built-in catalog. It satisfies the same Source
// contract as the live content store so views stay testable and the shop keeps
// rendering when the store is unreachable.
type StaticSource struct {
	products []types.Product
}

func NewStaticSource() *StaticSource {
	return &StaticSource{products: builtinCatalog}
}

// NewStaticSourceWith is used by tests and previews to run the shop against an
// arbitrary catalog.
func NewStaticSourceWith(products []types.Product) *StaticSource {
	return &StaticSource{products: products}
}

func (s *StaticSource) GetProducts(_ context.Context) ([]catalog.RawProduct, error) {
	return s.raw(s.products), nil
}

func (s *StaticSource) GetProductsByCategory(_ context.Context, slug string) ([]catalog.RawProduct, error) {
	route, ok := types.CategoryRouteBySlug(slug)
	if !ok {
		return []catalog.RawProduct{}, nil
	}
	matched := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		for _, c := range route.Categories {
			if p.Category == c {
				matched = append(matched, p)
				break
			}
		}
	}
	return s.raw(matched), nil
}

func (s *StaticSource) GetProductBySlug(_ context.Context, slug string) (*catalog.RawProduct, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			raw := catalog.Raw(p)
			return &raw, nil
		}
	}
	return nil, nil
}

func (s *StaticSource) raw(products []types.Product) []catalog.RawProduct {
	records := make([]catalog.RawProduct, 0, len(products))
	for _, p := range products {
		records = append(records, catalog.Raw(p))
	}
	return records
}

var builtinCatalog = []types.Product{
	{
		Id: 1, Name: "Sony A7 IV", Slug: "sony-a7-iv", CreatedAt: "2024-06-01T09:00:00Z",
		Category: types.CategoryCameras, Brand: "Sony", Condition: types.ConditionNew,
		PriceRWF: 3200000, InStock: true, Featured: true,
		ShortDesc: "33MP full-frame hybrid mirrorless camera.",
		Specs: []types.Spec{
			{Label: "Sensor", Value: "33MP full-frame"},
			{Label: "Video", Value: "4K 60p 10-bit"},
		},
	},
	{
		Id: 2, Name: "Canon EOS R6 Mark II", Slug: "canon-eos-r6-mark-ii", CreatedAt: "2024-05-12T09:00:00Z",
		Category: types.CategoryCameras, Brand: "Canon", Condition: types.ConditionNew,
		PriceRWF: 2900000, InStock: true,
		ShortDesc: "24MP full-frame body built for fast action.",
	},
	{
		Id: 3, Name: "Sony FE 24-70mm f/2.8 GM II", Slug: "sony-fe-24-70mm-f28-gm-ii", CreatedAt: "2024-04-20T09:00:00Z",
		Category: types.CategoryLenses, Brand: "Sony", Condition: types.ConditionNew,
		PriceRWF: 2600000, InStock: true, Featured: true,
		ShortDesc: "Standard zoom workhorse for full-frame E-mount.",
	},
	{
		Id: 4, Name: "Canon RF 50mm f/1.8 STM", Slug: "canon-rf-50mm-f18-stm", CreatedAt: "2024-03-02T09:00:00Z",
		Category: types.CategoryLenses, Brand: "Canon", Condition: types.ConditionUsed,
		PriceRWF: 240000, InStock: true,
		ShortDesc: "Compact nifty-fifty for RF mount.",
	},
	{
		Id: 5, Name: "DJI RS 3 Pro", Slug: "dji-rs-3-pro", CreatedAt: "2024-05-28T09:00:00Z",
		Category: types.CategoryGimbals, Brand: "DJI", Condition: types.ConditionNew,
		PriceRWF: 1150000, InStock: true, Featured: true,
		ShortDesc: "Professional stabilizer for cinema rigs.",
	},
	{
		Id: 6, Name: "Godox SL-60W", Slug: "godox-sl-60w", CreatedAt: "2024-02-14T09:00:00Z",
		Category: types.CategoryLights, Brand: "Godox", Condition: types.ConditionNew,
		PriceRWF: 180000, InStock: true,
		ShortDesc: "Daylight-balanced LED video light.",
	},
	{
		Id: 7, Name: "Aputure Amaran 200x S", Slug: "aputure-amaran-200x-s", CreatedAt: "2024-06-10T09:00:00Z",
		Category: types.CategoryLights, Brand: "Aputure", Condition: types.ConditionNew,
		PriceRWF: 520000, InStock: false,
		ShortDesc: "Bi-color point-source LED.",
	},
	{
		Id: 8, Name: "Manfrotto 055 Aluminium Tripod", Slug: "manfrotto-055-aluminium", CreatedAt: "2024-01-22T09:00:00Z",
		Category: types.CategoryTripods, Brand: "Manfrotto", Condition: types.ConditionUsed,
		PriceRWF: 350000, InStock: true,
		ShortDesc: "Sturdy three-section aluminium tripod.",
	},
	{
		Id: 9, Name: "Zoom H6 Handy Recorder", Slug: "zoom-h6-handy-recorder", CreatedAt: "2024-03-18T09:00:00Z",
		Category: types.CategoryRecorders, Brand: "Zoom", Condition: types.ConditionNew,
		PriceRWF: 450000, InStock: true,
		ShortDesc: "Six-track portable audio recorder.",
	},
	{
		Id: 10, Name: "Dell XPS 15", Slug: "dell-xps-15", CreatedAt: "2024-04-05T09:00:00Z",
		Category: types.CategoryLaptop, Brand: "Dell", Condition: types.ConditionNew,
		PriceRWF: 2400000, InStock: true,
		ShortDesc: "Creator laptop with OLED display.",
	},
	{
		Id: 11, Name: "MacBook Pro 14 M3", Slug: "macbook-pro-14-m3", CreatedAt: "2024-06-20T09:00:00Z",
		Category: types.CategoryMacBook, Brand: "Apple", Condition: types.ConditionNew,
		PriceRWF: 3600000, InStock: true, Featured: true,
		ShortDesc: "14-inch MacBook Pro with the M3 chip.",
	},
	{
		Id: 12, Name: "iPhone 15 Pro", Slug: "iphone-15-pro", CreatedAt: "2024-05-01T09:00:00Z",
		Category: types.CategoryIPhone, Brand: "Apple", Condition: types.ConditionNew,
		PriceRWF: 1950000, InStock: true,
		ShortDesc: "Titanium iPhone with a 48MP camera.",
	},
}
