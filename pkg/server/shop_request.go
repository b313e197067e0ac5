package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/hopecreatives/officialhope/pkg/shop"
	"github.com/hopecreatives/officialhope/pkg/types"
)

// ShopRequest is the query string form of a shop view: every filter the client
// can hold, plus the reveal cursor it had already scrolled to.
type ShopRequest struct {
	Query      string            `json:"q" schema:"q"`
	Category   string            `json:"category" schema:"category"`
	Brands     []string          `json:"brand" schema:"brand"`
	Conditions []types.Condition `json:"condition" schema:"condition"`
	InStock    bool              `json:"stock" schema:"stock"`
	Sort       string            `json:"sort" schema:"sort,default:featured"`
	MinPrice   *int              `json:"minPrice" schema:"min"`
	MaxPrice   *int              `json:"maxPrice" schema:"max"`
	Visible    int               `json:"visible" schema:"visible"`
}

var shopRequestDecoder = func() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}()

func shopRequestFromQuery(query url.Values, result *ShopRequest) error {
	return shopRequestDecoder.Decode(result, query)
}

func GetShopRequest(r *http.Request) (*ShopRequest, error) {
	result := &ShopRequest{}
	if err := shopRequestFromQuery(r.URL.Query(), result); err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyTo replays the request onto a freshly constructed view. Unknown
// categories, conditions and sort values fall back the same way the
// interactive surface does, so a stale link never errors.
func (sr *ShopRequest) ApplyTo(v *shop.View) {
	v.SetSearchText(sr.Query)
	if category, ok := types.ParseCategory(sr.Category); ok {
		v.SetCategory(&category)
	}
	for _, brand := range sr.Brands {
		v.ToggleBrand(brand)
	}
	for _, condition := range sr.Conditions {
		if condition == types.ConditionNew || condition == types.ConditionUsed {
			v.ToggleCondition(condition)
		}
	}
	v.SetStockOnly(sr.InStock)
	v.SetSort(types.ParseSortOrder(sr.Sort))
	if sr.MinPrice != nil {
		v.SetMinPrice(*sr.MinPrice)
	}
	if sr.MaxPrice != nil {
		v.SetMaxPrice(*sr.MaxPrice)
	}
	v.SeedVisible(sr.Visible)
}
