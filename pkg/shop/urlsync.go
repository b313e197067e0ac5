package shop

import (
	"net/url"

	"github.com/gorilla/schema"
	"github.com/hopecreatives/officialhope/pkg/types"
)

type addressQuery struct {
	Query    string `schema:"q"`
	Category string `schema:"category"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// AdoptQuery reconciles the view with the address bar after a URL change
// (back/forward navigation, manual edit). The URL's search value always wins;
// its category wins only when it names a known category and the view is not
// category-locked. Adoption is one-directional: the view never writes state
// back into the URL.
func (v *View) AdoptQuery(values url.Values) {
	var q addressQuery
	if err := queryDecoder.Decode(&q, values); err != nil {
		return
	}

	var category *types.Category
	if c, ok := types.ParseCategory(q.Category); ok {
		category = &c
	}

	v.mutate(func() {
		if q.Query != v.state.SearchText {
			v.state.SearchText = q.Query
		}
		if len(v.params.ForcedCategories) > 0 {
			return
		}
		if !sameCategory(category, v.state.ActiveCategory) {
			v.state.ActiveCategory = category
		}
	})
}

func sameCategory(a, b *types.Category) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
