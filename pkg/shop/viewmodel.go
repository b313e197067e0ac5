package shop

import (
	"strings"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/hopecreatives/officialhope/pkg/links"
	"github.com/hopecreatives/officialhope/pkg/types"
)

// Chip is one removable active-filter marker.
type Chip struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// ViewModel is the read model handed to the presentation layer, recomputed
// wholesale on every state change.
type ViewModel struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	ResultsHeading  string             `json:"resultsHeading"`
	Products        []types.Product    `json:"products"`
	TotalCount      int                `json:"totalCount"`
	VisibleCount    int                `json:"visibleCount"`
	HasMore         bool               `json:"hasMore"`
	LoadingMore     bool               `json:"loadingMore"`
	Brands          []string           `json:"brands"`
	Categories      []types.Category   `json:"categories,omitempty"`
	Chips           []Chip             `json:"chips"`
	SortOptions     []types.SortOption `json:"sortOptions"`
	SearchText      string             `json:"searchText"`
	ActiveCategory  *types.Category    `json:"activeCategory,omitempty"`
	SelectedBrands  []string           `json:"selectedBrands"`
	Conditions      []types.Condition  `json:"selectedConditions"`
	OnlyInStock     bool               `json:"onlyInStock"`
	SortBy          types.SortOrder    `json:"sortBy"`
	MinPrice        int                `json:"minPrice"`
	MaxPrice        int                `json:"maxPrice"`
	PriceStep       int                `json:"priceStep"`
	MinCatalogPrice int                `json:"minCatalogPrice"`
	MaxCatalogPrice int                `json:"maxCatalogPrice"`
}

// ViewModel assembles the current read model. Products lacking images get the
// well-known fallback image reference here, never on the stored entity.
func (v *View) ViewModel() ViewModel {
	v.mu.Lock()
	defer v.mu.Unlock()

	count := v.reveal.Count()
	visible := v.filtered
	if count < len(visible) {
		visible = visible[:count]
	}

	products := make([]types.Product, len(visible))
	for i, p := range visible {
		if len(p.Images) == 0 && v.params.FallbackImage != "" {
			p.Images = []string{v.params.FallbackImage}
		}
		products[i] = p
	}

	vm := ViewModel{
		Title:           v.params.Title,
		Description:     v.params.Description,
		ResultsHeading:  v.resultsHeading(),
		Products:        products,
		TotalCount:      len(v.filtered),
		VisibleCount:    len(products),
		HasMore:         v.reveal.HasMore(),
		LoadingMore:     v.reveal.Loading(),
		Brands:          v.availableBrands(),
		Chips:           v.chips(),
		SortOptions:     types.SortOptions,
		SearchText:      v.state.SearchText,
		ActiveCategory:  v.state.ActiveCategory,
		SelectedBrands:  v.state.SelectedBrands,
		Conditions:      v.state.SelectedConditions,
		OnlyInStock:     v.state.OnlyInStock,
		SortBy:          v.state.SortBy,
		MinPrice:        v.state.MinPrice,
		MaxPrice:        v.state.MaxPrice,
		PriceStep:       PriceStep,
		MinCatalogPrice: v.scopedMin,
		MaxCatalogPrice: v.scopedMax,
	}
	if len(v.params.ForcedCategories) == 0 {
		vm.Categories = types.Categories
	}
	return vm
}

func (v *View) availableBrands() []string {
	return catalog.AvailableBrands(v.searched, v.filter())
}

func (v *View) resultsHeading() string {
	if len(v.params.ForcedCategories) > 0 || v.state.ActiveCategory == nil {
		return v.params.ResultLabel
	}
	return string(*v.state.ActiveCategory)
}

func (v *View) chips() []Chip {
	chips := make([]Chip, 0, 4+len(v.state.SelectedBrands)+len(v.state.SelectedConditions))

	if q := strings.TrimSpace(v.state.SearchText); q != "" {
		chips = append(chips, Chip{Id: "search", Label: "Search: " + q})
	}
	if len(v.params.ForcedCategories) == 0 && v.state.ActiveCategory != nil {
		chips = append(chips, Chip{Id: "category", Label: "Category: " + string(*v.state.ActiveCategory)})
	}
	for _, brand := range v.state.SelectedBrands {
		chips = append(chips, Chip{Id: "brand-" + brand, Label: "Brand: " + brand})
	}
	for _, condition := range v.state.SelectedConditions {
		chips = append(chips, Chip{Id: "condition-" + string(condition), Label: "Condition: " + string(condition)})
	}
	if v.state.OnlyInStock {
		chips = append(chips, Chip{Id: "stock", Label: "In stock only"})
	}
	if v.state.MinPrice != v.scopedMin || v.state.MaxPrice != v.scopedMax {
		chips = append(chips, Chip{
			Id:    "price",
			Label: links.FormatPriceRWF(v.state.MinPrice) + " - " + links.FormatPriceRWF(v.state.MaxPrice),
		})
	}
	return chips
}

// RemoveChip undoes the filter behind one chip, mirroring the chip row's
// remove affordance.
func (v *View) RemoveChip(id string) {
	switch {
	case id == "search":
		v.SetSearchText("")
	case id == "category":
		v.SetCategory(nil)
	case id == "stock":
		v.SetStockOnly(false)
	case id == "price":
		v.mutate(func() {
			v.state.MinPrice = v.scopedMin
			v.state.MaxPrice = v.scopedMax
		})
	case strings.HasPrefix(id, "brand-"):
		v.ToggleBrand(strings.TrimPrefix(id, "brand-"))
	case strings.HasPrefix(id, "condition-"):
		v.ToggleCondition(types.Condition(strings.TrimPrefix(id, "condition-")))
	}
}

// Snapshot exposes the applied filter set for tracking.
func (v *View) Snapshot() types.FilterSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Snapshot()
}

// TotalCount is the filtered result length.
func (v *View) TotalCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.filtered)
}
