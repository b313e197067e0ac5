package shop

import (
	"log"
	"reflect"
	"strconv"
	"sync"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/hopecreatives/officialhope/pkg/types"
)

// Params are the route-supplied values a view is constructed with. They stay
// fixed until the routing layer navigates, and ResetFilters restores them.
type Params struct {
	InitialSearchQuery string
	InitialCategory    *types.Category
	ForcedCategories   []types.Category
	Title              string
	Description        string
	ResultLabel        string
	FallbackImage      string
}

// View owns one shop session: the normalized catalog, the filter state, the
// reveal controller and the derived read model. All methods are safe for the
// UI goroutine plus the reveal timer; nothing mutates after Close.
type View struct {
	mu        sync.Mutex
	catalog   []types.Product
	params    Params
	state     FilterState
	reveal    *Reveal
	scopedMin int
	scopedMax int
	filtered  []types.Product
	searched  []types.Product
	detach    func()
	closed    bool
}

func NewView(raw []catalog.RawProduct, params Params) *View {
	return newView(raw, params, nil)
}

func newView(raw []catalog.RawProduct, params Params, schedule Scheduler) *View {
	v := &View{
		catalog: catalog.Normalize(raw),
		params:  params,
		reveal:  NewReveal(BatchSize, revealDelay, schedule),
	}
	v.params.InitialCategory = resolveCategory(params.InitialCategory)

	v.state = FilterState{
		SearchText:         v.params.InitialSearchQuery,
		ActiveCategory:     v.params.InitialCategory,
		SelectedBrands:     []string{},
		SelectedConditions: []types.Condition{},
		SortBy:             types.SortFeatured,
	}
	v.recompute()
	v.reveal.Rebind(len(v.filtered))
	return v
}

func resolveCategory(c *types.Category) *types.Category {
	if c == nil {
		return nil
	}
	if _, ok := types.ParseCategory(string(*c)); !ok {
		return nil
	}
	return c
}

func (v *View) scope() catalog.Scope {
	return catalog.Scope{Forced: v.params.ForcedCategories, Active: v.state.ActiveCategory}
}

func (v *View) filter() catalog.Filter {
	return catalog.Filter{
		Query:       v.state.SearchText,
		Brands:      v.state.SelectedBrands,
		Conditions:  v.state.SelectedConditions,
		OnlyInStock: v.state.OnlyInStock,
		MinPrice:    v.state.MinPrice,
		MaxPrice:    v.state.MaxPrice,
	}
}

// recompute runs the whole derivation chain: scope, price bound reclamping,
// search, filter, sort. Full recomputation per change keeps the derived state
// free of ordering bugs at catalog scale.
func (v *View) recompute() {
	scoped := v.scope().Apply(v.catalog)
	min, max := catalog.PriceBounds(scoped)
	if min != v.scopedMin || max != v.scopedMax {
		v.scopedMin, v.scopedMax = min, max
		v.state.MinPrice, v.state.MaxPrice = min, max
	}

	v.searched = catalog.Search(scoped, v.state.SearchText)
	filtered := v.filter().Apply(v.searched)
	catalog.Sort(filtered, v.state.SortBy)
	v.filtered = filtered
}

type revealInputs struct {
	state FilterState
	total int
}

// mutate applies one state transition and re-derives everything. The reveal
// cursor resets whenever any filter, sort or scope input changed, or when the
// result set changed length.
func (v *View) mutate(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	before := revealInputs{state: v.state, total: len(v.filtered)}
	fn()
	v.recompute()
	after := revealInputs{state: v.state, total: len(v.filtered)}
	if !reflect.DeepEqual(before, after) {
		v.reveal.Rebind(after.total)
	}
}

func (v *View) SetSearchText(text string) {
	v.mutate(func() { v.state.SearchText = text })
}

// SetCategory is ignored in forced scope; the route owns the category there.
func (v *View) SetCategory(category *types.Category) {
	if len(v.params.ForcedCategories) > 0 {
		return
	}
	v.mutate(func() { v.state.ActiveCategory = resolveCategory(category) })
}

func (v *View) ToggleBrand(brand string) {
	v.mutate(func() { v.state.SelectedBrands = toggle(v.state.SelectedBrands, brand) })
}

func (v *View) ToggleCondition(condition types.Condition) {
	v.mutate(func() { v.state.SelectedConditions = toggle(v.state.SelectedConditions, condition) })
}

func (v *View) SetStockOnly(only bool) {
	v.mutate(func() { v.state.OnlyInStock = only })
}

func (v *View) SetSort(order types.SortOrder) {
	v.mutate(func() { v.state.SortBy = order })
}

func (v *View) SetMinPrice(price int) {
	v.mutate(func() {
		next := clamp(price, v.scopedMin, v.scopedMax)
		if next > v.state.MaxPrice {
			next = v.state.MaxPrice
		}
		v.state.MinPrice = next
	})
}

func (v *View) SetMaxPrice(price int) {
	v.mutate(func() {
		next := clamp(price, v.scopedMin, v.scopedMax)
		if next < v.state.MinPrice {
			next = v.state.MinPrice
		}
		v.state.MaxPrice = next
	})
}

// SetMinPriceInput accepts raw text from the price field. Non-numeric input
// keeps the prior valid bound instead of poisoning the range.
func (v *View) SetMinPriceInput(value string) {
	price, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	v.SetMinPrice(price)
}

func (v *View) SetMaxPriceInput(value string) {
	price, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	v.SetMaxPrice(price)
}

// ResetFilters restores the most recent route-provided initial values, not an
// empty state.
func (v *View) ResetFilters() {
	v.mutate(func() {
		v.state.SearchText = v.params.InitialSearchQuery
		v.state.ActiveCategory = v.params.InitialCategory
		v.state.SelectedBrands = []string{}
		v.state.SelectedConditions = []types.Condition{}
		v.state.OnlyInStock = false
		v.state.SortBy = types.SortFeatured
		v.state.MinPrice = v.scopedMin
		v.state.MaxPrice = v.scopedMax
	})
}

// SetRouteValues is called when the routing layer navigates to new initial
// values. Only the route-controlled fields are overwritten; brand, condition,
// stock, sort and price stay session-local.
func (v *View) SetRouteValues(search string, category *types.Category) {
	v.mutate(func() {
		v.params.InitialSearchQuery = search
		v.params.InitialCategory = resolveCategory(category)
		v.state.SearchText = search
		if len(v.params.ForcedCategories) == 0 {
			v.state.ActiveCategory = v.params.InitialCategory
		}
	})
}

// AttachObserver wires sentinel proximity to the reveal controller. Observer
// setup failure degrades to no incremental reveal rather than failing the view.
func (v *View) AttachObserver(observer ProximityObserver) {
	detach, err := observer.Observe(v.TriggerReveal)
	if err != nil {
		log.Printf("proximity observer unavailable, reveal disabled: %v", err)
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		detach()
		return
	}
	v.detach = detach
}

func (v *View) TriggerReveal() {
	v.reveal.Trigger()
}

// SeedVisible rehydrates the reveal cursor, used by the HTTP surface where the
// client reports how far it had already scrolled.
func (v *View) SeedVisible(count int) {
	v.reveal.Seed(count)
}

// Close detaches the observer and invalidates pending reveals. The view
// accepts no further mutation afterwards.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	detach := v.detach
	v.detach = nil
	v.mu.Unlock()

	if detach != nil {
		detach()
	}
	v.reveal.Close()
}
