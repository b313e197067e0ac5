package shop

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/hopecreatives/officialhope/pkg/types"
)

type fakeScheduler struct {
	pending   []func()
	cancelled int
}

func (s *fakeScheduler) schedule(d time.Duration, fn func()) func() {
	index := len(s.pending)
	s.pending = append(s.pending, fn)
	return func() {
		s.cancelled++
		s.pending[index] = nil
	}
}

func (s *fakeScheduler) fire() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		if fn != nil {
			fn()
		}
	}
}

type fakeObserver struct {
	callback func()
	err      error
	detached bool
}

func (o *fakeObserver) Observe(fn func()) (func(), error) {
	if o.err != nil {
		return nil, o.err
	}
	o.callback = fn
	return func() { o.detached = true }, nil
}

func rawCatalog(n int) []catalog.RawProduct {
	raw := make([]catalog.RawProduct, 0, n)
	brands := []string{"Sony", "Canon", "DJI"}
	for i := 0; i < n; i++ {
		id := float64(i + 1)
		name := fmt.Sprintf("Camera %d", i+1)
		slug := fmt.Sprintf("camera-%d", i+1)
		price := float64(100000 * (i + 1))
		raw = append(raw, catalog.RawProduct{
			Id:       &id,
			Name:     &name,
			Slug:     &slug,
			Category: "Cameras",
			Brand:    brands[i%len(brands)],
			PriceRWF: &price,
			InStock:  i%2 == 0,
		})
	}
	return raw
}

func TestSmallCatalogFullyVisible(t *testing.T) {
	v := newView(rawCatalog(10), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)
	vm := v.ViewModel()
	if vm.VisibleCount != 10 {
		t.Errorf("expected all 10 products visible, got %d", vm.VisibleCount)
	}
	if vm.HasMore {
		t.Error("hasMore should be false when the batch covers the result")
	}
	// Triggering the sentinel must stay a no-op.
	v.TriggerReveal()
	if v.ViewModel().LoadingMore {
		t.Error("reveal must never enter LoadingMore without more items")
	}
}

func TestRevealBatches(t *testing.T) {
	sched := &fakeScheduler{}
	v := newView(rawCatalog(30), Params{ResultLabel: "All Products"}, sched.schedule)

	if vm := v.ViewModel(); vm.VisibleCount != BatchSize || !vm.HasMore {
		t.Fatalf("expected first batch of %d with more to come, got %+v", BatchSize, vm)
	}

	v.TriggerReveal()
	if !v.ViewModel().LoadingMore {
		t.Fatal("expected LoadingMore after sentinel trigger")
	}
	// A second trigger while loading must not schedule another batch.
	v.TriggerReveal()
	sched.fire()
	if vm := v.ViewModel(); vm.VisibleCount != 24 || vm.LoadingMore {
		t.Fatalf("expected 24 visible and Idle, got %d loading=%v", vm.VisibleCount, vm.LoadingMore)
	}

	v.TriggerReveal()
	sched.fire()
	vm := v.ViewModel()
	if vm.VisibleCount != 30 {
		t.Fatalf("expected full result revealed, got %d", vm.VisibleCount)
	}
	if vm.HasMore {
		t.Error("hasMore should be false once everything is revealed")
	}
	v.TriggerReveal()
	if v.ViewModel().LoadingMore {
		t.Error("trigger after full reveal should be inert")
	}
}

func TestFilterChangeResetsReveal(t *testing.T) {
	sched := &fakeScheduler{}
	v := newView(rawCatalog(30), Params{ResultLabel: "All Products"}, sched.schedule)

	v.TriggerReveal()
	sched.fire()
	if got := v.ViewModel().VisibleCount; got != 24 {
		t.Fatalf("expected 24 visible, got %d", got)
	}

	v.ToggleBrand("Sony")
	if got := v.ViewModel().VisibleCount; got > BatchSize {
		t.Errorf("filter change must reset the reveal cursor, got %d", got)
	}

	// A sort change keeps the result length but still resets the cursor.
	v.TriggerReveal()
	sched.fire()
	v.SetSort(types.SortPriceAsc)
	if got := v.ViewModel().VisibleCount; got > BatchSize {
		t.Errorf("sort change must reset the reveal cursor, got %d", got)
	}
}

func TestPendingRevealInvalidatedByFilterChange(t *testing.T) {
	sched := &fakeScheduler{}
	v := newView(rawCatalog(30), Params{ResultLabel: "All Products"}, sched.schedule)

	v.TriggerReveal()
	v.ToggleBrand("Sony")
	sched.fire()
	if got := v.ViewModel().VisibleCount; got > BatchSize {
		t.Errorf("superseded reveal must not grow the cursor, got %d", got)
	}
	if sched.cancelled == 0 {
		t.Error("expected the pending reveal timer to be cancelled")
	}
}

func TestObserverDrivesReveal(t *testing.T) {
	sched := &fakeScheduler{}
	obs := &fakeObserver{}
	v := newView(rawCatalog(30), Params{ResultLabel: "All Products"}, sched.schedule)
	v.AttachObserver(obs)

	obs.callback()
	sched.fire()
	if got := v.ViewModel().VisibleCount; got != 24 {
		t.Errorf("expected proximity callback to reveal a batch, got %d", got)
	}
}

func TestObserverFailureDegrades(t *testing.T) {
	sched := &fakeScheduler{}
	obs := &fakeObserver{err: fmt.Errorf("unsupported environment")}
	v := newView(rawCatalog(30), Params{ResultLabel: "All Products"}, sched.schedule)
	v.AttachObserver(obs)

	if got := v.ViewModel().VisibleCount; got != BatchSize {
		t.Errorf("view should still render the first batch, got %d", got)
	}
}

func TestCloseStopsMutation(t *testing.T) {
	sched := &fakeScheduler{}
	obs := &fakeObserver{}
	v := newView(rawCatalog(30), Params{ResultLabel: "All Products"}, sched.schedule)
	v.AttachObserver(obs)

	v.TriggerReveal()
	v.Close()
	sched.fire()
	if !obs.detached {
		t.Error("closing the view must detach the observer")
	}
	if got := v.ViewModel().VisibleCount; got != BatchSize {
		t.Errorf("late timer must not mutate a closed view, got %d", got)
	}
	v.SetSearchText("sony")
	if got := v.ViewModel().SearchText; got != "" {
		t.Errorf("mutation after close must be ignored, got %q", got)
	}
}

func TestPriceInputFallback(t *testing.T) {
	v := newView(rawCatalog(5), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)
	before := v.ViewModel()

	v.SetMinPriceInput("abc")
	after := v.ViewModel()
	if after.MinPrice != before.MinPrice {
		t.Errorf("non-numeric input must keep the prior bound, got %d", after.MinPrice)
	}

	v.SetMinPriceInput("200000")
	if got := v.ViewModel().MinPrice; got != 200000 {
		t.Errorf("expected min price 200000, got %d", got)
	}
}

func TestPriceBoundsClampAndOrder(t *testing.T) {
	v := newView(rawCatalog(5), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)
	// Catalog prices run 100000..500000.
	v.SetMinPrice(-50)
	if got := v.ViewModel().MinPrice; got != 100000 {
		t.Errorf("min must clamp to the scoped lower bound, got %d", got)
	}
	v.SetMaxPrice(200000)
	v.SetMinPrice(400000)
	if vm := v.ViewModel(); vm.MinPrice > vm.MaxPrice {
		t.Errorf("min %d must not exceed max %d", vm.MinPrice, vm.MaxPrice)
	}
}

func TestResetRestoresRouteInitialValues(t *testing.T) {
	initial := types.CategoryCameras
	v := newView(rawCatalog(5), Params{
		InitialSearchQuery: "sony",
		InitialCategory:    &initial,
		ResultLabel:        "All Products",
	}, (&fakeScheduler{}).schedule)

	v.SetSearchText("canon")
	v.SetCategory(nil)
	v.ToggleBrand("DJI")
	v.SetStockOnly(true)
	v.SetSort(types.SortPriceDesc)

	v.ResetFilters()
	vm := v.ViewModel()
	if vm.SearchText != "sony" {
		t.Errorf("reset should restore the route search, got %q", vm.SearchText)
	}
	if vm.ActiveCategory == nil || *vm.ActiveCategory != initial {
		t.Errorf("reset should restore the route category, got %v", vm.ActiveCategory)
	}
	if len(vm.SelectedBrands) != 0 || vm.OnlyInStock || vm.SortBy != types.SortFeatured {
		t.Errorf("session-local filters should clear: %+v", vm)
	}
}

func TestForcedScopeIgnoresCategory(t *testing.T) {
	raw := rawCatalog(5)
	phone := "iPhone 15"
	phoneSlug := "iphone-15"
	id, price := 99.0, 900000.0
	raw = append(raw, catalog.RawProduct{Id: &id, Name: &phone, Slug: &phoneSlug, Category: "iPhone", PriceRWF: &price})

	v := newView(raw, Params{
		ForcedCategories: []types.Category{types.CategoryCameras},
		ResultLabel:      "Cameras",
	}, (&fakeScheduler{}).schedule)

	if got := v.TotalCount(); got != 5 {
		t.Fatalf("forced scope should keep the 5 cameras, got %d", got)
	}

	other := types.CategoryIPhone
	v.SetCategory(&other)
	if vm := v.ViewModel(); vm.ActiveCategory != nil {
		t.Errorf("forced view must never adopt a category, got %v", vm.ActiveCategory)
	}

	v.AdoptQuery(url.Values{"category": []string{"iPhone"}})
	if vm := v.ViewModel(); vm.ActiveCategory != nil {
		t.Errorf("forced view must ignore URL categories, got %v", vm.ActiveCategory)
	}
	if got := v.TotalCount(); got != 5 {
		t.Errorf("forced scope changed size after URL adoption: %d", got)
	}
}

func TestAdoptQuery(t *testing.T) {
	v := newView(rawCatalog(5), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)

	v.AdoptQuery(url.Values{"q": []string{"camera 3"}, "category": []string{"Cameras"}})
	vm := v.ViewModel()
	if vm.SearchText != "camera 3" {
		t.Errorf("expected URL search adopted, got %q", vm.SearchText)
	}
	if vm.ActiveCategory == nil || *vm.ActiveCategory != types.CategoryCameras {
		t.Errorf("expected URL category adopted, got %v", vm.ActiveCategory)
	}

	// Unknown categories are dropped, a missing q clears the search.
	v.AdoptQuery(url.Values{"category": []string{"Spaceships"}})
	vm = v.ViewModel()
	if vm.SearchText != "" {
		t.Errorf("missing q should clear the search, got %q", vm.SearchText)
	}
	if vm.ActiveCategory != nil {
		t.Errorf("unknown category should clear the selection, got %v", vm.ActiveCategory)
	}
}

func TestRouteNavigationRebasesReset(t *testing.T) {
	v := newView(rawCatalog(5), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)

	next := types.CategoryCameras
	v.SetRouteValues("dji", &next)
	v.SetSearchText("something else")
	v.ResetFilters()

	vm := v.ViewModel()
	if vm.SearchText != "dji" {
		t.Errorf("reset should restore the newest route values, got %q", vm.SearchText)
	}
	if vm.ActiveCategory == nil || *vm.ActiveCategory != next {
		t.Errorf("reset should restore the newest route category, got %v", vm.ActiveCategory)
	}
}

func TestChipsAndRemoval(t *testing.T) {
	v := newView(rawCatalog(6), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)
	v.SetSearchText("camera")
	v.ToggleBrand("Sony")
	v.ToggleCondition(types.ConditionNew)
	v.SetStockOnly(true)

	vm := v.ViewModel()
	want := []string{"search", "brand-Sony", "condition-New", "stock"}
	if len(vm.Chips) != len(want) {
		t.Fatalf("expected %d chips, got %+v", len(want), vm.Chips)
	}
	for i, id := range want {
		if vm.Chips[i].Id != id {
			t.Errorf("chip %d = %q, want %q", i, vm.Chips[i].Id, id)
		}
	}

	v.RemoveChip("brand-Sony")
	v.RemoveChip("stock")
	vm = v.ViewModel()
	for _, chip := range vm.Chips {
		if chip.Id == "brand-Sony" || chip.Id == "stock" {
			t.Errorf("removed chip still present: %q", chip.Id)
		}
	}
}

func TestFallbackImageSubstitution(t *testing.T) {
	name := "Bare Product"
	slug := "bare-product"
	id, price := 1.0, 100.0
	raw := []catalog.RawProduct{{Id: &id, Name: &name, Slug: &slug, Category: "Cameras", PriceRWF: &price}}
	v := newView(raw, Params{ResultLabel: "All", FallbackImage: "/images/placeholder.webp"}, (&fakeScheduler{}).schedule)

	vm := v.ViewModel()
	if len(vm.Products) != 1 || len(vm.Products[0].Images) != 1 || vm.Products[0].Images[0] != "/images/placeholder.webp" {
		t.Errorf("expected fallback image substitution, got %+v", vm.Products)
	}
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	v := newView(rawCatalog(5), Params{ResultLabel: "All Products"}, (&fakeScheduler{}).schedule)
	v.SetSearchText("does-not-exist")
	vm := v.ViewModel()
	if vm.TotalCount != 0 || vm.VisibleCount != 0 || vm.HasMore {
		t.Errorf("empty result should render as zero products, got %+v", vm)
	}
}
