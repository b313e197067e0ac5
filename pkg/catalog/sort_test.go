package catalog

import (
	"testing"

	"github.com/hopecreatives/officialhope/pkg/types"
)

func sortFixture() []types.Product {
	return []types.Product{
		{Id: 1, PriceRWF: 300, CreatedAt: "2024-01-10T00:00:00Z"},
		{Id: 2, PriceRWF: 100, Featured: true, CreatedAt: "2024-03-01T00:00:00Z"},
		{Id: 3, PriceRWF: 200},
		{Id: 4, PriceRWF: 100, CreatedAt: "2024-05-20T00:00:00Z"},
	}
}

func ids(products []types.Product) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.Id
	}
	return out
}

func assertOrder(t *testing.T, got, want []uint) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortPriceAsc(t *testing.T) {
	products := sortFixture()
	Sort(products, types.SortPriceAsc)
	assertOrder(t, ids(products), []uint{2, 4, 3, 1})
}

func TestSortPriceDesc(t *testing.T) {
	products := sortFixture()
	Sort(products, types.SortPriceDesc)
	assertOrder(t, ids(products), []uint{1, 3, 2, 4})
}

func TestSortNewestFallsBackToId(t *testing.T) {
	products := sortFixture()
	Sort(products, types.SortNewest)
	// Product 3 has no createdAt, so its id acts as the ordering key and it
	// lands behind everything with a real timestamp.
	assertOrder(t, ids(products), []uint{4, 2, 1, 3})
}

func TestSortFeaturedPartition(t *testing.T) {
	products := sortFixture()
	Sort(products, types.SortFeatured)
	assertOrder(t, ids(products), []uint{2, 4, 1, 3})
}

func TestSortStableUnderPriceTies(t *testing.T) {
	first := sortFixture()
	Sort(first, types.SortPriceAsc)
	second := sortFixture()
	Sort(second, types.SortPriceAsc)
	assertOrder(t, ids(first), ids(second))
}
