package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/hopecreatives/officialhope/pkg/catalog"
)

type failingSource struct{}

func (failingSource) GetProducts(context.Context) ([]catalog.RawProduct, error) {
	return nil, fmt.Errorf("store down")
}

func (failingSource) GetProductsByCategory(context.Context, string) ([]catalog.RawProduct, error) {
	return nil, fmt.Errorf("store down")
}

func (failingSource) GetProductBySlug(context.Context, string) (*catalog.RawProduct, error) {
	return nil, fmt.Errorf("store down")
}

type emptySource struct{}

func (emptySource) GetProducts(context.Context) ([]catalog.RawProduct, error) {
	return []catalog.RawProduct{}, nil
}

func (emptySource) GetProductsByCategory(context.Context, string) ([]catalog.RawProduct, error) {
	return []catalog.RawProduct{}, nil
}

func (emptySource) GetProductBySlug(context.Context, string) (*catalog.RawProduct, error) {
	return nil, nil
}

func TestFallbackOnFailure(t *testing.T) {
	s := NewFallbackSource(failingSource{}, NewStaticSource())
	records, err := s.GetProducts(context.Background())
	if err != nil {
		t.Fatalf("fallback must swallow source failures, got %v", err)
	}
	if len(records) == 0 {
		t.Error("expected the builtin catalog")
	}
}

func TestFallbackOnEmptyCatalog(t *testing.T) {
	s := NewFallbackSource(emptySource{}, NewStaticSource())
	records, err := s.GetProducts(context.Background())
	if err != nil || len(records) == 0 {
		t.Errorf("an empty store should fall back, got %d records, err %v", len(records), err)
	}
}

func TestFallbackWithoutPrimary(t *testing.T) {
	s := NewFallbackSource(nil, NewStaticSource())
	records, err := s.GetProducts(context.Background())
	if err != nil || len(records) == 0 {
		t.Errorf("nil primary should serve the builtin catalog, got %d records, err %v", len(records), err)
	}
}

func TestFallbackProductBySlug(t *testing.T) {
	s := NewFallbackSource(failingSource{}, NewStaticSource())
	record, err := s.GetProductBySlug(context.Background(), "sony-a7-iv")
	if err != nil || record == nil {
		t.Fatalf("expected builtin product, got %v err %v", record, err)
	}
	if *record.Slug != "sony-a7-iv" {
		t.Errorf("unexpected record %+v", record)
	}
}

func TestStaticSourceByCategory(t *testing.T) {
	s := NewStaticSource()
	records, err := s.GetProductsByCategory(context.Background(), "tripods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range records {
		if r.Category != "Tripods" {
			t.Errorf("category route leaked %q", r.Category)
		}
	}
	if len(records) == 0 {
		t.Error("expected at least one tripod in the builtin catalog")
	}

	records, err = s.GetProductsByCategory(context.Background(), "unknown-route")
	if err != nil || len(records) != 0 {
		t.Errorf("unknown route should yield an empty set, got %d err %v", len(records), err)
	}
}
