package content

import (
	"context"
	"log"

	"github.com/hopecreatives/officialhope/pkg/catalog"
)

// FallbackSource tries the live content store and substitutes the static
// catalog when the store is unconfigured, fails or yields nothing. It never
// returns an error for collection queries, so the shop never shows a source
// failure.
type FallbackSource struct {
	Primary  Source
	Fallback Source
}

func NewFallbackSource(primary Source, fallback Source) *FallbackSource {
	return &FallbackSource{Primary: primary, Fallback: fallback}
}

func (s *FallbackSource) GetProducts(ctx context.Context) ([]catalog.RawProduct, error) {
	if s.Primary != nil {
		records, err := s.Primary.GetProducts(ctx)
		if err == nil && len(records) > 0 {
			return records, nil
		}
		if err != nil {
			log.Printf("content store unavailable, using builtin catalog: %v", err)
		}
	}
	return s.Fallback.GetProducts(ctx)
}

func (s *FallbackSource) GetProductsByCategory(ctx context.Context, slug string) ([]catalog.RawProduct, error) {
	if s.Primary != nil {
		records, err := s.Primary.GetProductsByCategory(ctx, slug)
		if err == nil {
			return records, nil
		}
		log.Printf("content store unavailable, using builtin catalog: %v", err)
	}
	return s.Fallback.GetProductsByCategory(ctx, slug)
}

func (s *FallbackSource) GetProductBySlug(ctx context.Context, slug string) (*catalog.RawProduct, error) {
	if s.Primary != nil {
		record, err := s.Primary.GetProductBySlug(ctx, slug)
		if err == nil && record != nil {
			return record, nil
		}
		if err != nil {
			log.Printf("content store unavailable, using builtin catalog: %v", err)
		}
	}
	return s.Fallback.GetProductBySlug(ctx, slug)
}
