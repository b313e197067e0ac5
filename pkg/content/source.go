package content

import (
	"context"

	"github.com/hopecreatives/officialhope/pkg/catalog"
)

// Source yields raw product records for a view scope. Implementations make no
// promise about record completeness; the catalog normalizer owns coercion.
type Source interface {
	GetProducts(ctx context.Context) ([]catalog.RawProduct, error)
	GetProductsByCategory(ctx context.Context, slug string) ([]catalog.RawProduct, error)
	GetProductBySlug(ctx context.Context, slug string) (*catalog.RawProduct, error)
}
