package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/hopecreatives/officialhope/pkg/types"
)

const productProjection = `{_id,_createdAt,name,"slug":slug.current,category,brand,condition,priceRWF,inStock,featured,shortDesc,description,specs,images}`

const (
	allProductsQuery       = `*[_type == "product" && defined(slug.current)] | order(_createdAt desc) ` + productProjection
	productsByCategoryQuery = `*[_type == "product" && defined(slug.current) && category in $categories] | order(_createdAt desc) ` + productProjection
	productBySlugQuery     = `*[_type == "product" && slug.current == $slug][0] ` + productProjection
)

var (
	projectIdPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	datasetPattern    = regexp.MustCompile(`^[a-z0-9_-]+$`)
	apiVersionPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// SanityConfig identifies the content store project. Placeholder or malformed
// values leave the client unconfigured, which callers treat as source
// unavailable, never as an error surfaced to the UI.
type SanityConfig struct {
	ProjectId  string
	Dataset    string
	ApiVersion string
}

func (c SanityConfig) Valid() bool {
	if c.ProjectId == "your-project-id" || c.ProjectId == "your_project_id" {
		return false
	}
	return projectIdPattern.MatchString(c.ProjectId) &&
		datasetPattern.MatchString(c.Dataset) &&
		apiVersionPattern.MatchString(c.ApiVersion)
}

// SanityClient queries a Sanity-compatible content API over HTTP and maps its
// product documents into raw catalog records.
type SanityClient struct {
	config SanityConfig
	client *http.Client
	base   string
}

// NewSanityClient returns nil when the configuration is unusable; a nil client
// is a valid "no content store" state for the fallback chain.
func NewSanityClient(config SanityConfig) *SanityClient {
	if !config.Valid() {
		return nil
	}
	return &SanityClient{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		base: fmt.Sprintf("https://%s.apicdn.sanity.io/v%s/data/query/%s",
			config.ProjectId, config.ApiVersion, config.Dataset),
	}
}

type imageReference struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

type productDocument struct {
	Id          string           `json:"_id"`
	CreatedAt   string           `json:"_createdAt"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Category    string           `json:"category"`
	Brand       string           `json:"brand"`
	Condition   string           `json:"condition"`
	PriceRWF    float64          `json:"priceRWF"`
	InStock     bool             `json:"inStock"`
	Featured    bool             `json:"featured"`
	ShortDesc   string           `json:"shortDesc"`
	Description string           `json:"description"`
	Specs       []string         `json:"specs"`
	Images      []imageReference `json:"images"`
}

func (s *SanityClient) runQuery(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"?"+values.Encode(), nil)
	if err != nil {
		return err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("content query failed: %s: %s", res.Status, body)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return err
	}
	if envelope.Result == nil {
		return fmt.Errorf("content query returned no result")
	}
	return json.Unmarshal(envelope.Result, out)
}

func (s *SanityClient) GetProducts(ctx context.Context) ([]catalog.RawProduct, error) {
	var docs []productDocument
	if err := s.runQuery(ctx, allProductsQuery, nil, &docs); err != nil {
		return nil, err
	}
	return s.mapDocuments(docs), nil
}

func (s *SanityClient) GetProductsByCategory(ctx context.Context, slug string) ([]catalog.RawProduct, error) {
	route, ok := types.CategoryRouteBySlug(slug)
	if !ok {
		return []catalog.RawProduct{}, nil
	}
	var docs []productDocument
	err := s.runQuery(ctx, productsByCategoryQuery, map[string]any{"categories": route.ContentCategories}, &docs)
	if err != nil {
		return nil, err
	}
	return s.mapDocuments(docs), nil
}

func (s *SanityClient) GetProductBySlug(ctx context.Context, slug string) (*catalog.RawProduct, error) {
	var doc *productDocument
	if err := s.runQuery(ctx, productBySlugQuery, map[string]any{"slug": slug}, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	raw := s.mapDocument(*doc, 0)
	return raw, nil
}

func (s *SanityClient) mapDocuments(docs []productDocument) []catalog.RawProduct {
	records := make([]catalog.RawProduct, 0, len(docs))
	for index, doc := range docs {
		if raw := s.mapDocument(doc, index); raw != nil {
			records = append(records, *raw)
		}
	}
	return records
}

// mapDocument turns one content document into a raw record, or nil when the
// document cannot be placed in the catalog taxonomy at all.
func (s *SanityClient) mapDocument(doc productDocument, index int) *catalog.RawProduct {
	category, ok := types.CategoryFromContent(doc.Category)
	if !ok {
		return nil
	}
	condition, ok := types.ConditionFromContent(doc.Condition)
	if !ok {
		return nil
	}
	name := strings.TrimSpace(doc.Name)
	slug := strings.TrimSpace(doc.Slug)
	if name == "" || slug == "" {
		return nil
	}

	id := float64(index + 1)
	if t, err := time.Parse(time.RFC3339, doc.CreatedAt); err == nil {
		id = float64(t.UnixMilli() + int64(index))
	}
	price := doc.PriceRWF

	images := make([]string, 0, len(doc.Images))
	for _, image := range doc.Images {
		if resolved := s.imageURL(image.Asset.Ref); resolved != "" {
			images = append(images, resolved)
		}
	}

	return &catalog.RawProduct{
		Id:          &id,
		Name:        &name,
		Slug:        &slug,
		CreatedAt:   doc.CreatedAt,
		Category:    string(category),
		Brand:       doc.Brand,
		Condition:   string(condition),
		PriceRWF:    &price,
		InStock:     doc.InStock,
		Featured:    doc.Featured,
		ShortDesc:   doc.ShortDesc,
		Description: doc.Description,
		Specs:       mapSpecs(doc.Specs),
		Images:      images,
	}
}

// imageURL expands an asset reference like "image-<id>-<dims>-<format>" into
// the CDN url for that asset.
func (s *SanityClient) imageURL(ref string) string {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		s.config.ProjectId, s.config.Dataset, parts[1], parts[2], parts[3])
}

// mapSpecs splits "Label: value" strings into spec pairs; lines without a
// label get a positional one.
func mapSpecs(specs []string) []types.Spec {
	mapped := make([]types.Spec, 0, len(specs))
	for index, line := range specs {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if label, value, found := strings.Cut(line, ":"); found {
			mapped = append(mapped, types.Spec{
				Label: strings.TrimSpace(label),
				Value: strings.TrimSpace(value),
			})
			continue
		}
		mapped = append(mapped, types.Spec{
			Label: fmt.Sprintf("Spec %d", index+1),
			Value: line,
		})
	}
	return mapped
}
