package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"horizon-cli/internal/horizon"
)

// Service orchestrates classification, query building, transport and
// normalization on behalf of the CLI commands.
type Service struct {
	client         *horizon.Client
	defaultSubsite string
	log            zerolog.Logger
}

func NewService(client *horizon.Client, defaultSubsite string, log zerolog.Logger) *Service {
	return &Service{
		client:         client,
		defaultSubsite: defaultSubsite,
		log:            log.With().Str("component", "catalog").Logger(),
	}
}

// subsiteOr falls back to the configured default storefront.
func (s *Service) subsiteOr(subsite string) string {
	if subsite == "" {
		return s.defaultSubsite
	}
	return subsite
}

// wirePath converts a canonical listing path to the form the page query
// expects: exactly one leading slash.
func wirePath(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}

// ---------------------------------------------------------------------------
// Product ids
// ---------------------------------------------------------------------------

// ProductIDs resolves a raw query argument to product ids. Listing URLs
// select the list flow on the URL's own subsite; anything else is searched
// verbatim on the given (or default) subsite.
func (s *Service) ProductIDs(ctx context.Context, input, subsite string, f QueryFilters) ([]int64, error) {
	in, err := ClassifyInput(input, s.subsiteOr(subsite))
	if err != nil {
		return nil, err
	}
	if in.Kind == ListingURL {
		return s.ListPageIDs(ctx, in.Subsite, in.ListingPath, f)
	}
	return s.SearchIDs(ctx, in.Subsite, in.Term, f)
}

// SearchIDs runs the search operation and normalizes the response to ids.
// Normalization faults degrade to an empty result with a logged diagnostic;
// only transport faults are returned as errors.
func (s *Service) SearchIDs(ctx context.Context, subsite, term string, f QueryFilters) ([]int64, error) {
	body, err := s.client.Post(ctx, s.subsiteOr(subsite), BuildSearchQuery(term, f))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	ids, err := ExtractIDsFromSearchResponse(body)
	if err != nil {
		s.log.Warn().Err(err).Str("term", term).Msg("search response not normalized")
	}
	return ids, nil
}

// ListPageIDs runs the listing operation for a category path and normalizes
// the response to ids, with the same degradation rule as SearchIDs.
func (s *Service) ListPageIDs(ctx context.Context, subsite, path string, f QueryFilters) ([]int64, error) {
	body, err := s.client.Post(ctx, s.subsiteOr(subsite), BuildListQuery(wirePath(path), f))
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", path, err)
	}
	ids, err := ExtractIDsFromListResponse(body)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("list response not normalized")
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Raw pass-through operations
// ---------------------------------------------------------------------------

// SearchRaw returns the search response body untouched.
func (s *Service) SearchRaw(ctx context.Context, subsite, term string, f QueryFilters) ([]byte, error) {
	body, err := s.client.Post(ctx, s.subsiteOr(subsite), BuildSearchQuery(term, f))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	return body, nil
}

// ListRaw returns the listing response body untouched.
func (s *Service) ListRaw(ctx context.Context, subsite, path string, f QueryFilters) ([]byte, error) {
	body, err := s.client.Post(ctx, s.subsiteOr(subsite), BuildListQuery(wirePath(path), f))
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", path, err)
	}
	return body, nil
}

// ProductRaw returns the product-detail response body untouched.
func (s *Service) ProductRaw(ctx context.Context, subsite string, sku int64) ([]byte, error) {
	body, err := s.client.Post(ctx, s.subsiteOr(subsite), BuildProductQuery(sku))
	if err != nil {
		return nil, fmt.Errorf("fetch product %d: %w", sku, err)
	}
	return body, nil
}

// Subsites returns the subsite metadata listing untouched.
func (s *Service) Subsites(ctx context.Context) ([]byte, error) {
	return s.client.Subsites(ctx)
}

// ---------------------------------------------------------------------------
// Typed product detail
// ---------------------------------------------------------------------------

// Product fetches one product and decodes it into the typed domain shape,
// including the content value union.
func (s *Service) Product(ctx context.Context, subsite string, sku int64) (ProductDetail, error) {
	var resp struct {
		Product *productWire `json:"product"`
	}
	if err := s.client.Do(ctx, s.subsiteOr(subsite), BuildProductQuery(sku), &resp); err != nil {
		return ProductDetail{}, fmt.Errorf("fetch product %d: %w", sku, err)
	}
	if resp.Product == nil {
		return ProductDetail{}, fmt.Errorf("product %d not found", sku)
	}
	return resp.Product.toDomain(), nil
}
