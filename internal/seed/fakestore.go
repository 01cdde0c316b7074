package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"regexp"
	"strings"

	"github.com/shopstack/storefront/internal/domain"
	"github.com/shopstack/storefront/internal/store"
)

// RemoteSeeder imports categories and products from the Fakestore API
// into the catalog. It only writes through the catalog's own insert
// primitives, and a failed run leaves whatever the catalog already had.
type RemoteSeeder struct {
	baseURL string
	client  *http.Client
	catalog *store.Catalog
	logger  *slog.Logger
}

func NewRemoteSeeder(baseURL string, client *http.Client, catalog *store.Catalog, logger *slog.Logger) *RemoteSeeder {
	return &RemoteSeeder{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		catalog: catalog,
		logger:  logger,
	}
}

type fakestoreProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"` // USD
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// Run fetches and merges the remote catalog. Categories merge by slug;
// products use stable fs-<id> identifiers so reruns overwrite instead
// of duplicating.
func (s *RemoteSeeder) Run(ctx context.Context) error {
	var names []string
	if err := s.fetch(ctx, "/products/categories", &names); err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}

	for _, name := range names {
		slug := slugify(name)
		if _, ok := s.catalog.CategoryBySlug(slug); ok {
			continue
		}
		s.catalog.AddCategory(domain.Category{Name: name, Slug: slug})
	}

	var remote []fakestoreProduct
	if err := s.fetch(ctx, "/products", &remote); err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}

	imported := 0
	for _, fp := range remote {
		category, ok := s.catalog.CategoryBySlug(slugify(fp.Category))
		if !ok {
			continue
		}

		price := int64(math.Round(fp.Price * 100)) // approx USD -> INR
		if price < 99 {
			price = 99
		}

		// Derive a stable stock figure from the review count, with some
		// products intentionally out of stock.
		stock := fp.Rating.Count % 50
		if fp.Rating.Count%7 == 0 {
			stock = 0
		}

		s.catalog.AddProduct(domain.Product{
			ID:            fmt.Sprintf("fs-%d", fp.ID),
			Name:          fp.Title,
			Description:   fp.Description,
			Price:         price,
			OriginalPrice: int64(math.Round(float64(price) * 1.2)),
			CategoryID:    category.ID,
			Stock:         stock,
			ImageURL:      fp.Image,
			Rating:        fp.Rating.Rate,
			ReviewCount:   fp.Rating.Count,
		})
		imported++
	}

	s.logger.Info("remote catalog seeded", "categories", len(names), "products", imported)
	return nil
}

func (s *RemoteSeeder) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
