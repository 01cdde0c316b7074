package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shopstack/storefront/internal/domain"
)

// Catalog holds products and categories. Listings preserve insertion
// order so seeded catalogs render stably.
type Catalog struct {
	mu         sync.RWMutex
	products   map[string]domain.Product
	productIDs []string
	categories map[string]domain.Category
	categoryID []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		products:   make(map[string]domain.Product),
		categories: make(map[string]domain.Category),
	}
}

func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, 0, len(c.productIDs))
	for _, id := range c.productIDs {
		out = append(out, c.products[id])
	}
	return out
}

func (c *Catalog) Product(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	return p, ok
}

// AddProduct inserts or replaces a product. An empty ID gets a fresh
// UUID; seeders supply their own stable IDs.
func (c *Catalog) AddProduct(p domain.Product) domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, exists := c.products[p.ID]; !exists {
		c.productIDs = append(c.productIDs, p.ID)
	}
	c.products[p.ID] = p
	return p
}

// AdjustStock applies a signed delta to a product's stock. The store
// does not clamp the result; callers enforce the non-negative invariant
// before committing a decrement.
func (c *Catalog) AdjustStock(id string, delta int) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	p.Stock += delta
	c.products[id] = p
	return p, nil
}

func (c *Catalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Category, 0, len(c.categoryID))
	for _, id := range c.categoryID {
		out = append(out, c.categories[id])
	}
	return out
}

func (c *Catalog) AddCategory(cat domain.Category) domain.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	if _, exists := c.categories[cat.ID]; !exists {
		c.categoryID = append(c.categoryID, cat.ID)
	}
	c.categories[cat.ID] = cat
	return cat
}

// CategoryBySlug is used by the remote seeder to merge categories by
// their URL-safe key instead of duplicating them.
func (c *Catalog) CategoryBySlug(slug string) (domain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cat := range c.categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return domain.Category{}, false
}
