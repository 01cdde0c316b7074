// Package seed populates the catalog: a static baseline at startup plus
// an optional best-effort import from the Fakestore API.
package seed

import (
	"github.com/shopstack/storefront/internal/domain"
	"github.com/shopstack/storefront/internal/store"
)

// Apply loads the static catalog. Prices are whole rupees; a few
// products are deliberately out of stock.
func Apply(catalog *store.Catalog) {
	for _, c := range categories() {
		catalog.AddCategory(c)
	}
	for _, p := range products() {
		catalog.AddProduct(p)
	}
}

func categories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Electronics", Slug: "electronics"},
		{ID: "2", Name: "Fashion", Slug: "fashion"},
		{ID: "3", Name: "Home & Kitchen", Slug: "home-kitchen"},
		{ID: "4", Name: "Books", Slug: "books"},
		{ID: "5", Name: "Sports", Slug: "sports"},
	}
}

func products() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Wireless Bluetooth Headphones",
			Description:   "Premium noise-cancelling headphones with 30-hour battery life",
			Price:         2999,
			OriginalPrice: 4999,
			CategoryID:    "1",
			Stock:         15,
			ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Rating:        4.5,
			ReviewCount:   234,
		},
		{
			ID:            "2",
			Name:          "Smart Watch Series 7",
			Description:   "Advanced fitness tracking with heart rate monitor and GPS",
			Price:         12999,
			OriginalPrice: 15999,
			CategoryID:    "1",
			Stock:         8,
			ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Rating:        4.8,
			ReviewCount:   456,
		},
		{
			ID:            "3",
			Name:          "Premium Laptop Backpack",
			Description:   "Water-resistant backpack with padded laptop compartment",
			Price:         1499,
			OriginalPrice: 2499,
			CategoryID:    "2",
			Stock:         25,
			ImageURL:      "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
			Rating:        4.3,
			ReviewCount:   128,
		},
		{
			ID:          "4",
			Name:        "Wireless Gaming Mouse",
			Description: "RGB gaming mouse with 16000 DPI and customizable buttons",
			Price:       1899,
			CategoryID:  "1",
			Stock:       0,
			ImageURL:    "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500",
			Rating:      4.6,
			ReviewCount: 89,
		},
		{
			ID:            "5",
			Name:          "Cotton Casual T-Shirt",
			Description:   "100% premium cotton, comfortable fit for everyday wear",
			Price:         599,
			OriginalPrice: 999,
			CategoryID:    "2",
			Stock:         50,
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			Rating:        4.2,
			ReviewCount:   312,
		},
		{
			ID:          "6",
			Name:        "Stainless Steel Water Bottle",
			Description: "Insulated bottle keeps drinks cold for 24 hours, hot for 12 hours",
			Price:       799,
			CategoryID:  "3",
			Stock:       35,
			ImageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500",
			Rating:      4.7,
			ReviewCount: 178,
		},
		{
			ID:            "7",
			Name:          "Mechanical Keyboard RGB",
			Description:   "Cherry MX switches with customizable RGB lighting",
			Price:         4999,
			OriginalPrice: 6999,
			CategoryID:    "1",
			Stock:         12,
			ImageURL:      "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500",
			Rating:        4.9,
			ReviewCount:   267,
		},
		{
			ID:            "8",
			Name:          "Running Shoes Pro",
			Description:   "Lightweight running shoes with advanced cushioning technology",
			Price:         3999,
			OriginalPrice: 5999,
			CategoryID:    "5",
			Stock:         20,
			ImageURL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Rating:        4.4,
			ReviewCount:   543,
		},
		{
			ID:          "9",
			Name:        "Cookbook Collection",
			Description: "Complete collection of Indian and international recipes",
			Price:       899,
			CategoryID:  "4",
			Stock:       18,
			ImageURL:    "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=500",
			Rating:      4.6,
			ReviewCount: 92,
		},
		{
			ID:          "10",
			Name:        "Designer Sunglasses",
			Description: "UV protection polarized lenses with premium frame",
			Price:       2499,
			CategoryID:  "2",
			Stock:       0,
			ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500",
			Rating:      4.4,
			ReviewCount: 167,
		},
	}
}
