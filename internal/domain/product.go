package domain

// Product is a catalog entry. Stock is the only field mutated after
// seeding, via the catalog store's AdjustStock.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	CategoryID    string  `json:"categoryId"`
	Stock         int     `json:"stock"`
	ImageURL      string  `json:"imageUrl"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
