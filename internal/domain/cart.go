package domain

// CartItem is one product+quantity line in a user's cart. At most one
// line exists per (user, product); adding the same product again merges
// quantities instead of creating a second line.
type CartItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// WishlistItem is a saved product reference, at most one per (user, product).
type WishlistItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}
