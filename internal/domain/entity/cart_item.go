package entity

import "time"

// CartItem is one (user, product) row of a user's remote cart.
// At most one row exists per pair; quantity adds are folded into it.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int // always >= 1; dropping below 1 deletes the row
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine is a cart item joined with its product snapshot (and the product's
// category when it has one) at fetch time.
type CartLine struct {
	Item     CartItem
	Product  *Product
	Category *Category // nil when the product is uncategorized
}
