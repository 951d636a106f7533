package repository

import "github.com/sinopos/storefront-api/internal/domain/entity"

// CartItemRepository is the persistence port for a user's remote cart.
// The (user_id, product_id) pair is unique; AddQuantity is an atomic upsert
// so concurrent adds from two sessions of the same user cannot create a
// second row.
type CartItemRepository interface {
	// ListLines returns the user's cart joined with product and category
	// snapshots, remote default order (created_at ascending).
	ListLines(userID string) ([]*entity.CartLine, error)
	GetByUserAndProduct(userID, productID string) (*entity.CartItem, error)
	// AddQuantity inserts the row or atomically adds qty to an existing one.
	AddQuantity(item *entity.CartItem) error
	// SetQuantity overwrites the quantity for (user, product).
	SetQuantity(userID, productID string, quantity int) error
	Delete(userID, productID string) error
	DeleteByUser(userID string) error
}
