package repository

import "github.com/sinopos/storefront-api/internal/domain/entity"

// ProductRepository is the persistence port for Product (DIP).
// All listings are ordered by sort_order ascending. Single-row lookups return
// (nil, nil) when no row matches.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List returns products; onlyActive restricts to is_active rows
	// (the storefront surface) while admin screens pass false.
	List(onlyActive bool) ([]*entity.Product, error)
	ListFeatured() ([]*entity.Product, error)
	ListNew() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	// ListPaged returns one page of active products matching categoryIDs
	// (nil = no filter) plus the total matching row count, which is
	// independent of the page size.
	ListPaged(categoryIDs []string, limit, offset int) ([]*entity.Product, int, error)
	Delete(id string) error
}
