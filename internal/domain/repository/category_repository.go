package repository

import "github.com/sinopos/storefront-api/internal/domain/entity"

// CategoryRepository is the persistence port for Category (DIP).
// Single-row lookups return (nil, nil) when no row matches.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List returns all categories ordered by sort_order ascending.
	List() ([]*entity.Category, error)
	ListByParent(parentID string) ([]*entity.Category, error)
	// Delete fails with domain.ErrHasDependents when child categories or
	// products still reference the row.
	Delete(id string) error
}
