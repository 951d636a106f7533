package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements the CategoryRepository port over PostgreSQL
// (usable with pool or tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository builds the persistence adapter for categories.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, parent_id, name_en, name_zh, slug, image_url, sort_order, created_at, updated_at`

// Create persists a new category.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, parent_id, name_en, name_zh, slug, image_url, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, nullIfEmpty(category.ParentID), category.NameEN, category.NameZH,
		category.Slug, category.ImageURL, category.SortOrder,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // parent does not exist
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID fetches a category by ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	return scanCategory(row, "get category")
}

// GetBySlug fetches a category by its URL slug. (nil, nil) when absent.
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	return scanCategory(row, "get category by slug")
}

// Update updates an existing category.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET parent_id = $2, name_en = $3, name_zh = $4, slug = $5, image_url = $6, sort_order = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, nullIfEmpty(category.ParentID), category.NameEN, category.NameZH,
		category.Slug, category.ImageURL, category.SortOrder, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // parent does not exist
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List returns all categories ordered by sort_order ascending.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+categoryColumns+` FROM categories ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListByParent returns the direct children of parentID, sort_order ascending.
func (r *CategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE parent_id = $1 ORDER BY sort_order ASC, created_at ASC`,
		parentID)
	if err != nil {
		return nil, fmt.Errorf("list categories by parent: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete removes a category. Child categories or products still referencing
// it surface as domain.ErrHasDependents.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategoryRow(row rowScanner) (*entity.Category, error) {
	var c entity.Category
	var parentID, imageURL sql.NullString
	if err := row.Scan(&c.ID, &parentID, &c.NameEN, &c.NameZH, &c.Slug, &imageURL,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ParentID = parentID.String
	c.ImageURL = imageURL.String
	return &c, nil
}

func scanCategory(row rowScanner, op string) (*entity.Category, error) {
	c, err := scanCategoryRow(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// nullIfEmpty maps "" to SQL NULL for optional foreign keys.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
