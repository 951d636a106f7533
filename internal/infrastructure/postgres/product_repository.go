package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port over PostgreSQL
// (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, category_id, name_en, name_zh, description_en, description_zh,
	rich_description, slug, price_min, price_max, min_order_qty, images,
	is_featured, is_new, is_active, sort_order, created_at, updated_at`

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name_en, name_zh, description_en, description_zh,
			rich_description, slug, price_min, price_max, min_order_qty, images,
			is_featured, is_new, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.CategoryID), product.NameEN, product.NameZH,
		product.DescriptionEN, product.DescriptionZH, product.RichDescription, product.Slug,
		product.PriceMin, product.PriceMax, product.MinOrderQty, product.Images,
		product.IsFeatured, product.IsNew, product.IsActive, product.SortOrder,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // category does not exist
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row, "get product")
}

// GetBySlug fetches a product by its URL slug. (nil, nil) when absent.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row, "get product by slug")
}

// Update updates an existing product.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name_en = $3, name_zh = $4, description_en = $5, description_zh = $6,
			rich_description = $7, slug = $8, price_min = $9, price_max = $10, min_order_qty = $11,
			images = $12, is_featured = $13, is_new = $14, is_active = $15, sort_order = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.CategoryID), product.NameEN, product.NameZH,
		product.DescriptionEN, product.DescriptionZH, product.RichDescription, product.Slug,
		product.PriceMin, product.PriceMax, product.MinOrderQty, product.Images,
		product.IsFeatured, product.IsNew, product.IsActive, product.SortOrder, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // category does not exist
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List returns products ordered by sort_order ascending.
func (r *ProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`
	return r.queryProducts(query)
}

// ListFeatured returns active featured products.
func (r *ProductRepo) ListFeatured() ([]*entity.Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products
		WHERE is_active AND is_featured ORDER BY sort_order ASC, created_at ASC`)
}

// ListNew returns active new-arrival products.
func (r *ProductRepo) ListNew() ([]*entity.Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products
		WHERE is_active AND is_new ORDER BY sort_order ASC, created_at ASC`)
}

// ListByCategory returns active products of one category.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products
		WHERE is_active AND category_id = $1 ORDER BY sort_order ASC, created_at ASC`, categoryID)
}

// ListPaged returns one page of active products matching categoryIDs
// (nil = no filter) plus the total matching count.
func (r *ProductRepo) ListPaged(categoryIDs []string, limit, offset int) ([]*entity.Product, int, error) {
	where := ` WHERE is_active`
	args := []any{}
	if len(categoryIDs) > 0 {
		where += fmt.Sprintf(` AND category_id = ANY($%d)`, len(args)+1)
		args = append(args, categoryIDs)
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+productColumns+` FROM products`+where+
		` ORDER BY sort_order ASC, created_at ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	items, err := r.queryProducts(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProductRow(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var categoryID sql.NullString
	if err := row.Scan(&p.ID, &categoryID, &p.NameEN, &p.NameZH, &p.DescriptionEN, &p.DescriptionZH,
		&p.RichDescription, &p.Slug, &p.PriceMin, &p.PriceMax, &p.MinOrderQty, &p.Images,
		&p.IsFeatured, &p.IsNew, &p.IsActive, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.CategoryID = categoryID.String
	return &p, nil
}

func scanProduct(row rowScanner, op string) (*entity.Product, error) {
	p, err := scanProductRow(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
