package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
)

var _ repository.CartItemRepository = (*CartRepo)(nil)

// CartRepo implements the CartItemRepository port over PostgreSQL.
// (user_id, product_id) is unique in the table; adds go through an atomic
// upsert so concurrent tabs/devices of the same user cannot fork the row.
type CartRepo struct {
	q Querier
}

// NewCartRepository builds the persistence adapter for cart items.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListLines returns the user's cart joined with product and category
// snapshots, oldest first (remote default order).
func (r *CartRepo) ListLines(userID string) ([]*entity.CartLine, error) {
	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
			p.id, p.category_id, p.name_en, p.name_zh, p.description_en, p.description_zh,
			p.rich_description, p.slug, p.price_min, p.price_max, p.min_order_qty, p.images,
			p.is_featured, p.is_new, p.is_active, p.sort_order, p.created_at, p.updated_at,
			c.id, c.parent_id, c.name_en, c.name_zh, c.slug, c.image_url, c.sort_order, c.created_at, c.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.CartLine
	for rows.Next() {
		var line entity.CartLine
		var p entity.Product
		var productCategoryID sql.NullString
		var catID, catParentID, catNameEN, catNameZH, catSlug, catImageURL sql.NullString
		var catSortOrder sql.NullInt64
		var catCreatedAt, catUpdatedAt sql.NullTime
		if err := rows.Scan(
			&line.Item.ID, &line.Item.UserID, &line.Item.ProductID, &line.Item.Quantity,
			&line.Item.CreatedAt, &line.Item.UpdatedAt,
			&p.ID, &productCategoryID, &p.NameEN, &p.NameZH, &p.DescriptionEN, &p.DescriptionZH,
			&p.RichDescription, &p.Slug, &p.PriceMin, &p.PriceMax, &p.MinOrderQty, &p.Images,
			&p.IsFeatured, &p.IsNew, &p.IsActive, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
			&catID, &catParentID, &catNameEN, &catNameZH, &catSlug, &catImageURL,
			&catSortOrder, &catCreatedAt, &catUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		p.CategoryID = productCategoryID.String
		line.Product = &p
		if catID.Valid {
			line.Category = &entity.Category{
				ID:        catID.String,
				ParentID:  catParentID.String,
				NameEN:    catNameEN.String,
				NameZH:    catNameZH.String,
				Slug:      catSlug.String,
				ImageURL:  catImageURL.String,
				SortOrder: int(catSortOrder.Int64),
				CreatedAt: catCreatedAt.Time,
				UpdatedAt: catUpdatedAt.Time,
			}
		}
		lines = append(lines, &line)
	}
	return lines, rows.Err()
}

// GetByUserAndProduct fetches the row for (user, product). (nil, nil) when absent.
func (r *CartRepo) GetByUserAndProduct(userID, productID string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, product_id, quantity, created_at, updated_at
		 FROM cart_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}

// AddQuantity inserts the row or atomically folds qty into an existing one.
// This closes the check-then-act race between concurrent sessions of the
// same user.
func (r *CartRepo) AddQuantity(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // product does not exist
		}
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// SetQuantity overwrites the quantity for (user, product).
func (r *CartRepo) SetQuantity(userID, productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cart_items SET quantity = $3, updated_at = now()
		 WHERE user_id = $1 AND product_id = $2`,
		userID, productID, quantity)
	if err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}
	return nil
}

// Delete removes the row for (user, product).
func (r *CartRepo) Delete(userID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteByUser removes every row of the user's cart.
func (r *CartRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
