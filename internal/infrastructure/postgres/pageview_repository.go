package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
)

var _ repository.PageViewRepository = (*PageViewRepo)(nil)

// PageViewRepo implements the PageViewRepository port over PostgreSQL.
type PageViewRepo struct {
	q Querier
}

// NewPageViewRepository builds the persistence adapter for telemetry rows.
func NewPageViewRepository(q Querier) *PageViewRepo {
	return &PageViewRepo{q: q}
}

// Create persists one page view.
func (r *PageViewRepo) Create(view *entity.PageView) error {
	query := `
		INSERT INTO page_views (id, visitor_id, session_id, path, referrer, product_id, locale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		view.ID, view.VisitorID, view.SessionID, view.Path, view.Referrer,
		nullIfEmpty(view.ProductID), view.Locale, view.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert page view: %w", err)
	}
	return nil
}

// LastSeen returns the newest created_at for the session, nil when none.
func (r *PageViewRepo) LastSeen(sessionID string) (*time.Time, error) {
	var last time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT created_at FROM page_views WHERE session_id = $1 ORDER BY created_at DESC LIMIT 1`,
		sessionID).Scan(&last)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("last seen: %w", err)
	}
	return &last, nil
}
