package repository

import (
	"time"

	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// PageViewRepository is the persistence port for telemetry rows.
type PageViewRepository interface {
	Create(view *entity.PageView) error
	// LastSeen returns the newest created_at for the session, or nil when
	// the session has no rows yet.
	LastSeen(sessionID string) (*time.Time, error)
}
