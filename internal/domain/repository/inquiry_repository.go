package repository

import (
	"time"

	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// InquiryRepository is the persistence port for Inquiry (DIP).
// Admin listings are cursor-paged: strictly created_at < before, newest
// first, so the page stays correct under concurrent inserts.
type InquiryRepository interface {
	Create(inquiry *entity.Inquiry) error
	GetByID(id string) (*entity.Inquiry, error)
	// ListBefore returns up to limit inquiries older than before, newest
	// first. status filters when non-empty.
	ListBefore(before time.Time, limit int, status string) ([]*entity.Inquiry, error)
	CountUnread() (int, error)
	UpdateStatus(id, status string) error
	SetRead(id string, read bool) error
	Delete(id string) error
	DeleteMany(ids []string) error
}
