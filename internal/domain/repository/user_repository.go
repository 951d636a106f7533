package repository

import (
	"time"

	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// ConfirmEmail marks the user's email verified and activates the account.
	ConfirmEmail(id string, at time.Time) error
}
