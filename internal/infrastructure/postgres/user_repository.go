package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, name, role, status, email_confirmed_at, created_at, updated_at`

// Create persists a new user.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, status, email_confirmed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.EmailConfirmedAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID. (nil, nil) when absent.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row, "get user")
}

// GetByEmail fetches a user by email. (nil, nil) when absent.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row, "get user by email")
}

// ConfirmEmail marks the email verified and activates the account.
func (r *UserRepo) ConfirmEmail(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET email_confirmed_at = $2, status = 'active', updated_at = $2 WHERE id = $1`,
		id, at)
	if err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}
	return nil
}

func scanUser(row rowScanner, op string) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.EmailConfirmedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
