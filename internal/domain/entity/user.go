package entity

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is an authenticated account. Sign-up requires email verification:
// Status stays "pending" and login is refused until EmailConfirmedAt is set.
type User struct {
	ID               string
	Email            string
	PasswordHash     string
	Name             string
	Role             string // admin | customer
	Status           string // pending, active, disabled
	EmailConfirmedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Confirmed reports whether the email address has been verified.
func (u *User) Confirmed() bool {
	return u.EmailConfirmedAt != nil
}
