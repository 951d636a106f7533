package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication flows: register, email confirmation, login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register creates an account: hashes the password with bcrypt and persists
// it with status "pending". The account cannot sign in until Confirm runs.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleCustomer,
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.GenerateConfirm(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{User: *toUserResponse(user), ConfirmToken: token}, nil
}

// Confirm verifies an email-confirmation token and activates the account.
// Confirming twice is a no-op.
func (uc *AuthUseCase) Confirm(token string) (*dto.UserResponse, error) {
	userID, err := jwt.ParseConfirm(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Confirmed() {
		now := time.Now()
		if err := uc.userRepo.ConfirmEmail(user.ID, now); err != nil {
			return nil, err
		}
		user.EmailConfirmedAt = &now
		user.Status = "active"
	}
	return toUserResponse(user), nil
}

// Login checks email/password, signs a session JWT and returns it with the
// account. A correct password against an unconfirmed email yields
// ErrEmailNotConfirmed so the client can offer to resend the link.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Confirmed() {
		return nil, domain.ErrEmailNotConfirmed
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me returns the account behind a session's user id.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}
