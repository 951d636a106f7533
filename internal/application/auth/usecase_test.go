package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinopos/storefront-api/internal/application/auth"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	pkgjwt "github.com/sinopos/storefront-api/pkg/jwt"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ConfirmEmail(id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.EmailConfirmedAt = &at
	u.Status = "active"
	return nil
}

var testCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "storefront-test"}

func register(t *testing.T, uc *auth.AuthUseCase, email string) *dto.RegisterResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{Email: email, Password: "s3cret-pass", Name: "Li Wei"})
	require.NoError(t, err)
	return out
}

func TestRegister_PendingUntilConfirmed(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	out := register(t, uc, "li@example.com")
	assert.Equal(t, "pending", out.User.Status)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.False(t, out.User.IsAdmin)
	assert.NotEmpty(t, out.ConfirmToken)

	// The confirm token is purpose-bound, not a session token.
	_, _, err := pkgjwt.Parse(testCfg.Secret, out.ConfirmToken)
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)

	register(t, uc, "li@example.com")
	_, err := uc.Register(dto.RegisterRequest{Email: "li@example.com", Password: "another-pass"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testCfg)
	_, err := uc.Register(dto.RegisterRequest{Email: "li@example.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_RefusedBeforeConfirmation(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	register(t, uc, "li@example.com")

	_, err := uc.Login(dto.LoginRequest{Email: "li@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfirmed,
		"a correct password against an unconfirmed email is distinguishable")
}

func TestConfirmThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	reg := register(t, uc, "li@example.com")

	confirmed, err := uc.Confirm(reg.ConfirmToken)
	require.NoError(t, err)
	assert.Equal(t, "active", confirmed.Status)

	// Confirming twice is a no-op.
	again, err := uc.Confirm(reg.ConfirmToken)
	require.NoError(t, err)
	assert.Equal(t, "active", again.Status)

	out, err := uc.Login(dto.LoginRequest{Email: "li@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleCustomer, role)
}

func TestConfirm_GarbageToken(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testCfg)
	_, err := uc.Confirm("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	reg := register(t, uc, "li@example.com")
	_, err := uc.Confirm(reg.ConfirmToken)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "li@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testCfg)
	_, err := uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	reg := register(t, uc, "li@example.com")
	_, err := uc.Confirm(reg.ConfirmToken)
	require.NoError(t, err)

	repo.users[reg.User.ID].Status = "disabled"
	_, err = uc.Login(dto.LoginRequest{Email: "li@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testCfg)
	reg := register(t, uc, "li@example.com")

	out, err := uc.Me(reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "li@example.com", out.Email)

	_, err = uc.Me("missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
