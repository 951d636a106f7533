package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Session tokens authenticate API calls; confirm tokens are
// single-purpose links sent to verify an email address before first login.
const (
	PurposeSession = "session"
	PurposeConfirm = "email_confirm"
)

// Claims includes the standard JWT claims plus the application's own fields.
// Role is embedded so the RBAC middleware can decide without hitting the DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Role    string `json:"role"` // "admin" | "customer"
	Purpose string `json:"purpose"`
}

// Generate signs a session JWT carrying userID and role.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, role, PurposeSession, issuer, expMinutes)
}

// GenerateConfirm signs an email-confirmation token for userID.
func GenerateConfirm(secret, userID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, "", PurposeConfirm, issuer, expMinutes)
}

func generate(secret, userID, role, purpose, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  userID,
		Role:    role,
		Purpose: purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates a session token and returns userID and role.
// Returns an error if the token is invalid, expired, mis-signed or not a session token.
func Parse(secret, tokenString string) (userID, role string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != "" && claims.Purpose != PurposeSession {
		return "", "", fmt.Errorf("jwt: not a session token")
	}
	return claims.UserID, claims.Role, nil
}

// ParseConfirm validates an email-confirmation token and returns the userID.
func ParseConfirm(secret, tokenString string) (string, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposeConfirm {
		return "", fmt.Errorf("jwt: not a confirmation token")
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}
