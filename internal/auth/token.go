package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind selects which signing secret a token is verified against.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")

	accessSecret  = []byte("your-secret-key")
	refreshSecret = []byte("your-refresh-secret-key")
	accessTTL     = 15 * time.Minute
	refreshTTL    = 7 * 24 * time.Hour
)

// Claims carried by both token kinds. Access and refresh tokens share the
// payload but are signed with independent secrets, so leaking one secret
// does not let an attacker forge the other kind.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Configure sets the signing secrets and lifetimes. Called once at startup.
func Configure(access, refresh string, accessMinutes, refreshDays int) {
	if access != "" {
		accessSecret = []byte(access)
	}
	if refresh != "" {
		refreshSecret = []byte(refresh)
	}
	if accessMinutes > 0 {
		accessTTL = time.Duration(accessMinutes) * time.Minute
	}
	if refreshDays > 0 {
		refreshTTL = time.Duration(refreshDays) * 24 * time.Hour
	}
}

// RefreshTokenTTL reports the configured refresh lifetime; the caller uses
// it for the persisted token row's expiry.
func RefreshTokenTTL() time.Duration {
	return refreshTTL
}

// GenerateAccessToken issues a short-lived access token.
func GenerateAccessToken(userID, email, phone, role string) (string, error) {
	return generate(userID, email, phone, role, accessSecret, accessTTL)
}

// GenerateRefreshToken issues a long-lived refresh token. The caller is
// responsible for persisting it.
func GenerateRefreshToken(userID, email, phone, role string) (string, error) {
	return generate(userID, email, phone, role, refreshSecret, refreshTTL)
}

func generate(userID, email, phone, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Phone:  phone,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a token of the given kind and returns its claims.
func ParseToken(tokenStr string, kind TokenKind) (*Claims, error) {
	secret := accessSecret
	if kind == RefreshToken {
		secret = refreshSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
