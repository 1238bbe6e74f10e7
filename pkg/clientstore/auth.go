package clientstore

import (
	"sync"

	"pharmacare_backend/internal/models"
)

// AuthStore holds the client's session: the user object plus both tokens.
type AuthStore struct {
	mu           sync.Mutex
	User         *models.User `json:"user,omitempty"`
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
}

func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

// SetAuth stores a fresh login or registration result.
func (s *AuthStore) SetAuth(user *models.User, accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.User = user
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
}

// SetAccessToken replaces only the access token after a refresh; the
// refresh token is not rotated by the server.
func (s *AuthStore) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AccessToken = token
}

// Logout clears the whole session.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.User = nil
	s.AccessToken = ""
	s.RefreshToken = ""
}

// IsAuthenticated reports whether a session is active.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.User != nil && s.AccessToken != ""
}
