package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"pharmacare_backend/internal/app"
	"pharmacare_backend/internal/auth"
	"pharmacare_backend/internal/config"
	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
)

// TestServer wraps the full router over httptest.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the application against the test database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := SetupTestDB(t)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessTTLMin = 15
	cfg.JWT.RefreshTTLDays = 7

	logger.Init("test")
	auth.Configure(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTLMin, cfg.JWT.RefreshTTLDays)

	router, _ := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{Server: server, DB: db}
}

// SendRequest performs an HTTP call against the test server; a non-empty
// token goes into the Authorization header.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// DecodeBody unmarshals the response body into dest.
func DecodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// RegisterAndLogin creates an account through the API and returns the
// tokens.
func (ts *TestServer) RegisterAndLogin(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()

	resp := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     "Test User",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	DecodeBody(t, resp, &body)
	return body.AccessToken, body.RefreshToken
}

// CreateStaffUser inserts a pharmacist or admin directly and returns an
// access token for it.
func (ts *TestServer) CreateStaffUser(t *testing.T, email string, role models.UserRole) string {
	t.Helper()

	hash, err := auth.HashPassword("StaffPass1")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        &email,
		PasswordHash: hash,
		Name:         fmt.Sprintf("Staff %s", role),
		Role:         role,
	}
	if err := ts.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create staff user: %v", err)
	}

	token, err := auth.GenerateAccessToken(user.ID, email, "", string(role))
	if err != nil {
		t.Fatalf("failed to generate staff token: %v", err)
	}
	return token
}
