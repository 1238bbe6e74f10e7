package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacare_backend/internal/auth"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	var savedToken *models.RefreshToken
	users := &mockUserRepo{}
	tokens := &mockTokenRepo{
		createFn: func(row *models.RefreshToken) error {
			savedToken = row
			return nil
		},
	}
	mailer := &mockMailer{}
	svc := NewAuthService(users, tokens, mailer)

	resp, err := svc.Register(dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Password1",
		Name:     "Jane",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", resp.User.Name)
	assert.Equal(t, models.UserRoleCustomer, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	require.NotNil(t, savedToken)
	assert.Equal(t, resp.RefreshToken, savedToken.Token)
	assert.True(t, savedToken.ExpiresAt.After(time.Now()))

	claims, err := auth.ParseToken(resp.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, string(models.UserRoleCustomer), claims.Role)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].To)
}

func TestAuthService_RegisterRejectsDuplicate(t *testing.T) {
	users := &mockUserRepo{
		findByEmailOrPhoneFn: func(email, phone string) (*models.User, error) {
			return &models.User{Email: strPtr(email)}, nil
		},
	}
	svc := NewAuthService(users, &mockTokenRepo{}, &mockMailer{})

	_, err := svc.Register(dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Password1",
		Name:     "Jane",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountExists)
}

func TestAuthService_RegisterRejectsWeakPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &mockTokenRepo{}, &mockMailer{})

	_, err := svc.Register(dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "short",
		Name:     "Jane",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_RegisterRequiresIdentifier(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &mockTokenRepo{}, &mockMailer{})

	_, err := svc.Register(dto.RegisterRequest{Password: "Password1", Name: "Jane"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("Password1")
	require.NoError(t, err)

	users := &mockUserRepo{
		findByEmailOrPhoneFn: func(email, phone string) (*models.User, error) {
			return &models.User{
				BaseModel:    models.BaseModel{ID: "user-1"},
				Email:        strPtr("jane@example.com"),
				PasswordHash: hash,
			}, nil
		},
	}
	svc := NewAuthService(users, &mockTokenRepo{}, &mockMailer{})

	_, err = svc.Login(dto.LoginRequest{Email: "jane@example.com", Password: "WrongPass1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(dto.LoginRequest{Email: "jane@example.com", Password: "Password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_RefreshMintsAccessOnly(t *testing.T) {
	user := &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     strPtr("jane@example.com"),
		Role:      models.UserRoleCustomer,
	}

	refreshToken, err := auth.GenerateRefreshToken(user.ID, *user.Email, "", string(user.Role))
	require.NoError(t, err)

	users := &mockUserRepo{
		findByIDFn: func(id string) (*models.User, error) { return user, nil },
	}
	tokens := &mockTokenRepo{
		findByTokenFn: func(token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{
				UserID:    user.ID,
				Token:     token,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	svc := NewAuthService(users, tokens, &mockMailer{})

	resp, err := svc.Refresh(dto.RefreshRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := auth.ParseToken(resp.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_RefreshRejectsUnknownRow(t *testing.T) {
	refreshToken, err := auth.GenerateRefreshToken("user-1", "jane@example.com", "", "CUSTOMER")
	require.NoError(t, err)

	// Valid signature but no database row: the session was revoked.
	svc := NewAuthService(&mockUserRepo{}, &mockTokenRepo{}, &mockMailer{})

	_, err = svc.Refresh(dto.RefreshRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_RefreshDeletesExpiredRow(t *testing.T) {
	refreshToken, err := auth.GenerateRefreshToken("user-1", "jane@example.com", "", "CUSTOMER")
	require.NoError(t, err)

	var deleted string
	tokens := &mockTokenRepo{
		findByTokenFn: func(token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{
				UserID:    "user-1",
				Token:     token,
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil
		},
		deleteFn: func(token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewAuthService(&mockUserRepo{}, tokens, &mockMailer{})

	_, err = svc.Refresh(dto.RefreshRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.Equal(t, refreshToken, deleted)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	accessToken, err := auth.GenerateAccessToken("user-1", "jane@example.com", "", "CUSTOMER")
	require.NoError(t, err)

	svc := NewAuthService(&mockUserRepo{}, &mockTokenRepo{}, &mockMailer{})

	// An access token is signed with the other secret and must not pass.
	_, err = svc.Refresh(dto.RefreshRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_ChangePasswordRevokesSessions(t *testing.T) {
	hash, err := auth.HashPassword("Password1")
	require.NoError(t, err)

	user := &models.User{
		BaseModel:    models.BaseModel{ID: "user-1"},
		PasswordHash: hash,
	}
	users := &mockUserRepo{
		findByIDFn: func(id string) (*models.User, error) { return user, nil },
	}

	var revokedUser string
	tokens := &mockTokenRepo{
		deleteByUserFn: func(userID string) error {
			revokedUser = userID
			return nil
		},
	}
	svc := NewAuthService(users, tokens, &mockMailer{})

	err = svc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: "Password1",
		NewPassword:     "NewPassword2",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", revokedUser)
	assert.True(t, auth.CheckPasswordHash("NewPassword2", user.PasswordHash))
}
