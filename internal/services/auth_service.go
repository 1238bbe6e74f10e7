package services

import (
	"context"
	"errors"
	"time"

	"pharmacare_backend/internal/auth"
	"pharmacare_backend/internal/email"
	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

// AuthService - registration, login and the token lifecycle.
type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
	Me(userID string) (*models.User, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(userID string, req dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	users  repositories.UserRepository
	tokens repositories.RefreshTokenRepository
	mailer email.Provider
}

func NewAuthService(users repositories.UserRepository, tokens repositories.RefreshTokenRepository, mailer email.Provider) AuthService {
	return &AuthServiceImpl{users: users, tokens: tokens, mailer: mailer}
}

func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "" && req.Phone == "" {
		return nil, apperrors.NewBadRequestError("Either email or phone is required")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.users.FindByEmailOrPhone(req.Email, req.Phone)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrAccountExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		PasswordHash: hash,
		Role:         models.UserRoleCustomer,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.users.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	// Best effort; registration succeeds even when the mail bounces.
	if user.Email != nil {
		if err := s.mailer.Send(context.Background(), email.Welcome(*user.Email, user.Name)); err != nil {
			logger.Warn("welcome email failed", "user_id", user.ID, "error", err)
		}
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" && req.Phone == "" {
		return nil, apperrors.NewBadRequestError("Either email or phone is required")
	}

	user, err := s.users.FindByEmailOrPhone(req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.Info("user logged in", "user_id", user.ID)
	return s.issueTokens(user)
}

// Refresh verifies the refresh token signature, requires a live database
// row for it, and mints a new access token. The refresh token itself is
// not rotated; it stays valid until its expiry or an explicit logout.
func (s *AuthServiceImpl) Refresh(req dto.RefreshRequest) (*dto.RefreshResponse, error) {
	claims, err := auth.ParseToken(req.RefreshToken, auth.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	row, err := s.tokens.FindByToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if row.ExpiresAt.Before(time.Now()) {
		// Stale row; drop it so it cannot be replayed.
		_ = s.tokens.Delete(req.RefreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, derefOrEmpty(user.Email), derefOrEmpty(user.Phone), string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout deletes the stored refresh token. Unknown tokens are a no-op.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.tokens.Delete(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) Me(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Me(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Image != nil {
		user.Image = *req.Image
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.ZipCode != nil {
		user.ZipCode = *req.ZipCode
	}

	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// ChangePassword also revokes every stored refresh token so stolen
// sessions die with the old password.
func (s *AuthServiceImpl) ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	user, err := s.Me(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.tokens.DeleteByUser(userID); err != nil {
		logger.Warn("failed to revoke sessions after password change", "user_id", userID, "error", err)
	}

	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	email := derefOrEmpty(user.Email)
	phone := derefOrEmpty(user.Phone)

	accessToken, err := auth.GenerateAccessToken(user.ID, email, phone, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.GenerateRefreshToken(user.ID, email, phone, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	row := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(auth.RefreshTokenTTL()),
	}
	if err := s.tokens.Create(row); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
