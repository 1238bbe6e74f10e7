package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepository interface {
	Create(token *models.RefreshToken) error
	FindByToken(token string) (*models.RefreshToken, error)
	Delete(token string) error
	DeleteByUser(userID string) error
	DeleteExpired(now time.Time) (int64, error)
}

type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

func (r *RefreshTokenRepositoryImpl) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *RefreshTokenRepositoryImpl) FindByToken(token string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	err := r.db.First(&row, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *RefreshTokenRepositoryImpl) Delete(token string) error {
	return r.db.Delete(&models.RefreshToken{}, "token = ?", token).Error
}

// DeleteByUser drops every session of a user. Used on logout and password
// change.
func (r *RefreshTokenRepositoryImpl) DeleteByUser(userID string) error {
	return r.db.Delete(&models.RefreshToken{}, "user_id = ?", userID).Error
}

// DeleteExpired purges stale rows; the cleanup worker calls this on a ticker.
func (r *RefreshTokenRepositoryImpl) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Delete(&models.RefreshToken{}, "expires_at < ?", now)
	return result.RowsAffected, result.Error
}
