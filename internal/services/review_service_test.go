package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

func TestReviewService_CreateMarksVerifiedPurchase(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			return testMedicine(id, 10), nil
		},
	}
	reviews := &mockReviewRepo{
		hasDeliveredFn: func(userID, medicineID string) (bool, error) { return true, nil },
	}
	svc := NewReviewService(reviews, medicines)

	review, err := svc.Create("user-1", dto.CreateReviewRequest{
		MedicineID: "med-1",
		Rating:     5,
		Comment:    "Works great",
	})
	require.NoError(t, err)
	assert.True(t, review.Verified)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateUnverifiedWithoutDelivery(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			return testMedicine(id, 10), nil
		},
	}
	svc := NewReviewService(&mockReviewRepo{}, medicines)

	review, err := svc.Create("user-1", dto.CreateReviewRequest{MedicineID: "med-1", Rating: 3})
	require.NoError(t, err)
	assert.False(t, review.Verified)
}

func TestReviewService_CreateRejectsDuplicate(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			return testMedicine(id, 10), nil
		},
	}
	reviews := &mockReviewRepo{
		findByUserAndMedicineFn: func(userID, medicineID string) (*models.Review, error) {
			return &models.Review{BaseModel: models.BaseModel{ID: "review-1"}}, nil
		},
	}
	svc := NewReviewService(reviews, medicines)

	_, err := svc.Create("user-1", dto.CreateReviewRequest{MedicineID: "med-1", Rating: 4})
	assert.ErrorIs(t, err, apperrors.ErrReviewExists)
}

func TestReviewService_DeleteRequiresOwnershipOrStaff(t *testing.T) {
	review := &models.Review{
		BaseModel: models.BaseModel{ID: "review-1"},
		UserID:    "owner",
	}
	reviews := &mockReviewRepo{
		findByIDFn: func(id string) (*models.Review, error) { return review, nil },
	}
	svc := NewReviewService(reviews, &mockMedicineRepo{})

	assert.Error(t, svc.Delete("intruder", "review-1", false))
	assert.NoError(t, svc.Delete("intruder", "review-1", true))
	assert.NoError(t, svc.Delete("owner", "review-1", false))
}
