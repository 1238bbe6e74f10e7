package services

import (
	"errors"

	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

// ReviewService - product reviews, one per user per medicine.
type ReviewService interface {
	Create(userID string, req dto.CreateReviewRequest) (*models.Review, error)
	Update(userID, reviewID string, req dto.UpdateReviewRequest) (*models.Review, error)
	Delete(userID, reviewID string, isStaff bool) error
	ListByMedicine(medicineID string, page, limit int) (*dto.ReviewListResponse, error)
}

type ReviewServiceImpl struct {
	reviews   repositories.ReviewRepository
	medicines repositories.MedicineRepository
}

func NewReviewService(reviews repositories.ReviewRepository, medicines repositories.MedicineRepository) ReviewService {
	return &ReviewServiceImpl{reviews: reviews, medicines: medicines}
}

// Create marks the review verified when the reviewer has a delivered order
// containing the medicine.
func (s *ReviewServiceImpl) Create(userID string, req dto.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.medicines.FindByID(req.MedicineID); err != nil {
		if errors.Is(err, repositories.ErrMedicineNotFound) {
			return nil, apperrors.ErrMedicineNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	_, err := s.reviews.FindByUserAndMedicine(userID, req.MedicineID)
	if err == nil {
		return nil, apperrors.ErrReviewExists
	}
	if !errors.Is(err, repositories.ErrReviewNotFound) {
		return nil, apperrors.InternalError(err)
	}

	verified, err := s.reviews.HasDeliveredOrderWith(userID, req.MedicineID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		UserID:     userID,
		MedicineID: req.MedicineID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Verified:   verified,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("review created", "review_id", review.ID, "medicine_id", req.MedicineID, "verified", verified)
	return review, nil
}

func (s *ReviewServiceImpl) Update(userID, reviewID string, req dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.findOwned(userID, reviewID, false)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviews.Update(review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

// Delete is allowed for the author and for staff moderating abuse.
func (s *ReviewServiceImpl) Delete(userID, reviewID string, isStaff bool) error {
	if _, err := s.findOwned(userID, reviewID, isStaff); err != nil {
		return err
	}

	if err := s.reviews.Delete(reviewID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReviewServiceImpl) ListByMedicine(medicineID string, page, limit int) (*dto.ReviewListResponse, error) {
	reviews, total, err := s.reviews.FindByMedicine(medicineID, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ReviewListResponse{
		Reviews:    reviews,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

func (s *ReviewServiceImpl) findOwned(userID, reviewID string, isStaff bool) (*models.Review, error) {
	review, err := s.reviews.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "Review not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isStaff && review.UserID != userID {
		return nil, apperrors.ErrNotFound(repositories.ErrReviewNotFound, "review", "Review not found")
	}
	return review, nil
}
