package services

import (
	"context"
	"errors"
	"time"

	"pharmacare_backend/internal/email"
	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

// PrescriptionService - customer uploads and the pharmacist review queue.
type PrescriptionService interface {
	Create(userID string, req dto.CreatePrescriptionRequest) (*models.Prescription, error)
	ListForUser(userID string, query dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error)
	GetForUser(userID, id string, isStaff bool) (*models.Prescription, error)
	AdminList(query dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error)
	Review(ctx context.Context, reviewerID, id string, req dto.ReviewPrescriptionRequest) (*models.Prescription, error)
}

type PrescriptionServiceImpl struct {
	prescriptions repositories.PrescriptionRepository
	users         repositories.UserRepository
	mailer        email.Provider
}

func NewPrescriptionService(
	prescriptions repositories.PrescriptionRepository,
	users repositories.UserRepository,
	mailer email.Provider,
) PrescriptionService {
	return &PrescriptionServiceImpl{prescriptions: prescriptions, users: users, mailer: mailer}
}

func (s *PrescriptionServiceImpl) Create(userID string, req dto.CreatePrescriptionRequest) (*models.Prescription, error) {
	prescription := &models.Prescription{
		UserID: userID,
		Image:  req.Image,
		Status: models.PrescriptionStatusPending,
		Notes:  req.Notes,
	}
	if err := s.prescriptions.Create(prescription); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("prescription uploaded", "prescription_id", prescription.ID, "user_id", userID)
	return prescription, nil
}

func (s *PrescriptionServiceImpl) ListForUser(userID string, query dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error) {
	filter := repositories.PrescriptionFilter{
		UserID: userID,
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	return s.list(filter)
}

func (s *PrescriptionServiceImpl) GetForUser(userID, id string, isStaff bool) (*models.Prescription, error) {
	prescription, err := s.prescriptions.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPrescriptionNotFound) {
			return nil, apperrors.ErrPrescriptionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !isStaff && prescription.UserID != userID {
		return nil, apperrors.ErrPrescriptionNotFound
	}
	return prescription, nil
}

func (s *PrescriptionServiceImpl) AdminList(query dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error) {
	filter := repositories.PrescriptionFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	return s.list(filter)
}

// Review decides a pending prescription. Only PENDING rows can move;
// an APPROVED decision stamps the reviewer and the decision time.
func (s *PrescriptionServiceImpl) Review(ctx context.Context, reviewerID, id string, req dto.ReviewPrescriptionRequest) (*models.Prescription, error) {
	prescription, err := s.GetForUser("", id, true)
	if err != nil {
		return nil, err
	}

	if prescription.Status != models.PrescriptionStatusPending {
		return nil, apperrors.ErrPrescriptionDecided
	}

	prescription.Status = req.Status
	prescription.AdminNotes = req.AdminNotes
	if req.Status == models.PrescriptionStatusApproved {
		now := time.Now()
		prescription.ApprovedBy = &reviewerID
		prescription.ApprovedAt = &now
	}

	if err := s.prescriptions.Update(prescription); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyCustomer(ctx, prescription)
	logger.Info("prescription reviewed",
		"prescription_id", prescription.ID,
		"status", prescription.Status,
		"reviewer_id", reviewerID,
	)
	return prescription, nil
}

func (s *PrescriptionServiceImpl) list(filter repositories.PrescriptionFilter) (*dto.PrescriptionListResponse, error) {
	prescriptions, total, err := s.prescriptions.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PrescriptionListResponse{
		Prescriptions: prescriptions,
		Pagination:    dto.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *PrescriptionServiceImpl) notifyCustomer(ctx context.Context, prescription *models.Prescription) {
	user, err := s.users.FindByID(prescription.UserID)
	if err != nil || user.Email == nil {
		return
	}
	msg := email.PrescriptionReviewed(*user.Email, user.Name, string(prescription.Status), prescription.AdminNotes)
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Warn("prescription review email failed", "prescription_id", prescription.ID, "error", err)
	}
}
