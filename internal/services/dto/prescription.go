package dto

import "pharmacare_backend/internal/models"

type CreatePrescriptionRequest struct {
	Image string `json:"image" validate:"required"`
	Notes string `json:"notes,omitempty"`
}

// ReviewPrescriptionRequest - pharmacist/admin decision on a pending upload.
type ReviewPrescriptionRequest struct {
	Status     models.PrescriptionStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	AdminNotes string                    `json:"adminNotes,omitempty"`
}

type PrescriptionListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type PrescriptionListResponse struct {
	Prescriptions []models.Prescription `json:"prescriptions"`
	Pagination    Pagination            `json:"pagination"`
}
