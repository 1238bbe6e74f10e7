package dto

import "pharmacare_backend/internal/models"

// UpdateUserRequest - admin edit of any account, including role changes.
type UpdateUserRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Role          *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=CUSTOMER PHARMACIST ADMIN"`
	EmailVerified *bool            `json:"emailVerified,omitempty"`
	PhoneVerified *bool            `json:"phoneVerified,omitempty"`
	Address       *string          `json:"address,omitempty"`
	City          *string          `json:"city,omitempty"`
	State         *string          `json:"state,omitempty"`
	ZipCode       *string          `json:"zipCode,omitempty"`
}

type UserListQuery struct {
	Role   string `form:"role" validate:"omitempty,oneof=CUSTOMER PHARMACIST ADMIN"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type UserListResponse struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

// UserDetailResponse - admin view of one account with its latest activity.
type UserDetailResponse struct {
	User                *models.User          `json:"user"`
	RecentOrders        []models.Order        `json:"recentOrders"`
	RecentPrescriptions []models.Prescription `json:"recentPrescriptions"`
	RecentReviews       []models.Review       `json:"recentReviews"`
}
