package handlers

import (
	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/validator"
)

// AppHandlers groups every HTTP handler; the routes package mounts them.
type AppHandlers struct {
	Auth         *AuthHandler
	Medicines    *MedicineHandler
	Categories   *CategoryHandler
	Brands       *BrandHandler
	Orders       *OrderHandler
	Prescription *PrescriptionHandler
	Reviews      *ReviewHandler
	Users        *UserHandler
	Stats        *StatsHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		Medicines:    NewMedicineHandler(base, sc.Medicines, sc.Reviews),
		Categories:   NewCategoryHandler(base, sc.Categories),
		Brands:       NewBrandHandler(base, sc.Brands),
		Orders:       NewOrderHandler(base, sc.Orders),
		Prescription: NewPrescriptionHandler(base, sc.Prescription),
		Reviews:      NewReviewHandler(base, sc.Reviews),
		Users:        NewUserHandler(base, sc.Users),
		Stats:        NewStatsHandler(base, sc.Stats),
	}
}
