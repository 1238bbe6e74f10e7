package services

import (
	"gorm.io/gorm"

	"pharmacare_backend/internal/cache"
	"pharmacare_backend/internal/email"
	"pharmacare_backend/internal/repositories"
)

// ServiceContainer wires every service with its repositories. Built once
// at startup and handed to the handlers.
type ServiceContainer struct {
	Auth         AuthService
	Users        UserService
	Medicines    MedicineService
	Categories   CategoryService
	Brands       BrandService
	Orders       OrderService
	Prescription PrescriptionService
	Reviews      ReviewService
	Stats        StatsService

	RefreshTokens repositories.RefreshTokenRepository
}

// NewServiceContainer builds the full dependency graph over one database
// handle.
func NewServiceContainer(db *gorm.DB, c *cache.Cache, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	medicineRepo := repositories.NewMedicineRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	prescriptionRepo := repositories.NewPrescriptionRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, tokenRepo, mailer),
		Users:        NewUserService(userRepo),
		Medicines:    NewMedicineService(medicineRepo, c),
		Categories:   NewCategoryService(categoryRepo, c),
		Brands:       NewBrandService(brandRepo, c),
		Orders:       NewOrderService(orderRepo, medicineRepo, prescriptionRepo, mailer),
		Prescription: NewPrescriptionService(prescriptionRepo, userRepo, mailer),
		Reviews:      NewReviewService(reviewRepo, medicineRepo),
		Stats:        NewStatsService(statsRepo, orderRepo, prescriptionRepo),

		RefreshTokens: tokenRepo,
	}
}
