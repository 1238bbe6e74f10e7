package services

import (
	"context"
	"time"

	"pharmacare_backend/internal/email"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
)

// Func-field mocks: each test assigns only the calls it cares about;
// unassigned calls return not-found or no-op defaults.

type mockUserRepo struct {
	createFn             func(*models.User) error
	findByIDFn           func(string) (*models.User, error)
	findByEmailOrPhoneFn func(string, string) (*models.User, error)
	findWithFilterFn     func(repositories.UserFilter) ([]models.User, int64, error)
	updateFn             func(*models.User) error
	deleteFn             func(string) error
	countOrdersFn        func(string) (int64, error)
}

func (m *mockUserRepo) Create(u *models.User) error {
	if m.createFn != nil {
		return m.createFn(u)
	}
	u.ID = "user-1"
	return nil
}

func (m *mockUserRepo) FindByID(id string) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*models.User, error) {
	return m.FindByEmailOrPhone(email, "")
}

func (m *mockUserRepo) FindByPhone(phone string) (*models.User, error) {
	return m.FindByEmailOrPhone("", phone)
}

func (m *mockUserRepo) FindByEmailOrPhone(email, phone string) (*models.User, error) {
	if m.findByEmailOrPhoneFn != nil {
		return m.findByEmailOrPhoneFn(email, phone)
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) FindWithFilter(f repositories.UserFilter) ([]models.User, int64, error) {
	if m.findWithFilterFn != nil {
		return m.findWithFilterFn(f)
	}
	return nil, 0, nil
}

func (m *mockUserRepo) Update(u *models.User) error {
	if m.updateFn != nil {
		return m.updateFn(u)
	}
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockUserRepo) CountOrders(userID string) (int64, error) {
	if m.countOrdersFn != nil {
		return m.countOrdersFn(userID)
	}
	return 0, nil
}

func (m *mockUserRepo) RecentOrders(userID string, limit int) ([]models.Order, error) {
	return nil, nil
}

func (m *mockUserRepo) RecentPrescriptions(userID string, limit int) ([]models.Prescription, error) {
	return nil, nil
}

func (m *mockUserRepo) RecentReviews(userID string, limit int) ([]models.Review, error) {
	return nil, nil
}

type mockTokenRepo struct {
	createFn        func(*models.RefreshToken) error
	findByTokenFn   func(string) (*models.RefreshToken, error)
	deleteFn        func(string) error
	deleteByUserFn  func(string) error
	deleteExpiredFn func(time.Time) (int64, error)
}

func (m *mockTokenRepo) Create(t *models.RefreshToken) error {
	if m.createFn != nil {
		return m.createFn(t)
	}
	return nil
}

func (m *mockTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(token)
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (m *mockTokenRepo) Delete(token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(token)
	}
	return nil
}

func (m *mockTokenRepo) DeleteByUser(userID string) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(userID)
	}
	return nil
}

func (m *mockTokenRepo) DeleteExpired(now time.Time) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(now)
	}
	return 0, nil
}

type mockMedicineRepo struct {
	createFn          func(*models.Medicine) error
	findByIDFn        func(string) (*models.Medicine, error)
	findBySlugFn      func(string) (*models.Medicine, error)
	findWithFilterFn  func(repositories.MedicineFilter) ([]models.Medicine, int64, error)
	updateFn          func(*models.Medicine) error
	deleteFn          func(string) error
	countOrderItemsFn func(string) (int64, error)
	slugExistsFn      func(string, string) (bool, error)
	ratingsForFn      func([]string) (map[string]repositories.RatingAgg, error)
	adjustStockFn     func(string, int) error

	stockAdjustments map[string]int
}

func (m *mockMedicineRepo) Create(med *models.Medicine) error {
	if m.createFn != nil {
		return m.createFn(med)
	}
	med.ID = "med-1"
	return nil
}

func (m *mockMedicineRepo) FindByID(id string) (*models.Medicine, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, repositories.ErrMedicineNotFound
}

func (m *mockMedicineRepo) FindBySlug(slug string) (*models.Medicine, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(slug)
	}
	return nil, repositories.ErrMedicineNotFound
}

func (m *mockMedicineRepo) FindWithFilter(f repositories.MedicineFilter) ([]models.Medicine, int64, error) {
	if m.findWithFilterFn != nil {
		return m.findWithFilterFn(f)
	}
	return nil, 0, nil
}

func (m *mockMedicineRepo) Update(med *models.Medicine) error {
	if m.updateFn != nil {
		return m.updateFn(med)
	}
	return nil
}

func (m *mockMedicineRepo) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockMedicineRepo) CountOrderItems(id string) (int64, error) {
	if m.countOrderItemsFn != nil {
		return m.countOrderItemsFn(id)
	}
	return 0, nil
}

func (m *mockMedicineRepo) SlugExists(slug, excludeID string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(slug, excludeID)
	}
	return false, nil
}

func (m *mockMedicineRepo) RatingsFor(ids []string) (map[string]repositories.RatingAgg, error) {
	if m.ratingsForFn != nil {
		return m.ratingsForFn(ids)
	}
	return map[string]repositories.RatingAgg{}, nil
}

func (m *mockMedicineRepo) AdjustStock(id string, delta int) error {
	if m.adjustStockFn != nil {
		return m.adjustStockFn(id, delta)
	}
	if m.stockAdjustments == nil {
		m.stockAdjustments = make(map[string]int)
	}
	m.stockAdjustments[id] += delta
	return nil
}

type mockOrderRepo struct {
	createFn         func(*models.Order) error
	findByIDFn       func(string) (*models.Order, error)
	findWithFilterFn func(repositories.OrderFilter) ([]models.Order, int64, error)
	updateFn         func(*models.Order) error
	countByStatusFn  func(models.OrderStatus) (int64, error)
	sumRevenueFn     func() (float64, error)
	recentOrdersFn   func(int) ([]models.Order, error)
}

func (m *mockOrderRepo) Create(o *models.Order) error {
	if m.createFn != nil {
		return m.createFn(o)
	}
	o.ID = "order-1"
	return nil
}

func (m *mockOrderRepo) FindByID(id string) (*models.Order, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, repositories.ErrOrderNotFound
}

func (m *mockOrderRepo) FindWithFilter(f repositories.OrderFilter) ([]models.Order, int64, error) {
	if m.findWithFilterFn != nil {
		return m.findWithFilterFn(f)
	}
	return nil, 0, nil
}

func (m *mockOrderRepo) Update(o *models.Order) error {
	if m.updateFn != nil {
		return m.updateFn(o)
	}
	return nil
}

func (m *mockOrderRepo) CountByStatus(s models.OrderStatus) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(s)
	}
	return 0, nil
}

func (m *mockOrderRepo) SumRevenue() (float64, error) {
	if m.sumRevenueFn != nil {
		return m.sumRevenueFn()
	}
	return 0, nil
}

func (m *mockOrderRepo) RecentOrders(limit int) ([]models.Order, error) {
	if m.recentOrdersFn != nil {
		return m.recentOrdersFn(limit)
	}
	return nil, nil
}

type mockPrescriptionRepo struct {
	createFn         func(*models.Prescription) error
	findByIDFn       func(string) (*models.Prescription, error)
	findWithFilterFn func(repositories.PrescriptionFilter) ([]models.Prescription, int64, error)
	updateFn         func(*models.Prescription) error
	countByStatusFn  func(models.PrescriptionStatus) (int64, error)
}

func (m *mockPrescriptionRepo) Create(p *models.Prescription) error {
	if m.createFn != nil {
		return m.createFn(p)
	}
	p.ID = "rx-1"
	return nil
}

func (m *mockPrescriptionRepo) FindByID(id string) (*models.Prescription, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, repositories.ErrPrescriptionNotFound
}

func (m *mockPrescriptionRepo) FindWithFilter(f repositories.PrescriptionFilter) ([]models.Prescription, int64, error) {
	if m.findWithFilterFn != nil {
		return m.findWithFilterFn(f)
	}
	return nil, 0, nil
}

func (m *mockPrescriptionRepo) Update(p *models.Prescription) error {
	if m.updateFn != nil {
		return m.updateFn(p)
	}
	return nil
}

func (m *mockPrescriptionRepo) CountByStatus(s models.PrescriptionStatus) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(s)
	}
	return 0, nil
}

type mockReviewRepo struct {
	createFn                func(*models.Review) error
	findByIDFn              func(string) (*models.Review, error)
	findByUserAndMedicineFn func(string, string) (*models.Review, error)
	findByMedicineFn        func(string, int, int) ([]models.Review, int64, error)
	updateFn                func(*models.Review) error
	deleteFn                func(string) error
	hasDeliveredFn          func(string, string) (bool, error)
}

func (m *mockReviewRepo) Create(r *models.Review) error {
	if m.createFn != nil {
		return m.createFn(r)
	}
	r.ID = "review-1"
	return nil
}

func (m *mockReviewRepo) FindByID(id string) (*models.Review, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, repositories.ErrReviewNotFound
}

func (m *mockReviewRepo) FindByUserAndMedicine(userID, medicineID string) (*models.Review, error) {
	if m.findByUserAndMedicineFn != nil {
		return m.findByUserAndMedicineFn(userID, medicineID)
	}
	return nil, repositories.ErrReviewNotFound
}

func (m *mockReviewRepo) FindByMedicine(medicineID string, page, limit int) ([]models.Review, int64, error) {
	if m.findByMedicineFn != nil {
		return m.findByMedicineFn(medicineID, page, limit)
	}
	return nil, 0, nil
}

func (m *mockReviewRepo) Update(r *models.Review) error {
	if m.updateFn != nil {
		return m.updateFn(r)
	}
	return nil
}

func (m *mockReviewRepo) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockReviewRepo) HasDeliveredOrderWith(userID, medicineID string) (bool, error) {
	if m.hasDeliveredFn != nil {
		return m.hasDeliveredFn(userID, medicineID)
	}
	return false, nil
}

type mockMailer struct {
	sent []email.Message
}

func (m *mockMailer) Send(_ context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}
