package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderFilter - listing filter for both customer history and the back
// office. UserID empty means all users (admin view).
type OrderFilter struct {
	UserID        string
	Status        string
	PaymentStatus string
	Search        string
	Page          int
	Limit         int
}

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	FindWithFilter(filter OrderFilter) ([]models.Order, int64, error)
	Update(order *models.Order) error
	CountByStatus(status models.OrderStatus) (int64, error)
	SumRevenue() (float64, error)
	RecentOrders(limit int) ([]models.Order, error)
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create persists the order together with its items in one transaction via
// gorm's association handling.
func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Medicine").
		Preload("User").
		Preload("Prescription").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindWithFilter(filter OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		userMatch := r.db.Model(&models.User{}).
			Select("id").
			Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		query = query.Where(
			"order_number ILIKE ? OR delivery_phone ILIKE ? OR user_id IN (?)",
			pattern, pattern, userMatch,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Items").
		Preload("Items.Medicine").
		Preload("User").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrderRepositoryImpl) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *OrderRepositoryImpl) CountByStatus(status models.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumRevenue totals completed payments across all orders.
func (r *OrderRepositoryImpl) SumRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *OrderRepositoryImpl) RecentOrders(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
