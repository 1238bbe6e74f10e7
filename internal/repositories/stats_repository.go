package repositories

import (
	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

// TopMedicine - one row of the best-sellers ranking.
type TopMedicine struct {
	MedicineID string `json:"medicineId"`
	Name       string `json:"name"`
	OrderCount int64  `json:"orderCount"`
}

// StatsRepository serves the dashboard aggregates in dedicated queries so
// the entity repositories stay focused on their own tables.
type StatsRepository interface {
	CountUsers() (int64, error)
	CountMedicines() (int64, error)
	CountOrders() (int64, error)
	CountLowStock(threshold int) (int64, error)
	TopMedicines(limit int) ([]TopMedicine, error)
}

type StatsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

func (r *StatsRepositoryImpl) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *StatsRepositoryImpl) CountMedicines() (int64, error) {
	var count int64
	err := r.db.Model(&models.Medicine{}).Count(&count).Error
	return count, err
}

func (r *StatsRepositoryImpl) CountOrders() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// CountLowStock counts active medicines at or below the restock threshold.
func (r *StatsRepositoryImpl) CountLowStock(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Medicine{}).
		Where("active = ? AND stock <= ?", true, threshold).
		Count(&count).Error
	return count, err
}

// TopMedicines ranks medicines by how many order lines reference them.
func (r *StatsRepositoryImpl) TopMedicines(limit int) ([]TopMedicine, error) {
	var rows []TopMedicine
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.medicine_id, medicines.name, COUNT(*) AS order_count").
		Joins("JOIN medicines ON medicines.id = order_items.medicine_id").
		Group("order_items.medicine_id, medicines.name").
		Order("order_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
