package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

// PrescriptionFilter - UserID empty means the back-office view.
type PrescriptionFilter struct {
	UserID string
	Status string
	Page   int
	Limit  int
}

type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
	FindByID(id string) (*models.Prescription, error)
	FindWithFilter(filter PrescriptionFilter) ([]models.Prescription, int64, error)
	Update(prescription *models.Prescription) error
	CountByStatus(status models.PrescriptionStatus) (int64, error)
}

type PrescriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &PrescriptionRepositoryImpl{db: db}
}

func (r *PrescriptionRepositoryImpl) Create(prescription *models.Prescription) error {
	return r.db.Create(prescription).Error
}

func (r *PrescriptionRepositoryImpl) FindByID(id string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Preload("User").First(&prescription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *PrescriptionRepositoryImpl) FindWithFilter(filter PrescriptionFilter) ([]models.Prescription, int64, error) {
	query := r.db.Model(&models.Prescription{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var prescriptions []models.Prescription
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&prescriptions).Error
	if err != nil {
		return nil, 0, err
	}

	return prescriptions, total, nil
}

func (r *PrescriptionRepositoryImpl) Update(prescription *models.Prescription) error {
	return r.db.Save(prescription).Error
}

func (r *PrescriptionRepositoryImpl) CountByStatus(status models.PrescriptionStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Prescription{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
