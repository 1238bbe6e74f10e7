package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

var ErrBrandNotFound = errors.New("brand not found")

type BrandRepository interface {
	Create(brand *models.Brand) error
	FindByID(id string) (*models.Brand, error)
	FindBySlug(slug string) (*models.Brand, error)
	FindAll() ([]models.Brand, error)
	Update(brand *models.Brand) error
	Delete(id string) error
	CountMedicines(brandID string) (int64, error)
	MedicineCounts() (map[string]int64, error)
	ExistsByNameOrSlug(name, slug, excludeID string) (bool, error)
}

type BrandRepositoryImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &BrandRepositoryImpl{db: db}
}

func (r *BrandRepositoryImpl) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

func (r *BrandRepositoryImpl) FindByID(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) FindBySlug(slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) FindAll() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *BrandRepositoryImpl) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

func (r *BrandRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Brand{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepositoryImpl) CountMedicines(brandID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Medicine{}).Where("brand_id = ?", brandID).Count(&count).Error
	return count, err
}

// MedicineCounts returns the medicine count per brand in one grouped query.
func (r *BrandRepositoryImpl) MedicineCounts() (map[string]int64, error) {
	var rows []struct {
		BrandID string
		Count   int64
	}
	err := r.db.Model(&models.Medicine{}).
		Select("brand_id, COUNT(*) AS count").
		Where("brand_id IS NOT NULL").
		Group("brand_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.BrandID] = row.Count
	}
	return counts, nil
}

func (r *BrandRepositoryImpl) ExistsByNameOrSlug(name, slug, excludeID string) (bool, error) {
	query := r.db.Model(&models.Brand{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
