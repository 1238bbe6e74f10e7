package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id string) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	FindAll(parentID string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id string) error
	CountMedicines(categoryID string) (int64, error)
	CountChildren(categoryID string) (int64, error)
	MedicineCounts() (map[string]int64, error)
	ExistsByNameOrSlug(name, slug, excludeID string) (bool, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("Children").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("Children").First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns categories with children preloaded, ordered by name.
// A non-empty parentID narrows the result to that category's children.
func (r *CategoryRepositoryImpl) FindAll(parentID string) ([]models.Category, error) {
	query := r.db.Preload("Children").Order("name ASC")
	if parentID != "" {
		query = query.Where("parent_id = ?", parentID)
	}

	var categories []models.Category
	err := query.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) CountMedicines(categoryID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Medicine{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepositoryImpl) CountChildren(categoryID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("parent_id = ?", categoryID).Count(&count).Error
	return count, err
}

// MedicineCounts returns the medicine count per category in one grouped
// query.
func (r *CategoryRepositoryImpl) MedicineCounts() (map[string]int64, error) {
	var rows []struct {
		CategoryID string
		Count      int64
	}
	err := r.db.Model(&models.Medicine{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}

// ExistsByNameOrSlug checks uniqueness, optionally excluding one row for
// update paths.
func (r *CategoryRepositoryImpl) ExistsByNameOrSlug(name, slug, excludeID string) (bool, error) {
	query := r.db.Model(&models.Category{}).Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
