package repositories

import (
	"errors"

	"gorm.io/gorm"

	"pharmacare_backend/internal/models"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrSlugTaken        = errors.New("medicine slug already taken")
)

// MedicineFilter - catalog listing filter. Zero values mean "no
// constraint". Category and Brand accept either a slug or an id.
type MedicineFilter struct {
	Query                string
	Category             string
	Brand                string
	PrescriptionRequired *bool
	MinPrice             *float64
	MaxPrice             *float64
	Featured             *bool
	Active               *bool
	SortBy               string // price | name | createdAt
	SortOrder            string // asc | desc
	Page                 int
	Limit                int
}

// RatingAgg - review aggregate for one medicine.
type RatingAgg struct {
	MedicineID  string  `json:"-"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

type MedicineRepository interface {
	Create(medicine *models.Medicine) error
	FindByID(id string) (*models.Medicine, error)
	FindBySlug(slug string) (*models.Medicine, error)
	FindWithFilter(filter MedicineFilter) ([]models.Medicine, int64, error)
	Update(medicine *models.Medicine) error
	Delete(id string) error
	CountOrderItems(medicineID string) (int64, error)
	SlugExists(slug, excludeID string) (bool, error)
	RatingsFor(medicineIDs []string) (map[string]RatingAgg, error)
	AdjustStock(medicineID string, delta int) error
}

type MedicineRepositoryImpl struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &MedicineRepositoryImpl{db: db}
}

func (r *MedicineRepositoryImpl) Create(medicine *models.Medicine) error {
	return r.db.Create(medicine).Error
}

func (r *MedicineRepositoryImpl) FindByID(id string) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.db.Preload("Category").Preload("Brand").First(&medicine, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

// FindBySlug loads the detail view with the latest reviews and their
// reviewer names.
func (r *MedicineRepositoryImpl) FindBySlug(slug string) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.db.
		Preload("Category").
		Preload("Brand").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(10)
		}).
		Preload("Reviews.User").
		First(&medicine, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *MedicineRepositoryImpl) FindWithFilter(filter MedicineFilter) ([]models.Medicine, int64, error) {
	query := r.db.Model(&models.Medicine{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"name ILIKE ? OR generic_name ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		sub := r.db.Model(&models.Category{}).
			Select("id").
			Where("slug = ? OR id::text = ?", filter.Category, filter.Category)
		query = query.Where("category_id IN (?)", sub)
	}
	if filter.Brand != "" {
		sub := r.db.Model(&models.Brand{}).
			Select("id").
			Where("slug = ? OR id::text = ?", filter.Brand, filter.Brand)
		query = query.Where("brand_id IN (?)", sub)
	}
	if filter.PrescriptionRequired != nil {
		query = query.Where("prescription_required = ?", *filter.PrescriptionRequired)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	direction := "ASC"
	if filter.SortOrder == "desc" {
		direction = "DESC"
	}
	switch filter.SortBy {
	case "price":
		order = "price " + direction
	case "name":
		order = "name " + direction
	case "createdAt":
		order = "created_at " + direction
	}

	var medicines []models.Medicine
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Category").
		Preload("Brand").
		Order(order).
		Limit(filter.Limit).
		Offset(offset).
		Find(&medicines).Error
	if err != nil {
		return nil, 0, err
	}

	return medicines, total, nil
}

func (r *MedicineRepositoryImpl) Update(medicine *models.Medicine) error {
	return r.db.Save(medicine).Error
}

func (r *MedicineRepositoryImpl) Delete(id string) error {
	result := r.db.Select("Reviews").Delete(&models.Medicine{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMedicineNotFound
	}
	return nil
}

func (r *MedicineRepositoryImpl) CountOrderItems(medicineID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("medicine_id = ?", medicineID).Count(&count).Error
	return count, err
}

func (r *MedicineRepositoryImpl) SlugExists(slug, excludeID string) (bool, error) {
	query := r.db.Model(&models.Medicine{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RatingsFor aggregates review ratings for a page of medicines in one query.
func (r *MedicineRepositoryImpl) RatingsFor(medicineIDs []string) (map[string]RatingAgg, error) {
	result := make(map[string]RatingAgg, len(medicineIDs))
	if len(medicineIDs) == 0 {
		return result, nil
	}

	var rows []RatingAgg
	err := r.db.Model(&models.Review{}).
		Select("medicine_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Where("medicine_id IN ?", medicineIDs).
		Group("medicine_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.MedicineID] = row
	}
	return result, nil
}

// AdjustStock changes stock by delta without loading the row. The storefront
// checks availability before checkout; stock may go negative under races,
// which the back office surfaces for restocking.
func (r *MedicineRepositoryImpl) AdjustStock(medicineID string, delta int) error {
	return r.db.Model(&models.Medicine{}).
		Where("id = ?", medicineID).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}
