package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"pharmacare_backend/internal/cache"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/internal/utils"
	"pharmacare_backend/pkg/apperrors"
)

const medicineCacheTTL = 2 * time.Minute

// MedicineService - public catalog plus the admin CRUD surface.
type MedicineService interface {
	List(ctx context.Context, query dto.MedicineListQuery) (*dto.MedicineListResponse, error)
	AdminList(query dto.AdminMedicineListQuery) (*dto.MedicineListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.MedicineDetailResponse, error)
	GetByID(id string) (*models.Medicine, error)
	Create(ctx context.Context, req dto.CreateMedicineRequest) (*models.Medicine, error)
	Update(ctx context.Context, id string, req dto.UpdateMedicineRequest) (*models.Medicine, error)
	Delete(ctx context.Context, id string) error
}

type MedicineServiceImpl struct {
	medicines repositories.MedicineRepository
	cache     *cache.Cache
}

func NewMedicineService(medicines repositories.MedicineRepository, c *cache.Cache) MedicineService {
	return &MedicineServiceImpl{medicines: medicines, cache: c}
}

// List serves the storefront: only active medicines, search ORed over
// name, generic name and description, with review aggregates per row.
func (s *MedicineServiceImpl) List(ctx context.Context, query dto.MedicineListQuery) (*dto.MedicineListResponse, error) {
	active := true
	filter := repositories.MedicineFilter{
		Query:                query.Search,
		Category:             query.Category,
		Brand:                query.Brand,
		PrescriptionRequired: query.Prescription,
		MinPrice:             query.MinPrice,
		MaxPrice:             query.MaxPrice,
		Featured:             query.Featured,
		Active:               &active,
		SortBy:               query.SortBy,
		SortOrder:            query.SortOrder,
		Page:                 query.Page,
		Limit:                query.Limit,
	}

	cacheKey := medicineListCacheKey(query)
	var cached dto.MedicineListResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	response, err := s.listWithRatings(filter)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, response, medicineCacheTTL)
	return response, nil
}

// AdminList has no active-only constraint so the back office sees retired
// rows too.
func (s *MedicineServiceImpl) AdminList(query dto.AdminMedicineListQuery) (*dto.MedicineListResponse, error) {
	filter := repositories.MedicineFilter{
		Query:    query.Search,
		Category: query.Category,
		Active:   query.Active,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	return s.listWithRatings(filter)
}

func (s *MedicineServiceImpl) listWithRatings(filter repositories.MedicineFilter) (*dto.MedicineListResponse, error) {
	medicines, total, err := s.medicines.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, len(medicines))
	for i, m := range medicines {
		ids[i] = m.ID
	}
	ratings, err := s.medicines.RatingsFor(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.MedicineWithRating, len(medicines))
	for i, m := range medicines {
		agg := ratings[m.ID]
		rows[i] = dto.MedicineWithRating{
			Medicine:    m,
			AvgRating:   agg.AvgRating,
			ReviewCount: agg.ReviewCount,
		}
	}

	return &dto.MedicineListResponse{
		Medicines:  rows,
		Pagination: dto.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *MedicineServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.MedicineDetailResponse, error) {
	cacheKey := "catalog:medicine:" + slug
	var cached dto.MedicineDetailResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	medicine, err := s.medicines.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrMedicineNotFound) {
			return nil, apperrors.ErrMedicineNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	ratings, err := s.medicines.RatingsFor([]string{medicine.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	agg := ratings[medicine.ID]

	detail := &dto.MedicineDetailResponse{
		Medicine:    medicine,
		AvgRating:   agg.AvgRating,
		ReviewCount: agg.ReviewCount,
	}
	s.cache.Set(ctx, cacheKey, detail, medicineCacheTTL)
	return detail, nil
}

func (s *MedicineServiceImpl) GetByID(id string) (*models.Medicine, error) {
	medicine, err := s.medicines.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMedicineNotFound) {
			return nil, apperrors.ErrMedicineNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return medicine, nil
}

// Create derives the slug from the name and generates a SKU when the
// request leaves it blank.
func (s *MedicineServiceImpl) Create(ctx context.Context, req dto.CreateMedicineRequest) (*models.Medicine, error) {
	slug := utils.Slugify(req.Name)

	taken, err := s.medicines.SlugExists(slug, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrSlugTaken
	}

	sku := req.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	medicine := &models.Medicine{
		Name:                 req.Name,
		Slug:                 slug,
		GenericName:          req.GenericName,
		Description:          req.Description,
		Dosage:               req.Dosage,
		Form:                 req.Form,
		Strength:             req.Strength,
		PackSize:             req.PackSize,
		Manufacturer:         req.Manufacturer,
		Price:                req.Price,
		DiscountPrice:        req.DiscountPrice,
		Stock:                req.Stock,
		PrescriptionRequired: req.PrescriptionRequired,
		Featured:             req.Featured,
		Active:               active,
		CategoryID:           req.CategoryID,
		BrandID:              req.BrandID,
		Images:               marshalImages(req.Images),
		Uses:                 req.Uses,
		SideEffects:          req.SideEffects,
		Warnings:             req.Warnings,
		Interactions:         req.Interactions,
		Contraindications:    req.Contraindications,
		SKU:                  sku,
		Barcode:              req.Barcode,
	}

	if err := s.medicines.Create(medicine); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return medicine, nil
}

func (s *MedicineServiceImpl) Update(ctx context.Context, id string, req dto.UpdateMedicineRequest) (*models.Medicine, error) {
	medicine, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != medicine.Name {
		slug := utils.Slugify(*req.Name)
		taken, err := s.medicines.SlugExists(slug, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrSlugTaken
		}
		medicine.Name = *req.Name
		medicine.Slug = slug
	}
	if req.GenericName != nil {
		medicine.GenericName = *req.GenericName
	}
	if req.Description != nil {
		medicine.Description = *req.Description
	}
	if req.Dosage != nil {
		medicine.Dosage = *req.Dosage
	}
	if req.Form != nil {
		medicine.Form = *req.Form
	}
	if req.Strength != nil {
		medicine.Strength = *req.Strength
	}
	if req.PackSize != nil {
		medicine.PackSize = *req.PackSize
	}
	if req.Manufacturer != nil {
		medicine.Manufacturer = *req.Manufacturer
	}
	if req.Price != nil {
		medicine.Price = *req.Price
	}
	if req.DiscountPrice != nil {
		medicine.DiscountPrice = req.DiscountPrice
	}
	if req.Stock != nil {
		medicine.Stock = *req.Stock
	}
	if req.PrescriptionRequired != nil {
		medicine.PrescriptionRequired = *req.PrescriptionRequired
	}
	if req.Featured != nil {
		medicine.Featured = *req.Featured
	}
	if req.Active != nil {
		medicine.Active = *req.Active
	}
	if req.CategoryID != nil {
		medicine.CategoryID = *req.CategoryID
	}
	if req.BrandID != nil {
		medicine.BrandID = req.BrandID
	}
	if req.Images != nil {
		medicine.Images = marshalImages(req.Images)
	}
	if req.Uses != nil {
		medicine.Uses = *req.Uses
	}
	if req.SideEffects != nil {
		medicine.SideEffects = *req.SideEffects
	}
	if req.Warnings != nil {
		medicine.Warnings = *req.Warnings
	}
	if req.Interactions != nil {
		medicine.Interactions = *req.Interactions
	}
	if req.Contraindications != nil {
		medicine.Contraindications = *req.Contraindications
	}
	if req.Barcode != nil {
		medicine.Barcode = *req.Barcode
	}

	if err := s.medicines.Update(medicine); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return medicine, nil
}

// Delete is blocked once any order references the medicine; deactivation
// is the supported path then.
func (s *MedicineServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	orderItems, err := s.medicines.CountOrderItems(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if orderItems > 0 {
		return apperrors.ErrMedicineHasOrders
	}

	if err := s.medicines.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return nil
}

// medicineListCacheKey flattens the query into a stable string; pointer
// filters are rendered by value so identical queries share an entry.
func medicineListCacheKey(q dto.MedicineListQuery) string {
	fmtPtr := func(v interface{}) string {
		switch p := v.(type) {
		case *bool:
			if p == nil {
				return "-"
			}
			return fmt.Sprintf("%t", *p)
		case *float64:
			if p == nil {
				return "-"
			}
			return fmt.Sprintf("%g", *p)
		}
		return "-"
	}

	return fmt.Sprintf("catalog:medicines:%s:%s:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		q.Search, q.Category, q.Brand,
		fmtPtr(q.Prescription), fmtPtr(q.MinPrice), fmtPtr(q.MaxPrice), fmtPtr(q.Featured),
		q.SortBy, q.SortOrder, q.Page, q.Limit,
	)
}

func marshalImages(images []string) datatypes.JSON {
	if images == nil {
		images = []string{}
	}
	data, _ := json.Marshal(images)
	return datatypes.JSON(data)
}
