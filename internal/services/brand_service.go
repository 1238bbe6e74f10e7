package services

import (
	"context"
	"errors"
	"time"

	"pharmacare_backend/internal/cache"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/internal/utils"
	"pharmacare_backend/pkg/apperrors"
)

const (
	brandListCacheKey = "catalog:brands"
	brandCacheTTL     = 5 * time.Minute
)

type BrandService interface {
	List(ctx context.Context) ([]dto.BrandWithCount, error)
	GetByID(id string) (*models.Brand, error)
	Create(ctx context.Context, req dto.CreateBrandRequest) (*models.Brand, error)
	Update(ctx context.Context, id string, req dto.UpdateBrandRequest) (*models.Brand, error)
	Delete(ctx context.Context, id string) error
}

type BrandServiceImpl struct {
	brands repositories.BrandRepository
	cache  *cache.Cache
}

func NewBrandService(brands repositories.BrandRepository, c *cache.Cache) BrandService {
	return &BrandServiceImpl{brands: brands, cache: c}
}

// List returns every brand with its medicine count.
func (s *BrandServiceImpl) List(ctx context.Context) ([]dto.BrandWithCount, error) {
	var cached []dto.BrandWithCount
	if s.cache.Get(ctx, brandListCacheKey, &cached) {
		return cached, nil
	}

	brands, err := s.brands.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	counts, err := s.brands.MedicineCounts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.BrandWithCount, len(brands))
	for i, brand := range brands {
		rows[i] = dto.BrandWithCount{
			Brand:         brand,
			MedicineCount: counts[brand.ID],
		}
	}

	s.cache.Set(ctx, brandListCacheKey, rows, brandCacheTTL)
	return rows, nil
}

func (s *BrandServiceImpl) GetByID(id string) (*models.Brand, error) {
	brand, err := s.brands.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBrandNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return brand, nil
}

func (s *BrandServiceImpl) Create(ctx context.Context, req dto.CreateBrandRequest) (*models.Brand, error) {
	slug := utils.Slugify(req.Name)

	taken, err := s.brands.ExistsByNameOrSlug(req.Name, slug, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrBrandExists
	}

	brand := &models.Brand{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Logo:        req.Logo,
	}
	if err := s.brands.Create(brand); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return brand, nil
}

func (s *BrandServiceImpl) Update(ctx context.Context, id string, req dto.UpdateBrandRequest) (*models.Brand, error) {
	brand, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != brand.Name {
		slug := utils.Slugify(*req.Name)
		taken, err := s.brands.ExistsByNameOrSlug(*req.Name, slug, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrBrandExists
		}
		brand.Name = *req.Name
		brand.Slug = slug
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.Logo != nil {
		brand.Logo = *req.Logo
	}

	if err := s.brands.Update(brand); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return brand, nil
}

func (s *BrandServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	medicines, err := s.brands.CountMedicines(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if medicines > 0 {
		return apperrors.ErrBrandHasMedicines
	}

	if err := s.brands.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return nil
}
