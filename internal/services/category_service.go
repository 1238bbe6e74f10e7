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
	categoryListCacheKey = "catalog:categories"
	categoryCacheTTL     = 5 * time.Minute
)

type CategoryService interface {
	List(ctx context.Context, parentID string) ([]dto.CategoryWithCount, error)
	GetByID(id string) (*models.Category, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryServiceImpl struct {
	categories repositories.CategoryRepository
	cache      *cache.Cache
}

func NewCategoryService(categories repositories.CategoryRepository, c *cache.Cache) CategoryService {
	return &CategoryServiceImpl{categories: categories, cache: c}
}

// List returns categories with their medicine counts, optionally narrowed
// to the children of one parent.
func (s *CategoryServiceImpl) List(ctx context.Context, parentID string) ([]dto.CategoryWithCount, error) {
	cacheKey := categoryListCacheKey + ":" + parentID

	var cached []dto.CategoryWithCount
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.categories.FindAll(parentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	counts, err := s.categories.MedicineCounts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.CategoryWithCount, len(categories))
	for i, category := range categories {
		rows[i] = dto.CategoryWithCount{
			Category:      category,
			MedicineCount: counts[category.ID],
		}
	}

	s.cache.Set(ctx, cacheKey, rows, categoryCacheTTL)
	return rows, nil
}

func (s *CategoryServiceImpl) GetByID(id string) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	slug := utils.Slugify(req.Name)

	taken, err := s.categories.ExistsByNameOrSlug(req.Name, slug, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrCategoryExists
	}

	if req.ParentID != nil {
		if _, err := s.GetByID(*req.ParentID); err != nil {
			return nil, err
		}
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		ParentID:    req.ParentID,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		slug := utils.Slugify(*req.Name)
		taken, err := s.categories.ExistsByNameOrSlug(*req.Name, slug, id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrCategoryExists
		}
		category.Name = *req.Name
		category.Slug = slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, apperrors.ErrInvalidOperation("catalog", "Category cannot be its own parent")
		}
		if _, err := s.GetByID(*req.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = req.ParentID
	}

	if err := s.categories.Update(category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return category, nil
}

// Delete refuses while medicines or subcategories still reference the row.
func (s *CategoryServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	medicines, err := s.categories.CountMedicines(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if medicines > 0 {
		return apperrors.ErrCategoryHasMedicines
	}

	children, err := s.categories.CountChildren(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if children > 0 {
		return apperrors.ErrCategoryHasChildren
	}

	if err := s.categories.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	s.cache.DeletePrefix(ctx, "catalog:")
	return nil
}
