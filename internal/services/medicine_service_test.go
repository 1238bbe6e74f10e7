package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

func TestMedicineService_CreateGeneratesSlugAndSKU(t *testing.T) {
	var created *models.Medicine
	medicines := &mockMedicineRepo{
		createFn: func(m *models.Medicine) error {
			m.ID = "med-1"
			created = m
			return nil
		},
	}
	svc := NewMedicineService(medicines, nil)

	_, err := svc.Create(context.Background(), dto.CreateMedicineRequest{
		Name:        "Paracetamol 500mg (Extra Strength!)",
		GenericName: "Acetaminophen",
		Price:       9.99,
		CategoryID:  "cat-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "paracetamol-500mg-extra-strength", created.Slug)
	assert.True(t, strings.HasPrefix(created.SKU, "MED-"))
	assert.True(t, created.Active)
}

func TestMedicineService_CreateKeepsProvidedSKU(t *testing.T) {
	var created *models.Medicine
	medicines := &mockMedicineRepo{
		createFn: func(m *models.Medicine) error {
			created = m
			return nil
		},
	}
	svc := NewMedicineService(medicines, nil)

	_, err := svc.Create(context.Background(), dto.CreateMedicineRequest{
		Name:        "Ibuprofen",
		GenericName: "Ibuprofen",
		Price:       4.99,
		CategoryID:  "cat-1",
		SKU:         "CUSTOM-001",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM-001", created.SKU)
}

func TestMedicineService_CreateRejectsTakenSlug(t *testing.T) {
	medicines := &mockMedicineRepo{
		slugExistsFn: func(slug, excludeID string) (bool, error) { return true, nil },
	}
	svc := NewMedicineService(medicines, nil)

	_, err := svc.Create(context.Background(), dto.CreateMedicineRequest{
		Name:        "Paracetamol",
		GenericName: "Acetaminophen",
		Price:       9.99,
		CategoryID:  "cat-1",
	})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)
}

func TestMedicineService_DeleteBlockedByOrderHistory(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			return testMedicine(id, 10), nil
		},
		countOrderItemsFn: func(id string) (int64, error) { return 4, nil },
	}
	svc := NewMedicineService(medicines, nil)

	err := svc.Delete(context.Background(), "med-1")
	assert.ErrorIs(t, err, apperrors.ErrMedicineHasOrders)
}

func TestMedicineService_ListForcesActiveOnly(t *testing.T) {
	var gotFilter repositories.MedicineFilter
	medicines := &mockMedicineRepo{
		findWithFilterFn: func(f repositories.MedicineFilter) ([]models.Medicine, int64, error) {
			gotFilter = f
			return []models.Medicine{*testMedicine("med-1", 5)}, 1, nil
		},
		ratingsForFn: func(ids []string) (map[string]repositories.RatingAgg, error) {
			return map[string]repositories.RatingAgg{
				"med-1": {MedicineID: "med-1", AvgRating: 4.5, ReviewCount: 12},
			}, nil
		},
	}
	svc := NewMedicineService(medicines, nil)

	resp, err := svc.List(context.Background(), dto.MedicineListQuery{
		Search: "para",
		Page:   1,
		Limit:  20,
	})
	require.NoError(t, err)

	require.NotNil(t, gotFilter.Active)
	assert.True(t, *gotFilter.Active)
	assert.Equal(t, "para", gotFilter.Query)

	require.Len(t, resp.Medicines, 1)
	assert.Equal(t, 4.5, resp.Medicines[0].AvgRating)
	assert.Equal(t, int64(12), resp.Medicines[0].ReviewCount)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}
