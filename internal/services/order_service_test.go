package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

func testMedicine(id string, stock int) *models.Medicine {
	return &models.Medicine{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Paracetamol",
		Price:     9.99,
		Stock:     stock,
		Active:    true,
	}
}

func checkoutRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{MedicineID: "med-1", Quantity: 2, Price: 9.99},
		},
		Subtotal:        19.98,
		Tax:             2.00,
		DeliveryFee:     5.00,
		Total:           26.98,
		DeliveryAddress: "1 Main St",
		DeliveryCity:    "Springfield",
		DeliveryState:   "IL",
		DeliveryZipCode: "62704",
		DeliveryPhone:   "+15551234567",
	}
}

func TestOrderService_CreateStoresClientTotals(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			return testMedicine(id, 10), nil
		},
	}

	var created *models.Order
	orders := &mockOrderRepo{
		createFn: func(o *models.Order) error {
			o.ID = "order-1"
			created = o
			return nil
		},
		findByIDFn: func(id string) (*models.Order, error) {
			return created, nil
		},
	}
	svc := NewOrderService(orders, medicines, &mockPrescriptionRepo{}, &mockMailer{})

	// The total does not match the items; it is persisted as sent anyway.
	req := checkoutRequest()
	req.Total = 999.99

	order, err := svc.Create(context.Background(), "user-1", req)
	require.NoError(t, err)

	assert.Equal(t, 999.99, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.NotEmpty(t, order.OrderNumber)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 19.98, order.Items[0].Total)

	// Stock went down by the ordered quantity.
	assert.Equal(t, -2, medicines.stockAdjustments["med-1"])
}

func TestOrderService_CreateRejectsInsufficientStock(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			return testMedicine(id, 1), nil
		},
	}
	svc := NewOrderService(&mockOrderRepo{}, medicines, &mockPrescriptionRepo{}, &mockMailer{})

	_, err := svc.Create(context.Background(), "user-1", checkoutRequest())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestOrderService_CreateRejectsInactiveMedicine(t *testing.T) {
	medicines := &mockMedicineRepo{
		findByIDFn: func(id string) (*models.Medicine, error) {
			m := testMedicine(id, 10)
			m.Active = false
			return m, nil
		},
	}
	svc := NewOrderService(&mockOrderRepo{}, medicines, &mockPrescriptionRepo{}, &mockMailer{})

	_, err := svc.Create(context.Background(), "user-1", checkoutRequest())
	assert.Error(t, err)
}

func TestOrderService_CreateRejectsForeignPrescription(t *testing.T) {
	prescriptions := &mockPrescriptionRepo{
		findByIDFn: func(id string) (*models.Prescription, error) {
			return &models.Prescription{
				BaseModel: models.BaseModel{ID: id},
				UserID:    "someone-else",
			}, nil
		},
	}
	svc := NewOrderService(&mockOrderRepo{}, &mockMedicineRepo{}, prescriptions, &mockMailer{})

	req := checkoutRequest()
	rxID := "rx-1"
	req.PrescriptionID = &rxID

	_, err := svc.Create(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, apperrors.ErrPrescriptionNotFound)
}

func TestOrderService_AdminUpdateDeliveredStampsTimestamp(t *testing.T) {
	order := &models.Order{
		BaseModel:   models.BaseModel{ID: "order-1"},
		OrderNumber: "ORD-1",
		UserID:      "user-1",
		Status:      models.OrderStatusShipped,
		User: &models.User{
			BaseModel: models.BaseModel{ID: "user-1"},
			Name:      "Jane",
			Email:     strPtr("jane@example.com"),
		},
	}
	orders := &mockOrderRepo{
		findByIDFn: func(id string) (*models.Order, error) { return order, nil },
	}
	mailer := &mockMailer{}
	svc := NewOrderService(orders, &mockMedicineRepo{}, &mockPrescriptionRepo{}, mailer)

	delivered := models.OrderStatusDelivered
	updated, err := svc.AdminUpdate(context.Background(), "order-1", dto.UpdateOrderRequest{Status: &delivered})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].To)
}

func TestOrderService_AdminUpdateAllowsAnyTransition(t *testing.T) {
	// The workflow is deliberately unguarded: a delivered order can move
	// back to PENDING.
	order := &models.Order{
		BaseModel: models.BaseModel{ID: "order-1"},
		Status:    models.OrderStatusDelivered,
	}
	orders := &mockOrderRepo{
		findByIDFn: func(id string) (*models.Order, error) { return order, nil },
	}
	svc := NewOrderService(orders, &mockMedicineRepo{}, &mockPrescriptionRepo{}, &mockMailer{})

	pending := models.OrderStatusPending
	updated, err := svc.AdminUpdate(context.Background(), "order-1", dto.UpdateOrderRequest{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestOrderService_AdminUpdateRejectsUnknownStatus(t *testing.T) {
	order := &models.Order{BaseModel: models.BaseModel{ID: "order-1"}}
	orders := &mockOrderRepo{
		findByIDFn: func(id string) (*models.Order, error) { return order, nil },
	}
	svc := NewOrderService(orders, &mockMedicineRepo{}, &mockPrescriptionRepo{}, &mockMailer{})

	bogus := models.OrderStatus("TELEPORTED")
	_, err := svc.AdminUpdate(context.Background(), "order-1", dto.UpdateOrderRequest{Status: &bogus})
	assert.Error(t, err)
}

func TestOrderService_CancelRestoresStock(t *testing.T) {
	order := &models.Order{
		BaseModel: models.BaseModel{ID: "order-1"},
		UserID:    "user-1",
		Status:    models.OrderStatusPending,
		Items: []models.OrderItem{
			{MedicineID: "med-1", Quantity: 3},
		},
	}
	orders := &mockOrderRepo{
		findByIDFn: func(id string) (*models.Order, error) { return order, nil },
	}
	medicines := &mockMedicineRepo{}
	svc := NewOrderService(orders, medicines, &mockPrescriptionRepo{}, &mockMailer{})

	cancelled, err := svc.Cancel("user-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 3, medicines.stockAdjustments["med-1"])
}

func TestOrderService_CancelAllowsAnyNonTerminalState(t *testing.T) {
	// Like the admin workflow, customer cancel is not guarded by a
	// transition table; only terminal orders are off limits.
	for _, status := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
	} {
		order := &models.Order{
			BaseModel: models.BaseModel{ID: "order-1"},
			UserID:    "user-1",
			Status:    status,
		}
		orders := &mockOrderRepo{
			findByIDFn: func(id string) (*models.Order, error) { return order, nil },
		}
		svc := NewOrderService(orders, &mockMedicineRepo{}, &mockPrescriptionRepo{}, &mockMailer{})

		cancelled, err := svc.Cancel("user-1", "order-1")
		require.NoError(t, err, "status %s", status)
		assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	}
}

func TestOrderService_CancelRejectsTerminalStates(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		order := &models.Order{
			BaseModel: models.BaseModel{ID: "order-1"},
			UserID:    "user-1",
			Status:    status,
		}
		orders := &mockOrderRepo{
			findByIDFn: func(id string) (*models.Order, error) { return order, nil },
		}
		svc := NewOrderService(orders, &mockMedicineRepo{}, &mockPrescriptionRepo{}, &mockMailer{})

		_, err := svc.Cancel("user-1", "order-1")
		assert.Error(t, err, "status %s", status)
	}
}

func TestOrderService_GetForUserHidesForeignOrders(t *testing.T) {
	order := &models.Order{
		BaseModel: models.BaseModel{ID: "order-1"},
		UserID:    "owner",
	}
	orders := &mockOrderRepo{
		findByIDFn: func(id string) (*models.Order, error) { return order, nil },
	}
	svc := NewOrderService(orders, &mockMedicineRepo{}, &mockPrescriptionRepo{}, &mockMailer{})

	_, err := svc.GetForUser("intruder", "order-1", false)
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)

	got, err := svc.GetForUser("intruder", "order-1", true)
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)
}
