package dto

import (
	"time"

	"pharmacare_backend/internal/models"
)

// OrderItemRequest - one cart line at checkout. Price is what the client
// displayed; it is stored as-is on the item snapshot.
type OrderItemRequest struct {
	MedicineID string  `json:"medicineId" validate:"required,uuid"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"required,gte=0"`
	Discount   float64 `json:"discount" validate:"gte=0"`
}

// CreateOrderRequest - checkout payload. Money fields come from the client
// and are persisted without recomputation.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`

	Subtotal    float64 `json:"subtotal" validate:"gte=0"`
	Tax         float64 `json:"tax" validate:"gte=0"`
	DeliveryFee float64 `json:"deliveryFee" validate:"gte=0"`
	Discount    float64 `json:"discount" validate:"gte=0"`
	Total       float64 `json:"total" validate:"gte=0"`

	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
	DeliveryCity    string `json:"deliveryCity" validate:"required"`
	DeliveryState   string `json:"deliveryState" validate:"required"`
	DeliveryZipCode string `json:"deliveryZipCode" validate:"required"`
	DeliveryPhone   string `json:"deliveryPhone" validate:"required"`

	PrescriptionID *string `json:"prescriptionId,omitempty" validate:"omitempty,uuid"`
	Notes          string  `json:"notes,omitempty"`
}

// UpdateOrderRequest - back-office update. Every field is independent; any
// provided status value is applied without transition checks.
type UpdateOrderRequest struct {
	Status            *models.OrderStatus   `json:"status,omitempty"`
	PaymentStatus     *models.PaymentStatus `json:"paymentStatus,omitempty"`
	TrackingNumber    *string               `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time            `json:"estimatedDelivery,omitempty"`
	Notes             *string               `json:"notes,omitempty"`
}

// OrderListQuery - filters shared by customer history and the admin list.
type OrderListQuery struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
	Search        string `form:"search"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

type OrderListResponse struct {
	Orders     []models.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}
