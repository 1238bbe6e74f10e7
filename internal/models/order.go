package models

import "time"

// Order - money fields are taken from the client at creation time and are
// not recomputed against catalog prices.
type Order struct {
	BaseModel
	OrderNumber   string        `gorm:"not null;uniqueIndex" json:"orderNumber"`
	UserID        string        `gorm:"type:uuid;not null;index" json:"userId"`
	Status        OrderStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"paymentStatus"`

	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`

	DeliveryAddress string `gorm:"not null" json:"deliveryAddress"`
	DeliveryCity    string `gorm:"not null" json:"deliveryCity"`
	DeliveryState   string `gorm:"not null" json:"deliveryState"`
	DeliveryZipCode string `gorm:"not null" json:"deliveryZipCode"`
	DeliveryPhone   string `gorm:"not null" json:"deliveryPhone"`

	PrescriptionID    *string    `gorm:"type:uuid" json:"prescriptionId,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	TrackingNumber    string     `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	DeliveredAt       *time.Time `json:"deliveredAt,omitempty"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items        []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Prescription *Prescription `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
}

// OrderItem is immutable once created; there is no update path.
type OrderItem struct {
	BaseModel
	OrderID    string  `gorm:"type:uuid;not null;index" json:"orderId"`
	MedicineID string  `gorm:"type:uuid;not null;index" json:"medicineId"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      float64 `gorm:"not null" json:"price"`
	Discount   float64 `gorm:"default:0" json:"discount"`
	Total      float64 `gorm:"not null" json:"total"`

	Medicine *Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}
