package models

// UserRole - role of a platform account.
type UserRole string

const (
	UserRoleCustomer   UserRole = "CUSTOMER"
	UserRolePharmacist UserRole = "PHARMACIST"
	UserRoleAdmin      UserRole = "ADMIN"
)

// OrderStatus - fulfilment workflow state.
// PENDING → CONFIRMED → PROCESSING → SHIPPED → DELIVERED, CANCELLED from
// any non-terminal state. Transitions are not guarded; only DELIVERED has
// a side effect (DeliveredAt is stamped).
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the known workflow values.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is tracked independently of the order status.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// ValidPaymentStatus reports whether s is a known payment state.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// PrescriptionStatus - review workflow of an uploaded prescription.
type PrescriptionStatus string

const (
	PrescriptionStatusPending  PrescriptionStatus = "PENDING"
	PrescriptionStatusApproved PrescriptionStatus = "APPROVED"
	PrescriptionStatusRejected PrescriptionStatus = "REJECTED"
)
