package services

import (
	"context"
	"errors"
	"time"

	"pharmacare_backend/internal/email"
	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/internal/utils"
	"pharmacare_backend/pkg/apperrors"
)

// OrderService - checkout, customer history and the back-office workflow.
type OrderService interface {
	Create(ctx context.Context, userID string, req dto.CreateOrderRequest) (*models.Order, error)
	ListForUser(userID string, query dto.OrderListQuery) (*dto.OrderListResponse, error)
	GetForUser(userID, orderID string, isStaff bool) (*models.Order, error)
	Cancel(userID, orderID string) (*models.Order, error)
	AdminList(query dto.OrderListQuery) (*dto.OrderListResponse, error)
	AdminGet(orderID string) (*models.Order, error)
	AdminUpdate(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*models.Order, error)
}

type OrderServiceImpl struct {
	orders        repositories.OrderRepository
	medicines     repositories.MedicineRepository
	prescriptions repositories.PrescriptionRepository
	mailer        email.Provider
}

func NewOrderService(
	orders repositories.OrderRepository,
	medicines repositories.MedicineRepository,
	prescriptions repositories.PrescriptionRepository,
	mailer email.Provider,
) OrderService {
	return &OrderServiceImpl{
		orders:        orders,
		medicines:     medicines,
		prescriptions: prescriptions,
		mailer:        mailer,
	}
}

// Create persists the checkout payload. The money fields are taken from
// the request as-is and are not recomputed against catalog prices; each
// item snapshots the client-supplied unit price.
func (s *OrderServiceImpl) Create(ctx context.Context, userID string, req dto.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.ErrEmptyOrder
	}

	if req.PrescriptionID != nil {
		prescription, err := s.prescriptions.FindByID(*req.PrescriptionID)
		if err != nil {
			if errors.Is(err, repositories.ErrPrescriptionNotFound) {
				return nil, apperrors.ErrPrescriptionNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		if prescription.UserID != userID {
			return nil, apperrors.ErrPrescriptionNotFound
		}
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		medicine, err := s.medicines.FindByID(item.MedicineID)
		if err != nil {
			if errors.Is(err, repositories.ErrMedicineNotFound) {
				return nil, apperrors.ErrMedicineNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		if !medicine.Active {
			return nil, apperrors.ErrInvalidOperation("order", "Medicine "+medicine.Name+" is no longer available")
		}
		if medicine.Stock < item.Quantity {
			return nil, apperrors.ErrInvalidOperation("order", "Insufficient stock for "+medicine.Name)
		}

		items = append(items, models.OrderItem{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Discount:   item.Discount,
			Total:      item.Price*float64(item.Quantity) - item.Discount,
		})
	}

	order := &models.Order{
		OrderNumber:     utils.GenerateOrderNumber(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		DeliveryFee:     req.DeliveryFee,
		Discount:        req.Discount,
		Total:           req.Total,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCity:    req.DeliveryCity,
		DeliveryState:   req.DeliveryState,
		DeliveryZipCode: req.DeliveryZipCode,
		DeliveryPhone:   req.DeliveryPhone,
		PrescriptionID:  req.PrescriptionID,
		Notes:           req.Notes,
		Items:           items,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	for _, item := range items {
		if err := s.medicines.AdjustStock(item.MedicineID, -item.Quantity); err != nil {
			logger.Warn("stock adjustment failed", "order_id", order.ID, "medicine_id", item.MedicineID, "error", err)
		}
	}

	created, err := s.orders.FindByID(order.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendConfirmation(ctx, created)
	logger.Info("order created", "order_id", created.ID, "order_number", created.OrderNumber, "user_id", userID)
	return created, nil
}

func (s *OrderServiceImpl) ListForUser(userID string, query dto.OrderListQuery) (*dto.OrderListResponse, error) {
	filter := repositories.OrderFilter{
		UserID: userID,
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	return s.list(filter)
}

// GetForUser returns the order when the caller owns it or is staff.
// Foreign orders come back as not found rather than forbidden, so order
// ids cannot be probed.
func (s *OrderServiceImpl) GetForUser(userID, orderID string, isStaff bool) (*models.Order, error) {
	order, err := s.AdminGet(orderID)
	if err != nil {
		return nil, err
	}
	if !isStaff && order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}
	return order, nil
}

// Cancel lets the owner abort an order from any state that is not
// already terminal. Item stock goes back on the shelf.
func (s *OrderServiceImpl) Cancel(userID, orderID string) (*models.Order, error) {
	order, err := s.GetForUser(userID, orderID, false)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		return nil, apperrors.ErrInvalidStatus("order", "Order can no longer be cancelled")
	}

	order.Status = models.OrderStatusCancelled
	if err := s.orders.Update(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.restockItems(order)
	logger.Info("order cancelled", "order_id", order.ID, "user_id", userID)
	return order, nil
}

func (s *OrderServiceImpl) AdminList(query dto.OrderListQuery) (*dto.OrderListResponse, error) {
	filter := repositories.OrderFilter{
		Status:        query.Status,
		PaymentStatus: query.PaymentStatus,
		Search:        query.Search,
		Page:          query.Page,
		Limit:         query.Limit,
	}
	return s.list(filter)
}

func (s *OrderServiceImpl) AdminGet(orderID string) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

// AdminUpdate applies back-office edits. Any known status value is
// accepted regardless of the current one; moving to DELIVERED stamps
// DeliveredAt, moving to CANCELLED restores stock. Payment status,
// tracking and notes update independently.
func (s *OrderServiceImpl) AdminUpdate(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.AdminGet(orderID)
	if err != nil {
		return nil, err
	}

	previousStatus := order.Status

	if req.Status != nil {
		if !models.ValidOrderStatus(*req.Status) {
			return nil, apperrors.ErrInvalidStatus("order", "Unknown order status")
		}
		order.Status = *req.Status

		if *req.Status == models.OrderStatusDelivered && order.DeliveredAt == nil {
			now := time.Now()
			order.DeliveredAt = &now
		}
	}
	if req.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*req.PaymentStatus) {
			return nil, apperrors.ErrInvalidStatus("order", "Unknown payment status")
		}
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.TrackingNumber != nil {
		order.TrackingNumber = *req.TrackingNumber
	}
	if req.EstimatedDelivery != nil {
		order.EstimatedDelivery = req.EstimatedDelivery
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.orders.Update(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Status != nil && previousStatus != *req.Status {
		switch *req.Status {
		case models.OrderStatusCancelled:
			s.restockItems(order)
		case models.OrderStatusDelivered:
			s.sendDelivered(ctx, order)
		}
	}

	logger.Info("order updated", "order_id", order.ID, "status", order.Status)
	return order, nil
}

func (s *OrderServiceImpl) list(filter repositories.OrderFilter) (*dto.OrderListResponse, error) {
	orders, total, err := s.orders.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.OrderListResponse{
		Orders:     orders,
		Pagination: dto.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *OrderServiceImpl) restockItems(order *models.Order) {
	for _, item := range order.Items {
		if err := s.medicines.AdjustStock(item.MedicineID, item.Quantity); err != nil {
			logger.Warn("restock failed", "order_id", order.ID, "medicine_id", item.MedicineID, "error", err)
		}
	}
}

// Notification failures never fail the request.
func (s *OrderServiceImpl) sendConfirmation(ctx context.Context, order *models.Order) {
	if order.User == nil || order.User.Email == nil {
		return
	}
	msg := email.OrderConfirmation(*order.User.Email, order.User.Name, order.OrderNumber, order.Total)
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Warn("order confirmation email failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderServiceImpl) sendDelivered(ctx context.Context, order *models.Order) {
	if order.User == nil || order.User.Email == nil {
		return
	}
	msg := email.OrderDelivered(*order.User.Email, order.User.Name, order.OrderNumber)
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Warn("delivery email failed", "order_id", order.ID, "error", err)
	}
}
