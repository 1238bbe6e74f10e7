package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/middleware"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

type OrderHandler struct {
	BaseHandler
	orders services.OrderService
}

func NewOrderHandler(base BaseHandler, orders services.OrderService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orders: orders}
}

func (h *OrderHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	orders := authed.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.POST("/:id/cancel", h.Cancel)
	}

	adminOrders := admin.Group("/orders")
	{
		adminOrders.GET("", h.AdminList)
		adminOrders.GET("/:id", h.AdminGet)
		adminOrders.PUT("/:id", h.AdminUpdate)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orders.Create(c.Request.Context(), middleware.MustGetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"order": order})
}

func (h *OrderHandler) List(c *gin.Context) {
	var query dto.OrderListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.orders.ListForUser(middleware.MustGetUserID(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetForUser(middleware.MustGetUserID(c), c.Param("id"), h.isStaff(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"order": order})
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.orders.Cancel(middleware.MustGetUserID(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"order": order})
}

func (h *OrderHandler) AdminList(c *gin.Context) {
	var query dto.OrderListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.orders.AdminList(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *OrderHandler) AdminGet(c *gin.Context) {
	order, err := h.orders.AdminGet(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"order": order})
}

func (h *OrderHandler) AdminUpdate(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orders.AdminUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"order": order})
}

func (h *OrderHandler) isStaff(c *gin.Context) bool {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return false
	}
	role := models.UserRole(claims.Role)
	return role == models.UserRoleAdmin || role == models.UserRolePharmacist
}
