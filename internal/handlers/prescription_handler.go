package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/middleware"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

type PrescriptionHandler struct {
	BaseHandler
	prescriptions services.PrescriptionService
}

func NewPrescriptionHandler(base BaseHandler, prescriptions services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{BaseHandler: base, prescriptions: prescriptions}
}

func (h *PrescriptionHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	prescriptions := authed.Group("/prescriptions")
	{
		prescriptions.POST("", h.Create)
		prescriptions.GET("", h.List)
		prescriptions.GET("/:id", h.Get)
	}

	adminPrescriptions := admin.Group("/prescriptions")
	{
		adminPrescriptions.GET("", h.AdminList)
		adminPrescriptions.PUT("/:id", h.Review)
	}
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req dto.CreatePrescriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	prescription, err := h.prescriptions.Create(middleware.MustGetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"prescription": prescription})
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	var query dto.PrescriptionListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.prescriptions.ListForUser(middleware.MustGetUserID(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	prescription, err := h.prescriptions.GetForUser(middleware.MustGetUserID(c), c.Param("id"), h.isStaff(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"prescription": prescription})
}

func (h *PrescriptionHandler) AdminList(c *gin.Context) {
	var query dto.PrescriptionListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.prescriptions.AdminList(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

// Review - pharmacist/admin decision on a pending prescription.
func (h *PrescriptionHandler) Review(c *gin.Context) {
	var req dto.ReviewPrescriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	prescription, err := h.prescriptions.Review(c.Request.Context(), middleware.MustGetUserID(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"prescription": prescription})
}

func (h *PrescriptionHandler) isStaff(c *gin.Context) bool {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return false
	}
	role := models.UserRole(claims.Role)
	return role == models.UserRoleAdmin || role == models.UserRolePharmacist
}
