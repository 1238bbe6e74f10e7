package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

type MedicineHandler struct {
	BaseHandler
	medicines services.MedicineService
	reviews   services.ReviewService
}

func NewMedicineHandler(base BaseHandler, medicines services.MedicineService, reviews services.ReviewService) *MedicineHandler {
	return &MedicineHandler{BaseHandler: base, medicines: medicines, reviews: reviews}
}

// RegisterRoutes mounts the public catalog and the admin CRUD surface.
func (h *MedicineHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	medicines := public.Group("/medicines")
	{
		medicines.GET("", h.List)
		medicines.GET("/:slug", h.GetBySlug)
		medicines.GET("/:slug/reviews", h.ListReviews)
	}

	adminMedicines := admin.Group("/medicines")
	{
		adminMedicines.GET("", h.AdminList)
		adminMedicines.POST("", h.Create)
		adminMedicines.PUT("/:id", h.Update)
		adminMedicines.DELETE("/:id", h.Delete)
	}
}

// List - public catalog with search, filters and pagination. Only active
// medicines are visible here.
func (h *MedicineHandler) List(c *gin.Context) {
	var query dto.MedicineListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.medicines.List(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *MedicineHandler) GetBySlug(c *gin.Context) {
	resp, err := h.medicines.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"medicine": resp})
}

func (h *MedicineHandler) ListReviews(c *gin.Context) {
	medicine, err := h.medicines.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, limit := h.ParsePagination(c)
	resp, err := h.reviews.ListByMedicine(medicine.ID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *MedicineHandler) AdminList(c *gin.Context) {
	var query dto.AdminMedicineListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.medicines.AdminList(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *MedicineHandler) Create(c *gin.Context) {
	var req dto.CreateMedicineRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	medicine, err := h.medicines.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"medicine": medicine})
}

func (h *MedicineHandler) Update(c *gin.Context) {
	var req dto.UpdateMedicineRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	medicine, err := h.medicines.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"medicine": medicine})
}

func (h *MedicineHandler) Delete(c *gin.Context) {
	if err := h.medicines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Medicine deleted"})
}
