package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

type BrandHandler struct {
	BaseHandler
	brands services.BrandService
}

func NewBrandHandler(base BaseHandler, brands services.BrandService) *BrandHandler {
	return &BrandHandler{BaseHandler: base, brands: brands}
}

func (h *BrandHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/brands", h.List)

	adminBrands := admin.Group("/brands")
	{
		adminBrands.GET("", h.List)
		adminBrands.POST("", h.Create)
		adminBrands.PUT("/:id", h.Update)
		adminBrands.DELETE("/:id", h.Delete)
	}
}

func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"brands": brands})
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	brand, err := h.brands.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"brand": brand})
}

func (h *BrandHandler) Update(c *gin.Context) {
	var req dto.UpdateBrandRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	brand, err := h.brands.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"brand": brand})
}

func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.brands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Brand deleted"})
}
