package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

type CategoryHandler struct {
	BaseHandler
	categories services.CategoryService
}

func NewCategoryHandler(base BaseHandler, categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/categories", h.List)

	adminCategories := admin.Group("/categories")
	{
		adminCategories.GET("", h.List)
		adminCategories.POST("", h.Create)
		adminCategories.PUT("/:id", h.Update)
		adminCategories.DELETE("/:id", h.Delete)
	}
}

// List serves the storefront navigation; parentId narrows the result to
// one category's children.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context(), c.Query("parentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"categories": categories})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"category": category})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categories.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"category": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Category deleted"})
}
