package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/middleware"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

type ReviewHandler struct {
	BaseHandler
	reviews services.ReviewService
}

func NewReviewHandler(base BaseHandler, reviews services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviews: reviews}
}

func (h *ReviewHandler) RegisterRoutes(authed *gin.RouterGroup) {
	reviews := authed.Group("/reviews")
	{
		reviews.POST("", h.Create)
		reviews.PUT("/:id", h.Update)
		reviews.DELETE("/:id", h.Delete)
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviews.Create(middleware.MustGetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"review": review})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviews.Update(middleware.MustGetUserID(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"review": review})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(middleware.MustGetUserID(c), c.Param("id"), h.isStaff(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Review deleted"})
}

func (h *ReviewHandler) isStaff(c *gin.Context) bool {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return false
	}
	role := models.UserRole(claims.Role)
	return role == models.UserRoleAdmin || role == models.UserRolePharmacist
}
