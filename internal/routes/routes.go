package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/handlers"
	"pharmacare_backend/internal/middleware"
	"pharmacare_backend/internal/models"
)

// Register mounts the full API under /api/v1.
//
// Four tiers: public (no token), authed (any valid token), staff
// (PHARMACIST or ADMIN), adminOnly (ADMIN). Pharmacists work the
// medicine, order and prescription queues; account and taxonomy
// management stays with admins.
func Register(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	public := api.Group("")
	authed := api.Group("", middleware.AuthMiddleware())
	staff := api.Group("/admin",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRolePharmacist, models.UserRoleAdmin),
	)
	adminOnly := api.Group("/admin",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleAdmin),
	)

	h.Auth.RegisterRoutes(public, authed)
	h.Medicines.RegisterRoutes(public, staff)
	h.Categories.RegisterRoutes(public, adminOnly)
	h.Brands.RegisterRoutes(public, adminOnly)
	h.Orders.RegisterRoutes(authed, staff)
	h.Prescription.RegisterRoutes(authed, staff)
	h.Reviews.RegisterRoutes(authed)
	h.Users.RegisterRoutes(adminOnly)
	h.Stats.RegisterRoutes(staff)
}
