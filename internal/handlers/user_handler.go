package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/middleware"
	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/services/dto"
)

// UserHandler - admin account management.
type UserHandler struct {
	BaseHandler
	users services.UserService
}

func NewUserHandler(base BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

func (h *UserHandler) RegisterRoutes(admin *gin.RouterGroup) {
	users := admin.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Page, query.Limit = h.ParsePagination(c)

	resp, err := h.users.List(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	resp, err := h.users.Detail(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.Update(c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(middleware.MustGetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "User deleted"})
}
