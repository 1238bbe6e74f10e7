package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmacare_backend/internal/services"
)

type StatsHandler struct {
	BaseHandler
	stats services.StatsService
}

func NewStatsHandler(base BaseHandler, stats services.StatsService) *StatsHandler {
	return &StatsHandler{BaseHandler: base, stats: stats}
}

func (h *StatsHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.Dashboard)
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	resp, err := h.stats.Dashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}
