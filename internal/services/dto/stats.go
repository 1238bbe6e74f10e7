package dto

import (
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
)

// StatsResponse - back-office dashboard numbers.
type StatsResponse struct {
	TotalUsers           int64                      `json:"totalUsers"`
	TotalMedicines       int64                      `json:"totalMedicines"`
	TotalOrders          int64                      `json:"totalOrders"`
	TotalRevenue         float64                    `json:"totalRevenue"`
	PendingOrders        int64                      `json:"pendingOrders"`
	PendingPrescriptions int64                      `json:"pendingPrescriptions"`
	LowStockCount        int64                      `json:"lowStockCount"`
	RecentOrders         []models.Order             `json:"recentOrders"`
	TopMedicines         []repositories.TopMedicine `json:"topMedicines"`
}
