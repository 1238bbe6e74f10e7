package services

import (
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

// Low-stock threshold for the dashboard warning tile.
const lowStockThreshold = 10

// Rows in the dashboard best-sellers ranking.
const topMedicinesLimit = 5

type StatsService interface {
	Dashboard() (*dto.StatsResponse, error)
}

type StatsServiceImpl struct {
	stats         repositories.StatsRepository
	orders        repositories.OrderRepository
	prescriptions repositories.PrescriptionRepository
}

func NewStatsService(
	stats repositories.StatsRepository,
	orders repositories.OrderRepository,
	prescriptions repositories.PrescriptionRepository,
) StatsService {
	return &StatsServiceImpl{stats: stats, orders: orders, prescriptions: prescriptions}
}

// Dashboard collects the back-office overview numbers.
func (s *StatsServiceImpl) Dashboard() (*dto.StatsResponse, error) {
	totalUsers, err := s.stats.CountUsers()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalMedicines, err := s.stats.CountMedicines()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalOrders, err := s.stats.CountOrders()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	revenue, err := s.orders.SumRevenue()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingOrders, err := s.orders.CountByStatus(models.OrderStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingPrescriptions, err := s.prescriptions.CountByStatus(models.PrescriptionStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	lowStock, err := s.stats.CountLowStock(lowStockThreshold)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	recent, err := s.orders.RecentOrders(10)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	top, err := s.stats.TopMedicines(topMedicinesLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsResponse{
		TotalUsers:           totalUsers,
		TotalMedicines:       totalMedicines,
		TotalOrders:          totalOrders,
		TotalRevenue:         revenue,
		PendingOrders:        pendingOrders,
		PendingPrescriptions: pendingPrescriptions,
		LowStockCount:        lowStock,
		RecentOrders:         recent,
		TopMedicines:         top,
	}, nil
}
