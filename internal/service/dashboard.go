package service

import "github.com/Arittroskr32/CyberPiT-backend/internal/domain"

type DashboardService interface {
	Stats() (domain.DashboardStats, error)
}

type DashboardStorage interface {
	DashboardStats() (domain.DashboardStats, error)
}

type Dashboard struct {
	storage DashboardStorage
}

func NewDashboard(storage DashboardStorage) *Dashboard {
	return &Dashboard{storage: storage}
}

func (s *Dashboard) Stats() (domain.DashboardStats, error) {
	return s.storage.DashboardStats()
}
