package interfaces

import (
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
)

type MockDashboardService struct {
	GetDashboardStatsFunc func(userID string) (*application.DashboardStats, error)
}

func (m *MockDashboardService) GetDashboardStats(userID string) (*application.DashboardStats, error) {
	return m.GetDashboardStatsFunc(userID)
}
