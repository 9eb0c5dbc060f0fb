package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"insurance-portal-api/internal/model"
)

type MockDashboard struct {
	mock.Mock
}

func (m *MockDashboard) Counts(ctx context.Context) (model.DashboardCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.DashboardCounts), args.Error(1)
}
