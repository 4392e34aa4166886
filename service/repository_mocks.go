package service

import (
	"context"

	"streaksim/models"

	"github.com/stretchr/testify/mock"
)

// MockRunRepository is a mock implementation of RunRepository
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(ctx context.Context, run *models.SimulationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) GetByID(ctx context.Context, id int64) (*models.SimulationRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SimulationRun), args.Error(1)
}

func (m *MockRunRepository) ListRecent(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SimulationRun), args.Error(1)
}
