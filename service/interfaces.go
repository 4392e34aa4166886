package service

import (
	"context"

	"streaksim/models"
	"streaksim/simulation"
)

// RunRepository defines the interface for simulation run persistence
type RunRepository interface {
	// Create inserts the record of a completed batch
	Create(ctx context.Context, run *models.SimulationRun) error

	// GetByID retrieves a run record by its ID; nil if not found
	GetByID(ctx context.Context, id int64) (*models.SimulationRun, error)

	// ListRecent returns the most recently recorded runs, newest first
	ListRecent(ctx context.Context, limit int) ([]*models.SimulationRun, error)
}

// SimulationService runs Monte Carlo batches and records their summaries
type SimulationService interface {
	// Run validates the parameters, computes the batch and, when a
	// repository is configured, records its summary
	Run(ctx context.Context, params simulation.Params) (*simulation.BatchResult, error)
}
