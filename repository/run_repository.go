package repository

import (
	"context"
	"fmt"

	"streaksim/database"
	"streaksim/models"
	"streaksim/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable abstracts the pgx pool so repositories also work inside a
// transaction.
type Queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RunRepository implements the service.RunRepository interface
type RunRepository struct {
	q Queryable
}

// NewRunRepository creates a new simulation run repository
func NewRunRepository(db *database.DB) service.RunRepository {
	return &RunRepository{q: db.Pool}
}

// NewRunRepositoryWithTx creates a new run repository bound to a transaction
func NewRunRepositoryWithTx(tx Queryable) service.RunRepository {
	return &RunRepository{q: tx}
}

// Create inserts the record of a completed batch and fills in its
// generated ID and creation time.
func (r *RunRepository) Create(ctx context.Context, run *models.SimulationRun) error {
	query := `
		INSERT INTO simulation_runs (
			win_probability, steps, gamblers, batch_seed,
			initial_bet, bet_increase, max_bet, payoff_ratio,
			completed_trials, partial,
			mean_final_profit, stddev_final_profit,
			min_final_profit, max_final_profit, median_final_profit,
			non_negative_fraction, longest_run_length, longest_run_value,
			duration_ms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		run.WinProbability,
		run.Steps,
		run.Gamblers,
		run.BatchSeed,
		run.InitialBet,
		run.BetIncrease,
		run.MaxBet,
		run.PayoffRatio,
		run.CompletedTrials,
		run.Partial,
		run.MeanFinalProfit,
		run.StdDevFinalProfit,
		run.MinFinalProfit,
		run.MaxFinalProfit,
		run.MedianFinalProfit,
		run.NonNegativeFraction,
		run.LongestRunLength,
		run.LongestRunValue,
		run.DurationMS,
	).Scan(&run.ID, &run.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create simulation run: %w", err)
	}

	return nil
}

// GetByID retrieves a simulation run by its ID
func (r *RunRepository) GetByID(ctx context.Context, id int64) (*models.SimulationRun, error) {
	query := `
		SELECT id, win_probability, steps, gamblers, batch_seed,
			initial_bet, bet_increase, max_bet, payoff_ratio,
			completed_trials, partial,
			mean_final_profit, stddev_final_profit,
			min_final_profit, max_final_profit, median_final_profit,
			non_negative_fraction, longest_run_length, longest_run_value,
			duration_ms, created_at
		FROM simulation_runs
		WHERE id = $1`

	run, err := scanRun(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get simulation run: %w", err)
	}
	return run, nil
}

// ListRecent returns the most recently recorded runs, newest first
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	query := `
		SELECT id, win_probability, steps, gamblers, batch_seed,
			initial_bet, bet_increase, max_bet, payoff_ratio,
			completed_trials, partial,
			mean_final_profit, stddev_final_profit,
			min_final_profit, max_final_profit, median_final_profit,
			non_negative_fraction, longest_run_length, longest_run_value,
			duration_ms, created_at
		FROM simulation_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read simulation runs: %w", err)
	}

	return runs, nil
}

func scanRun(row pgx.Row) (*models.SimulationRun, error) {
	var run models.SimulationRun
	err := row.Scan(
		&run.ID,
		&run.WinProbability,
		&run.Steps,
		&run.Gamblers,
		&run.BatchSeed,
		&run.InitialBet,
		&run.BetIncrease,
		&run.MaxBet,
		&run.PayoffRatio,
		&run.CompletedTrials,
		&run.Partial,
		&run.MeanFinalProfit,
		&run.StdDevFinalProfit,
		&run.MinFinalProfit,
		&run.MaxFinalProfit,
		&run.MedianFinalProfit,
		&run.NonNegativeFraction,
		&run.LongestRunLength,
		&run.LongestRunValue,
		&run.DurationMS,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
