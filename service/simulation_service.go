package service

import (
	"context"
	"fmt"

	"streaksim/events"
	"streaksim/models"
	"streaksim/simulation"

	log "github.com/sirupsen/logrus"
)

type simulationService struct {
	runRepo  RunRepository // nil disables persistence
	eventBus *events.Bus
}

// NewSimulationService creates a new simulation service. A nil repository
// is allowed and means batch summaries are not persisted.
func NewSimulationService(runRepo RunRepository, eventBus *events.Bus) SimulationService {
	return &simulationService{
		runRepo:  runRepo,
		eventBus: eventBus,
	}
}

func (s *simulationService) Run(ctx context.Context, params simulation.Params) (*simulation.BatchResult, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation parameters: %w", err)
	}

	log.WithFields(log.Fields{
		"gamblers":       params.Gamblers,
		"steps":          params.Steps,
		"winProbability": params.WinProbability,
		"batchSeed":      params.BatchSeed,
	}).Info("Starting Monte Carlo batch")

	result, err := simulation.RunBatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to run batch: %w", err)
	}

	if result.Partial {
		log.WithFields(log.Fields{
			"completedTrials": result.CompletedTrials,
			"gamblers":        params.Gamblers,
		}).Warn("Batch terminated early; statistics cover the completed subset only")
	}

	s.eventBus.Emit(ctx, events.BatchCompletedEvent{
		Gamblers:        params.Gamblers,
		Steps:           params.Steps,
		CompletedTrials: result.CompletedTrials,
		Partial:         result.Partial,
		MeanFinalProfit: result.FinalSummary.Mean,
		Elapsed:         result.Elapsed,
	})

	if s.runRepo != nil {
		run := newRunRecord(result)
		if err := s.runRepo.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to record simulation run: %w", err)
		}
		log.WithField("runID", run.ID).Info("Recorded simulation run")
		s.eventBus.Emit(ctx, events.RunRecordedEvent{RunID: run.ID})
	}

	return result, nil
}

// newRunRecord maps a batch result onto its persisted summary record.
func newRunRecord(result *simulation.BatchResult) *models.SimulationRun {
	params := result.Params

	longestLength := 0
	longestValue := ""
	for _, f := range result.RunLengths {
		if f.Length > longestLength {
			longestLength = f.Length
			longestValue = f.Value.String()
		}
	}

	steps := len(result.NonNegativeFraction)
	finalNonNegative := 0.0
	if steps > 0 {
		finalNonNegative = result.NonNegativeFraction[steps-1]
	}

	return &models.SimulationRun{
		WinProbability:      params.WinProbability,
		Steps:               params.Steps,
		Gamblers:            params.Gamblers,
		BatchSeed:           int64(params.BatchSeed),
		InitialBet:          params.Policy.Initial,
		BetIncrease:         params.Policy.Increase,
		MaxBet:              params.Policy.MaxBet,
		PayoffRatio:         params.PayoffRatio,
		CompletedTrials:     result.CompletedTrials,
		Partial:             result.Partial,
		MeanFinalProfit:     result.FinalSummary.Mean,
		StdDevFinalProfit:   result.FinalSummary.StdDev,
		MinFinalProfit:      result.FinalSummary.Min,
		MaxFinalProfit:      result.FinalSummary.Max,
		MedianFinalProfit:   result.FinalSummary.Median,
		NonNegativeFraction: finalNonNegative,
		LongestRunLength:    longestLength,
		LongestRunValue:     longestValue,
		DurationMS:          result.Elapsed.Milliseconds(),
	}
}
