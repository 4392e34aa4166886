package cmd

import (
	"context"
	"fmt"

	"streaksim/config"
	"streaksim/database"
	"streaksim/events"
	"streaksim/repository"
	"streaksim/service"
	"streaksim/simulation"

	log "github.com/sirupsen/logrus"
)

// Run initializes the application and executes one Monte Carlo batch.
// Cancelling ctx (SIGINT/SIGTERM) terminates the batch early; whatever
// completed is still aggregated, reported and recorded, flagged partial.
func Run(ctx context.Context) error {
	cfg := config.Get()
	configureLogging(cfg)

	eventBus := events.NewBus()
	eventBus.Subscribe(events.EventTypeBatchCompleted, logBatchCompleted)

	var runRepo service.RunRepository
	if cfg.DatabaseURL != "" {
		log.Info("Connecting to database...")
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		runRepo = repository.NewRunRepository(db)
	} else {
		log.Info("No DATABASE_URL configured; runs will not be persisted")
	}

	simulationService := service.NewSimulationService(runRepo, eventBus)

	result, err := simulationService.Run(ctx, cfg.SimulationParams())
	if err != nil {
		return err
	}

	report(result)
	return nil
}

func configureLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetLevel(log.DebugLevel)
}

func logBatchCompleted(ctx context.Context, event events.Event) {
	e := event.(events.BatchCompletedEvent)
	log.WithFields(log.Fields{
		"gamblers":        e.Gamblers,
		"steps":           e.Steps,
		"completedTrials": e.CompletedTrials,
		"partial":         e.Partial,
		"meanFinalProfit": e.MeanFinalProfit,
		"elapsed":         e.Elapsed,
	}).Info("Batch completed")
}

// report logs the cross-trial statistics, the aggregated run-length table
// and the dependence tables.
func report(result *simulation.BatchResult) {
	summary := result.FinalSummary
	steps := len(result.NonNegativeFraction)

	log.WithFields(log.Fields{
		"mean":   summary.Mean,
		"stdDev": summary.StdDev,
		"min":    summary.Min,
		"max":    summary.Max,
		"median": summary.Median,
		"p05":    summary.P05,
		"p95":    summary.P95,
	}).Info("Final cumulative profit across gamblers")

	if steps > 0 {
		log.WithFields(log.Fields{
			"step":                steps,
			"nonNegativeFraction": result.NonNegativeFraction[steps-1],
			"meanCumulative":      result.MeanCumulative[steps-1],
		}).Info("Final step statistics")
	}

	for _, f := range result.RunLengths {
		log.WithFields(log.Fields{
			"value":  f.Value.String(),
			"length": f.Length,
			"count":  f.Count,
		}).Debug("Run length frequency")
	}

	for _, table := range result.Dependence {
		for _, s := range table.Stats {
			log.WithFields(log.Fields{
				"depth":          table.Depth,
				"pattern":        s.Pattern,
				"count":          s.Count,
				"winProbability": s.WinProbability,
				"lower":          s.Lower,
				"upper":          s.Upper,
			}).Info("Conditional win proportion")
		}
	}
}
