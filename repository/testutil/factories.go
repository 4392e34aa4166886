package testutil

import "streaksim/models"

// CreateTestSimulationRun builds a plausible run record for repository
// tests. The seed doubles as a marker to tell records apart.
func CreateTestSimulationRun(seed int64) *models.SimulationRun {
	return &models.SimulationRun{
		WinProbability:      0.5,
		Steps:               1000,
		Gamblers:            100,
		BatchSeed:           seed,
		InitialBet:          1,
		BetIncrease:         0.5,
		MaxBet:              0,
		PayoffRatio:         0.95,
		CompletedTrials:     100,
		Partial:             false,
		MeanFinalProfit:     -26.4,
		StdDevFinalProfit:   38.2,
		MinFinalProfit:      -131.5,
		MaxFinalProfit:      88.75,
		MedianFinalProfit:   -25.0,
		NonNegativeFraction: 0.21,
		LongestRunLength:    12,
		LongestRunValue:     "L",
		DurationMS:          180,
	}
}
