package models

import "time"

// SimulationRun is the persisted record of one completed Monte Carlo
// batch: the parameters it ran with and the cross-trial summary it
// produced. The full per-trial sequences are not stored; a run is cheap
// to recompute from its seed.
type SimulationRun struct {
	ID int64

	WinProbability float64
	Steps          int
	Gamblers       int
	BatchSeed      int64
	InitialBet     float64
	BetIncrease    float64
	MaxBet         float64
	PayoffRatio    float64

	CompletedTrials int
	Partial         bool

	MeanFinalProfit     float64
	StdDevFinalProfit   float64
	MinFinalProfit      float64
	MaxFinalProfit      float64
	MedianFinalProfit   float64
	NonNegativeFraction float64
	LongestRunLength    int
	LongestRunValue     string

	DurationMS int64
	CreatedAt  time.Time
}
