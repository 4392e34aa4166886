package simulation

import "fmt"

// Params is everything a batch needs: the outcome model, the betting
// strategy, the payoff, the batch shape and the analysis depths. It is
// validated once, before any random draw occurs.
type Params struct {
	// WinProbability is the Bernoulli parameter of every step.
	WinProbability float64
	// Steps is the number of bets each gambler places.
	Steps int
	// Gamblers is the number of independent trials in the batch.
	Gamblers int
	// BatchSeed is the reproducibility root; every trial's stream is
	// derived from it and the trial index.
	BatchSeed uint64
	// Policy configures the streak betting strategy.
	Policy PolicyConfig
	// PayoffRatio is the profit per unit wagered on a win.
	PayoffRatio float64
	// LagDepths are the history lengths checked by the dependence
	// analyzer.
	LagDepths []int
	// ConfidenceLevel sets the width of the analyzer's confidence bands.
	ConfidenceLevel float64
	// Workers bounds the number of trials computed concurrently;
	// zero or negative means one worker per CPU.
	Workers int
}

// Validate checks every constraint on the configuration surface. It fails
// fast so that no partial batch is ever produced from bad parameters.
func (p Params) Validate() error {
	if p.WinProbability < 0 || p.WinProbability > 1 {
		return fmt.Errorf("win probability must be between 0 and 1, got %v", p.WinProbability)
	}
	if p.Steps < 1 {
		return fmt.Errorf("steps per trial must be at least 1, got %d", p.Steps)
	}
	if p.Gamblers < 1 {
		return fmt.Errorf("gamblers per batch must be at least 1, got %d", p.Gamblers)
	}
	if err := p.Policy.Validate(); err != nil {
		return fmt.Errorf("invalid bet policy: %w", err)
	}
	if p.PayoffRatio < 0 {
		return fmt.Errorf("payoff ratio must not be negative, got %v", p.PayoffRatio)
	}
	if len(p.LagDepths) == 0 {
		return fmt.Errorf("at least one lag depth is required")
	}
	for _, k := range p.LagDepths {
		if k < 1 {
			return fmt.Errorf("lag depths must be at least 1, got %d", k)
		}
	}
	if p.ConfidenceLevel <= 0 || p.ConfidenceLevel >= 1 {
		return fmt.Errorf("confidence level must be strictly between 0 and 1, got %v", p.ConfidenceLevel)
	}
	return nil
}
