package simulation

import "fmt"

// Trial is one simulated gambler: the outcomes drawn for it, the bet
// placed at each step, and the resulting per-step profit. All three
// sequences have the same length and are derived solely from the trial's
// own random stream plus configuration; trials share no state.
type Trial struct {
	Index    int
	Outcomes OutcomeSequence
	Bets     []float64
	Profits  []float64
}

// RunTrial computes one full trial: generate outcomes from the trial's
// substream, derive the bet sequence from the policy, then the profit
// sequence from the payoff ratio.
func RunTrial(index int, params Params) (Trial, error) {
	stream := NewStream(params.BatchSeed, uint64(index))
	outcomes, err := Generate(params.Steps, params.WinProbability, stream)
	if err != nil {
		return Trial{}, fmt.Errorf("failed to generate outcomes for trial %d: %w", index, err)
	}

	bets := params.Policy.Bets(outcomes)
	return Trial{
		Index:    index,
		Outcomes: outcomes,
		Bets:     bets,
		Profits:  Profits(outcomes, bets, params.PayoffRatio),
	}, nil
}

// Cumulative returns the running total of the trial's profits.
func (t Trial) Cumulative() []float64 {
	return Cumulative(t.Profits)
}

// Encoding returns the run-length encoding of the trial's outcomes.
func (t Trial) Encoding() RunLengthEncoding {
	return Encode(t.Outcomes)
}
