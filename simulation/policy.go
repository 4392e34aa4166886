package simulation

import "fmt"

// PolicyConfig parameterizes the streak betting strategy.
//
// MaxBet caps the bet growth during long win streaks; zero means uncapped,
// which is the classic form of the strategy. The cap exists because an
// unbroken streak otherwise grows the bet without bound.
type PolicyConfig struct {
	Initial  float64
	Increase float64
	MaxBet   float64
}

// Validate rejects a config that could produce a non-positive or shrinking
// bet before any simulation runs.
func (c PolicyConfig) Validate() error {
	if c.Initial <= 0 {
		return fmt.Errorf("initial bet must be positive, got %v", c.Initial)
	}
	if c.Increase < 0 {
		return fmt.Errorf("bet increase must not be negative, got %v", c.Increase)
	}
	if c.MaxBet < 0 {
		return fmt.Errorf("max bet must not be negative, got %v", c.MaxBet)
	}
	if c.MaxBet > 0 && c.MaxBet < c.Initial {
		return fmt.Errorf("max bet %v is below the initial bet %v", c.MaxBet, c.Initial)
	}
	return nil
}

// BetState is the full state of the streak betting strategy between steps.
// It is a value type: Next returns a new state and never mutates shared
// counters.
type BetState struct {
	StreakCount int
	CurrentBet  float64
}

// InitialState is the state before the first step: no streak, initial bet.
func (c PolicyConfig) InitialState() BetState {
	return BetState{StreakCount: 0, CurrentBet: c.Initial}
}

// Next transitions the state using the previous step's outcome. A win
// extends the streak and, from the second consecutive win on, raises the
// bet by Increase. A loss resets both the streak and the bet.
func (c PolicyConfig) Next(state BetState, prev Outcome) BetState {
	if prev == Lose {
		return c.InitialState()
	}

	next := BetState{StreakCount: state.StreakCount + 1, CurrentBet: state.CurrentBet}
	if next.StreakCount >= 2 {
		next.CurrentBet += c.Increase
		if c.MaxBet > 0 && next.CurrentBet > c.MaxBet {
			next.CurrentBet = c.MaxBet
		}
	}
	return next
}

// Bets materializes the bet placed at every step of a trial. The bet at
// step i is decided before seeing step i's outcome, so it depends only on
// outcomes up to i-1; the first bet is always the initial bet.
func (c PolicyConfig) Bets(seq OutcomeSequence) []float64 {
	bets := make([]float64, len(seq))
	state := c.InitialState()
	for i := range seq {
		bets[i] = state.CurrentBet
		state = c.Next(state, seq[i])
	}
	return bets
}
