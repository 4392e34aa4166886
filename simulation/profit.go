package simulation

// Profit returns the signed result of a single step: bet*payoffRatio on a
// win, the full bet lost otherwise.
func Profit(o Outcome, bet, payoffRatio float64) float64 {
	if o == Win {
		return bet * payoffRatio
	}
	return -bet
}

// Profits applies the profit formula element-wise over a trial's outcome
// and bet sequences.
func Profits(seq OutcomeSequence, bets []float64, payoffRatio float64) []float64 {
	profits := make([]float64, len(seq))
	for i, o := range seq {
		profits[i] = Profit(o, bets[i], payoffRatio)
	}
	return profits
}

// Cumulative prefix-sums a profit sequence into the running total after
// each step.
func Cumulative(profits []float64) []float64 {
	cum := make([]float64, len(profits))
	total := 0.0
	for i, p := range profits {
		total += p
		cum[i] = total
	}
	return cum
}
