package simulation

import "fmt"

// Generate draws a length-n sequence of independent Bernoulli(p) outcomes
// from the given stream. Two calls with the same (n, p, stream seed)
// produce identical sequences.
func Generate(n int, p float64, stream *Stream) (OutcomeSequence, error) {
	if n < 1 {
		return nil, fmt.Errorf("sequence length must be at least 1, got %d", n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("win probability must be between 0 and 1, got %v", p)
	}
	if stream == nil {
		return nil, fmt.Errorf("random stream is required")
	}

	seq := make(OutcomeSequence, n)
	for i := range seq {
		if stream.Float64() < p {
			seq[i] = Win
		}
	}
	return seq, nil
}
