package simulation

import "math/rand/v2"

// Stream is a deterministic source of uniform draws for a single trial.
// Each trial gets its own substream derived from the batch seed and the
// trial index, so a batch reproduces exactly regardless of execution
// order or degree of parallelism.
type Stream struct {
	r *rand.Rand
}

// NewStream derives the substream for one trial of a batch.
// The (batchSeed, trialIndex) pair fully determines every draw.
func NewStream(batchSeed, trialIndex uint64) *Stream {
	return &Stream{r: rand.New(rand.NewPCG(batchSeed, trialIndex))}
}

// Float64 returns the next uniform draw in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}
