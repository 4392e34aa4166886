package simulation

// Outcome is the result of a single step: a win or a loss.
type Outcome uint8

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "W"
	}
	return "L"
}

// OutcomeSequence is the ordered record of one trial's steps. It is
// generated once and never mutated afterwards.
type OutcomeSequence []Outcome

// Wins returns the number of winning steps in the sequence.
func (seq OutcomeSequence) Wins() int {
	wins := 0
	for _, o := range seq {
		if o == Win {
			wins++
		}
	}
	return wins
}

// String renders the sequence as a compact W/L string, e.g. "LWWWL".
func (seq OutcomeSequence) String() string {
	buf := make([]byte, len(seq))
	for i, o := range seq {
		buf[i] = o.String()[0]
	}
	return string(buf)
}
