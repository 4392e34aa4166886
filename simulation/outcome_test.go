package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "W", Win.String())
	assert.Equal(t, "L", Lose.String())
	assert.Equal(t, "LWWWL", seqFromString(t, "LWWWL").String())
}

func TestOutcomeSequence_Wins(t *testing.T) {
	assert.Equal(t, 3, seqFromString(t, "LWWWL").Wins())
	assert.Equal(t, 0, OutcomeSequence(nil).Wins())
}
