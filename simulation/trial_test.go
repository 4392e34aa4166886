package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		WinProbability:  0.5,
		Steps:           1000,
		Gamblers:        50,
		BatchSeed:       1,
		Policy:          PolicyConfig{Initial: 1, Increase: 0.5},
		PayoffRatio:     0.95,
		LagDepths:       []int{1, 2, 3},
		ConfidenceLevel: 0.95,
	}
}

func TestRunTrial_Shapes(t *testing.T) {
	trial, err := RunTrial(0, testParams())
	require.NoError(t, err)

	assert.Equal(t, 0, trial.Index)
	assert.Len(t, trial.Outcomes, 1000)
	assert.Len(t, trial.Bets, 1000)
	assert.Len(t, trial.Profits, 1000)
	assert.Len(t, trial.Cumulative(), 1000)
}

func TestRunTrial_Deterministic(t *testing.T) {
	params := testParams()

	first, err := RunTrial(3, params)
	require.NoError(t, err)
	second, err := RunTrial(3, params)
	require.NoError(t, err)

	assert.Equal(t, first.Outcomes, second.Outcomes)
	assert.Equal(t, first.Bets, second.Bets)
	assert.Equal(t, first.Profits, second.Profits)
}

func TestRunTrial_ConsistentSequences(t *testing.T) {
	params := testParams()
	trial, err := RunTrial(0, params)
	require.NoError(t, err)

	state := params.Policy.InitialState()
	for i, o := range trial.Outcomes {
		assert.Equal(t, state.CurrentBet, trial.Bets[i], "bet mismatch at step %d", i)
		assert.Equal(t, Profit(o, trial.Bets[i], params.PayoffRatio), trial.Profits[i], "profit mismatch at step %d", i)
		state = params.Policy.Next(state, o)
	}
}

func TestRunTrial_Encoding(t *testing.T) {
	trial, err := RunTrial(0, testParams())
	require.NoError(t, err)

	assert.Equal(t, trial.Outcomes, Decode(trial.Encoding()))
}
