package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_InitialState(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0.5}
	state := cfg.InitialState()

	assert.Equal(t, 0, state.StreakCount)
	assert.Equal(t, 1.0, state.CurrentBet)
}

func TestPolicy_FirstWinLeavesBetUnchanged(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0.5}

	state := cfg.Next(cfg.InitialState(), Win)
	assert.Equal(t, 1, state.StreakCount)
	assert.Equal(t, 1.0, state.CurrentBet, "the first win of a new streak must not raise the bet")
}

func TestPolicy_StreakRaisesBet(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0.5}

	state := cfg.InitialState()
	state = cfg.Next(state, Win)
	state = cfg.Next(state, Win)
	assert.Equal(t, 2, state.StreakCount)
	assert.Equal(t, 1.5, state.CurrentBet)

	state = cfg.Next(state, Win)
	assert.Equal(t, 3, state.StreakCount)
	assert.Equal(t, 2.0, state.CurrentBet, "every consecutive win past the first keeps raising the bet")
}

func TestPolicy_LossResets(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0.5}

	state := cfg.InitialState()
	for i := 0; i < 5; i++ {
		state = cfg.Next(state, Win)
	}
	require.Greater(t, state.CurrentBet, cfg.Initial)

	state = cfg.Next(state, Lose)
	assert.Equal(t, 0, state.StreakCount)
	assert.Equal(t, cfg.Initial, state.CurrentBet, "a loss must reset the bet to the initial amount")
}

func TestPolicy_Bets(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0.5}

	bets := cfg.Bets(seqFromString(t, "LWWW"))
	assert.Equal(t, []float64{1, 1, 1, 1.5}, bets)

	bets = cfg.Bets(seqFromString(t, "WWWWL"))
	assert.Equal(t, []float64{1, 1, 1.5, 2, 2.5}, bets)

	bets = cfg.Bets(seqFromString(t, "WWLWW"))
	assert.Equal(t, []float64{1, 1, 1.5, 1, 1}, bets)
}

func TestPolicy_FirstBetIsInitial(t *testing.T) {
	cfg := PolicyConfig{Initial: 2.5, Increase: 1}

	for _, s := range []string{"W", "L", "WWWW", "LLLL"} {
		bets := cfg.Bets(seqFromString(t, s))
		assert.Equal(t, 2.5, bets[0], "bet before any outcome must equal the initial bet")
	}
}

func TestPolicy_BetNeverBelowInitial(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0.5}

	seq, err := Generate(10000, 0.5, NewStream(5, 0))
	require.NoError(t, err)

	for i, bet := range cfg.Bets(seq) {
		assert.GreaterOrEqual(t, bet, cfg.Initial, "bet below initial at step %d", i)
	}
}

func TestPolicy_ZeroIncrease(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 0}

	bets := cfg.Bets(seqFromString(t, "WWWWWW"))
	for _, bet := range bets {
		assert.Equal(t, 1.0, bet)
	}
}

func TestPolicy_MaxBetCapsGrowth(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 1, MaxBet: 3}

	bets := cfg.Bets(seqFromString(t, "WWWWWWWW"))
	assert.Equal(t, []float64{1, 1, 2, 3, 3, 3, 3, 3}, bets)
}

func TestPolicy_UncappedGrowth(t *testing.T) {
	cfg := PolicyConfig{Initial: 1, Increase: 1}

	bets := cfg.Bets(seqFromString(t, "WWWWWWWW"))
	assert.Equal(t, 7.0, bets[7], "without a cap the bet grows with the streak")
}

func TestPolicyConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PolicyConfig
		wantErr bool
	}{
		{"valid", PolicyConfig{Initial: 1, Increase: 0.5}, false},
		{"valid capped", PolicyConfig{Initial: 1, Increase: 0.5, MaxBet: 10}, false},
		{"zero initial", PolicyConfig{Initial: 0, Increase: 0.5}, true},
		{"negative initial", PolicyConfig{Initial: -1, Increase: 0.5}, true},
		{"negative increase", PolicyConfig{Initial: 1, Increase: -0.1}, true},
		{"negative cap", PolicyConfig{Initial: 1, Increase: 0.5, MaxBet: -1}, true},
		{"cap below initial", PolicyConfig{Initial: 2, Increase: 0.5, MaxBet: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
