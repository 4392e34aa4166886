package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.WinProbability)
	assert.Equal(t, 1000, cfg.Steps)
	assert.Equal(t, 1000, cfg.Gamblers)
	assert.Equal(t, uint64(1), cfg.BatchSeed)
	assert.Equal(t, 1.0, cfg.InitialBet)
	assert.Equal(t, 0.5, cfg.BetIncrease)
	assert.Equal(t, 0.0, cfg.MaxBet)
	assert.Equal(t, 0.95, cfg.PayoffRatio)
	assert.Equal(t, []int{1, 2, 3}, cfg.LagDepths)
	assert.Equal(t, 0.95, cfg.ConfidenceLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WIN_PROBABILITY", "0.25")
	t.Setenv("STEPS", "50")
	t.Setenv("GAMBLERS", "10")
	t.Setenv("BATCH_SEED", "12345")
	t.Setenv("INITIAL_BET", "2")
	t.Setenv("BET_INCREASE", "1")
	t.Setenv("MAX_BET", "20")
	t.Setenv("PAYOFF_RATIO", "1")
	t.Setenv("LAG_DEPTHS", "1, 4")
	t.Setenv("CONFIDENCE_LEVEL", "0.99")
	t.Setenv("WORKERS", "4")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/streaksim")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.WinProbability)
	assert.Equal(t, 50, cfg.Steps)
	assert.Equal(t, 10, cfg.Gamblers)
	assert.Equal(t, uint64(12345), cfg.BatchSeed)
	assert.Equal(t, 2.0, cfg.InitialBet)
	assert.Equal(t, 1.0, cfg.BetIncrease)
	assert.Equal(t, 20.0, cfg.MaxBet)
	assert.Equal(t, 1.0, cfg.PayoffRatio)
	assert.Equal(t, []int{1, 4}, cfg.LagDepths)
	assert.Equal(t, 0.99, cfg.ConfidenceLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "postgres://localhost/streaksim", cfg.DatabaseURL)
}

func TestLoad_RejectsUnparseableValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"WIN_PROBABILITY", "half"},
		{"STEPS", "1e3"},
		{"GAMBLERS", "many"},
		{"BATCH_SEED", "-1"},
		{"LAG_DEPTHS", "1,x"},
		{"LAG_DEPTHS", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			_, err := load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsInvalidSimulationParams(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"WIN_PROBABILITY", "1.5"},
		{"STEPS", "0"},
		{"GAMBLERS", "0"},
		{"INITIAL_BET", "0"},
		{"BET_INCREASE", "-0.5"},
		{"PAYOFF_RATIO", "-1"},
		{"LAG_DEPTHS", "0"},
		{"CONFIDENCE_LEVEL", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			_, err := load()
			assert.Error(t, err)
		})
	}
}

func TestSimulationParams_Mapping(t *testing.T) {
	cfg := &Config{
		WinProbability:  0.4,
		Steps:           100,
		Gamblers:        5,
		BatchSeed:       9,
		InitialBet:      1,
		BetIncrease:     0.5,
		MaxBet:          10,
		PayoffRatio:     0.95,
		LagDepths:       []int{1, 2},
		ConfidenceLevel: 0.95,
		Workers:         2,
	}

	params := cfg.SimulationParams()
	require.NoError(t, params.Validate())
	assert.Equal(t, 0.4, params.WinProbability)
	assert.Equal(t, uint64(9), params.BatchSeed)
	assert.Equal(t, 10.0, params.Policy.MaxBet)
	assert.Equal(t, []int{1, 2}, params.LagDepths)
}
