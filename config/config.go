package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"streaksim/simulation"
)

// Config holds all application configuration
type Config struct {
	// Simulation configuration
	WinProbability  float64
	Steps           int
	Gamblers        int
	BatchSeed       uint64
	InitialBet      float64
	BetIncrease     float64
	MaxBet          float64 // 0 disables the cap
	PayoffRatio     float64
	LagDepths       []int
	ConfidenceLevel float64
	Workers         int

	// Database configuration; empty means runs are not persisted
	DatabaseURL string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Simulation defaults: a fair coin, 1000 bets per gambler,
		// 1000 gamblers, streak betting 1 + 0.5, 95% payoff.
		WinProbability:  0.5,
		Steps:           1000,
		Gamblers:        1000,
		BatchSeed:       1,
		InitialBet:      1,
		BetIncrease:     0.5,
		MaxBet:          0,
		PayoffRatio:     0.95,
		LagDepths:       []int{1, 2, 3},
		ConfidenceLevel: 0.95,
		Workers:         0,

		DatabaseURL: os.Getenv("DATABASE_URL"),
		Environment: os.Getenv("ENVIRONMENT"),
	}

	var err error
	if config.WinProbability, err = floatEnv("WIN_PROBABILITY", config.WinProbability); err != nil {
		return nil, err
	}
	if config.Steps, err = intEnv("STEPS", config.Steps); err != nil {
		return nil, err
	}
	if config.Gamblers, err = intEnv("GAMBLERS", config.Gamblers); err != nil {
		return nil, err
	}
	if config.InitialBet, err = floatEnv("INITIAL_BET", config.InitialBet); err != nil {
		return nil, err
	}
	if config.BetIncrease, err = floatEnv("BET_INCREASE", config.BetIncrease); err != nil {
		return nil, err
	}
	if config.MaxBet, err = floatEnv("MAX_BET", config.MaxBet); err != nil {
		return nil, err
	}
	if config.PayoffRatio, err = floatEnv("PAYOFF_RATIO", config.PayoffRatio); err != nil {
		return nil, err
	}
	if config.ConfidenceLevel, err = floatEnv("CONFIDENCE_LEVEL", config.ConfidenceLevel); err != nil {
		return nil, err
	}
	if config.Workers, err = intEnv("WORKERS", config.Workers); err != nil {
		return nil, err
	}

	if seed := os.Getenv("BATCH_SEED"); seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_SEED %q: %w", seed, err)
		}
		config.BatchSeed = parsed
	}

	if depths := os.Getenv("LAG_DEPTHS"); depths != "" {
		parsed, err := parseLagDepths(depths)
		if err != nil {
			return nil, err
		}
		config.LagDepths = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if err := config.SimulationParams().Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SimulationParams maps the configuration onto the engine's parameter set.
func (c *Config) SimulationParams() simulation.Params {
	return simulation.Params{
		WinProbability: c.WinProbability,
		Steps:          c.Steps,
		Gamblers:       c.Gamblers,
		BatchSeed:      c.BatchSeed,
		Policy: simulation.PolicyConfig{
			Initial:  c.InitialBet,
			Increase: c.BetIncrease,
			MaxBet:   c.MaxBet,
		},
		PayoffRatio:     c.PayoffRatio,
		LagDepths:       c.LagDepths,
		ConfidenceLevel: c.ConfidenceLevel,
		Workers:         c.Workers,
	}
}

func floatEnv(name string, fallback float64) (float64, error) {
	value := os.Getenv(name)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return parsed, nil
}

func intEnv(name string, fallback int) (int, error) {
	value := os.Getenv(name)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return parsed, nil
}

func parseLagDepths(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	depths := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		depth, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid LAG_DEPTHS entry %q: %w", part, err)
		}
		depths = append(depths, depth)
	}
	if len(depths) == 0 {
		return nil, fmt.Errorf("LAG_DEPTHS %q contains no depths", value)
	}
	return depths, nil
}
