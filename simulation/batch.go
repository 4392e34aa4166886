package simulation

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DistributionSummary describes the spread of final cumulative profits
// across a batch.
type DistributionSummary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	P05    float64
	P95    float64
}

// BatchResult is everything a batch produces: the completed trials, the
// cross-trial statistics over them, the aggregated run-length table and
// the dependence tables. When the batch was cut short, Partial is set and
// every statistic covers only the completed subset.
type BatchResult struct {
	Params Params

	// Trials holds the completed trials in index order.
	Trials []Trial

	// CumulativeProfits is one row per completed trial, prefix-summed.
	CumulativeProfits [][]float64
	// MeanCumulative is the column-wise average of CumulativeProfits.
	MeanCumulative []float64
	// NonNegativeFraction is, per step, the fraction of completed trials
	// whose cumulative profit is still >= 0.
	NonNegativeFraction []float64
	// FinalProfits is each completed trial's cumulative profit at the
	// last step.
	FinalProfits []float64
	FinalSummary DistributionSummary

	// RunLengths aggregates the run-length frequency tables of every
	// completed trial.
	RunLengths []RunFrequency
	// Dependence holds one conditional win-proportion table per
	// configured lag depth, pooled over completed trials.
	Dependence []DependenceTable

	Partial         bool
	CompletedTrials int
	Elapsed         time.Duration
}

// RunBatch computes params.Gamblers independent trials and aggregates
// them. Trials are dispatched to a bounded worker pool; because every
// trial reads only its own (batchSeed, index)-derived stream and writes
// only its own slot, the result is identical for any worker count.
//
// Cancelling ctx stops the dispatch of new trials. Trials already in
// flight run to completion, the statistics are computed over the
// completed subset only, and the result is flagged partial.
func RunBatch(ctx context.Context, params Params) (*BatchResult, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch parameters: %w", err)
	}

	start := time.Now()

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > params.Gamblers {
		workers = params.Gamblers
	}

	trials := make([]Trial, params.Gamblers)
	completed := make([]bool, params.Gamblers)

	jobs := make(chan int)
	var mu sync.Mutex
	var firstErr error
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				trial, err := RunTrial(index, params)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				trials[index] = trial
				completed[index] = true
			}
		}()
	}

	cancelled := false
dispatch:
	for i := 0; i < params.Gamblers; i++ {
		select {
		case <-ctx.Done():
			cancelled = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	done := make([]Trial, 0, params.Gamblers)
	for i, trial := range trials {
		if completed[i] {
			done = append(done, trial)
		}
	}
	if len(done) == 0 {
		return nil, fmt.Errorf("batch cancelled before any trial completed: %w", ctx.Err())
	}

	result := aggregate(params, done)
	result.Partial = cancelled || len(done) < params.Gamblers
	result.Elapsed = time.Since(start)
	return result, nil
}

func aggregate(params Params, trials []Trial) *BatchResult {
	m := len(trials)
	n := params.Steps

	matrix := make([][]float64, m)
	finals := make([]float64, m)
	tables := make([][]RunFrequency, m)
	seqs := make([]OutcomeSequence, m)
	for i, trial := range trials {
		row := trial.Cumulative()
		matrix[i] = row
		finals[i] = row[n-1]
		tables[i] = trial.Encoding().FrequencyTable()
		seqs[i] = trial.Outcomes
	}

	meanCum := make([]float64, n)
	nonNeg := make([]float64, n)
	column := make([]float64, m)
	for j := 0; j < n; j++ {
		atOrAbove := 0
		for i := 0; i < m; i++ {
			column[i] = matrix[i][j]
			if matrix[i][j] >= 0 {
				atOrAbove++
			}
		}
		meanCum[j] = stat.Mean(column, nil)
		nonNeg[j] = float64(atOrAbove) / float64(m)
	}

	// AnalyzeDependence only rejects inputs Params.Validate already
	// checked, so the error cannot occur here.
	dependence, _ := AnalyzeDependence(seqs, params.LagDepths, params.ConfidenceLevel)

	return &BatchResult{
		Params:              params,
		Trials:              trials,
		CumulativeProfits:   matrix,
		MeanCumulative:      meanCum,
		NonNegativeFraction: nonNeg,
		FinalProfits:        finals,
		FinalSummary:        summarize(finals),
		RunLengths:          MergeFrequencyTables(tables...),
		Dependence:          dependence,
		CompletedTrials:     m,
	}
}

func summarize(finals []float64) DistributionSummary {
	sorted := make([]float64, len(finals))
	copy(sorted, finals)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}
	if math.IsNaN(std) {
		std = 0
	}
	return DistributionSummary{
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P05:    stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
