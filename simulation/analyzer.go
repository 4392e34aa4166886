package simulation

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ConditionalStat is one row of a dependence table: how often a specific
// history pattern occurred, and how often the step right after it was a
// win, with a normal-approximation confidence band around that proportion.
type ConditionalStat struct {
	Pattern        string
	Count          int
	WinProbability float64
	Lower          float64
	Upper          float64
}

// Contains reports whether p falls inside the stat's confidence band.
func (s ConditionalStat) Contains(p float64) bool {
	return p >= s.Lower && p <= s.Upper
}

// DependenceTable holds the conditional win-proportions for every realized
// history pattern of one depth, sorted by pattern.
type DependenceTable struct {
	Depth int
	Stats []ConditionalStat
}

// AnalyzeDependence measures whether outcomes are conditioned on recent
// history. For each depth k it groups every position by the k outcomes
// preceding it and estimates the probability that the next outcome is a
// win. Under the i.i.d. generative model every estimate must be
// statistically indistinguishable from the base rate.
//
// Sequences are pooled: patterns are counted across all of them, which is
// how a batch gains statistical power at larger depths. Patterns that
// never occur are excluded, since their proportion is undefined.
func AnalyzeDependence(seqs []OutcomeSequence, depths []int, confidenceLevel float64) ([]DependenceTable, error) {
	if len(depths) == 0 {
		return nil, fmt.Errorf("at least one lag depth is required")
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, fmt.Errorf("confidence level must be strictly between 0 and 1, got %v", confidenceLevel)
	}
	for _, k := range depths {
		if k < 1 {
			return nil, fmt.Errorf("lag depths must be at least 1, got %d", k)
		}
	}

	z := distuv.UnitNormal.Quantile(1 - (1-confidenceLevel)/2)

	tables := make([]DependenceTable, 0, len(depths))
	for _, k := range depths {
		tables = append(tables, analyzeDepth(seqs, k, z))
	}
	return tables, nil
}

type patternCount struct {
	total int
	wins  int
}

func analyzeDepth(seqs []OutcomeSequence, k int, z float64) DependenceTable {
	counts := make(map[string]*patternCount)
	for _, seq := range seqs {
		for i := k; i < len(seq); i++ {
			pattern := seq[i-k : i].String()
			c := counts[pattern]
			if c == nil {
				c = &patternCount{}
				counts[pattern] = c
			}
			c.total++
			if seq[i] == Win {
				c.wins++
			}
		}
	}

	patterns := make([]string, 0, len(counts))
	for pattern := range counts {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	stats := make([]ConditionalStat, 0, len(patterns))
	for _, pattern := range patterns {
		c := counts[pattern]
		stats = append(stats, newConditionalStat(pattern, c, z))
	}
	return DependenceTable{Depth: k, Stats: stats}
}

func newConditionalStat(pattern string, c *patternCount, z float64) ConditionalStat {
	pHat := float64(c.wins) / float64(c.total)
	half := z * stdErr(pHat, c.total)
	return ConditionalStat{
		Pattern:        pattern,
		Count:          c.total,
		WinProbability: pHat,
		Lower:          pHat - half,
		Upper:          pHat + half,
	}
}

func stdErr(pHat float64, n int) float64 {
	return math.Sqrt(pHat * (1 - pHat) / float64(n))
}
