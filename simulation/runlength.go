package simulation

import "sort"

// Run is a maximal stretch of identical outcomes within a sequence.
type Run struct {
	Value  Outcome
	Length int
	Start  int
}

// RunLengthEncoding is a lossless compression of an outcome sequence into
// its runs. Concatenating the runs in order reproduces the sequence
// exactly; adjacent runs never share a value.
type RunLengthEncoding []Run

// Encode compresses seq into its run-length encoding in a single pass.
func Encode(seq OutcomeSequence) RunLengthEncoding {
	if len(seq) == 0 {
		return nil
	}

	enc := RunLengthEncoding{{Value: seq[0], Length: 1, Start: 0}}
	for i := 1; i < len(seq); i++ {
		last := &enc[len(enc)-1]
		if seq[i] == last.Value {
			last.Length++
			continue
		}
		enc = append(enc, Run{Value: seq[i], Length: 1, Start: i})
	}
	return enc
}

// Decode expands an encoding back into the original sequence.
func Decode(enc RunLengthEncoding) OutcomeSequence {
	total := 0
	for _, r := range enc {
		total += r.Length
	}
	if total == 0 {
		return nil
	}

	seq := make(OutcomeSequence, 0, total)
	for _, r := range enc {
		for i := 0; i < r.Length; i++ {
			seq = append(seq, r.Value)
		}
	}
	return seq
}

// Longest returns the longest run in the encoding. Ties go to the earliest
// run. The second return is false for an empty encoding.
func (enc RunLengthEncoding) Longest() (Run, bool) {
	if len(enc) == 0 {
		return Run{}, false
	}
	longest := enc[0]
	for _, r := range enc[1:] {
		if r.Length > longest.Length {
			longest = r
		}
	}
	return longest, true
}

// LongestByValue returns the longest run of the given value, or false if
// the value never occurs.
func (enc RunLengthEncoding) LongestByValue(v Outcome) (Run, bool) {
	var longest Run
	found := false
	for _, r := range enc {
		if r.Value == v && r.Length > longest.Length {
			longest = r
			found = true
		}
	}
	return longest, found
}

// RunFrequency counts how many runs of a given value and length occur.
type RunFrequency struct {
	Value  Outcome
	Length int
	Count  int
}

// FrequencyTable groups the runs by (value, length) and returns the counts
// sorted by value then length, so table contents iterate deterministically.
func (enc RunLengthEncoding) FrequencyTable() []RunFrequency {
	type key struct {
		value  Outcome
		length int
	}
	counts := make(map[key]int)
	for _, r := range enc {
		counts[key{r.Value, r.Length}]++
	}

	table := make([]RunFrequency, 0, len(counts))
	for k, c := range counts {
		table = append(table, RunFrequency{Value: k.value, Length: k.length, Count: c})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Value != table[j].Value {
			return table[i].Value < table[j].Value
		}
		return table[i].Length < table[j].Length
	})
	return table
}

// MergeFrequencyTables combines per-trial frequency tables into one,
// preserving the sorted ordering.
func MergeFrequencyTables(tables ...[]RunFrequency) []RunFrequency {
	type key struct {
		value  Outcome
		length int
	}
	counts := make(map[key]int)
	for _, table := range tables {
		for _, f := range table {
			counts[key{f.Value, f.Length}] += f.Count
		}
	}

	merged := make([]RunFrequency, 0, len(counts))
	for k, c := range counts {
		merged = append(merged, RunFrequency{Value: k.value, Length: k.length, Count: c})
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Value != merged[j].Value {
			return merged[i].Value < merged[j].Value
		}
		return merged[i].Length < merged[j].Length
	})
	return merged
}
