package qshor

import "sort"

// Distribution maps an observed bitstring to its shot count. Produced
// by a Backend, consumed once by the post-processing step.
type Distribution map[string]int

// Shots returns the total number of shots across all outcomes.
func (d Distribution) Shots() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Probabilities converts counts to observed frequencies.
func (d Distribution) Probabilities() map[string]float64 {
	total := d.Shots()
	probs := make(map[string]float64, len(d))
	if total == 0 {
		return probs
	}
	for outcome, count := range d {
		probs[outcome] = float64(count) / float64(total)
	}
	return probs
}

// TopOutcomes returns up to k outcomes ordered by descending count,
// ties broken lexicographically so the order is stable.
func (d Distribution) TopOutcomes(k int) []string {
	outcomes := make([]string, 0, len(d))
	for outcome := range d {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		if d[outcomes[i]] != d[outcomes[j]] {
			return d[outcomes[i]] > d[outcomes[j]]
		}
		return outcomes[i] < outcomes[j]
	})
	if k > 0 && k < len(outcomes) {
		outcomes = outcomes[:k]
	}
	return outcomes
}

// Phases converts every distinct outcome to its binary-fraction phase
// estimate, skipping malformed bitstrings.
func (d Distribution) Phases() []float64 {
	phases := make([]float64, 0, len(d))
	for _, outcome := range d.TopOutcomes(0) {
		phase, err := PhaseFromBits(outcome)
		if err != nil {
			continue
		}
		phases = append(phases, phase)
	}
	return phases
}
