package qshor

import (
	"fmt"
	"math"
	"sort"
)

/*
PhaseFromBits interprets a measured bitstring as a binary fraction in
[0, 1). Bit i, counted from the most significant end, contributes
2^-(i+1) when set, which is how a phase-estimation register is read out
after the inverse Fourier transform.
*/
func PhaseFromBits(bits string) (float64, error) {
	if bits == "" {
		return 0, fmt.Errorf("empty bitstring")
	}
	phase := 0.0
	for i, b := range bits {
		switch b {
		case '1':
			phase += math.Pow(2, -float64(i+1))
		case '0':
		default:
			return 0, fmt.Errorf("bitstring %q: invalid bit %q at index %d", bits, b, i)
		}
	}
	return phase, nil
}

/*
Convergents expands phase, taken as the rational num/2^precisionBits,
into its continued fraction and returns the denominators of the
successive convergents in ascending order. Those denominators are the
period candidates handed to ValidatePeriod.

A phase of exactly 0 degenerates to the single trivial candidate 1, so
the returned slice is never empty.
*/
func Convergents(phase float64, precisionBits int) []uint64 {
	if precisionBits < 1 {
		precisionBits = 1
	}
	den := uint64(1) << uint(precisionBits)
	num := uint64(math.Round(phase * float64(den)))
	if num >= den {
		num = den - 1
	}

	// Euclidean expansion of num/den into continued-fraction terms.
	terms := make([]uint64, 0, precisionBits)
	p, q := num, den
	for q != 0 {
		terms = append(terms, p/q)
		p, q = q, p%q
	}

	// Denominators follow k_i = a_i*k_{i-1} + k_{i-2}, seeded with
	// k_{-1} = 0 and k_0 = 1.
	seen := make(map[uint64]bool)
	candidates := make([]uint64, 0, len(terms))
	kPrev, k := uint64(0), uint64(1)
	for i, a := range terms {
		if i > 0 {
			kPrev, k = k, a*k+kPrev
		}
		if k > 0 && !seen[k] {
			seen[k] = true
			candidates = append(candidates, k)
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	return candidates
}
