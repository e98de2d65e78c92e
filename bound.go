package qshor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSuccessRate signals a success-rate argument outside (0, 1].
var ErrInvalidSuccessRate = errors.New("success rate must be in (0, 1]")

/*
ErrorRateUpperBound returns the largest per-operation error probability
a circuit of the given volume (compiled width times depth) can tolerate
while still succeeding with probability at least successRate. Requiring
(1-p)^V > s and solving for p gives the closed form

	p_max = 1 - exp(ln(s) / V)

The function is pure: identical inputs always produce identical output.
*/
func ErrorRateUpperBound(volume, successRate float64) (float64, error) {
	if successRate <= 0 || successRate > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSuccessRate, successRate)
	}
	return 1 - math.Exp(math.Log(successRate)/volume), nil
}
