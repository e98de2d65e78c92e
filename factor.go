package qshor

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Status tags the terminal condition of a factoring attempt.
type Status int

const (
	// StatusSuccess means a factor pair was recovered.
	StatusSuccess Status = iota
	// StatusNeedsResample means no candidate period validated; the
	// caller should repeat the measurement, ideally with more shots.
	StatusNeedsResample
	// StatusInvalidBase means the validated period is odd, so the
	// classical reduction cannot proceed with this base.
	StatusInvalidBase
	// StatusExhausted means the bounded retry budget ran out.
	StatusExhausted
	// StatusPrime means the input admits no nontrivial factorization.
	StatusPrime
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNeedsResample:
		return "needs-resample"
	case StatusInvalidBase:
		return "invalid-base"
	case StatusExhausted:
		return "exhausted"
	case StatusPrime:
		return "prime"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

/*
FactorResult is the tagged outcome of a factoring run. Every failure
mode is a variant rather than a panic or an unbounded retry, so callers
can switch on Status exhaustively.
*/
type FactorResult struct {
	Status    Status
	P, Q      uint64 // P <= Q, P*Q == N when Status is StatusSuccess
	Base      uint64
	Period    uint64
	Attempts  int
	Resamples int
	Err       error
}

/*
ValidatePeriod deduplicates and sorts the pooled period candidates,
accepts the first r with a^r ≡ 1 (mod n), and recovers a factor pair
from it:

	p = gcd(a^(r/2) + 1, n), q = n / p

No candidate validating yields StatusNeedsResample; an odd accepted
period yields StatusInvalidBase. The recovered pair is ordered with the
smaller factor first.

Note that p and q are not checked for triviality: when a^(r/2) ≡ -1
(mod n) the pair degenerates to (1, n) and is still reported as
success. Callers that care must inspect the pair.
*/
func ValidatePeriod(a, n uint64, candidates []uint64) FactorResult {
	pool := make([]uint64, 0, len(candidates))
	seen := make(map[uint64]bool)
	for _, r := range candidates {
		if r == 0 || seen[r] {
			continue
		}
		seen[r] = true
		pool = append(pool, r)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })

	for _, r := range pool {
		if PowMod(a, r, n) != 1 {
			continue
		}
		if r%2 != 0 {
			return FactorResult{Status: StatusInvalidBase, Base: a, Period: r}
		}
		half := PowMod(a, r/2, n)
		p := GCD(half+1, n)
		q := n / p
		if p > q {
			p, q = q, p
		}
		return FactorResult{Status: StatusSuccess, P: p, Q: q, Base: a, Period: r}
	}
	return FactorResult{Status: StatusNeedsResample, Base: a}
}

/*
ClassicalFactor factors n without any quantum backend, using the
brute-force order finder as the period oracle.

Even n returns (2, n/2) before anything else is tried, and prime n is
reported as StatusPrime with the degenerate pair (1, n). Otherwise
random bases in [2, n-1] are drawn up to maxAttempts times: a base
sharing a factor with n yields that factor immediately, and a base with
even order r is tested against gcd(a^(r/2) ∓ 1, n). A nil rng falls
back to a time-seeded source.
*/
func ClassicalFactor(n uint64, maxAttempts int, rng *rand.Rand) FactorResult {
	if n < 2 {
		return FactorResult{Status: StatusExhausted, Err: fmt.Errorf("cannot factor %d: need n >= 2", n)}
	}
	if n%2 == 0 {
		return FactorResult{Status: StatusSuccess, P: 2, Q: n / 2}
	}
	if IsPrime(n) {
		return FactorResult{Status: StatusPrime, P: 1, Q: n}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		a := 2 + rng.Uint64()%(n-2)

		if g := GCD(a, n); g != 1 {
			p, q := g, n/g
			if p > q {
				p, q = q, p
			}
			return FactorResult{Status: StatusSuccess, P: p, Q: q, Base: a, Attempts: attempt}
		}

		r, err := MultiplicativeOrder(a, n)
		if err != nil {
			// Unreachable for coprime a; surface it rather than loop.
			return FactorResult{Status: StatusExhausted, Base: a, Attempts: attempt, Err: err}
		}
		if r%2 != 0 {
			continue
		}

		half := PowMod(a, r/2, n)
		for _, c := range []uint64{half - 1, half + 1} {
			g := GCD(c, n)
			if g > 1 && g < n {
				p, q := g, n/g
				if p > q {
					p, q = q, p
				}
				return FactorResult{Status: StatusSuccess, P: p, Q: q, Base: a, Period: r, Attempts: attempt}
			}
		}
	}
	return FactorResult{Status: StatusExhausted, Attempts: maxAttempts}
}
