package qshor

import (
	"context"
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"
)

/*
QuantumFactor runs the full demonstration pipeline against the given
backend: draw a base, run the order-finding circuit, pool period
candidates from the observed phases via continued fractions, validate
a candidate against the modular-exponentiation identity, and recover a
factor pair by gcd.

The two recoverable failure modes drive a bounded retry loop: a
needs-resample verdict reruns the same base (up to cfg.MaxResamples
extra measurements), an invalid-base verdict draws a fresh base (up to
cfg.MaxBaseAttempts). When both budgets run out the result is tagged
StatusExhausted instead of looping forever.
*/
func QuantumFactor(ctx context.Context, backend Backend, n uint64, cfg *Config) FactorResult {
	if cfg == nil {
		cfg = NewConfig()
	}
	if n < 2 {
		return FactorResult{Status: StatusExhausted}
	}
	if n%2 == 0 {
		return FactorResult{Status: StatusSuccess, P: 2, Q: n / 2}
	}
	if IsPrime(n) {
		return FactorResult{Status: StatusPrime, P: 1, Q: n}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	totalResamples := 0
	for attempt := 1; attempt <= cfg.MaxBaseAttempts; attempt++ {
		a := 2 + rng.Uint64()%(n-2)

		// A lucky base shares a factor with n; no circuit needed.
		if g := GCD(a, n); g != 1 {
			p, q := g, n/g
			if p > q {
				p, q = q, p
			}
			return FactorResult{Status: StatusSuccess, P: p, Q: q, Base: a, Attempts: attempt, Resamples: totalResamples}
		}

		spec := NewOrderCircuit(n, a, cfg.PrecisionBits)
		errnie.Info(
			"QuantumFactor - attempt %d, base %d, circuit %v",
			attempt,
			a,
			spec,
		)

		for resample := 0; resample <= cfg.MaxResamples; resample++ {
			dist, err := backend.Run(ctx, spec, cfg.Shots)
			if err != nil {
				return FactorResult{Status: StatusExhausted, Base: a, Attempts: attempt, Resamples: totalResamples, Err: err}
			}

			candidates := make([]uint64, 0)
			for _, phase := range dist.Phases() {
				candidates = append(candidates, Convergents(phase, spec.PrecisionBits)...)
			}

			result := ValidatePeriod(a, n, candidates)
			result.Attempts = attempt
			result.Resamples = totalResamples

			switch result.Status {
			case StatusSuccess:
				return result
			case StatusNeedsResample:
				totalResamples++
				continue
			}
			// Odd order; only a fresh base can help.
			break
		}
	}
	return FactorResult{Status: StatusExhausted, Attempts: cfg.MaxBaseAttempts, Resamples: totalResamples}
}
