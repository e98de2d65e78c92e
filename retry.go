package qshor

import (
	"math"
	"time"
)

// RetryPolicy defines how a trial reacts to backend failures.
type RetryPolicy struct {
	MaxAttempts int
	Strategy    RetryStrategy
}

// RetryStrategy defines the interface for retry behavior
type RetryStrategy interface {
	NextDelay(attempt int) time.Duration
}

// ExponentialBackoff implements RetryStrategy
type ExponentialBackoff struct {
	Initial time.Duration
}

func (eb *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	return eb.Initial * time.Duration(math.Pow(2, float64(attempt-1)))
}
