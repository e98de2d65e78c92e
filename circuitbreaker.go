package qshor

import (
	"log"
	"sync"
	"time"
)

// BreakerState represents the state of the backend circuit breaker.
type BreakerState int

const (
	BreakerClosed   BreakerState = iota // Normal operation, runs allowed
	BreakerOpen                         // Backend failing, runs rejected
	BreakerHalfOpen                     // Probationary, limited runs allowed
)

/*
CircuitBreaker guards the quantum backend: once it fails maxFailures
times in a row the harness stops submitting circuits to it, then probes
again after resetTimeout. A struggling simulator process is given room
to recover instead of being hammered by every queued trial.
*/
type CircuitBreaker struct {
	mu               sync.Mutex
	maxFailures      int
	resetTimeout     time.Duration
	halfOpenMax      int
	failureCount     int
	state            BreakerState
	openTime         time.Time
	halfOpenAttempts int
}

// NewCircuitBreaker returns a breaker in the closed state.
func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration, halfOpenMax int) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		halfOpenMax:  halfOpenMax,
		state:        BreakerClosed,
	}
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// RecordFailure counts a backend failure and opens the breaker once the
// threshold is reached.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount++
	if cb.failureCount >= cb.maxFailures {
		if cb.state == BreakerHalfOpen {
			// A failed probe sends us straight back to open.
			cb.state = BreakerOpen
			cb.openTime = time.Now()
			log.Printf("Backend breaker reopened from half-open state")
		} else if cb.state == BreakerClosed {
			cb.state = BreakerOpen
			cb.openTime = time.Now()
			log.Printf("Backend breaker opened after %d failures", cb.failureCount)
		}
	}
}

// RecordSuccess counts a successful backend run; enough successes in
// the half-open state close the breaker again.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerHalfOpen {
		cb.halfOpenAttempts++
		if cb.halfOpenAttempts >= cb.halfOpenMax {
			cb.state = BreakerClosed
			cb.failureCount = 0
			cb.halfOpenAttempts = 0
			log.Printf("Backend breaker closed from half-open")
		}
	} else if cb.state == BreakerClosed {
		cb.failureCount = 0
	}
}

// Allow reports whether the next backend run may proceed.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerClosed:
		return true
	case BreakerOpen:
		if time.Since(cb.openTime) > cb.resetTimeout {
			cb.state = BreakerHalfOpen
			cb.halfOpenAttempts = 0
			return true
		}
		return false
	case BreakerHalfOpen:
		return cb.halfOpenAttempts < cb.halfOpenMax
	default:
		return false
	}
}
