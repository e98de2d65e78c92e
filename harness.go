package qshor

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TrialJob is one independent end-to-end factoring run.
type TrialJob struct {
	ID    string
	N     uint64
	Retry *RetryPolicy
}

// TrialResult pairs a trial's outcome with its timing.
type TrialResult struct {
	ID       string
	N        uint64
	Result   FactorResult
	Duration time.Duration
}

/*
TrialPool repeats the factoring pipeline across independent trials so
the variance between random noise realizations becomes visible. Each
trial is a complete pipeline run with its own seed, executed by a fixed
set of workers; a circuit breaker guards the shared backend and a retry
policy absorbs transient backend failures.
*/
type TrialPool struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	jobs      chan TrialJob
	results   chan TrialResult
	backend   Backend
	breaker   *CircuitBreaker
	metrics   *TrialMetrics
	cfg       *Config
	seq       atomic.Int64
	closeOnce sync.Once
}

// NewTrialPool starts cfg.Workers workers against the given backend.
func NewTrialPool(ctx context.Context, backend Backend, cfg *Config) *TrialPool {
	if cfg == nil {
		cfg = NewConfig()
	}
	ctx, cancel := context.WithCancel(ctx)
	tp := &TrialPool{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(chan TrialJob, cfg.Workers*10),
		results: make(chan TrialResult, cfg.Workers*10),
		backend: backend,
		breaker: NewCircuitBreaker(3, 5*time.Second, 2),
		metrics: newTrialMetrics(),
		cfg:     cfg,
	}

	for i := 0; i < cfg.Workers; i++ {
		tp.wg.Add(1)
		go func() {
			defer tp.wg.Done()
			tp.runWorker()
		}()
	}
	return tp
}

// Submit queues one factoring trial for n and returns its ID.
func (tp *TrialPool) Submit(n uint64) (string, error) {
	job := TrialJob{
		ID: uuid.NewString(),
		N:  n,
		Retry: &RetryPolicy{
			MaxAttempts: 3,
			Strategy:    &ExponentialBackoff{Initial: 100 * time.Millisecond},
		},
	}

	if err := tp.ctx.Err(); err != nil {
		return "", err
	}

	select {
	case tp.jobs <- job:
		return job.ID, nil
	case <-tp.ctx.Done():
		return "", tp.ctx.Err()
	case <-time.After(time.Duration(tp.cfg.SchedulingTimeout)):
		return "", fmt.Errorf("trial scheduling timeout for N=%d", n)
	}
}

// Results exposes the stream of finished trials.
func (tp *TrialPool) Results() <-chan TrialResult {
	return tp.results
}

// Metrics returns the aggregate counters for this pool.
func (tp *TrialPool) Metrics() *TrialMetrics {
	return tp.metrics
}

// Close stops the workers and closes the results channel.
func (tp *TrialPool) Close() {
	tp.closeOnce.Do(func() {
		tp.cancel()
		tp.wg.Wait()
		close(tp.results)
	})
}

func (tp *TrialPool) runWorker() {
	for {
		select {
		case <-tp.ctx.Done():
			return
		case job := <-tp.jobs:
			tp.runTrial(job)
		}
	}
}

func (tp *TrialPool) runTrial(job TrialJob) {
	start := time.Now()

	// Each trial gets its own seed so repeated trials actually sample
	// different noise realizations.
	cfg := *tp.cfg
	if cfg.Seed != 0 {
		cfg.Seed += tp.seq.Add(1)
	}

	var result FactorResult
	for attempt := 1; attempt <= job.Retry.MaxAttempts; attempt++ {
		if !tp.breaker.Allow() {
			result = FactorResult{
				Status: StatusExhausted,
				Err:    fmt.Errorf("backend breaker open, trial %s rejected", job.ID),
			}
			break
		}

		result = QuantumFactor(tp.ctx, tp.backend, job.N, &cfg)
		if result.Err == nil {
			tp.breaker.RecordSuccess()
			break
		}

		tp.breaker.RecordFailure()
		log.Printf("Trial %s attempt %d failed: %v", job.ID, attempt, result.Err)
		if attempt < job.Retry.MaxAttempts {
			time.Sleep(job.Retry.Strategy.NextDelay(attempt))
		}
	}

	duration := time.Since(start)
	shots := tp.cfg.Shots * (result.Attempts + result.Resamples)
	if shots < 0 {
		shots = 0
	}
	tp.metrics.recordTrial(result, duration, shots)

	select {
	case tp.results <- TrialResult{ID: job.ID, N: job.N, Result: result, Duration: duration}:
	case <-tp.ctx.Done():
	}
}

/*
RunTrials is the convenience loop the demonstration uses: submit
cfg.Trials independent runs for n, wait for all of them, and return the
results together with the aggregate metrics.
*/
func RunTrials(ctx context.Context, backend Backend, n uint64, cfg *Config) ([]TrialResult, *TrialMetrics, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	tp := NewTrialPool(ctx, backend, cfg)
	defer tp.Close()

	for i := 0; i < cfg.Trials; i++ {
		if _, err := tp.Submit(n); err != nil {
			return nil, tp.Metrics(), err
		}
	}

	results := make([]TrialResult, 0, cfg.Trials)
	for len(results) < cfg.Trials {
		select {
		case r := <-tp.Results():
			results = append(results, r)
		case <-ctx.Done():
			return results, tp.Metrics(), ctx.Err()
		}
	}
	return results, tp.Metrics(), nil
}
