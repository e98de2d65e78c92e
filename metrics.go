package qshor

import (
	"sort"
	"sync"
	"time"
)

/*
TrialMetrics aggregates outcomes across repeated factoring trials, the
loop the demonstration runs to observe variance between noise
realizations.
*/
type TrialMetrics struct {
	mu sync.RWMutex

	Trials       int64
	Successes    int64
	Resampled    int64
	InvalidBases int64
	Exhausted    int64
	Primes       int64
	TotalShots   int64
	TotalTime    time.Duration

	AverageTrialTime time.Duration
	P95TrialTime     time.Duration

	// Sliding window for the percentile calculation.
	latencies  []time.Duration
	windowSize int
}

func newTrialMetrics() *TrialMetrics {
	return &TrialMetrics{
		latencies:  make([]time.Duration, 0, 1000),
		windowSize: 1000,
	}
}

func (m *TrialMetrics) recordTrial(result FactorResult, duration time.Duration, shots int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Trials++
	m.TotalShots += int64(shots)
	m.TotalTime += duration
	m.Resampled += int64(result.Resamples)

	switch result.Status {
	case StatusSuccess:
		m.Successes++
	case StatusInvalidBase:
		m.InvalidBases++
	case StatusExhausted:
		m.Exhausted++
	case StatusPrime:
		m.Primes++
	}

	m.AverageTrialTime = m.TotalTime / time.Duration(m.Trials)
	m.updateLatencyWindow(duration)
}

func (m *TrialMetrics) updateLatencyWindow(duration time.Duration) {
	m.latencies = append(m.latencies, duration)
	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[1:]
	}

	sorted := make([]time.Duration, len(m.latencies))
	copy(sorted, m.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(float64(len(sorted)) * 0.95)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	m.P95TrialTime = sorted[idx]
}

// SuccessRate returns the fraction of trials that recovered a factor
// pair.
func (m *TrialMetrics) SuccessRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Trials == 0 {
		return 0
	}
	return float64(m.Successes) / float64(m.Trials)
}

// ExportMetrics flattens the counters for logging or printing.
func (m *TrialMetrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rate := 0.0
	if m.Trials > 0 {
		rate = float64(m.Successes) / float64(m.Trials)
	}
	return map[string]interface{}{
		"trials":        m.Trials,
		"successes":     m.Successes,
		"resampled":     m.Resampled,
		"invalid_bases": m.InvalidBases,
		"exhausted":     m.Exhausted,
		"primes":        m.Primes,
		"total_shots":   m.TotalShots,
		"success_rate":  rate,
		"avg_trial_ms":  m.AverageTrialTime.Milliseconds(),
		"p95_trial_ms":  m.P95TrialTime.Milliseconds(),
	}
}
