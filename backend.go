package qshor

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

/*
Backend is the capability this library expects from its quantum
collaborator: run an order-finding circuit for a number of shots and
hand back the measurement-outcome distribution. Everything behind the
interface (statevector simulation, noise channels, transpilation) is
the provider's concern.
*/
type Backend interface {
	Name() string
	Capabilities() Capabilities
	Run(ctx context.Context, spec CircuitSpec, shots int) (Distribution, error)
}

// Capabilities describes what a backend can execute.
type Capabilities struct {
	MaxQubits     int
	MaxDepth      int
	Simulator     bool
	SupportsNoise bool
}

// BackendStats tracks execution counts across a backend's lifetime.
type BackendStats struct {
	Executions int64
	Failures   int64
	TotalShots int64
	LastRun    time.Time
}

/*
FixedBackend replays a canned distribution (or error) on every run, so
the continued-fraction and gcd logic can be exercised with fully
deterministic inputs.
*/
type FixedBackend struct {
	Label   string
	Outcome Distribution
	Err     error
}

func (fb *FixedBackend) Name() string { return fb.Label }

func (fb *FixedBackend) Capabilities() Capabilities {
	return Capabilities{MaxQubits: 64, MaxDepth: 1 << 20, Simulator: true}
}

func (fb *FixedBackend) Run(ctx context.Context, spec CircuitSpec, shots int) (Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fb.Err != nil {
		return nil, fb.Err
	}
	return fb.Outcome, nil
}

/*
SampledBackend is a stand-in for a simulated quantum processor. It
computes the order of the circuit's base classically and samples the
ideal phase-estimation peaks k/r, rounding each to the precision
register width; the noise model, reduced to a single scramble
probability, replaces individual shots with uniform garbage. It is a
test double for the provider, not a circuit simulator.
*/
type SampledBackend struct {
	mu    sync.Mutex
	name  string
	caps  Capabilities
	noise *NoiseModel
	rng   *rand.Rand
	stats BackendStats
}

// NewSampledBackend returns a seeded stand-in backend. A nil noise
// model runs ideal.
func NewSampledBackend(seed int64, noise *NoiseModel) *SampledBackend {
	return &SampledBackend{
		name: "sampled-standin",
		caps: Capabilities{
			MaxQubits:     64,
			MaxDepth:      1 << 20,
			Simulator:     true,
			SupportsNoise: true,
		},
		noise: noise,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (sb *SampledBackend) Name() string { return sb.name }

func (sb *SampledBackend) Capabilities() Capabilities { return sb.caps }

// Stats returns a copy of the execution statistics.
func (sb *SampledBackend) Stats() BackendStats {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.stats
}

func (sb *SampledBackend) Run(ctx context.Context, spec CircuitSpec, shots int) (Distribution, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.stats.Executions++
	sb.stats.LastRun = time.Now()

	if err := ctx.Err(); err != nil {
		sb.stats.Failures++
		return nil, err
	}
	if shots < 1 {
		sb.stats.Failures++
		return nil, fmt.Errorf("backend %s: shots %d must be positive", sb.name, shots)
	}
	if spec.Width() > sb.caps.MaxQubits {
		sb.stats.Failures++
		return nil, fmt.Errorf("backend %s: circuit needs %d qubits, supports %d", sb.name, spec.Width(), sb.caps.MaxQubits)
	}
	if err := sb.noise.Validate(); err != nil {
		sb.stats.Failures++
		return nil, err
	}

	order, err := MultiplicativeOrder(spec.Base, spec.Modulus)
	if err != nil {
		sb.stats.Failures++
		return nil, fmt.Errorf("backend %s: %w", sb.name, err)
	}

	scramble := sb.noise.ScrambleProbability()
	width := uint(spec.PrecisionBits)
	size := uint64(1) << width

	dist := make(Distribution)
	for shot := 0; shot < shots; shot++ {
		var value uint64
		if scramble > 0 && sb.rng.Float64() < scramble {
			value = sb.rng.Uint64() % size
		} else {
			k := uint64(sb.rng.Int63n(int64(order)))
			phase := float64(k) / float64(order)
			value = uint64(math.Round(phase*float64(size))) % size
		}
		dist[fmt.Sprintf("%0*b", spec.PrecisionBits, value)]++
	}

	sb.stats.TotalShots += int64(shots)
	return dist, nil
}
