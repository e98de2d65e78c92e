package qshor

import "fmt"

/*
NoiseModel carries the physical error-model parameters handed to the
backend: a repetition-code distance, the mean photon number of the
stabilized mode, the two decay-rate constants whose ratio sets the
bit-flip/phase-flip balance, and the idle time per circuit layer. The
values are opaque to the classical post-processing; only their ranges
are checked here before they cross the backend boundary.

Valid ranges:
  - Distance: odd, >= 3
  - PhotonNumber: > 0 (typically 4 to 20)
  - KappaOne, KappaTwo: > 0, with KappaOne much smaller than KappaTwo
  - IdleTime: > 0, in seconds
*/
type NoiseModel struct {
	Name         string  `yaml:"name"`
	Enabled      bool    `yaml:"enabled"`
	Distance     int     `yaml:"distance"`
	PhotonNumber float64 `yaml:"photon_number"`
	KappaOne     float64 `yaml:"kappa_one"`
	KappaTwo     float64 `yaml:"kappa_two"`
	IdleTime     float64 `yaml:"idle_time"`
}

// Validate checks the documented parameter ranges. A disabled model is
// always valid.
func (nm *NoiseModel) Validate() error {
	if nm == nil || !nm.Enabled {
		return nil
	}
	if nm.Distance < 3 || nm.Distance%2 == 0 {
		return fmt.Errorf("noise model %q: distance %d must be odd and >= 3", nm.Name, nm.Distance)
	}
	if nm.PhotonNumber <= 0 {
		return fmt.Errorf("noise model %q: photon number %v must be positive", nm.Name, nm.PhotonNumber)
	}
	if nm.KappaOne <= 0 || nm.KappaTwo <= 0 {
		return fmt.Errorf("noise model %q: decay rates must be positive", nm.Name)
	}
	if nm.KappaOne >= nm.KappaTwo {
		return fmt.Errorf("noise model %q: kappa_one %v must be below kappa_two %v", nm.Name, nm.KappaOne, nm.KappaTwo)
	}
	if nm.IdleTime <= 0 {
		return fmt.Errorf("noise model %q: idle time %v must be positive", nm.Name, nm.IdleTime)
	}
	return nil
}

/*
ScrambleProbability reduces the model to the single knob the bundled
stand-in backend understands: the chance that a shot is replaced by a
uniformly random outcome. This is a stand-in for the provider's actual
error channel, not a physical formula.
*/
func (nm *NoiseModel) ScrambleProbability() float64 {
	if nm == nil || !nm.Enabled {
		return 0
	}
	p := (nm.KappaOne / nm.KappaTwo) * nm.PhotonNumber * nm.IdleTime * 1e3 * float64(nm.Distance)
	if p > 0.5 {
		p = 0.5
	}
	if p < 0 {
		p = 0
	}
	return p
}

// NoiseModelPreset returns one of the named parameter sets. Unknown
// names fall back to the ideal model.
func NoiseModelPreset(name string) *NoiseModel {
	switch name {
	case "light":
		return &NoiseModel{
			Name:         "light",
			Enabled:      true,
			Distance:     3,
			PhotonNumber: 4,
			KappaOne:     1e2,
			KappaTwo:     1e7,
			IdleTime:     1e-4,
		}
	case "realistic":
		return &NoiseModel{
			Name:         "realistic",
			Enabled:      true,
			Distance:     5,
			PhotonNumber: 8,
			KappaOne:     1e3,
			KappaTwo:     1e7,
			IdleTime:     1e-4,
		}
	case "heavy":
		return &NoiseModel{
			Name:         "heavy",
			Enabled:      true,
			Distance:     7,
			PhotonNumber: 16,
			KappaOne:     1e4,
			KappaTwo:     1e7,
			IdleTime:     1e-4,
		}
	default:
		return &NoiseModel{Name: "ideal", Enabled: false}
	}
}
