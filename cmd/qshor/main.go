package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/qshorlab/qshor"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	shots       int
	seed        int64
	noisePreset string

	cfg *qshor.Config
)

var rootCmd = &cobra.Command{
	Use:   "qshor",
	Short: "Shor's factoring algorithm against a pluggable quantum backend",
	Long: `qshor demonstrates Shor's integer-factoring algorithm: order-finding
circuits executed on a (simulated) quantum backend, classical
continued-fraction post-processing, a brute-force classical baseline,
and a closed-form error-rate estimator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = qshor.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = qshor.NewConfig()
		}
		if cmd.Flags().Changed("shots") {
			cfg.Shots = shots
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if cmd.Flags().Changed("noise") {
			cfg.Noise = qshor.NoiseModelPreset(noisePreset)
		}
		return cfg.Validate()
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor N",
	Short: "Factor N with the quantum pipeline on the bundled backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseN(args[0])
		if err != nil {
			return err
		}

		backend := qshor.NewSampledBackend(cfg.Seed, cfg.Noise)
		result := qshor.QuantumFactor(context.Background(), backend, n, cfg)
		printResult(n, result)
		if result.Err != nil {
			return result.Err
		}
		return nil
	},
}

var classicalCmd = &cobra.Command{
	Use:   "classical N",
	Short: "Factor N with the brute-force classical baseline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseN(args[0])
		if err != nil {
			return err
		}

		result := qshor.ClassicalFactor(n, cfg.MaxBaseAttempts, nil)
		printResult(n, result)
		return nil
	},
}

var (
	boundWidth   int
	boundDepth   int
	boundSuccess float64
)

var boundCmd = &cobra.Command{
	Use:   "bound",
	Short: "Compute the error-rate upper bound for a compiled circuit",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := qshor.CompileReport{Width: boundWidth, Depth: boundDepth}
		p, err := qshor.ErrorRateUpperBound(report.Volume(), boundSuccess)
		if err != nil {
			return err
		}
		fmt.Printf("volume %.0f (width %d x depth %d), target success %.3f\n",
			report.Volume(), report.Width, report.Depth, boundSuccess)
		fmt.Printf("maximum tolerable error rate: %.6g\n", p)
		return nil
	},
}

var trialsCmd = &cobra.Command{
	Use:   "trials N",
	Short: "Repeat the pipeline to observe variance across noise realizations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseN(args[0])
		if err != nil {
			return err
		}

		backend := qshor.NewSampledBackend(cfg.Seed, cfg.Noise)
		results, metrics, err := qshor.RunTrials(context.Background(), backend, n, cfg)
		if err != nil {
			return err
		}

		for _, r := range results {
			fmt.Printf("trial %s: %s", r.ID, r.Result.Status)
			if r.Result.Status == qshor.StatusSuccess {
				fmt.Printf(" %d = %d x %d", n, r.Result.P, r.Result.Q)
			}
			fmt.Printf(" (%v)\n", r.Duration)
		}
		for key, value := range metrics.ExportMetrics() {
			fmt.Printf("%s: %v\n", key, value)
		}
		return nil
	},
}

func parseN(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid N %q: %w", arg, err)
	}
	if n < 2 {
		return 0, fmt.Errorf("invalid N %d: need N >= 2", n)
	}
	return n, nil
}

func printResult(n uint64, result qshor.FactorResult) {
	switch result.Status {
	case qshor.StatusSuccess:
		fmt.Printf("%d = %d x %d (base %d, period %d, %d attempts, %d resamples)\n",
			n, result.P, result.Q, result.Base, result.Period, result.Attempts, result.Resamples)
	case qshor.StatusPrime:
		fmt.Printf("%d is prime, no nontrivial factorization\n", n)
	default:
		fmt.Printf("factoring %d failed: %s (%d attempts, %d resamples)\n",
			n, result.Status, result.Attempts, result.Resamples)
		if result.Err != nil {
			fmt.Printf("last error: %v\n", result.Err)
		}
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&shots, "shots", 1024, "measurement shots per circuit run")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 seeds from the clock)")
	rootCmd.PersistentFlags().StringVar(&noisePreset, "noise", "ideal", "noise preset: ideal, light, realistic, heavy")

	boundCmd.Flags().IntVar(&boundWidth, "width", 0, "compiled circuit width in qubits")
	boundCmd.Flags().IntVar(&boundDepth, "depth", 0, "compiled circuit depth")
	boundCmd.Flags().Float64Var(&boundSuccess, "success", 0.5, "target success probability in (0, 1]")

	rootCmd.AddCommand(factorCmd, classicalCmd, boundCmd, trialsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
