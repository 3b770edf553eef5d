package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jskelin/physlab/internal/chaos"
	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/export"
	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
	"github.com/jskelin/physlab/internal/viz"
)

func saveScatterFile(points [][2]float64, title, path string) error {
	return export.SaveScatter(points, title, "theta", "omega", path)
}

func newPoincareCmd() *cobra.Command {
	var (
		gamma     float64
		quality   float64
		driveFreq float64
		theta     float64
		omega     float64
		dt        float64
		transient int
		periods   int
		out       string
	)

	cmd := &cobra.Command{
		Use:   "poincare",
		Short: "poincare section of the driven pendulum",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := physics.NewDrivenPendulum()
			p.Gamma = gamma
			p.Quality = quality
			p.DriveFreq = driveFreq

			cfg := chaos.SectionConfig{
				Dt:               dt,
				TransientPeriods: transient,
				RecordPeriods:    periods,
			}

			fmt.Printf("strobing %d drive periods (gamma=%.3f, q=%.2f)...\n", periods, gamma, quality)

			points, err := chaos.Section(context.Background(), p, integrators.NewRK4(), dynamo.State{theta, omega}, cfg)
			if err != nil {
				return err
			}

			xys := make([]viz.XY, len(points))
			raw := make([][2]float64, len(points))
			for i, pt := range points {
				xys[i] = viz.XY{X: pt.Theta, Y: pt.Omega}
				raw[i] = [2]float64{pt.Theta, pt.Omega}
			}

			fmt.Println(viz.Scatter(xys, 70, 20))
			fmt.Printf("points: %d, distinct (eps=0.01): %d\n", len(points), chaos.DistinctPoints(points, 0.01))

			if out != "" {
				title := fmt.Sprintf("poincare section, gamma=%.3f", gamma)
				if err := saveScatterFile(raw, title, out); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&gamma, "gamma", 1.5, "drive amplitude")
	cmd.Flags().Float64Var(&quality, "quality", 2.0, "damping quality factor")
	cmd.Flags().Float64Var(&driveFreq, "drive-freq", 2.0/3.0, "drive angular frequency")
	cmd.Flags().Float64Var(&theta, "theta", 0.2, "initial angle")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep (snapped to an exact divisor of the drive period)")
	cmd.Flags().IntVar(&transient, "transient", 100, "drive periods discarded before recording")
	cmd.Flags().IntVar(&periods, "periods", 400, "drive periods recorded")
	cmd.Flags().StringVar(&out, "out", "", "write scatter image (png/svg)")

	return cmd
}

func newBifurcationCmd() *cobra.Command {
	var (
		gammaMin  float64
		gammaMax  float64
		steps     int
		workers   int
		quality   float64
		driveFreq float64
		out       string
	)

	cmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "bifurcation diagram over drive amplitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := physics.NewDrivenPendulum()
			base.Quality = quality
			base.DriveFreq = driveFreq

			cfg := chaos.DefaultSweepConfig()
			cfg.GammaMin = gammaMin
			cfg.GammaMax = gammaMax
			cfg.GammaSteps = steps
			cfg.Workers = workers

			fmt.Printf("sweeping gamma %.3f..%.3f in %d steps...\n", gammaMin, gammaMax, steps)

			diagram, err := chaos.BifurcationDiagram(context.Background(), base, dynamo.State{0.2, 0}, cfg)
			if err != nil {
				return err
			}

			var xys []viz.XY
			var raw [][2]float64
			for _, bp := range diagram {
				for _, th := range bp.Thetas {
					xys = append(xys, viz.XY{X: bp.Gamma, Y: th})
					raw = append(raw, [2]float64{bp.Gamma, th})
				}
			}

			fmt.Println(viz.Scatter(xys, 78, 22))
			fmt.Printf("parameter points: %d, attractor samples: %d\n", len(diagram), len(xys))

			if out != "" {
				if err := export.SaveScatter(raw, "bifurcation diagram", "gamma", "theta", out); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&gammaMin, "gamma-min", 0.9, "sweep start")
	cmd.Flags().Float64Var(&gammaMax, "gamma-max", 1.5, "sweep end")
	cmd.Flags().IntVar(&steps, "steps", 240, "parameter steps")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	cmd.Flags().Float64Var(&quality, "quality", 2.0, "damping quality factor")
	cmd.Flags().Float64Var(&driveFreq, "drive-freq", 2.0/3.0, "drive angular frequency")
	cmd.Flags().StringVar(&out, "out", "", "write scatter image (png/svg)")

	return cmd
}

func newLyapunovCmd() *cobra.Command {
	var (
		gamma     float64
		quality   float64
		driveFreq float64
		dt        float64
		duration  float64
		d0        float64
		sweep     bool
		gammaMin  float64
		gammaMax  float64
		steps     int
		out       string
	)

	cmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "largest lyapunov exponent of the driven pendulum",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := physics.NewDrivenPendulum()
			base.Gamma = gamma
			base.Quality = quality
			base.DriveFreq = driveFreq

			x0 := dynamo.State{0.2, 0}

			if sweep {
				fmt.Printf("sweeping gamma %.3f..%.3f in %d steps...\n", gammaMin, gammaMax, steps)
				points, err := chaos.LyapunovSweep(context.Background(), base, x0, gammaMin, gammaMax, steps, dt, duration)
				if err != nil {
					return err
				}

				data := make([]float64, len(points))
				xs := make([]float64, len(points))
				for i, pt := range points {
					data[i] = pt.Exponent
					xs[i] = pt.Gamma
				}
				fmt.Println(viz.Line(data, "lyapunov exponent vs gamma", 78, 14))

				if out != "" {
					if err := export.SaveLine(xs, data, "largest lyapunov exponent", "gamma", "lambda", out); err != nil {
						return err
					}
					fmt.Printf("wrote %s\n", out)
				}
				return nil
			}

			lam, err := chaos.LyapunovExponent(context.Background(), base, integrators.NewRK4(), x0, dt, duration, d0)
			if err != nil {
				return err
			}

			fmt.Printf("gamma: %.4f\n", gamma)
			fmt.Printf("largest lyapunov exponent: %.6f\n", lam)
			if lam > 0.01 {
				fmt.Println("regime: chaotic (nearby trajectories diverge)")
			} else if lam < -0.01 {
				fmt.Println("regime: periodic (trajectories contract onto a limit cycle)")
			} else {
				fmt.Println("regime: marginal")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&gamma, "gamma", 1.5, "drive amplitude")
	cmd.Flags().Float64Var(&quality, "quality", 2.0, "damping quality factor")
	cmd.Flags().Float64Var(&driveFreq, "drive-freq", 2.0/3.0, "drive angular frequency")
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 500.0, "integration time")
	cmd.Flags().Float64Var(&d0, "d0", 1e-8, "initial trajectory separation")
	cmd.Flags().BoolVar(&sweep, "sweep", false, "sweep gamma instead of a single estimate")
	cmd.Flags().Float64Var(&gammaMin, "gamma-min", 0.9, "sweep start")
	cmd.Flags().Float64Var(&gammaMax, "gamma-max", 1.5, "sweep end")
	cmd.Flags().IntVar(&steps, "steps", 60, "sweep steps")
	cmd.Flags().StringVar(&out, "out", "", "write line plot (png/svg)")

	return cmd
}
