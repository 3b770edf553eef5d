package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jskelin/physlab/internal/circuit"
	"github.com/jskelin/physlab/internal/export"
	"github.com/jskelin/physlab/internal/gravity"
	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
	"github.com/jskelin/physlab/internal/stats"
	"github.com/jskelin/physlab/internal/viz"
	"github.com/jskelin/physlab/internal/waves"
)

func newInterferenceCmd() *cobra.Command {
	var (
		separation float64
		wavelength float64
		extent     float64
		nx, ny     int
		screenDist float64
		out        string
	)

	cmd := &cobra.Command{
		Use:   "interference",
		Short: "two-source interference pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			field := waves.TwoSlit(separation, wavelength, extent)

			grid, err := field.IntensityGrid(nx, ny)
			if err != nil {
				return err
			}

			fmt.Printf("two sources, d=%.3g, lambda=%.3g\n\n", separation, wavelength)
			fmt.Println(viz.Heatmap(grid))
			fmt.Printf("fringe spacing at screen distance %.3g: %.4g\n",
				screenDist, waves.FringeSpacing(wavelength, screenDist, separation))

			if out != "" {
				title := fmt.Sprintf("interference intensity, d=%.3g lambda=%.3g", separation, wavelength)
				if err := export.SaveHeatmap(grid, field.XMin, field.XMax, field.YMin, field.YMax, title, out); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&separation, "separation", 2.0, "source separation")
	cmd.Flags().Float64Var(&wavelength, "wavelength", 1.0, "wavelength")
	cmd.Flags().Float64Var(&extent, "extent", 20.0, "sampled region extent")
	cmd.Flags().IntVar(&nx, "nx", 78, "grid columns")
	cmd.Flags().IntVar(&ny, "ny", 24, "grid rows")
	cmd.Flags().Float64Var(&screenDist, "screen", 20.0, "screen distance for fringe spacing")
	cmd.Flags().StringVar(&out, "out", "", "write heatmap image (png/svg)")

	return cmd
}

func newCircuitCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "circuit [netlist.yaml]",
		Short: "equivalent resistance by series/parallel reduction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nl, err := circuit.LoadNetlist(args[0])
			if err != nil {
				return err
			}

			net, err := nl.Build()
			if err != nil {
				return err
			}

			name := nl.Name
			if name == "" {
				name = args[0]
			}
			fmt.Printf("network: %s (%d nodes, %d resistors)\n", name, net.NodeCount(), net.BranchCount())
			fmt.Printf("terminals: %s, %s\n", nl.Terminals[0], nl.Terminals[1])

			r, steps, err := net.Reduce()
			if err != nil {
				return err
			}

			if trace {
				fmt.Println("\nreduction steps:")
				for i, s := range steps {
					fmt.Printf("  %2d. [%s] %s\n", i+1, s.Rule, s.Detail)
				}
			}

			fmt.Printf("\nequivalent resistance: %.6g ohm\n", r)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print each reduction step")

	return cmd
}

func newKeplerCmd() *cobra.Command {
	var (
		rMin          float64
		rMax          float64
		orbits        int
		stepsPerOrbit int
		integName     string
		out           string
	)

	cmd := &cobra.Command{
		Use:   "kepler",
		Short: "verify kepler's third law from simulated orbits",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := physics.NewTwoBody()

			integ, err := integrators.ByName(integName)
			if err != nil {
				return err
			}

			if orbits < 2 {
				orbits = 2
			}
			radii := make([]float64, orbits)
			for i := range radii {
				radii[i] = rMin + (rMax-rMin)*float64(i)/float64(orbits-1)
			}

			fmt.Printf("simulating %d circular orbits, r=%.3g..%.3g...\n", orbits, rMin, rMax)

			samples, err := gravity.Sweep(context.Background(), body, integ, radii, stepsPerOrbit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RADIUS\tPERIOD\tPREDICTED\tERROR")
			for _, s := range samples {
				relErr := math.Abs(s.Period-s.Predicted) / s.Predicted
				fmt.Fprintf(w, "%.4g\t%.6g\t%.6g\t%.2e\n", s.Radius, s.Period, s.Predicted, relErr)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			slope, intercept := gravity.FitPowerLaw(samples)
			fmt.Printf("\nlog-log fit: T = %.4g * r^%.4f (kepler predicts exponent 1.5)\n",
				math.Exp(intercept), slope)

			if out != "" {
				xs := make([]float64, len(samples))
				measured := make([]float64, len(samples))
				predicted := make([]float64, len(samples))
				for i, s := range samples {
					xs[i] = s.Radius
					measured[i] = s.Period
					predicted[i] = s.Predicted
				}
				series := []export.Series{
					{Name: "simulated", Xs: xs, Ys: measured},
					{Name: "analytic", Xs: xs, Ys: predicted},
				}
				if err := export.SaveLines(series, "orbital period vs radius", "radius", "period", out); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&rMin, "r-min", 1.0, "smallest orbit radius")
	cmd.Flags().Float64Var(&rMax, "r-max", 4.0, "largest orbit radius")
	cmd.Flags().IntVar(&orbits, "orbits", 8, "number of orbits to simulate")
	cmd.Flags().IntVar(&stepsPerOrbit, "steps-per-orbit", 2000, "integration steps per orbit")
	cmd.Flags().StringVar(&integName, "integrator", "leapfrog", "integrator")
	cmd.Flags().StringVar(&out, "out", "", "write period/radius plot (png/svg)")

	return cmd
}

func newVelocitiesCmd() *cobra.Command {
	var planet string

	cmd := &cobra.Command{
		Use:   "velocities",
		Short: "cosmic velocity table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := gravity.VelocityTable()

			if planet != "" {
				p, ok := gravity.PlanetByName(planet)
				if !ok {
					return fmt.Errorf("unknown planet: %s", planet)
				}
				rows = []gravity.VelocityRow{{
					Planet: p,
					First:  gravity.FirstCosmic(p.Mass, p.Radius),
					Second: gravity.SecondCosmic(p.Mass, p.Radius),
					Third:  gravity.ThirdCosmic(p),
				}}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLANET\tORBITAL (km/s)\tESCAPE (km/s)\tSOLAR ESCAPE (km/s)")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n",
					row.Planet.Name, row.First/1000, row.Second/1000, row.Third/1000)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&planet, "planet", "", "show a single planet")

	return cmd
}

func newMonteCarloCmd() *cobra.Command {
	var (
		n           int
		seed        int64
		checkpoints int
		out         string
	)

	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "estimate pi by monte carlo sampling",
		RunE: func(cmd *cobra.Command, args []string) error {
			est := stats.NewPiEstimator(seed)

			fmt.Printf("throwing %d darts (seed %d)...\n", n, seed)
			points := est.Series(n, checkpoints)
			if len(points) == 0 {
				return fmt.Errorf("no samples")
			}

			final := points[len(points)-1]
			fmt.Printf("pi estimate: %.6f\n", final.Estimate)
			fmt.Printf("abs error:   %.6f\n\n", final.AbsError)

			data := make([]float64, len(points))
			for i, p := range points {
				data[i] = p.Estimate
			}
			fmt.Println(viz.Line(data, "running estimate", 78, 12))

			if out != "" {
				xs := make([]float64, len(points))
				errs := make([]float64, len(points))
				for i, p := range points {
					xs[i] = float64(p.N)
					errs[i] = p.AbsError
				}
				if err := export.SaveLine(xs, errs, "monte carlo convergence", "samples", "abs error", out); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 1_000_000, "number of samples")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&checkpoints, "checkpoints", 200, "convergence checkpoints")
	cmd.Flags().StringVar(&out, "out", "", "write convergence plot (png/svg)")

	return cmd
}

func newCLTCmd() *cobra.Command {
	var (
		distName   string
		sampleSize int
		sizes      []int
		numSamples int
		seed       int64
		bins       int
		out        string
	)

	cmd := &cobra.Command{
		Use:   "clt",
		Short: "central limit theorem demonstration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, ok := stats.DistributionByName(distName)
			if !ok {
				return fmt.Errorf("unknown distribution: %s (uniform, exponential, dice)", distName)
			}

			// Sweep mode: show the sampling-mean distribution tightening
			// and symmetrizing as the sample size grows.
			if len(sizes) > 0 {
				fmt.Printf("source: %s, %d sample means per size (seed %d)\n", dist.Name(), numSamples, seed)

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "N\tSTD DEV\tSIGMA/SQRT(N)\tSKEWNESS")
				for _, n := range sizes {
					if n < 1 {
						continue
					}
					means := stats.SamplingMeans(dist, n, numSamples, seed)
					fmt.Fprintf(w, "%d\t%.5f\t%.5f\t%+.4f\n",
						n, stats.StdDev(means), stats.StandardError(dist, n), stats.Skewness(means))
				}
				if err := w.Flush(); err != nil {
					return err
				}

				for _, n := range sizes {
					if n < 1 {
						continue
					}
					means := stats.SamplingMeans(dist, n, numSamples, seed)
					counts, _ := stats.Histogram(means, bins)
					fmt.Printf("\nn = %d:\n%s", n, viz.HistogramBars(counts, 8))
				}
				return nil
			}

			fmt.Printf("drawing %d sample means of size %d from %s (seed %d)...\n\n",
				numSamples, sampleSize, dist.Name(), seed)

			means := stats.SamplingMeans(dist, sampleSize, numSamples, seed)

			counts, _ := stats.Histogram(means, bins)
			fmt.Println(viz.HistogramBars(counts, 12))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "\tOBSERVED\tTHEORY")
			fmt.Fprintf(w, "mean\t%.5f\t%.5f\n", stats.Mean(means), dist.Mean())
			fmt.Fprintf(w, "std dev\t%.5f\t%.5f\n", stats.StdDev(means), stats.StandardError(dist, sampleSize))
			fmt.Fprintf(w, "skewness\t%.5f\t0\n", stats.Skewness(means))
			fmt.Fprintf(w, "excess kurtosis\t%.5f\t0\n", stats.ExcessKurtosis(means))
			if err := w.Flush(); err != nil {
				return err
			}

			if out != "" {
				title := fmt.Sprintf("sampling means, %s n=%d", dist.Name(), sampleSize)
				if err := export.SaveHistogram(means, bins, title, "sample mean", out); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&distName, "dist", "uniform", "source distribution (uniform, exponential, dice)")
	cmd.Flags().IntVar(&sampleSize, "sample-size", 30, "draws per sample mean")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "compare several sample sizes, e.g. 1,5,30")
	cmd.Flags().IntVar(&numSamples, "samples", 10000, "number of sample means")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&bins, "bins", 40, "histogram bins")
	cmd.Flags().StringVar(&out, "out", "", "write histogram image (png/svg)")

	return cmd
}
