package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jskelin/physlab/internal/config"
	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
	"github.com/jskelin/physlab/internal/storage"
	"github.com/jskelin/physlab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	theta      float64
	omega      float64
	seed       int64
	integrator string
	outFile    string

	// driven pendulum
	gamma     float64
	quality   float64
	omega0    float64
	driveFreq float64

	// projectile
	speed float64
	angle float64
	drag  float64

	// orbit
	mu     float64
	radius float64
	ecc    float64

	// config / preset
	configFile string
	preset     string

	// phase plot axes
	xAxis int
	yAxis int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "classical physics and statistics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")
	phaseCmd.Flags().StringVar(&outFile, "out", "", "write scatter image (png/svg)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "live driven pendulum view",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	liveCmd.Flags().Float64Var(&theta, "theta", 0.2, "initial angle")
	liveCmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	liveCmd.Flags().Float64Var(&gamma, "gamma", 0.9, "drive amplitude")
	liveCmd.Flags().Float64Var(&quality, "quality", 2.0, "damping quality factor")
	liveCmd.Flags().Float64Var(&driveFreq, "drive-freq", 2.0/3.0, "drive angular frequency")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)
	rootCmd.AddCommand(newPoincareCmd(), newBifurcationCmd(), newLyapunovCmd())
	rootCmd.AddCommand(newInterferenceCmd(), newCircuitCmd(), newKeplerCmd(), newVelocitiesCmd(), newMonteCarloCmd(), newCLTCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 60.0, "duration")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().Float64Var(&theta, "theta", 0.2, "initial angle (pendulum)")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().Float64Var(&gamma, "gamma", 0.9, "drive amplitude (pendulum)")
	cmd.Flags().Float64Var(&quality, "quality", 2.0, "damping quality factor")
	cmd.Flags().Float64Var(&omega0, "omega0", 1.0, "natural frequency")
	cmd.Flags().Float64Var(&driveFreq, "drive-freq", 2.0/3.0, "drive angular frequency")
	cmd.Flags().Float64Var(&speed, "speed", 30.0, "launch speed (projectile)")
	cmd.Flags().Float64Var(&angle, "angle", 0.785398, "launch angle in radians")
	cmd.Flags().Float64Var(&drag, "drag", 0.0, "quadratic drag coefficient")
	cmd.Flags().Float64Var(&mu, "mu", 1.0, "gravitational parameter (twobody)")
	cmd.Flags().Float64Var(&radius, "radius", 1.0, "orbit radius / semi-major axis")
	cmd.Flags().Float64Var(&ecc, "ecc", 0.0, "orbit eccentricity")
}

// buildModel assembles the system and initial state for a run.
func buildModel(model string) (dynamo.System, dynamo.State, error) {
	switch model {
	case "driven_pendulum":
		p := physics.NewDrivenPendulum()
		p.Gamma = gamma
		p.Quality = quality
		p.Omega0 = omega0
		p.DriveFreq = driveFreq
		return p, dynamo.State{theta, omega}, nil
	case "projectile":
		p := physics.NewProjectile()
		p.Drag = drag
		return p, physics.LaunchState(speed, angle), nil
	case "twobody":
		b := physics.NewTwoBody()
		b.Mu = mu
		if ecc > 0 {
			return b, b.EllipticState(radius, ecc), nil
		}
		return b, b.CircularState(radius), nil
	default:
		return nil, nil, fmt.Errorf("unknown model: %s (driven_pendulum, projectile, twobody)", model)
	}
}

func applyConfig(cmd *cobra.Command, model string) error {
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		applyConfigValues(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfigValues(cmd, cfg)
	}

	return nil
}

// applyConfigValues copies config values into flag variables; CLI flags
// the user set explicitly win. Loaded configs are always fully populated
// (files unmarshal over the defaults, presets spell out their model), so
// values copy unconditionally and an explicit zero is honored.
func applyConfigValues(cmd *cobra.Command, cfg *config.Config) {
	set := func(flag string, dst *float64, v float64) {
		if !cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	set("dt", &dt, cfg.Dt)
	set("time", &duration, cfg.Duration)
	set("theta", &theta, cfg.InitState.Theta)
	set("omega", &omega, cfg.InitState.Omega)
	set("gamma", &gamma, cfg.Pendulum.Gamma)
	set("quality", &quality, cfg.Pendulum.Quality)
	set("omega0", &omega0, cfg.Pendulum.Omega0)
	set("drive-freq", &driveFreq, cfg.Pendulum.DriveFreq)
	set("speed", &speed, cfg.Projectile.Speed)
	set("angle", &angle, cfg.Projectile.Angle)
	set("drag", &drag, cfg.Projectile.Drag)
	set("mu", &mu, cfg.Orbit.Mu)
	set("radius", &radius, cfg.Orbit.Radius)
	set("ecc", &ecc, cfg.Orbit.Ecc)

	if cfg.Integrator != "" && !cmd.Flags().Changed("integrator") {
		integrator = cfg.Integrator
	}
	// A zero seed means unseeded; the run keeps its time-based default.
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	model := args[0]

	if err := applyConfig(cmd, model); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sys, initState, err := buildModel(model)
	if err != nil {
		return err
	}

	integ, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	sim := dynamo.New(sys, integ)
	sim.AddMetric(dynamo.NewEnergyDriftMetric(sys))
	sim.AddMetric(dynamo.NewPeakMetric("peak_x0", 0))

	simCfg := dynamo.DefaultConfig()
	simCfg.Dt = dt
	simCfg.Duration = duration
	simCfg.Seed = seed

	fmt.Printf("running %s simulation...\n", model)
	start := time.Now()

	result, err := sim.Run(context.Background(), initState, simCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(model, dt, duration, seed, integrator, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	if len(result.Errors) > 0 {
		fmt.Printf("stopped early: %v\n", result.Errors[0])
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(states))

	numVars := len(states[0])
	if numVars > 6 {
		numVars = 6
	}

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		fmt.Println(viz.Line(data, stateCaption(meta.Model, varIdx), 80, 10))
		fmt.Println()
	}

	return nil
}

func stateCaption(model string, idx int) string {
	names := map[string][]string{
		"driven_pendulum": {"theta (angle)", "omega (angular velocity)"},
		"projectile":      {"x", "y", "vx", "vy"},
		"twobody":         {"x", "y", "vx", "vy"},
	}
	if labels, ok := names[model]; ok && idx < len(labels) {
		return labels[idx]
	}
	return fmt.Sprintf("x%d vs time", idx)
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("x-axis: x%d, y-axis: x%d\n\n", xAxis, yAxis)

	points := make([]viz.XY, len(states))
	for i := range states {
		points[i] = viz.XY{X: states[i][xAxis], Y: states[i][yAxis]}
	}
	fmt.Println(viz.Scatter(points, 70, 20))

	if outFile != "" {
		raw := make([][2]float64, len(points))
		for i, p := range points {
			raw[i] = [2]float64{p.X, p.Y}
		}
		if err := saveScatterFile(raw, fmt.Sprintf("%s phase space", meta.Model), outFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return storage.ExportJSON(enc, meta, states, times)
}

func runLive(cmd *cobra.Command, args []string) error {
	p := physics.NewDrivenPendulum()
	p.Gamma = gamma
	p.Quality = quality
	p.DriveFreq = driveFreq

	m := viz.NewLiveModel(p, integrators.NewRK4(), dynamo.State{theta, omega}, dt)

	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}
