package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Luizfelm/CoulombDampedVibration/internal/analysis"
	"github.com/Luizfelm/CoulombDampedVibration/internal/config"
	"github.com/Luizfelm/CoulombDampedVibration/internal/export"
	"github.com/Luizfelm/CoulombDampedVibration/internal/metrics"
	"github.com/Luizfelm/CoulombDampedVibration/internal/storage"
	"github.com/Luizfelm/CoulombDampedVibration/internal/sweep"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
	"github.com/Luizfelm/CoulombDampedVibration/internal/viz"
)

var (
	dataDir string
	// Physical parameters
	mass         float64
	stiffness    float64
	coulombForce float64
	x0           float64
	v0           float64
	duration     float64
	dt           float64
	// Config file
	configFile string
	// Preset name
	preset string
	// Run name
	runName string
	// Sweep
	sweepFrom    float64
	sweepTo      float64
	sweepPoints  int
	sweepWorkers int
	minimize     string
	// SVG export
	outDir    string
	svgWidth  int
	svgHeight int
	// Live view
	saveConfig string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coulombvib",
		Short: "mass-spring oscillator with Coulomb friction",

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and store the trajectory",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to preset or config name)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot displacement, velocity and energy",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot (x, v)",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency and amplitude decay analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write displacement and velocity charts as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", config.DefaultSVGWidth, "chart width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", config.DefaultSVGHeight, "chart height")
	exportSVGCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml) for output settings")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARAMETERS")
			for _, name := range config.ListPresets() {
				cfg, err := config.GetPreset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, cfg.Parameters())
			}
			return w.Flush()
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "simulate a range of values for one parameter",
		Long:  "sweep varies one of m, k, fc, x0, v0, time, dt between --from and --to and runs the simulations concurrently.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 5, "number of values")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	sweepCmd.Flags().StringVar(&minimize, "minimize", "", "report the value minimizing this summary metric")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view with parameter editing",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().StringVar(&saveConfig, "save", "", "write the edited parameters to this config file on exit")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, analyzeCmd, exportJSONCmd, exportSVGCmd, presetsCmd, sweepCmd, liveCmd)
	return rootCmd
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass m (kg)")
	cmd.Flags().Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "spring stiffness k (N/m)")
	cmd.Flags().Float64Var(&coulombForce, "fc", config.DefaultCoulombForce, "Coulomb friction force Fc (N)")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial displacement (m)")
	cmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "initial velocity (m/s)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "total time (s)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Params.Mass = mass
	}
	if flags.Changed("stiffness") {
		cfg.Params.Stiffness = stiffness
	}
	if flags.Changed("fc") {
		cfg.Params.CoulombForce = coulombForce
	}
	if flags.Changed("x0") {
		cfg.Params.X0 = x0
	}
	if flags.Changed("v0") {
		cfg.Params.V0 = v0
	}
	if flags.Changed("time") {
		cfg.Params.Duration = duration
	}
	if flags.Changed("dt") {
		cfg.Params.Dt = dt
	}

	if !flags.Changed("data") && cfg.Output.DataDir != "" {
		dataDir = cfg.Output.DataDir
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	name := cfg.Name
	if runName != "" {
		name = runName
	}
	if name == "" {
		name = "run"
	}
	p := cfg.Parameters()
	out := cmd.OutOrStdout()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Fprintf(out, "running %s simulation...\n", name)
	start := time.Now()

	tr, err := vibration.Simulate(p)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, p, tr)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	printSummary(cmd, p, metrics.Summarize(p, tr))
	return nil
}

func printSummary(cmd *cobra.Command, p vibration.Parameters, s metrics.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.TitleStyle.Render("summary"))
	row := func(label, value string) {
		fmt.Fprintln(out, viz.LabelStyle.Render(label)+viz.ValueStyle.Render(value))
	}
	row("params", p.String())
	row("samples", fmt.Sprintf("%d", s.Samples))
	row("final", fmt.Sprintf("t=%.4f x=%+.6f v=%+.6f", s.FinalTime, s.FinalX, s.FinalV))
	row("energy", fmt.Sprintf("%.6f -> %.6f (dissipated %.6f)", s.InitialEnergy, s.FinalEnergy, s.Dissipated))
	row("drift", fmt.Sprintf("%.3e", s.EnergyDrift))
	row("peaks", fmt.Sprintf("%d", s.Peaks))
	if s.Peaks > 1 {
		row("decrement", fmt.Sprintf("%.6f per cycle (4Fc/k = %.6f)", s.MeanDecrement, s.CycleDecrement))
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, viz.SubtleStyle.Render("no runs found"))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tM\tK\tFC\tDURATION\tDT\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.Mass,
			run.Params.Stiffness,
			run.Params.CoulombForce,
			run.Params.TotalTime,
			run.Params.TimeStep,
			run.Summary.Samples,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *vibration.Trajectory, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	tr, err := st.LoadTrajectory(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, tr, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, tr, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if tr.Len() < 2 {
		return fmt.Errorf("no data to plot: %d samples", tr.Len())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "params: %s\n", meta.Params)
	fmt.Fprintf(out, "samples: %d\n\n", tr.Len())

	series := []struct {
		caption string
		data    []float64
	}{
		{"Displacement (m)", tr.X},
		{"Velocity (m/s)", tr.V},
		{"Energy (J)", tr.Energy(meta.Params)},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, tr, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "phase space plot: %s\n", meta.ID)
	fmt.Fprintf(out, "x-axis: displacement, y-axis: velocity\n\n")
	fmt.Fprint(out, analysis.PhasePortraitASCII(tr, 70, 20))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, tr, err := loadRun(args[0])
	if err != nil {
		return err
	}

	freq, bin, err := analysis.DominantFrequency(tr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frequency analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "params: %s\n\n", meta.Params)

	ps := analysis.PowerSpectrum(analysis.Padded(tr.X))
	if plotData := ps[:max(len(ps)/4, min(len(ps), 2))]; len(plotData) > 1 {
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (x)"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "dominant frequency: %.3f hz (±%.3f)\n", freq, bin/2)
	if freq > 0 {
		fmt.Fprintf(out, "period: %.3f s\n", 1.0/freq)
	}
	fmt.Fprintf(out, "natural frequency: %.3f hz\n", analysis.NaturalFrequency(meta.Params))

	peaks := metrics.Peaks(meta.Params, tr)
	if len(peaks) == 0 {
		fmt.Fprintln(out, viz.SubtleStyle.Render("no oscillation peaks above the stick band"))
		return nil
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PEAK\tTIME\tAMPLITUDE\tDECREMENT")
	decay := metrics.AmplitudeDecay(peaks)
	for i, pk := range peaks {
		dec := "-"
		if i > 0 {
			dec = fmt.Sprintf("%.6f", decay[i-1])
		}
		fmt.Fprintf(w, "%d\t%.3fs\t%.6f\t%s\n", i+1, pk.Time, pk.Amplitude, dec)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nexpected decrement per cycle (4Fc/k): %.6f\n", metrics.CycleDecrement(meta.Params))
	fmt.Fprintf(out, "stick band |x| <= Fc/k: %.6f\n", meta.Params.CoulombForce/meta.Params.Stiffness)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, tr, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return export.ExportJSON(cmd.OutOrStdout(), meta.ID, meta.Params, tr)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("width") && cfg.Output.SVGWidth > 0 {
		svgWidth = cfg.Output.SVGWidth
	}
	if !cmd.Flags().Changed("height") && cfg.Output.SVGHeight > 0 {
		svgHeight = cfg.Output.SVGHeight
	}

	meta, tr, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	files := map[string]string{
		meta.ID + "_displacement.svg": export.DisplacementSVG(tr, svgWidth, svgHeight),
		meta.ID + "_velocity.svg":     export.VelocitySVG(tr, svgWidth, svgHeight),
	}
	for name, svg := range files {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	values, err := sweep.Linspace(sweepFrom, sweepTo, sweepPoints)
	if err != nil {
		return err
	}
	params, err := sweep.Vary(cfg.Parameters(), name, values)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sweeping %s over %d values...\n", name, len(values))
	start := time.Now()

	outcomes, err := sweep.Run(ctx, params, sweepWorkers)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSAMPLES\tFINAL_X\tPEAKS\tDISSIPATED\tDRIFT\n", name)
	for i, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%g\terror: %v\n", values[i], o.Err)
			continue
		}
		s := o.Summary
		fmt.Fprintf(w, "%g\t%d\t%+.6f\t%d\t%.6f\t%.3e\n",
			values[i], s.Samples, s.FinalX, s.Peaks, s.Dissipated, s.EnergyDrift)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if minimize == "" {
		return nil
	}
	idx, best, err := sweep.Best(outcomes, minimize)
	if err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("no successful runs to rank")
	}
	fmt.Fprintf(out, "\nbest %s: %.6g at %s=%g\n", minimize, best, name, values[idx])
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	final, err := viz.Run(cfg.Name, cfg.Parameters())
	if err != nil {
		return err
	}
	if saveConfig == "" {
		return nil
	}
	cfg.SetParameters(final)
	if err := config.Save(saveConfig, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", saveConfig)
	return nil
}
