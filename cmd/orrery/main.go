package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/san-kum/orrery/internal/app"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/trace"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string
	dataDir    string

	// trace
	frames  int
	planet  string
	speed   float64
	paused  bool
	saveRun bool
	svgOut  string

	// snapshot
	outFile    string
	cols       int
	rows       int
	snapFrames int
	scale      float64
	light      bool

	// config dump
	dumpFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "interactive 3D solar system",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory for trace runs")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "view the solar system in the terminal",
		RunE:  runTUI,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless frames and plot a planet's orbit angle",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&frames, "frames", 600, "frames to run")
	traceCmd.Flags().StringVar(&planet, "planet", "Earth", "planet to plot")
	traceCmd.Flags().Float64Var(&speed, "speed", -1, "override every planet's speed (rad/frame)")
	traceCmd.Flags().BoolVar(&paused, "paused", false, "start paused")
	traceCmd.Flags().BoolVar(&saveRun, "save", false, "save the run under --data")
	traceCmd.Flags().StringVar(&svgOut, "svg", "", "also write the plot as svg")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved trace runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&planet, "planet", "Earth", "planet to plot")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "orrery.svg", "output file")
	snapshotCmd.Flags().IntVar(&cols, "cols", 120, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&rows, "rows", 40, "canvas height in cells")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 1, "frames to advance before capture")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 4, "svg pixels per dot")
	snapshotCmd.Flags().BoolVar(&light, "light", false, "use the light theme")

	planetsCmd := &cobra.Command{
		Use:   "planets",
		Short: "list configured planets",
		RunE:  listPlanets,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect configuration",
	}
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "write the resolved configuration to a yaml or toml file",
		RunE:  dumpConfig,
	}
	dumpCmd.Flags().StringVarP(&dumpFile, "output", "o", "orrery.yaml", "output file (.yaml, .yml or .toml)")
	configCmd.AddCommand(dumpCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, traceCmd, runsCmd, plotCmd, snapshotCmd, planetsCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --config, then --preset, then the built-in defaults.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", orrery.ErrInvalidConfig, preset)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

// newLogger logs to stderr, or to --log-file when set.
func newLogger() (zerolog.Logger, io.Closer, error) {
	if logFile != "" {
		return logging.Open("orrery", logLevel, logFile)
	}
	return logging.New("orrery", logLevel, nil), io.NopCloser(nil), nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	return gui.Run(cfg, log)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer, err := logging.Open("orrery", logLevel, logFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	return viz.Run(cfg, log)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := viz.NewModel(cfg, log)
	if err != nil {
		return err
	}
	v := m.App
	if v.Scene.Planet(planet) == nil {
		return fmt.Errorf("%w: no planet %q", orrery.ErrInvalidPlanet, planet)
	}
	if speed >= 0 {
		for _, s := range v.Sliders {
			s.Set(speed)
		}
	}
	if paused {
		v.TogglePause()
	}

	rec := trace.NewRecorder(v.Scene, v.Loop)
	app.Advance(rec, frames)
	data, ok := rec.Series(planet)
	if !ok {
		return fmt.Errorf("%w: no planet %q", orrery.ErrInvalidPlanet, planet)
	}
	if len(data) == 0 {
		return fmt.Errorf("no frames recorded")
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s orbit angle (rad) over %d frames", planet, len(data))),
	))
	vals := trace.Evaluate(rec.Frames, trace.DefaultMetrics(rec.Names))
	fmt.Printf("%s: %.0f revolutions, %.4f rad/frame\n", planet, vals[planet+"_revolutions"], vals[planet+"_mean_step"])

	if svgOut != "" {
		stroke := v.Scene.Planet(planet).Color
		if err := os.WriteFile(svgOut, []byte(export.SeriesToSVG(data, 800, 300, stroke)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	if saveRun {
		st := trace.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		speeds := make(map[string]float64, len(v.Scene.Planets))
		for _, p := range v.Scene.Planets {
			speeds[p.Name] = p.Speed
		}
		runID, err := st.Save(trace.RunMetadata{
			Preset: preset,
			Seed:   cfg.Stars.Seed,
			Paused: paused,
			Speeds: speeds,
		}, rec)
		if err != nil {
			return err
		}
		log.Info().Str("run", runID).Int("frames", len(rec.Frames)).Msg("trace saved")
		fmt.Printf("saved run %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := trace.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tPAUSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Paused,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := trace.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	data, err := st.Series(runID, planet)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", meta.Frames)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s orbit angle (rad)", planet)),
	))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	canvas, bg, err := viz.Snapshot(cfg, cols, rows, snapFrames, light, log)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, []byte(export.CanvasToSVG(canvas, scale, bg)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d cells)\n", outFile, canvas.Width, canvas.Height)
	return nil
}

func listPlanets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tDISTANCE\tCOLOR\tSPEED")
	for _, p := range cfg.Descriptors() {
		fmt.Fprintf(w, "%s\t%.1f\t%.0f\t%s\t%.4f\n", p.Name, p.Size, p.Distance, p.Color.Hex(), p.Speed)
	}
	return w.Flush()
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(dumpFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", dumpFile)
	return nil
}
