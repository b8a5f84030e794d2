package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mklev/gridmesh/internal/analysis"
	"github.com/mklev/gridmesh/internal/config"
	"github.com/mklev/gridmesh/internal/export"
	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/gui"
	"github.com/mklev/gridmesh/internal/mesh"
	"github.com/mklev/gridmesh/internal/metrics"
	"github.com/mklev/gridmesh/internal/sim"
	"github.com/mklev/gridmesh/internal/storage"
	"github.com/mklev/gridmesh/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	width      int
	height     int
	cellSize   int
	seed       int64
	duration   float64
	fps        int
	pointer    string
	idleSkip   bool
	outPath    string
	warmFrames int
)

// main registers commands and flags; with no subcommand the GUI opens.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gridmesh",
		Short: "interactive mesh-grid animation lab",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			gui.Run(cfg, preset)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gridmesh", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "canvas width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "canvas height")
	rootCmd.PersistentFlags().IntVar(&cellSize, "cell-size", 0, "cell size (0 derives from width)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the animation window",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			gui.Run(cfg, preset)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the animation in the terminal",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with a scripted pointer",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	runCmd.Flags().StringVar(&pointer, "pointer", "sweep", "pointer script: sweep, fixed or none")
	runCmd.Flags().BoolVar(&idleSkip, "idle-skip", false, "only animate frames after pointer movement")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's displacement history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render one frame to an SVG file",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "frame.svg", "output file")
	exportSVGCmd.Flags().IntVar(&warmFrames, "frames", 1, "frames to animate before the snapshot")
	exportSVGCmd.Flags().StringVar(&pointer, "pointer", "none", "pointer script: sweep, fixed or none")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a run's displacement trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step rate over grid sizes",
		RunE:  benchGrid,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: preset, then config file, then
// explicit flags, later sources overriding earlier ones.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("cell-size") {
		cfg.CellSize = cellSize
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func effectiveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func pointerDriver(name string, cfg *config.Config) (sim.PointerDriver, error) {
	center := geom.NewPoint(float64(cfg.Width)/2, float64(cfg.Height)/2)
	switch name {
	case "sweep":
		return sim.SweepPointer{Center: center, Radius: float64(cfg.Height) / 3, Period: 2}, nil
	case "fixed":
		return sim.FixedPointer{P: center}, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown pointer script: %s", name)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg, effectiveSeed(cfg))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(viz.Model); ok {
		if plot := viz.SettlePlot(fm.History()); plot != "" {
			fmt.Println(plot)
		}
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runSeed := effectiveSeed(cfg)
	anim := mesh.NewAnimator(cfg.Width, cfg.Height, cfg.MeshOptions(), runSeed)

	runner := sim.New(anim)
	driver, err := pointerDriver(pointer, cfg)
	if err != nil {
		return err
	}
	if driver != nil {
		runner.SetPointerDriver(driver)
	}
	runner.AddMetric(metrics.NewMeanDisplacement())
	runner.AddMetric(metrics.NewMaxDisplacement())
	runner.AddMetric(metrics.NewSettle(0.1))

	fmt.Println("running headless animation...")
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:       1.0 / float64(cfg.FPS),
		Duration: duration,
		Seed:     runSeed,
		IdleSkip: idleSkip,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	g := anim.Grid()
	runID, err := st.Save(storage.RunMetadata{
		Seed:     runSeed,
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.EffectiveCellSize(),
		Rows:     g.Rows,
		Cols:     g.Cols,
		Dt:       1.0 / float64(cfg.FPS),
		Duration: duration,
		Preset:   preset,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid: %dx%d\n", g.Cols, g.Rows)
	fmt.Printf("frames: %d\n", result.Frames)
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
	fmt.Fprintln(w, "ID\tTIME\tGRID\tSEED\tDURATION\tPRESET")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%.2fs\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Cols,
			run.Rows,
			run.Seed,
			run.Duration,
			run.Preset,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, mean, max, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(mean) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d\n", meta.Cols, meta.Rows)
	fmt.Printf("samples: %d\n\n", len(times))

	fmt.Println(asciigraph.Plot(mean,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean displacement"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(max,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("max displacement"),
	))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, mean, _, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(mean) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	ps := analysis.PowerSpectrum(mean)
	plotData := ps[:len(ps)/4]
	if len(plotData) > 1 {
		fmt.Println(asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (mean displacement)"),
		))
		fmt.Println()
	}

	freq := analysis.DominantFrequency(mean, meta.Duration)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	fmt.Printf("decay ratio: %.3f\n", analysis.DecayRatio(mean))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, mean, max, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "mean_disp", "max_disp"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(mean[i], 'f', 6, 64),
			strconv.FormatFloat(max[i], 'f', 6, 64),
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

	times, mean, max, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	result := &sim.Result{
		Frames:   len(times),
		Times:    times,
		MeanDisp: mean,
		MaxDisp:  max,
		Metrics:  meta.Metrics,
	}
	return storage.ExportJSONStdout(meta, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	anim := mesh.NewAnimator(cfg.Width, cfg.Height, cfg.MeshOptions(), effectiveSeed(cfg))
	driver, err := pointerDriver(pointer, cfg)
	if err != nil {
		return err
	}

	dt := 1.0 / float64(cfg.FPS)
	for i := 0; i < warmFrames; i++ {
		if driver != nil {
			if p, ok := driver.Pointer(float64(i) * dt); ok {
				anim.SetPointer(p)
			}
		}
		anim.Step()
	}

	svg := export.FrameToSVG(anim.Frame(), cfg.Width, cfg.Height, cfg.Borders)
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func benchGrid(cmd *cobra.Command, args []string) error {
	sizes := []struct{ w, h int }{
		{640, 360},
		{1280, 720},
		{1920, 1080},
		{3840, 2160},
	}

	fmt.Println("benchmarking grid step rate")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CANVAS\tGRID\tFRAMES\tTIME\tFRAMES/SEC")

	for _, size := range sizes {
		cfg := config.DefaultConfig()
		cfg.Width = size.w
		cfg.Height = size.h

		anim := mesh.NewAnimator(cfg.Width, cfg.Height, cfg.MeshOptions(), 42)
		runner := sim.New(anim)
		runner.SetPointerDriver(sim.SweepPointer{
			Center: geom.NewPoint(float64(size.w)/2, float64(size.h)/2),
			Radius: float64(size.h) / 3,
			Period: 2,
		})

		start := time.Now()
		result, err := runner.Run(context.Background(), sim.Config{Dt: 1.0 / 60, Duration: 5})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		g := anim.Grid()
		fmt.Fprintf(w, "%dx%d\t%dx%d\t%d\t%v\t%.0f\n",
			size.w, size.h, g.Cols, g.Rows, result.Frames, elapsed,
			float64(result.Frames)/elapsed.Seconds())
	}

	return w.Flush()
}
