package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/shmviz/internal/analysis"
	"github.com/san-kum/shmviz/internal/app"
	"github.com/san-kum/shmviz/internal/config"
	"github.com/san-kum/shmviz/internal/export"
	"github.com/san-kum/shmviz/internal/gui"
	"github.com/san-kum/shmviz/internal/motion"
	"github.com/san-kum/shmviz/internal/render"
	"github.com/san-kum/shmviz/internal/surface"
	"github.com/san-kum/shmviz/internal/viz"
)

const debugLogFile = "shmviz-debug.log"

var (
	// Config file
	configFile string
	// Preset name
	preset string
	// Oscillator parameters
	amplitude float64
	xm        float64
	omega     float64
	phase     float64
	// Animation
	step      float64
	frameRate int
	theme     string
	debug     bool
	sets      []string

	// Subcommand options
	atTime    float64
	outDir    string
	braille   bool
	samples   int
	periods   int
	perPeriod int
	showPhase bool
	gifPath   string

	logFile io.Closer
)

// main registers commands and flags and runs the terminal UI when no
// subcommand is given. It exits with status 1 on error.
func main() {
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:               "shmviz",
		Short:             "simple harmonic motion visualizer",
		PersistentPreRunE: setupLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.Float64Var(&amplitude, "amplitude", defaults.Params.Amplitude, "amplitude A (display only)")
	pf.Float64Var(&xm, "xm", defaults.Params.MaxDisplacement, "max displacement Xm")
	pf.Float64Var(&omega, "omega", defaults.Params.AngularFrequency, "angular frequency ω (rad/s)")
	pf.Float64Var(&phase, "phase", defaults.Params.Phase, "phase φ (rad)")
	pf.Float64Var(&step, "step", defaults.Step, "time added per animation frame")
	pf.IntVar(&frameRate, "fps", defaults.FPS, "frame rate")
	pf.StringVar(&theme, "theme", defaults.Theme, fmt.Sprintf("terminal theme %v", viz.ThemeNames()))
	pf.BoolVar(&debug, "debug", false, "log to "+debugLogFile)
	pf.StringVar(&gifPath, "gif", viz.DefaultGIFPath, "where the terminal UI writes recordings")
	pf.StringArrayVar(&sets, "set", nil, "set a parameter, field=value (amplitude, xm, omega, phase); repeatable")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the terminal visualizer",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the desktop visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "print displacement, velocity and acceleration at a time",
		RunE:  sampleMotion,
	}
	sampleCmd.Flags().Float64Var(&atTime, "t", 0, "time")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the normalized series over the window",
		RunE:  plotSeries,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "write spring.svg and graph.svg for a time",
		RunE:  renderFrame,
	}
	renderCmd.Flags().Float64Var(&atTime, "t", 0, "time")
	renderCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	renderCmd.Flags().BoolVar(&braille, "braille", false, "also write the terminal rendering as SVG")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "write the sampled series as CSV to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return export.CSV(os.Stdout, cfg.Params, samples)
		},
	}
	exportCSVCmd.Flags().IntVar(&samples, "n", render.Subdivisions, "number of subdivisions")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis",
		RunE:  analyzeMotion,
	}
	analyzeCmd.Flags().IntVar(&periods, "periods", 8, "whole periods to sample")
	analyzeCmd.Flags().IntVar(&perPeriod, "per-period", 64, "samples and rk4 steps per period")
	analyzeCmd.Flags().BoolVar(&showPhase, "phase-portrait", false, "also plot x against v")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tA\tXm\tω\tφ")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g\t%g\t%.4g\t%.4g\n", name, p.Amplitude, p.MaxDisplacement, p.AngularFrequency, p.Phase)
			}
			return w.Flush()
		},
	}

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("saved: %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, sampleCmd, plotCmd, renderCmd, exportCSVCmd, analyzeCmd, presetsCmd, saveConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(debugLogFile, "shmviz")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logFile = f
	return nil
}

// loadConfig layers the defaults, a preset, the config file, explicitly set
// flags and --set assignments, in that order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	// Config file overrides preset
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	// CLI flags override config
	flags := cmd.Flags()
	if flags.Changed("amplitude") {
		cfg.Params.Amplitude = amplitude
	}
	if flags.Changed("xm") {
		cfg.Params.MaxDisplacement = xm
	}
	if flags.Changed("omega") {
		cfg.Params.AngularFrequency = omega
	}
	if flags.Changed("phase") {
		cfg.Params.Phase = phase
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	for _, kv := range sets {
		p, err := app.Assign(cfg.Params, kv)
		if err != nil {
			return nil, err
		}
		cfg.Params = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("config: %+v", *cfg)
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m := viz.NewModel(cfg)
	m.SetGIFPath(gifPath)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok {
		log.Printf("exit at t=%.2f after %d frames", fm.State().Time(), fm.State().Driver.Frames())
	}
	return nil
}

func sampleMotion(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params
	s := motion.At(p, atTime)
	n := p.Normalized(s)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tVALUE\tNORMALIZED")
	fmt.Fprintf(w, "t\t%g\t%.4f\n", atTime, p.Cycle(atTime))
	fmt.Fprintf(w, "x\t%.6g\t%.4f\n", s.Displacement, n.Displacement)
	fmt.Fprintf(w, "v\t%.6g\t%.4f\n", s.Velocity, n.Velocity)
	fmt.Fprintf(w, "a\t%.6g\t%.4f\n", s.Acceleration, n.Acceleration)
	fmt.Fprintf(w, "period\t%.6g\t\n", p.Period())
	fmt.Fprintf(w, "window\t%.6g\t\n", p.Window())
	return w.Flush()
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params
	_, ss := motion.Series(p, render.Subdivisions)
	data := make([][]float64, len(render.AllSeries))
	for i, series := range render.AllSeries {
		data[i] = make([]float64, len(ss))
		peak := series.Value(p.Peaks())
		for j, s := range ss {
			data[i][j] = series.Value(s) / peak
		}
	}

	fmt.Printf("window: 0 .. %.4g s (2 periods)\n\n", p.Window())
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Cyan, asciigraph.Blue),
		asciigraph.Caption("displacement (red), velocity (cyan), acceleration (blue)"),
	)
	fmt.Println(graph)
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	spring := surface.NewRecorder(float64(cfg.Spring.Width), float64(cfg.Spring.Height))
	graph := surface.NewRecorder(float64(cfg.Graph.Width), float64(cfg.Graph.Height))
	render.DrawSpring(spring, cfg.Params, atTime)
	render.DrawGraph(graph, cfg.Params, atTime)

	for name, rec := range map[string]*surface.Recorder{"spring.svg": spring, "graph.svg": graph} {
		if err := writeFile(filepath.Join(outDir, name), func(w io.Writer) error { return export.SVG(w, rec) }); err != nil {
			return err
		}
	}

	if braille {
		pal := viz.GetTheme(cfg.Theme).Palette
		views := []struct {
			name string
			size config.SizeConfig
			draw func(surface.Surface, motion.Parameters, float64, render.Palette)
		}{
			{"spring-braille.svg", cfg.Spring, render.DrawSpringWith},
			{"graph-braille.svg", cfg.Graph, render.DrawGraphWith},
		}
		for _, v := range views {
			b := viz.NewBrailleSurface(max(v.size.Width/10, 1), max(v.size.Height/20, 1), float64(v.size.Width), float64(v.size.Height))
			v.draw(b, cfg.Params, atTime, pal)
			doc := export.CanvasToSVG(b.Canvas(), 4)
			if err := writeFile(filepath.Join(outDir, v.name), func(w io.Writer) error {
				_, err := io.WriteString(w, doc)
				return err
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	fmt.Printf("wrote: %s\n", path)
	return nil
}

func analyzeMotion(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := analysis.DominantFrequency(cfg.Params, periods, perPeriod)
	if err != nil {
		return err
	}
	ag, err := analysis.Integrate(cfg.Params, perPeriod)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", r.Samples)
	fmt.Fprintf(w, "sample rate\t%.4g /s\n", r.Rate)
	fmt.Fprintf(w, "peak bin\t%d\n", r.Bin)
	fmt.Fprintf(w, "dominant frequency\t%.6g Hz\n", r.Measured)
	fmt.Fprintf(w, "ω/2π\t%.6g Hz\n", r.Expected)
	fmt.Fprintf(w, "relative error\t%.2e\n", r.RelativeError())
	fmt.Fprintf(w, "rk4 steps (dt=%.4g)\t%d\n", ag.Step, ag.Steps)
	fmt.Fprintf(w, "rk4 max deviation\t%.2e\n", ag.MaxDeviation)
	fmt.Fprintf(w, "rk4 energy drift\t%.2e\n", ag.EnergyDrift)
	if err := w.Flush(); err != nil {
		return err
	}

	plotData := r.Spectrum[:min(len(r.Spectrum), 4*r.Bin+1)]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (x)"),
	)
	fmt.Println()
	fmt.Println(graph)

	if showPhase {
		fmt.Println()
		fmt.Print(analysis.PhasePortraitToASCII(analysis.PhasePortrait(cfg.Params, render.Subdivisions), 60, 20))
	}
	return nil
}
