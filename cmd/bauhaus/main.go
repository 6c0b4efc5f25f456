package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/bauhaus/internal/analysis"
	"github.com/san-kum/bauhaus/internal/config"
	"github.com/san-kum/bauhaus/internal/export"
	"github.com/san-kum/bauhaus/internal/flip"
	"github.com/san-kum/bauhaus/internal/sched"
	"github.com/san-kum/bauhaus/internal/tile"
	"github.com/san-kum/bauhaus/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile   string
	preset       string
	verbose      bool
	logFile      string
	seed         int64
	theme        string
	tileSize     int
	fps          int
	minDelay     int
	maxDelay     int
	flipDuration int
	vpWidth      int
	vpHeight     int
	// export
	frames    int
	frameStep time.Duration
	// stats
	samples int
	// config
	savePath string
)

// defaultViewport is used by headless commands when no viewport is set.
var defaultViewport = flip.Size{W: 1000, H: 800}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bauhaus",
		Short:        "animated grid of flipping Bauhaus tiles",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "start from a preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&logFile, "log-file", "", "write logs here while the TUI runs")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.IntVar(&tileSize, "tile", config.DefaultTileSize, "tile size in logical units")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&minDelay, "min-delay", config.DefaultMinDelayMs, "minimum flip delay (ms)")
	pf.IntVar(&maxDelay, "max-delay", config.DefaultMaxDelayMs, "maximum flip delay (ms)")
	pf.IntVar(&flipDuration, "flip-duration", config.DefaultFlipDuration, "duration of each flip half (ms)")
	pf.IntVar(&vpWidth, "width", 0, "viewport width in logical units (0 measures)")
	pf.IntVar(&vpHeight, "height", 0, "viewport height in logical units (0 measures)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the animated grid in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file.svg]",
		Short: "render a freshly mounted grid to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().IntVar(&frames, "frames", 1, "number of frames to export")
	exportCmd.Flags().DurationVar(&frameStep, "step", 10*time.Second, "virtual time between frames")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "sample the tile generator and report frequencies",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&samples, "samples", 100000, "number of styles to generate")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "also write the configuration to this file")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list themes and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "themes:")
			for _, name := range viz.ThemeNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, exportCmd, statsCmd, configCmd, themesCmd)
	return rootCmd
}

// loadConfig layers preset, config file and explicitly set flags, in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("tile") {
		cfg.TileSize = tileSize
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("min-delay") {
		cfg.Timing.MinDelay = minDelay
	}
	if flags.Changed("max-delay") {
		cfg.Timing.MaxDelay = maxDelay
	}
	if flags.Changed("flip-duration") {
		cfg.Timing.FlipDuration = flipDuration
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = vpWidth
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = vpHeight
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := viz.GetTheme(cfg.Theme); !ok {
		return nil, fmt.Errorf("%w: unknown theme %q (available: %s)", config.ErrInvalid, cfg.Theme, strings.Join(viz.ThemeNames(), ", "))
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger, closeLog, err := tuiLogger(logFile, level)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	logger.Info("starting", "theme", cfg.Theme, "tile", cfg.TileSize, "delay", fmt.Sprintf("%v..%v", cfg.MinDelay(), cfg.MaxDelay()))
	return viz.Run(cfg, logger, tile.NewSource(cfg.Seed))
}

// mountHeadless builds a grid for the configured (or default) viewport
// without a terminal.
func mountHeadless(cfg *config.Config) (*flip.Grid, *sched.Scheduler, viz.Theme) {
	th, _ := viz.GetTheme(cfg.Theme)
	vp := defaultViewport
	if cfg.Viewport.Width > 0 {
		vp.W = cfg.Viewport.Width
	}
	if cfg.Viewport.Height > 0 {
		vp.H = cfg.Viewport.Height
	}
	src := tile.NewSource(cfg.Seed)
	clock := sched.New()
	g := flip.NewGrid(vp, flip.Options{
		Gen:   tile.NewGenerator(src, th.Palette, cfg.TileSize),
		Rand:  src,
		Clock: clock,
		Timing: flip.Timing{
			MinDelay:     cfg.MinDelay(),
			MaxDelay:     cfg.MaxDelay(),
			FlipDuration: cfg.FlipDuration(),
		},
	})
	return g, clock, th
}

func exportSVG(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}

	g, clock, th := mountHeadless(cfg)
	defer g.Close()
	logger.Debug("grid mounted", "rows", g.Rows(), "cols", g.Cols())

	out := export.Frames(g, clock, th, frames, frameStep)
	if len(args) == 0 {
		for _, svg := range out {
			fmt.Fprintln(cmd.OutOrStdout(), svg)
		}
		return nil
	}

	for i, svg := range out {
		path := framePath(args[0], i, len(out))
		if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("exported", "file", path, "cells", g.Len(), "t", clock.Now())
	}
	return nil
}

// framePath numbers files when more than one frame is written:
// grid.svg becomes grid-000.svg, grid-001.svg, ...
func framePath(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i, ext)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", samples)
	}
	th, _ := viz.GetTheme(cfg.Theme)
	gen := tile.NewGenerator(tile.NewSource(cfg.Seed), th.Palette, cfg.TileSize)

	start := time.Now()
	st := analysis.Sample(gen, samples)
	loggerFromContext(cmd.Context()).Debug("sampled", "n", samples, "elapsed", time.Since(start).Round(time.Millisecond))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, st.Report())
	if plot := st.Plot(60, 8); plot != "" {
		fmt.Fprintf(out, "\n%s\n", plot)
	}
	if !st.Within(4) {
		loggerFromContext(cmd.Context()).Warn("frequencies outside 4σ of expected values")
	}
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		loggerFromContext(cmd.Context()).Info("saved", "file", savePath)
	}
	return nil
}
