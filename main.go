package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/app"
	"flight-radar.klederson.com/internal/config"
	"flight-radar.klederson.com/internal/feed"
	"flight-radar.klederson.com/internal/log"
	"flight-radar.klederson.com/internal/radar"
	"flight-radar.klederson.com/internal/scene"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagScenario string
	flagLogLevel string
	flagLogDir   string
	flagSeed     int64

	flagOut    string
	flagWidth  float64
	flagHeight float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flight-radar",
		Short: "Flight Radar - Terminal airship radar with vision cones and guidelines",
		Long: `Flight Radar projects tracked airships onto a circular radar in the
terminal, with range rings, 1 km scale bars, lookahead guidelines and
left/right vision cones for every airship.

Without --scenario a generated demo traffic feed is shown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file (defaults apply when empty)")
	pf.StringVar(&flagScenario, "scenario", "", "YAML scenario with a fixed list of airships")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&flagLogDir, "log-dir", "", "Directory for the log file (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "Demo traffic seed (0 picks one from the clock)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to an image file",
		Long: `Render one frame of the current feed to PNG, SVG or PDF, chosen by the
output file extension. Sizes are in pixels; the image keeps the same
proportions.`,
		Args: cobra.NoArgs,
		RunE: snapshot,
	}
	snapshotCmd.Flags().StringVarP(&flagOut, "out", "o", "radar.png", "Output image file")
	snapshotCmd.Flags().Float64Var(&flagWidth, "width", 800, "Frame width in pixels")
	snapshotCmd.Flags().Float64Var(&flagHeight, "height", 800, "Frame height in pixels")
	rootCmd.AddCommand(snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogDir != "" {
		cfg.Log.Dir = flagLogDir
	}
	return cfg, nil
}

// newFeed returns the configured feed and a short description of it.
func newFeed(cfg *config.Config) (*feed.DemoFeed, string, error) {
	if flagScenario != "" {
		ships, err := feed.LoadScenario(flagScenario)
		if err != nil {
			return nil, "", err
		}
		return feed.NewScenarioFeed(ships, cfg.Feed.Interval), flagScenario, nil
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return feed.NewDemoFeed(cfg.Feed.DemoCount, cfg.Feed.Interval, cfg.Display.Range, seed), "demo", nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lg, err := log.New(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		return err
	}
	f, source, err := newFeed(cfg)
	if err != nil {
		return err
	}
	lg.Info("flight radar starting", "version", config.AppVersion, "source", source, "log", lg.LogFile)
	if flagConfig != "" {
		lg.Infof("config loaded from %s", flagConfig)
	}

	model := app.New(cfg, lg, f, source)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start the feed with reference to the tea program
	if err := model.StartFeed(p); err != nil {
		return err
	}
	defer model.StopFeed()

	_, err = p.Run()
	lg.Info("flight radar stopped", "uptime", time.Since(lg.Start).Round(time.Second))
	return err
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, _, err := newFeed(cfg)
	if err != nil {
		return err
	}

	store := feed.NewStore()
	for _, m := range f.Current(time.Now()) {
		if err := store.Upsert(m); err != nil {
			return err
		}
	}

	ships, err := store.Snapshot()
	if err != nil {
		return err
	}
	return renderSnapshot(cmd.Context(), cfg, ships, flagOut, flagWidth, flagHeight)
}

func renderSnapshot(ctx context.Context, cfg *config.Config, ships *airship.Airships, out string, w, h float64) error {
	fr, err := scene.NewFrame(cfg, w, h, ships, scene.DefaultView(cfg))
	if err != nil {
		return err
	}
	s, err := scene.Build(ctx, fr, config.RenderWorkers)
	if err != nil {
		return err
	}
	ps := radar.NewPlotSurface(w, h)
	radar.Draw(ps, s)
	if err := ps.Save(out, w, h); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	fmt.Printf("%s: %d airships, %d close pairs\n", out, ships.Len(), len(s.ClosePairs))
	return nil
}
