package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/steamcup/internal/config"
	"github.com/san-kum/steamcup/internal/export"
	"github.com/san-kum/steamcup/internal/playback"
	"github.com/san-kum/steamcup/internal/screen"
	"github.com/san-kum/steamcup/internal/storage"
	"github.com/san-kum/steamcup/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	scene       string
	frames      int
	spawnEvery  int
	fps         int
	seed        int64
	width       int
	height      int
	offset      int
	riseSpeed   float64
	wind        float64
	maxSpeed    float64
	buoyancy    float64
	maxLifespan int
	contained   bool

	// Playback switches
	stream    bool
	loop      bool
	onScreen  bool
	replayFPS int
	theme     string

	// SVG export
	svgFrame  int
	svgSeries bool
	svgOut    string
)

// main registers the steamcup commands and plays the default scene when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "steamcup",
		Short:        "steam rising from a terminal coffee cup",
		SilenceUsage: true,
		RunE:         playCmdRun,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".steamcup", "data directory")
	addSceneFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "record frames, then play them back",
		Args:  cobra.NoArgs,
		RunE:  playCmdRun,
	}
	addSceneFlags(playCmd)
	playCmd.Flags().BoolVar(&stream, "stream", false, "print frames while simulating")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			th, err := tui.GetTheme(theme)
			if err != nil {
				return err
			}
			return tui.Run(cfg, th)
		},
	}
	addSceneFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "classic", fmt.Sprintf("color theme %v", tui.ThemeNames()))

	screenCmd := &cobra.Command{
		Use:   "screen",
		Short: "full-screen playback",
		Args:  cobra.NoArgs,
		RunE:  screenCmdRun,
	}
	addSceneFlags(screenCmd)
	screenCmd.Flags().BoolVar(&loop, "loop", false, "repeat until q is pressed")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record a run to the data directory",
		Args:  cobra.NoArgs,
		RunE:  recordRun,
	}
	addSceneFlags(recordCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "play a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	replayCmd.Flags().IntVar(&replayFPS, "fps", 0, "frame rate (default: the recorded one)")
	replayCmd.Flags().BoolVar(&onScreen, "screen", false, "use full-screen playback")
	replayCmd.Flags().BoolVar(&loop, "loop", false, "repeat until q is pressed (with --screen)")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot live particles per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a frame or the particle series as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVGRun,
	}
	exportSVGCmd.Flags().IntVar(&svgFrame, "frame", -1, "frame index (default: the last frame)")
	exportSVGCmd.Flags().BoolVar(&svgSeries, "series", false, "plot live particles per frame instead")
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output file (default: stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSCENE\tSIZE\tWIND\tRISE\tLIFESPAN")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%+.2f\t%.2f\t%d\n",
					name, p.Scene, p.Steam.Width, p.Steam.Height, p.Steam.Wind, p.Steam.RiseSpeed, p.Steam.MaxLifespan)
			}
			return w.Flush()
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "config-init [path]",
		Short: "write the default configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, liveCmd, screenCmd, recordCmd, listCmd, replayCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd, configInitCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func playCmdRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, _, err := playback.NewScene(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player := playback.NewPlayer(cmd.OutOrStdout(), cfg.FPS)
	if stream {
		return ignoreInterrupt(player.Stream(ctx, playback.NewRecorder(sc, cfg.SpawnEvery), cfg.Frames))
	}

	recorded, err := playback.Record(ctx, sc, cfg.Frames, cfg.SpawnEvery)
	if err != nil {
		return ignoreInterrupt(err)
	}
	return ignoreInterrupt(player.Play(ctx, playback.Texts(recorded)))
}

func screenCmdRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sc, _, err := playback.NewScene(cfg)
	if err != nil {
		return err
	}
	recorded, err := playback.Record(cmd.Context(), sc, cfg.Frames, cfg.SpawnEvery)
	if err != nil {
		return err
	}
	return playOnScreen(cmd.Context(), playback.Texts(recorded), cfg.FPS, cfg.Steam.Height)
}

func playOnScreen(ctx context.Context, texts []string, rate, steamHeight int) error {
	s, err := screen.Open()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	defer s.Fini()
	return screen.NewPlayer(s, rate, steamHeight, loop).Play(ctx, texts)
}

func recordRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sc, _, err := playback.NewScene(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "recording %d %s frames...\n", cfg.Frames, cfg.Scene)
	recorded, err := playback.Record(cmd.Context(), sc, cfg.Frames, cfg.SpawnEvery)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, recorded)
	if err != nil {
		return err
	}

	sum := storage.Summarize(recorded)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "frames: %d\n", sum.Frames)
	fmt.Fprintf(out, "peak particles: %d\n", sum.PeakParticles)
	fmt.Fprintf(out, "mean particles: %.2f\n", sum.MeanParticles)
	fmt.Fprintf(out, "expired: %d\n", sum.TotalExpired)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tFRAMES\tFPS\tPEAK\tSEED")
	for _, run := range runs {
		rate, seed := 0, int64(0)
		if run.Config != nil {
			rate, seed = run.Config.FPS, run.Config.Seed
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Summary.Frames,
			rate,
			run.Summary.PeakParticles,
			seed,
		)
	}
	return w.Flush()
}

func replayRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	texts, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	rate := replayFPS
	steamHeight := len(texts)
	if meta.Config != nil {
		if rate == 0 {
			rate = meta.Config.FPS
		}
		steamHeight = meta.Config.Steam.Height
	}

	if onScreen {
		return playOnScreen(cmd.Context(), texts, rate, steamHeight)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return ignoreInterrupt(playback.NewPlayer(cmd.OutOrStdout(), rate).Play(ctx, texts))
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	stats, err := st.LoadStats(args[0])
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "scene: %s\n", meta.Scene)
	fmt.Fprintf(out, "frames: %d\n\n", len(stats))

	graph := asciigraph.Plot(storage.Particles(stats),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live particles per frame"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func exportSVGRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	var svg string
	if svgSeries {
		stats, err := st.LoadStats(args[0])
		if err != nil {
			return err
		}
		svg = export.SeriesToSVG(storage.Particles(stats), 800, 300, "#f0f0f0")
	} else {
		texts, err := st.LoadFrames(args[0])
		if err != nil {
			return err
		}
		if len(texts) == 0 {
			return fmt.Errorf("run %s has no frames", args[0])
		}
		idx := svgFrame
		if idx < 0 {
			idx = len(texts) - 1
		}
		if idx >= len(texts) {
			return fmt.Errorf("frame %d out of range [0, %d)", idx, len(texts))
		}
		steamHeight := strings.Count(texts[idx], "\n") + 1
		if meta.Config != nil {
			steamHeight = meta.Config.Steam.Height
		}
		svg = export.FrameToSVG(texts[idx], 16, steamHeight)
	}
	if svg == "" {
		return fmt.Errorf("not enough data to draw")
	}

	if svgOut == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgOut)
	return nil
}
