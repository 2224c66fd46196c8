package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/superliangbot/simlab/internal/canvas"
	"github.com/superliangbot/simlab/internal/config"
	"github.com/superliangbot/simlab/internal/export"
	"github.com/superliangbot/simlab/internal/gui"
	"github.com/superliangbot/simlab/internal/host"
	"github.com/superliangbot/simlab/internal/registry"
	"github.com/superliangbot/simlab/internal/tui"
)

var (
	configFile string
	verbose    bool
	category   string
	presetName string
	setFlags   []string
	startFPS   int
	startPause bool
	simTime    float64
	outWidth   int
	outHeight  int
	outFile    string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "simlab",
})

func main() {

	rootCmd := &cobra.Command{
		Use:   "simlab",
		Short: "interactive physics simulations in your terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(loadConfig(logger), logger)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available simulations",
		RunE:  listSims,
	}
	listCmd.Flags().StringVar(&category, "category", "", "only show one category")

	paramsCmd := &cobra.Command{
		Use:   "params [slug]",
		Short: "show the parameter schema for a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  showParams,
	}

	runCmd := &cobra.Command{
		Use:   "run [slug]",
		Short: "run one simulation full screen",
		Args:  cobra.ExactArgs(1),
		RunE:  runSim,
	}
	runCmd.Flags().IntVar(&startFPS, "fps", 0, "frames per second (overrides config)")
	runCmd.Flags().BoolVar(&startPause, "paused", false, "start paused")
	runCmd.Flags().StringArrayVar(&setFlags, "set", nil, "override a parameter, key=value (repeatable)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "apply a named preset")

	describeCmd := &cobra.Command{
		Use:   "describe [slug]",
		Short: "advance a simulation headless and print its state",
		Args:  cobra.ExactArgs(1),
		RunE:  describeSim,
	}
	describeCmd.Flags().Float64Var(&simTime, "time", 5.0, "seconds of simulated time")
	describeCmd.Flags().StringArrayVar(&setFlags, "set", nil, "override a parameter, key=value (repeatable)")
	describeCmd.Flags().StringVar(&presetName, "preset", "", "apply a named preset")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [slug]",
		Short: "render a simulation frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotSim,
	}
	snapshotCmd.Flags().Float64Var(&simTime, "time", 5.0, "seconds of simulated time")
	snapshotCmd.Flags().IntVar(&outWidth, "width", 80, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&outHeight, "height", 24, "canvas height in cells")
	snapshotCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default <slug>.svg)")
	snapshotCmd.Flags().StringArrayVar(&setFlags, "set", nil, "override a parameter, key=value (repeatable)")
	snapshotCmd.Flags().StringVar(&presetName, "preset", "", "apply a named preset")

	presetsCmd := &cobra.Command{
		Use:   "presets [slug]",
		Short: "list available presets for a simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [slug]",
		Short: "run a simulation in a native window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(logger)
			slug := cfg.Simulation
			if len(args) > 0 {
				slug = args[0]
			}
			return gui.Run(slug, cfg, logger)
		},
	}

	rootCmd.AddCommand(listCmd, paramsCmd, runCmd, describeCmd, snapshotCmd, presetsCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given, the default path when present,
// and falls back to built-in defaults otherwise.
func loadConfig(logger *log.Logger) *config.Config {
	path := configFile
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		if configFile != "" {
			logger.Warn("could not read config, using defaults", "path", path, "err", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

func listSims(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tCATEGORY\tDESCRIPTION")
	for _, slug := range registry.Slugs() {
		sim, _ := registry.Get(slug)
		if category != "" && !strings.EqualFold(sim.Category, category) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", sim.Slug, sim.Category, sim.Description)
	}
	return w.Flush()
}

func showParams(cmd *cobra.Command, args []string) error {
	sim, ok := registry.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", registry.ErrNotFound, args[0])
	}
	fmt.Printf("%s (%s)\n\n", sim.Title, sim.Slug)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tRANGE\tSTEP\tDEFAULT\tUNIT")
	for _, pm := range sim.Schema {
		fmt.Fprintf(w, "%s\t%s\t%g..%g\t%g\t%g\t%s\n",
			pm.Key, pm.Label, pm.Min, pm.Max, pm.Step, pm.Default, pm.Unit)
	}
	return w.Flush()
}

// overridesFor merges preset values and --set flags for slug, in that
// order so explicit flags win.
func overridesFor(slug string) (map[string]float64, error) {
	sim, ok := registry.Get(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrNotFound, slug)
	}
	out := map[string]float64{}
	if presetName != "" {
		vals := config.GetPreset(slug, presetName)
		if vals == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)",
				presetName, config.ListPresets(slug))
		}
		for k, v := range vals {
			out[k] = v
		}
	}
	for _, s := range setFlags {
		key, raw, found := strings.Cut(s, "=")
		if !found {
			return nil, fmt.Errorf("bad --set %q, want key=value", s)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --set %q: %w", s, err)
		}
		pm, ok := sim.Schema.Find(key)
		if !ok {
			return nil, fmt.Errorf("unknown parameter %q for %s", key, slug)
		}
		out[key] = pm.Clamp(v)
	}
	return out, nil
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(logger)
	if startFPS > 0 {
		cfg.FPS = startFPS
	}
	overrides, err := overridesFor(args[0])
	if err != nil {
		return err
	}
	return tui.RunSimulation(cfg, args[0], overrides, startPause, logger)
}

// advanceHeadless builds a loop on an offscreen canvas and integrates
// simTime seconds of simulated time at a fixed step.
func advanceHeadless(slug string, cols, rows int) (*host.Loop, *canvas.Canvas, error) {
	factory, err := registry.LoadEngine(context.Background(), slug)
	if err != nil {
		return nil, nil, err
	}
	overrides, err := overridesFor(slug)
	if err != nil {
		return nil, nil, err
	}
	sim, _ := registry.Get(slug)
	params := sim.Schema.Defaults()
	for k, v := range overrides {
		params[k] = v
	}

	c := canvas.New(cols, rows)
	loop := host.New(nil)
	loop.Bind(factory(), c)
	loop.SetParams(params)
	loop.Start()
	loop.Advance(simTime, 1.0/60.0)
	return loop, c, nil
}

func describeSim(cmd *cobra.Command, args []string) error {
	loop, _, err := advanceHeadless(args[0], 80, 24)
	if err != nil {
		return err
	}
	defer loop.Close()
	fmt.Printf("%s after %.2fs:\n\n%s\n", args[0], loop.Elapsed(), loop.Describe())
	return nil
}

func snapshotSim(cmd *cobra.Command, args []string) error {
	loop, c, err := advanceHeadless(args[0], outWidth, outHeight)
	if err != nil {
		return err
	}
	defer loop.Close()

	svg := export.CanvasToSVG(c, 4, "")
	path := outFile
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("wrote %s (%.2fs simulated, %d dots)\n", path, loop.Elapsed(), c.LitDots())
	return nil
}
