package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CarlosSanchess/benchcharts/src/catalog"
	"github.com/CarlosSanchess/benchcharts/src/charts"
	"github.com/CarlosSanchess/benchcharts/src/chartspec"
	"github.com/CarlosSanchess/benchcharts/src/config"
	"github.com/CarlosSanchess/benchcharts/src/logging"
	"github.com/CarlosSanchess/benchcharts/src/render"
	"github.com/CarlosSanchess/benchcharts/src/viewer"
)

// cli carries flag values and the resolved configuration for one invocation.
type cli struct {
	out io.Writer
	cfg config.Config

	configPath string
	backend    string
	width      int
	height     int
	logLevel   string
	theme      string

	// selection, shared by show and export
	files []string
	chart int

	outDir string
	format string
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:   "benchcharts",
		Short: "Show and export matrix multiplication benchmark charts",
		Long: `benchcharts draws labeled multi-series comparison charts (C++ vs Java
execution time, GFLOPS, cache misses, ...) from chart decks. The naive,
linebyline and parallel decks are built in; more can be loaded from YAML.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "INI config file (default: ./"+config.DefaultFile+" when present)")
	pf.StringVar(&c.backend, "backend", "", "render backend: "+strings.Join(render.Names(), " or "))
	pf.IntVar(&c.width, "width", 0, "chart width in pixels (overrides the deck)")
	pf.IntVar(&c.height, "height", 0, "chart height in pixels (overrides the deck)")
	pf.StringVar(&c.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&c.theme, "theme", "", "viewer theme: dark or light")

	root.AddCommand(c.listCmd(), c.showCmd(), c.exportCmd())
	return root
}

// setup loads the config file and applies flags that were set explicitly.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	path := c.configPath
	if path == "" {
		path = config.Discover()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Render.Backend = c.backend
	}
	if flags.Changed("width") {
		cfg.Render.Width = c.width
	}
	if flags.Changed("height") {
		cfg.Render.Height = c.height
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if flags.Changed("theme") {
		cfg.Viewer.Theme = c.theme
	}
	if flags.Changed("out") {
		cfg.Export.Dir = c.outDir
	}
	if flags.Changed("format") {
		cfg.Export.Format = c.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.SetLogLevel(cfg.Log.Level)
	if path != "" {
		logging.Debugf("[config] loaded %s", path)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List decks and their charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decks, err := c.decks(catalog.Names())
			if err != nil {
				return err
			}
			for _, d := range decks {
				fmt.Fprintf(c.out, "%s", d.Name)
				if d.Description != "" {
					fmt.Fprintf(c.out, " - %s", d.Description)
				}
				fmt.Fprintln(c.out)
				for i, t := range d.Titles() {
					fmt.Fprintf(c.out, "  %d. %s\n", i+1, t)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&c.files, "file", nil, "also list charts from these YAML decks")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [deck...]",
		Short: "Display charts one window at a time",
		Long: `Display charts one window at a time. Each window blocks until closed,
then the next chart opens. With no deck names and no --file all built-in
decks are shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := c.selection(args)
			if err != nil {
				return err
			}
			backend, err := render.New(c.cfg.Render.Backend)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			opts := viewer.Options{Theme: c.cfg.Viewer.Theme, FollowWidth: c.cfg.Viewer.FollowWidth}
			return viewer.Run(opts, func(v *viewer.Viewer) error {
				r := charts.New(backend, v).WithSize(c.cfg.Size())
				return r.RenderAll(ctx, specs)
			})
		},
	}
	c.selectionFlags(cmd)
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [deck...]",
		Short: "Write charts to image files",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := c.selection(args)
			if err != nil {
				return err
			}
			backend, err := render.New(c.cfg.Render.Backend)
			if err != nil {
				return err
			}
			format, err := render.ParseFormat(c.cfg.Export.Format)
			if err != nil {
				return err
			}
			paths, err := charts.New(backend, nil).WithSize(c.cfg.Size()).ExportAll(specs, c.cfg.Export.Dir, format)
			for _, p := range paths {
				fmt.Fprintln(c.out, p)
			}
			if err != nil {
				return err
			}
			logging.Infof("[export] wrote %d charts to %s with %s", len(paths), c.cfg.Export.Dir, backend.Name())
			return nil
		},
	}
	c.selectionFlags(cmd)
	cmd.Flags().StringVarP(&c.outDir, "out", "o", "", "output directory (default from config: charts)")
	cmd.Flags().StringVar(&c.format, "format", "", "png, svg or pdf (pdf needs --backend plot)")
	return cmd
}

func (c *cli) selectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&c.files, "file", nil, "YAML deck files")
	cmd.Flags().IntVar(&c.chart, "chart", 0, "only this chart (1-based, as numbered by list)")
}

// decks loads the named built-in decks followed by the --file decks.
func (c *cli) decks(names []string) ([]*catalog.Deck, error) {
	var out []*catalog.Deck
	for _, n := range names {
		d, err := catalog.Load(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	for _, f := range c.files {
		d, err := catalog.LoadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// selection resolves deck arguments and --chart into the charts to process.
func (c *cli) selection(args []string) ([]*chartspec.ChartSpec, error) {
	if len(args) == 0 && len(c.files) == 0 {
		args = catalog.Names()
	}
	decks, err := c.decks(args)
	if err != nil {
		return nil, err
	}
	var specs []*chartspec.ChartSpec
	for _, d := range decks {
		specs = append(specs, d.Charts...)
	}
	if c.chart != 0 {
		if len(decks) != 1 {
			return nil, fmt.Errorf("--chart needs exactly one deck, got %d", len(decks))
		}
		if c.chart < 1 || c.chart > len(specs) {
			return nil, fmt.Errorf("--chart %d out of range: deck %s has %d charts", c.chart, decks[0].Name, len(specs))
		}
		specs = specs[c.chart-1 : c.chart]
	}
	return specs, nil
}

// runContext is used when a command is executed without a context.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
