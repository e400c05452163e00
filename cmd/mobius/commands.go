package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/mobius"
	"github.com/alexshd/mobius/config"
	"github.com/alexshd/mobius/render"
)

type rootFlags struct {
	configPath  string
	radius      float64
	width       float64
	resolution  int
	plot        string
	colormap    string
	format      string
	logLevel    string
	interactive bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "mobius",
		Short: "Estimate surface area and edge length of a Möbius strip",
		Long: `mobius samples a Möbius strip of radius R and width w on an n×n
parameter grid, estimates its surface area from finite-difference tangents
and its edge length from the two boundary polylines, and optionally renders
the mesh to a PNG file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if f.interactive {
				if err := prompt(cmd.InOrStdin(), cmd.OutOrStdout(), &cfg); err != nil {
					return err
				}
			}
			return run(cmd, cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	pf.Float64VarP(&f.radius, "radius", "R", def.Surface.Radius, "distance from the centre to the midline of the strip")
	pf.Float64VarP(&f.width, "width", "w", def.Surface.Width, "width of the strip")
	pf.IntVarP(&f.resolution, "resolution", "n", def.Surface.Resolution, "mesh resolution (samples per axis, ≥ 2)")
	pf.StringVar(&f.logLevel, "log-level", def.Log.Level, "log level: debug, info, warn, error")

	fl := cmd.Flags()
	fl.StringVarP(&f.plot, "plot", "p", "", "render the surface to this PNG file")
	fl.StringVar(&f.colormap, "colormap", def.Render.Colormap, "plot colormap: "+strings.Join(render.Colormaps(), ", "))
	fl.StringVarP(&f.format, "format", "f", def.Output.Format, "output format: text or json")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for R, w and n on stdin")

	cmd.AddCommand(newConvergeCmd(&f))
	return cmd
}

// resolveConfig starts from the defaults or the config file and applies
// every flag set explicitly on the command line. Flags that cmd does not
// define are never reported as changed.
func resolveConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("radius") {
		cfg.Surface.Radius = f.radius
	}
	if fl.Changed("width") {
		cfg.Surface.Width = f.width
	}
	if fl.Changed("resolution") {
		cfg.Surface.Resolution = f.resolution
	}
	if fl.Changed("plot") {
		cfg.Render.Output = f.plot
	}
	if fl.Changed("colormap") {
		cfg.Render.Colormap = f.colormap
	}
	if fl.Changed("format") {
		cfg.Output.Format = strings.ToLower(f.format)
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return config.Config{}, err
	}
	setupLogger(cmd.ErrOrStderr(), level)

	return cfg, nil
}

func run(cmd *cobra.Command, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	model, err := mobius.NewModel(cfg.Params())
	if err != nil {
		return err
	}
	res, err := model.Results()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := strings.ToLower(cfg.Output.Format)
	if format == "text" {
		banner(out)
	}
	if err := mobius.NewReport(res).Write(out, format); err != nil {
		return err
	}

	if cfg.Render.Output == "" {
		return nil
	}
	mesh, err := model.Mesh()
	if err != nil {
		return err
	}
	if err := render.SavePNG(cfg.Render.Output, mesh, cfg.RenderOptions()); err != nil {
		return err
	}
	slog.Info("plot written", "path", cfg.Render.Output)
	return nil
}

func banner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-----------------------------------------------------")
	fmt.Fprintln(w, "Output")
	fmt.Fprintln(w, "-----------------------------------------------------")
	fmt.Fprintln(w)
}

func newConvergeCmd(root *rootFlags) *cobra.Command {
	var (
		resolutions []int
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Evaluate the estimates at increasing resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *root)
			if err != nil {
				return err
			}

			estimates, err := mobius.RunConvergence(cmd.Context(), cfg.Params(), mobius.ConvergenceConfig{
				Resolutions: resolutions,
				MaxWorkers:  workers,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %14s %12s %14s %12s\n", "N", "Area", "ΔArea", "Edge", "ΔEdge")
			for _, e := range estimates {
				fmt.Fprintf(out, "%-6d %14.4f %+12.4f %14.4f %+12.4f\n",
					e.N, e.SurfaceArea, e.AreaDelta, e.EdgeLength, e.EdgeDelta)
			}
			if len(estimates) >= 3 {
				fmt.Fprintf(out, "converging: %v\n", mobius.IsConverging(estimates))
			}
			return nil
		},
	}

	def := mobius.DefaultConvergenceConfig()
	cmd.Flags().IntSliceVar(&resolutions, "resolutions", def.Resolutions, "mesh resolutions to evaluate")
	cmd.Flags().IntVar(&workers, "workers", def.MaxWorkers, "resolutions evaluated at once (0 = GOMAXPROCS)")
	return cmd
}
