package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junkd0g/blogcharts/internal/build"
	"github.com/junkd0g/blogcharts/internal/config"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// renderOptions holds options for the render command. Set flags override
// the config file.
type renderOptions struct {
	outputDir string
	theme     string
	formats   []string
	charts    []string
	scale     float64
}

// newRenderCmd creates the render command.
func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [chart...]",
		Short: "Render charts to files",
		Long: `Render catalog charts to the output directory, one file per chart and
format. Charts can be named as arguments or with --chart; with neither, the
config's chart list (or the whole catalog) is rendered.

A chart that fails is reported and the rest still render.

Examples:
  # Everything, as configured
  blogcharts render

  # One chart as SVG and PNG in the dark theme
  blogcharts render deploy-pipeline -f svg -f png --theme dark`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.charts = append(opts.charts, args...)
			return a.render(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "Output directory")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme (light or dark)")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Output formats (svg, figure, png, dot)")
	cmd.Flags().StringSliceVar(&opts.charts, "chart", nil, "Charts to render")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG pixel density")

	return cmd
}

func (a *App) render(cmd *cobra.Command, opts *renderOptions) error {
	buildOpts, err := a.buildOptions(opts)
	if err != nil {
		return err
	}

	results, err := build.Run(cmd.Context(), buildOpts)
	written := 0
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(a.stderr, "✗ %s", r.Chart)
			if r.Format != "" {
				_, _ = fmt.Fprintf(a.stderr, " (%s)", r.Format)
			}
			_, _ = fmt.Fprintf(a.stderr, ": %v\n", r.Err)
			continue
		}
		written++
		_, _ = fmt.Fprintf(a.stdout, "✓ %s (%d bytes)\n", r.Path, r.Bytes)
	}
	_, _ = fmt.Fprintf(a.stdout, "%d files written to %s\n", written, buildOpts.OutputDir)

	if err != nil {
		return fmt.Errorf("some charts failed: %w", err)
	}
	return nil
}

// buildOptions merges flags over the loaded config.
func (a *App) buildOptions(opts *renderOptions) (build.Options, error) {
	cfg := *a.cfg
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.theme != "" {
		if _, err := theme.ByName(opts.theme); err != nil {
			return build.Options{}, err
		}
		cfg.Theme = opts.theme
	}
	if len(opts.formats) > 0 {
		cfg.Formats = nil
		for _, f := range opts.formats {
			parsed, err := config.ParseFormat(f)
			if err != nil {
				return build.Options{}, err
			}
			cfg.Formats = append(cfg.Formats, parsed)
		}
	}
	if len(opts.charts) > 0 {
		cfg.Charts = opts.charts
	}
	if opts.scale > 0 {
		cfg.PNGScale = opts.scale
	}

	return build.OptionsFrom(&cfg)
}
