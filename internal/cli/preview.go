package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/junkd0g/blogcharts/internal/build"
	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/page"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// followSystem leaves the initial preview theme to prefers-color-scheme.
const followSystem = "system"

// previewOptions holds options for the preview command.
type previewOptions struct {
	output      string
	title       string
	theme       string
	narrowWidth int
}

// newPreviewCmd creates the preview command.
func (a *App) newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write an HTML gallery of every chart",
		Long: `Write a standalone HTML page showing every configured chart in light and
dark themes and in a narrow column, with a summary table. Charts that fail
to render are replaced by a placeholder and flagged in the table.

Examples:
  blogcharts preview -o preview.html
  blogcharts preview --theme dark --narrow 320
  blogcharts preview --theme system`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.preview(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Output file (default <output_dir>/preview.html)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Initial theme: light, dark or system (default from config)")
	cmd.Flags().IntVar(&opts.narrowWidth, "narrow", 0, "Narrow column width in CSS pixels")

	return cmd
}

func (a *App) preview(opts *previewOptions) error {
	initial := opts.theme
	if initial == "" {
		initial = a.cfg.Theme
	}
	if initial == followSystem {
		initial = ""
	} else if _, err := theme.ByName(initial); err != nil {
		return err
	}

	pcfg := page.DefaultConfig()
	if opts.title != "" {
		pcfg.Title = opts.title
	}
	pcfg.Theme = initial
	if opts.narrowWidth > 0 {
		pcfg.NarrowWidth = opts.narrowWidth
	}

	// Colour overrides apply to both token sets.
	light, err := theme.Light().Override(a.cfg.Colors)
	if err != nil {
		return err
	}
	dark, err := theme.Dark().Override(a.cfg.Colors)
	if err != nil {
		return err
	}
	pcfg.Light, pcfg.Dark = light, dark

	var chs []charts.Chart
	for _, name := range a.cfg.ChartNames() {
		ch, err := charts.Build(name)
		if err != nil {
			return err
		}
		chs = append(chs, ch)
	}

	var buf bytes.Buffer
	if err := page.Generate(&buf, chs, pcfg); err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = filepath.Join(a.cfg.OutputDir, "preview.html")
	}
	if err := build.WriteFile(out, buf.Bytes()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.stdout, "✓ Preview of %d charts written to %s\n", len(chs), out)
	return nil
}
