// Package build renders the configured charts to files.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/config"
	"github.com/junkd0g/blogcharts/internal/diagram"
	"github.com/junkd0g/blogcharts/internal/logging"
	"github.com/junkd0g/blogcharts/internal/render"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// Options selects what a build writes.
type Options struct {
	OutputDir string
	Formats   []config.Format
	Charts    []string
	Theme     theme.Theme
	PNGScale  float64
}

// OptionsFrom resolves a loaded config into build options.
func OptionsFrom(cfg *config.Config) (Options, error) {
	th, err := cfg.ResolveTheme()
	if err != nil {
		return Options{}, err
	}
	return Options{
		OutputDir: cfg.OutputDir,
		Formats:   cfg.Formats,
		Charts:    cfg.ChartNames(),
		Theme:     th,
		PNGScale:  cfg.PNGScale,
	}, nil
}

// Result is one file produced, or attempted, by a build.
type Result struct {
	Chart  string
	Format config.Format
	Path   string
	Bytes  int
	Err    error
}

// Run writes every selected chart in every selected format. A chart that
// fails is recorded and the rest still build; the joined failures are
// returned alongside the results. DOT output is only written for tree
// charts.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	trees := charts.Trees()
	var (
		results []Result
		errs    []error
	)

	for _, name := range opts.Charts {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		ch, err := charts.Build(name)
		if err != nil {
			results = append(results, Result{Chart: name, Err: err})
			errs = append(errs, err)
			continue
		}

		for _, f := range opts.Formats {
			if f == config.FormatDOT {
				if _, ok := trees[name]; !ok {
					continue
				}
			}

			res := Result{Chart: name, Format: f, Path: filepath.Join(opts.OutputDir, name+f.Ext())}
			data, err := Render(ctx, ch, f, opts.Theme, opts.PNGScale)
			if err == nil {
				err = WriteFile(res.Path, data)
			}
			res.Bytes = len(data)
			res.Err = err

			var event *bolt.Event
			if err != nil {
				event = logging.Get().Error()
				errs = append(errs, fmt.Errorf("%s (%s): %w", name, f, err))
			} else {
				event = logging.Get().Info()
			}
			logging.With(event,
				logging.Chart(name),
				logging.Format(string(f)),
				logging.Path(res.Path),
				logging.Bytes(res.Bytes),
				logging.ErrorField(err),
			).Msg("chart written")

			results = append(results, res)
		}
	}

	return results, errors.Join(errs...)
}

// Render produces ch in format f. Panics inside a renderer come back as
// render.ErrRenderPanic.
func Render(ctx context.Context, ch charts.Chart, f config.Format, th theme.Theme, scale float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err := render.Safe(func() error {
		switch f {
		case config.FormatSVG:
			return render.SVG(&buf, ch, th)
		case config.FormatFigure:
			return render.Figure(&buf, ch, th)
		case config.FormatPNG:
			return render.PNG(&buf, ch, th, scale)
		case config.FormatDOT:
			tree, ok := charts.Trees()[ch.ID]
			if !ok {
				return fmt.Errorf("%w: %s", diagram.ErrNotTree, ch.ID)
			}
			_, err := buf.WriteString(diagram.GenerateDOT(tree, th.Literal()))
			return err
		default:
			return fmt.Errorf("unsupported format %q", f)
		}
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTree exports tree to path through graphviz, in the format named by
// the path's extension (.dot, .svg or .png). Colours are always literal.
func WriteTree(ctx context.Context, tree charts.TreeSpec, th theme.Theme, path string) error {
	data, err := diagram.Generate(ctx, tree, th.Literal(), path)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
