// Package page builds the standalone preview gallery used to check charts
// against both blog themes before publishing.
package page

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/logging"
	"github.com/junkd0g/blogcharts/internal/render"
	"github.com/junkd0g/blogcharts/internal/scene"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// SectionType is a block of the preview page.
type SectionType string

const (
	SectionStats   SectionType = "stats"
	SectionGallery SectionType = "gallery"
	SectionNarrow  SectionType = "narrow"
	SectionTable   SectionType = "table"
)

// Config configures what the preview page contains.
type Config struct {
	Title       string
	Description string
	Sections    []SectionType
	Theme       string // initial theme: "light", "dark" or "" to follow the system
	// NarrowWidth is the column width, in CSS pixels, of the narrow preview.
	NarrowWidth int
	// Light and Dark supply the token values; Override-d themes from the
	// config land here.
	Light theme.Theme
	Dark  theme.Theme
}

// DefaultConfig returns a full-featured default configuration.
func DefaultConfig() Config {
	return Config{
		Title:       "Blog charts",
		Description: "Every chart in the catalog, as it renders in an article",
		NarrowWidth: 360,
		Light:       theme.Light(),
		Dark:        theme.Dark(),
		Sections: []SectionType{
			SectionStats,
			SectionGallery,
			SectionNarrow,
			SectionTable,
		},
	}
}

// FigureFunc renders one chart as an HTML figure.
type FigureFunc func(w io.Writer, ch charts.Chart, th theme.Theme) error

// Builder builds the preview page.
type Builder struct {
	charts []charts.Chart
	config Config
	stats  StatsData
	failed map[string]error
	figFn  FigureFunc
}

// StatsData summarises the charts on the page.
type StatsData struct {
	Charts     int
	Primitives int
	Texts      int
	Failed     int
}

// Generate writes the preview page for chs to w. A chart that fails to
// render is replaced by a placeholder comment; the page still completes.
func Generate(w io.Writer, chs []charts.Chart, config Config) error {
	return generate(w, chs, config, render.Figure)
}

func generate(w io.Writer, chs []charts.Chart, config Config, fn FigureFunc) error {
	b := &Builder{
		charts: chs,
		config: config,
		failed: make(map[string]error),
		figFn:  fn,
	}
	if b.config.Light.Colors == nil {
		b.config.Light = theme.Light()
	}
	if b.config.Dark.Colors == nil {
		b.config.Dark = theme.Dark()
	}
	if b.config.NarrowWidth <= 0 {
		b.config.NarrowWidth = 360
	}

	b.stats = b.buildStatsData()
	out := b.render()

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write preview page: %w", err)
	}

	logging.With(logging.Get().Info(),
		logging.Count(len(chs)),
		logging.Bytes(len(out)),
	).Msg("preview page generated")
	return nil
}

func (b *Builder) buildStatsData() StatsData {
	stats := StatsData{Charts: len(b.charts)}
	for _, ch := range b.charts {
		stats.Primitives += len(ch.Primitives)
		stats.Texts += len(scene.Filter(ch.Primitives, scene.KindText))
	}
	return stats
}

func (b *Builder) render() string {
	var sb strings.Builder

	sb.WriteString(b.renderHead())

	sb.WriteString(`<body><div class="container">`)

	sb.WriteString(b.renderHeader())

	// Figures render first so the summaries can count failures.
	body := make([]string, len(b.config.Sections))
	for i, section := range b.config.Sections {
		if !summary(section) {
			body[i] = b.renderSection(section)
		}
	}
	b.stats.Failed = len(b.failed)
	for i, section := range b.config.Sections {
		if summary(section) {
			body[i] = b.renderSection(section)
		}
		sb.WriteString(body[i])
	}

	sb.WriteString(b.renderFooter())
	sb.WriteString(`</div>`)
	sb.WriteString(themeToggleScript)
	sb.WriteString(`</body></html>`)

	return sb.String()
}

func (b *Builder) renderHead() string {
	var css strings.Builder
	css.WriteString(b.config.Light.CSS(":root"))
	css.WriteString("@media (prefers-color-scheme: dark) {\n")
	css.WriteString(b.config.Dark.CSS(`:root:not([data-theme="light"])`))
	css.WriteString("}\n")
	css.WriteString(b.config.Dark.CSS(`[data-theme="dark"]`))
	css.WriteString(b.config.Light.CSS(`[data-theme="light"]`))
	css.WriteString(baseCSS)

	htmlAttrs := ""
	if b.config.Theme != "" {
		htmlAttrs = fmt.Sprintf(` data-theme="%s"`, html.EscapeString(b.config.Theme))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en"%s>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>%s</style>
</head>`, htmlAttrs, html.EscapeString(b.config.Title), css.String())
}

func (b *Builder) renderHeader() string {
	return fmt.Sprintf(`
<header>
    <h1>%s</h1>
    <p>%s</p>
    <button type="button" id="theme-toggle">Toggle theme</button>
</header>`, html.EscapeString(b.config.Title), html.EscapeString(b.config.Description))
}

func (b *Builder) renderFooter() string {
	return `<footer><p>Generated by blogcharts</p></footer>`
}

func summary(section SectionType) bool {
	return section == SectionStats || section == SectionTable
}

func (b *Builder) renderSection(section SectionType) string {
	switch section {
	case SectionStats:
		return b.renderStatsCards()
	case SectionGallery:
		return b.renderGallery()
	case SectionNarrow:
		return b.renderNarrow()
	case SectionTable:
		return b.renderChartsTable()
	default:
		return ""
	}
}

func (b *Builder) renderStatsCards() string {
	return fmt.Sprintf(`
<div class="widget stats-grid">
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Charts</div>
    </div>
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Primitives</div>
    </div>
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Labels</div>
    </div>
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Failed</div>
    </div>
</div>`,
		b.stats.Charts,
		b.stats.Primitives,
		b.stats.Texts,
		b.stats.Failed)
}

func (b *Builder) renderGallery() string {
	var sb strings.Builder
	sb.WriteString("\n<div class=\"widget gallery\">\n    <h3>Gallery</h3>\n")
	for _, ch := range b.charts {
		sb.WriteString(`<div class="chart-box">`)
		sb.WriteString("\n")
		sb.WriteString(b.figure(ch, ""))
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>")
	return sb.String()
}

func (b *Builder) renderNarrow() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n<div class=\"widget\">\n    <h3>Narrow viewport (%dpx)</h3>\n", b.config.NarrowWidth))
	sb.WriteString(fmt.Sprintf(`<div class="narrow" style="max-width:%dpx">`, b.config.NarrowWidth))
	sb.WriteString("\n")
	for _, ch := range b.charts {
		sb.WriteString(b.figure(ch, "-narrow"))
	}
	sb.WriteString("</div>\n</div>")
	return sb.String()
}

// figure renders one chart, degrading to a placeholder when it fails.
// suffix keeps element ids unique when a chart appears twice on the page.
func (b *Builder) figure(ch charts.Chart, suffix string) string {
	variant := ch
	variant.ID += suffix

	var buf bytes.Buffer
	err := render.Safe(func() error {
		return b.figFn(&buf, variant, b.config.Light)
	})
	if err == nil {
		return buf.String()
	}

	if _, seen := b.failed[ch.ID]; !seen {
		b.failed[ch.ID] = err
		logging.With(logging.Get().Error(), logging.Chart(ch.ID), logging.ErrorField(err)).Msg("chart failed to render")
	}
	buf.Reset()
	_ = render.Placeholder(&buf, ch.ID)
	return buf.String()
}

func (b *Builder) renderChartsTable() string {
	var rows strings.Builder
	for _, ch := range b.charts {
		status := `<span class="badge ok">ok</span>`
		if _, failed := b.failed[ch.ID]; failed {
			status = `<span class="badge failed">failed</span>`
		}
		rows.WriteString(fmt.Sprintf(`
        <tr>
            <td><strong>%s</strong></td>
            <td>%s</td>
            <td>%s&times;%s</td>
            <td>%d</td>
            <td>%s</td>
        </tr>`,
			html.EscapeString(ch.ID), html.EscapeString(ch.Title),
			formatSize(ch.Canvas.Width), formatSize(ch.Canvas.Height),
			len(ch.Primitives), status))
	}

	return fmt.Sprintf(`
<div class="widget table-box">
    <h3>All Charts</h3>
    <table>
        <thead>
            <tr><th>Name</th><th>Title</th><th>Canvas</th><th>Primitives</th><th>Status</th></tr>
        </thead>
        <tbody>%s</tbody>
    </table>
</div>`, rows.String())
}

func formatSize(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}

const themeToggleScript = `
<script>
document.getElementById('theme-toggle').addEventListener('click', () => {
    const root = document.documentElement;
    const dark = root.dataset.theme === 'dark' ||
        (!root.dataset.theme && window.matchMedia('(prefers-color-scheme: dark)').matches);
    root.dataset.theme = dark ? 'light' : 'dark';
});
</script>
`

const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: var(--chart-surface);
    min-height: 100vh;
    color: var(--chart-text);
}
.container { max-width: 1200px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 30px 0; border-bottom: 1px solid var(--chart-grid); margin-bottom: 30px; }
header h1 { font-size: 2.2rem; margin-bottom: 10px; }
header p { color: var(--chart-muted); font-size: 1.1rem; margin-bottom: 15px; }
header button { padding: 6px 14px; border-radius: 6px; border: 1px solid var(--chart-grid); background: transparent; color: var(--chart-text); cursor: pointer; }
.widget { margin-bottom: 25px; }
.widget h3 { margin-bottom: 15px; font-size: 1.2rem; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 20px; }
.stat-card { border-radius: 12px; padding: 20px; text-align: center; border: 1px solid var(--chart-grid); }
.stat-card .number { font-size: 2.5rem; font-weight: bold; color: var(--chart-accent); }
.stat-card .label { color: var(--chart-muted); margin-top: 5px; }
.chart-box { border-radius: 12px; padding: 20px; border: 1px solid var(--chart-grid); margin-bottom: 20px; }
figure.chart { margin: 0; }
figure.chart figcaption { color: var(--chart-muted); font-size: 0.9rem; margin-top: 8px; }
.narrow { margin: 0 auto; border-left: 1px dashed var(--chart-grid); border-right: 1px dashed var(--chart-grid); padding: 0 8px; }
.narrow figure.chart { margin-bottom: 20px; }
.table-box { border-radius: 12px; padding: 20px; border: 1px solid var(--chart-grid); overflow-x: auto; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 12px 15px; text-align: left; border-bottom: 1px solid var(--chart-grid); }
th { font-weight: 600; }
.badge { display: inline-block; padding: 4px 12px; border-radius: 20px; font-size: 0.85rem; font-weight: 500; }
.badge.ok { color: var(--chart-success); border: 1px solid var(--chart-success); }
.badge.failed { color: var(--chart-danger); border: 1px solid var(--chart-danger); }
footer { text-align: center; padding: 30px 0; color: var(--chart-muted); border-top: 1px solid var(--chart-grid); margin-top: 30px; }
`
