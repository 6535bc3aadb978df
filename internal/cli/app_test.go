package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/junkd0g/blogcharts/internal/charts"
)

func TestApp_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{"version"})
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "blogcharts version") {
		t.Errorf("version output missing 'blogcharts version', got: %s", stdout.String())
	}
}

func TestApp_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{"--help"})
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	output := stdout.String()
	for _, want := range []string{"render", "preview", "dot", "list", "serve"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q command, got: %s", want, output)
		}
	}
}

func TestApp_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"list"}); err != nil {
		t.Fatalf("list command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != len(charts.Names()) {
		t.Errorf("got %d lines, want %d", len(lines), len(charts.Names()))
	}
}

func TestApp_ListVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"list", "-v"}); err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "module-dependency-tree [tree]") {
		t.Errorf("tree chart not marked, got: %s", stdout.String())
	}
}

func TestApp_Render(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{
		"render", "deploy-pipeline", "--out", dir, "-f", "svg,figure", "--theme", "dark",
	})
	if err != nil {
		t.Fatalf("render command failed: %v\n%s", err, stderr.String())
	}

	for _, name := range []string{"deploy-pipeline.svg", "deploy-pipeline.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(stdout.String(), "2 files written") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}

func TestApp_RenderWithConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "blogcharts.yaml")
	content := "output_dir: " + filepath.Join(dir, "out") + "\ncharts: [error-budget-burn]\nformats: [svg]\nlog:\n  level: error\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"render", "-c", configPath}); err != nil {
		t.Fatalf("render command failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "error-budget-burn.svg")); err != nil {
		t.Errorf("configured chart not written: %v", err)
	}
}

func TestApp_RenderUnknownChart(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{
		"render", "pie-chart", "deploy-pipeline", "--out", t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown chart")
	}
	if !strings.Contains(stderr.String(), "✗ pie-chart") {
		t.Errorf("failure not reported, stderr: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "deploy-pipeline.svg") {
		t.Errorf("healthy chart not written, stdout: %s", stdout.String())
	}
}

func TestApp_RenderBadFlags(t *testing.T) {
	tests := [][]string{
		{"render", "--theme", "sepia"},
		{"render", "-f", "gif"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		app := New().WithOutput(&stdout, &stderr)
		if err := app.ExecuteWithArgs(context.Background(), append(args, "--out", t.TempDir())); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestApp_MissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{"list", "-c", filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("err = %v, want config file not found", err)
	}
}

func TestApp_Preview(t *testing.T) {
	out := filepath.Join(t.TempDir(), "preview.html")

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"preview", "-o", out, "--narrow", "320"}); err != nil {
		t.Fatalf("preview command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "max-width:320px") {
		t.Error("narrow width flag not applied")
	}
}

func TestApp_PreviewTheme(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "blogcharts.yaml")
	content := "theme: dark\ncharts: [deploy-pipeline]\nlog:\n  level: error\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"from config", nil, `<html lang="en" data-theme="dark">`},
		{"flag wins", []string{"--theme", "light"}, `<html lang="en" data-theme="light">`},
		{"follow system", []string{"--theme", "system"}, `<html lang="en">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "preview.html")
			var stdout, stderr bytes.Buffer
			app := New().WithOutput(&stdout, &stderr)

			args := append([]string{"preview", "-c", configPath, "-o", out}, tt.args...)
			if err := app.ExecuteWithArgs(context.Background(), args); err != nil {
				t.Fatalf("preview command failed: %v", err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("preview missing %q", tt.want)
			}
		})
	}
}

func TestApp_DotToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.dot")

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"dot", "module-dependency-tree", "-o", out}); err != nil {
		t.Fatalf("dot command failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph Tree {") {
		t.Errorf("tree.dot is not DOT: %.40q", data)
	}

	app = New().WithOutput(&stdout, &stderr)
	err = app.ExecuteWithArgs(context.Background(), []string{"dot", "module-dependency-tree", "-o", filepath.Join(t.TempDir(), "tree.gif")})
	if err == nil || !strings.Contains(err.Error(), "unsupported output") {
		t.Errorf("err = %v, want unsupported output", err)
	}
}

func TestApp_Dot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"dot", "module-dependency-tree"}); err != nil {
		t.Fatalf("dot command failed: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "digraph Tree {") {
		t.Errorf("output is not DOT: %.40s", stdout.String())
	}
}

func TestApp_DotNotTree(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{"dot", "deploy-pipeline"})
	if err == nil || !strings.Contains(err.Error(), "module-dependency-tree") {
		t.Errorf("err = %v, want a list of tree charts", err)
	}
}
