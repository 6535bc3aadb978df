package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/junkd0g/blogcharts/internal/build"
	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/diagram"
)

// dotOptions holds options for the dot command.
type dotOptions struct {
	output string
}

// newDotCmd creates the dot command.
func (a *App) newDotCmd() *cobra.Command {
	opts := &dotOptions{}

	cmd := &cobra.Command{
		Use:   "dot <tree-chart>",
		Short: "Export a tree chart through graphviz",
		Long: `Print a tree chart as Graphviz DOT, or write it to a file: DOT for .dot,
and a graphviz layout for .svg or .png. Useful as a cross-check of the
hand-placed tree layout.

Examples:
  blogcharts dot module-dependency-tree
  blogcharts dot module-dependency-tree -o tree.svg
  blogcharts dot module-dependency-tree -o tree.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dot(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Write to this .dot, .svg or .png file")

	return cmd
}

func (a *App) dot(cmd *cobra.Command, name string, opts *dotOptions) error {
	trees := charts.Trees()
	tree, ok := trees[name]
	if !ok {
		names := make([]string, 0, len(trees))
		for n := range trees {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("%q is not a tree chart (trees: %s)", name, strings.Join(names, ", "))
	}

	th, err := a.cfg.ResolveTheme()
	if err != nil {
		return err
	}
	th = th.Literal()

	if opts.output == "" {
		_, err := fmt.Fprint(a.stdout, diagram.GenerateDOT(tree, th))
		return err
	}

	if err := build.WriteTree(cmd.Context(), tree, th, opts.output); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(a.stdout, "✓ %s written to %s\n", name, opts.output)
	return nil
}
