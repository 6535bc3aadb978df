package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junkd0g/blogcharts/internal/charts"
)

// listOptions holds options for the list command.
type listOptions struct {
	verbose bool
}

// newListCmd creates the list command.
func (a *App) newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the charts in the catalog",
		Long: `List every chart in the catalog by the name used to embed it.

Examples:
  # Names only
  blogcharts list

  # With titles and captions
  blogcharts list -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show title and caption")

	return cmd
}

func (a *App) list(opts *listOptions) error {
	trees := charts.Trees()
	for _, name := range charts.Names() {
		if !opts.verbose {
			_, _ = fmt.Fprintln(a.stdout, name)
			continue
		}

		ch, err := charts.Build(name)
		if err != nil {
			return err
		}
		kind := ""
		if _, ok := trees[name]; ok {
			kind = " [tree]"
		}
		_, _ = fmt.Fprintf(a.stdout, "%s%s\n  %s\n  %s\n\n", name, kind, ch.Title, ch.Caption)
	}
	return nil
}
