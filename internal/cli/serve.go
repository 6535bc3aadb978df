package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/junkd0g/blogcharts/internal/logging"
	"github.com/junkd0g/blogcharts/internal/tools"
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart tools over MCP on stdio",
		Long: `Run an MCP server on stdin/stdout exposing list_charts, render_chart and
export_tree_dot. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Get().Info().Str("version", Version).Msg("mcp server starting")
			return server.ServeStdio(tools.NewServer(Version))
		},
	}
}
