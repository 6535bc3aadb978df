package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/junkd0g/blogcharts/internal/build"
	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/config"
	"github.com/junkd0g/blogcharts/internal/diagram"
	"github.com/junkd0g/blogcharts/internal/logging"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// pngScale is the pixel density of PNGs returned to clients.
const pngScale = 2

// NewServer returns an MCP server with every chart tool registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"blogcharts",
		version,
	)

	Register(s)

	return s
}

// Register registers all tools with the MCP server.
func Register(s *server.MCPServer) {
	registerListChartsTool(s)
	registerRenderChartTool(s)
	registerExportTreeTool(s)
}

func registerListChartsTool(s *server.MCPServer) {
	tool := mcp.NewTool("list_charts",
		mcp.WithDescription("Lists every chart in the blog catalog with its title and caption."),
	)

	s.AddTool(tool, listChartsHandler)
}

func registerRenderChartTool(s *server.MCPServer) {
	tool := mcp.NewTool("render_chart",
		mcp.WithDescription("Renders a catalog chart. SVG and figure output come back as markup; PNG comes back as an image."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The catalog name of the chart, as returned by list_charts"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: svg, figure, png or dot (tree charts only). Defaults to svg"),
		),
		mcp.WithString("theme",
			mcp.Description("Colour theme: light or dark. Defaults to light"),
		),
		mcp.WithString("output_path",
			mcp.Description("Optional file to write the output to instead of returning it"),
		),
	)

	s.AddTool(tool, renderChartHandler)
}

func registerExportTreeTool(s *server.MCPServer) {
	tool := mcp.NewTool("export_tree_dot",
		mcp.WithDescription("Exports a tree chart as Graphviz DOT. With output_path the DOT (.dot) or the graphviz layout (.svg, .png) is written there."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The catalog name of a tree chart"),
		),
		mcp.WithString("theme",
			mcp.Description("Colour theme: light or dark. Defaults to light"),
		),
		mcp.WithString("output_path",
			mcp.Description("Optional .dot, .svg or .png file to write the graph to"),
		),
	)

	s.AddTool(tool, exportTreeHandler)
}

func listChartsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	names := charts.Names()
	sb.WriteString(fmt.Sprintf("%d charts:\n", len(names)))
	for _, name := range names {
		ch, err := charts.Build(name)
		if err != nil {
			return newToolResultError(err.Error()), nil
		}
		sb.WriteString(fmt.Sprintf("\n- %s: %s\n  %s\n", name, ch.Title, ch.Caption))
	}

	logging.With(logging.Get().Debug(), logging.ToolName("list_charts"), logging.Count(len(names))).Msg("listed charts")
	return mcp.NewToolResultText(sb.String()), nil
}

func renderChartHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	name, ok := request.Params.Arguments["name"].(string)
	if !ok || name == "" {
		return newToolResultError("name is required"), nil
	}

	format := config.FormatSVG
	if f, ok := request.Params.Arguments["format"].(string); ok && f != "" {
		parsed, err := config.ParseFormat(f)
		if err != nil {
			return newToolResultError(err.Error()), nil
		}
		format = parsed
	}

	th, err := themeArg(request)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	ch, err := charts.Build(name)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	data, err := build.Render(ctx, ch, format, th, pngScale)
	if err != nil {
		logging.With(logging.Get().Error(), logging.ToolName("render_chart"), logging.Chart(name), logging.ErrorField(err)).Msg("render failed")
		return newToolResultError(fmt.Sprintf("failed to render chart: %v", err)), nil
	}

	logging.With(logging.Get().Info(),
		logging.ToolName("render_chart"),
		logging.Chart(name),
		logging.Format(string(format)),
		logging.Theme(th.Name),
		logging.Bytes(len(data)),
		logging.Duration(time.Since(start)),
	).Msg("rendered chart")

	if op, ok := request.Params.Arguments["output_path"].(string); ok && op != "" {
		if err := build.WriteFile(op, data); err != nil {
			return newToolResultError(fmt.Sprintf("failed to write output: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Chart %s rendered as %s.\n\nOutput: %s\n", name, format, op)), nil
	}

	if format == config.FormatPNG {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: ch.Title,
				},
				mcp.ImageContent{
					Type:     "image",
					Data:     base64.StdEncoding.EncodeToString(data),
					MIMEType: "image/png",
				},
			},
		}, nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func exportTreeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := request.Params.Arguments["name"].(string)
	if !ok || name == "" {
		return newToolResultError("name is required"), nil
	}

	tree, ok := charts.Trees()[name]
	if !ok {
		return newToolResultError(fmt.Sprintf("%q is not a tree chart", name)), nil
	}

	th, err := themeArg(request)
	if err != nil {
		return newToolResultError(err.Error()), nil
	}

	op, _ := request.Params.Arguments["output_path"].(string)
	if op == "" {
		return mcp.NewToolResultText(diagram.GenerateDOT(tree, th.Literal())), nil
	}

	if err := build.WriteTree(ctx, tree, th, op); err != nil {
		return newToolResultError(fmt.Sprintf("failed to generate diagram: %v", err)), nil
	}

	logging.With(logging.Get().Info(), logging.ToolName("export_tree_dot"), logging.Chart(name), logging.Path(op)).Msg("exported tree")
	return mcp.NewToolResultText(fmt.Sprintf("Tree diagram generated successfully!\n\nOutput: %s\n", op)), nil
}

func themeArg(request mcp.CallToolRequest) (theme.Theme, error) {
	name, _ := request.Params.Arguments["theme"].(string)
	return theme.ByName(name)
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}
