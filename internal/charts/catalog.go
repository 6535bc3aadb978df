package charts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/junkd0g/blogcharts/internal/geometry"
	"github.com/junkd0g/blogcharts/internal/shapes"
	"github.com/junkd0g/blogcharts/internal/theme"
)

// ErrUnknownChart is returned when a chart name is not in the catalog.
var ErrUnknownChart = errors.New("unknown chart")

// Builder produces a chart from constants fixed at authoring time.
type Builder func() Chart

// catalog holds every chart published on the blog, keyed by the name used
// to embed it in an article.
var catalog = map[string]Builder{
	"consistency-latency-tradeoff": ConsistencyLatencyTradeoff,
	"batch-size-tradeoff":          BatchSizeTradeoff,
	"serialization-comparison":     SerializationComparison,
	"deploy-pipeline":              DeployPipeline,
	"module-dependency-tree":       ModuleDependencyTree,
	"error-budget-burn":            ErrorBudgetBurn,
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, bool) {
	b, ok := catalog[name]
	return b, ok
}

// Build renders the named chart's geometry.
func Build(name string) (Chart, error) {
	b, ok := Lookup(name)
	if !ok {
		return Chart{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return b(), nil
}

// Trees returns the tree specs in the catalog, keyed by chart name. The
// graphviz export works on these.
func Trees() map[string]TreeSpec {
	return map[string]TreeSpec{
		"module-dependency-tree": moduleDependencyTreeSpec(),
	}
}

// ConsistencyLatencyTradeoff is the chart from the replication post: stronger
// consistency costs latency, weaker consistency costs correctness.
func ConsistencyLatencyTradeoff() Chart {
	return Tradeoff(TradeoffSpec{
		ID:      "consistency-latency-tradeoff",
		Title:   "Consistency vs. latency",
		Caption: "Tightening consistency drives write latency up while stale reads fall; the sweet spot sits where the two costs meet.",
		Rising: TradeoffCurve{
			Label: "write latency",
			From:  0.1,
			To:    0.9,
			Role:  theme.RoleDanger,
		},
		Falling: TradeoffCurve{
			Label: "stale reads",
			From:  0.9,
			To:    0.1,
			Role:  theme.RoleWarning,
		},
		XTitle:       "consistency level →",
		YTitle:       "cost",
		OptimumLabel: "quorum",
		BandWidth:    0.16,
		Gridlines:    4,
	})
}

// BatchSizeTradeoff weighs per-item overhead against queueing delay as the
// batch size grows.
func BatchSizeTradeoff() Chart {
	return Tradeoff(TradeoffSpec{
		ID:      "batch-size-tradeoff",
		Title:   "Batch size",
		Caption: "Bigger batches amortise overhead until queueing delay dominates.",
		Rising: TradeoffCurve{
			Label: "queueing delay",
			From:  0.15,
			To:    0.85,
			Role:  theme.RoleDanger,
		},
		Falling: TradeoffCurve{
			Label: "per-item overhead",
			From:  0.85,
			To:    0.15,
			Role:  theme.RoleAccent,
		},
		XTitle:    "batch size →",
		YTitle:    "time per item",
		BandWidth: 0.1,
		Gridlines: 3,
	})
}

// SerializationComparison compares encode times of the formats from the
// wire-format post.
func SerializationComparison() Chart {
	return Comparison(ComparisonSpec{
		ID:      "serialization-comparison",
		Title:   "Encode time per message",
		Caption: "Schema-driven binary formats encode several times faster than reflection-based JSON.",
		Bars: []shapes.Bar{
			{Label: "encoding/json", Value: 1840, Role: theme.RoleDanger},
			{Label: "msgpack", Value: 720, Role: theme.RoleWarning},
			{Label: "protobuf", Value: 410, Role: theme.RoleSuccess},
			{Label: "flatbuffers", Value: 180, Role: theme.RoleSuccess},
		},
		Max:        2000,
		Unit:       "ns",
		Ticks:      4,
		LabelWidth: 84,
	})
}

// DeployPipeline is the three-stage rollout from the deployment post.
func DeployPipeline() Chart {
	return Pipeline(PipelineSpec{
		ID:      "deploy-pipeline",
		Title:   "Progressive delivery",
		Caption: "Every change goes through canary and staged rollout before it reaches all traffic.",
		Canvas:  pipelineCanvas,
		Stages: []Stage{
			{Name: "Canary", Detail: "1% traffic, 15 min", Role: theme.RoleWarning},
			{Name: "Staged", Detail: "25% per region", Role: theme.RoleAccent},
			{Name: "Fleet", Detail: "100% traffic", Role: theme.RoleSuccess},
		},
	})
}

var pipelineCanvas = geometry.Canvas{
	Width:   640,
	Height:  200,
	Padding: geometry.Padding{Top: 36, Right: 32, Bottom: 36, Left: 32},
}

// ModuleDependencyTree is the package graph from the project-layout post.
func ModuleDependencyTree() Chart {
	return DependencyTree(moduleDependencyTreeSpec())
}

func moduleDependencyTreeSpec() TreeSpec {
	return TreeSpec{
		ID:      "module-dependency-tree",
		Title:   "Package dependencies",
		Caption: "cmd depends on the service layer only; storage and transport never see each other.",
		Root: &shapes.Node{Label: "cmd/server", Role: theme.RoleAccent, Children: []shapes.Node{
			{Label: "transport", Role: theme.RoleAccent, Children: []shapes.Node{
				{Label: "http"},
				{Label: "grpc"},
			}},
			{Label: "service", Role: theme.RoleSuccess, Children: []shapes.Node{
				{Label: "domain", Role: theme.RoleSuccess},
				{Label: "storage", Role: theme.RoleWarning, Children: []shapes.Node{
					{Label: "postgres", Role: theme.RoleWarning},
				}},
			}},
		}},
	}
}

// ErrorBudgetBurn plots an error rate climbing through SLO zones.
func ErrorBudgetBurn() Chart {
	return Threshold(ThresholdSpec{
		ID:      "error-budget-burn",
		Title:   "Error budget burn",
		Caption: "The burn rate crosses into paging territory long before the budget is gone.",
		Points:  [][2]float64{{0, 0.4}, {6, 0.6}, {12, 1.1}, {18, 2.4}, {24, 3.6}},
		XMax:    24,
		YMax:    4,
		Zones: []Zone{
			{Label: "healthy", From: 0, To: 1, Role: theme.RoleSuccess},
			{Label: "ticket", From: 1, To: 2, Role: theme.RoleWarning},
			{Label: "page", From: 2, To: 4, Role: theme.RoleDanger},
		},
		Line:   theme.RoleAccent,
		XTitle: "hours",
		YTitle: "burn rate",
	})
}
