package taskplot

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mwiater/taskplot/internal/appconfig"
	"github.com/mwiater/taskplot/internal/chart"
	"github.com/mwiater/taskplot/internal/logging"
	"github.com/mwiater/taskplot/internal/ranking"
	"github.com/mwiater/taskplot/internal/report"
	"github.com/mwiater/taskplot/internal/results"
	"github.com/mwiater/taskplot/internal/util"
	"gonum.org/v1/plot/vg"
)

// layout is the fully computed content of one chart.
type layout struct {
	Kind          ranking.Kind
	Paths         []string
	Labels        []string
	Tables        []results.Table
	Priority      ranking.Priority
	Names         []string
	Raw           ranking.Matrix
	Values        ranking.Matrix
	Style         chart.Style
	MinSeparation float64
	Summary       []ranking.ConditionSummary
}

// buildLayout loads the result files named in args[1:] and computes ordering and values
// for the plot kind in args[0].
func buildLayout(cfg appconfig.Config, style string, args []string) (*layout, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("need a plot kind and at least one result file")
	}
	kind, err := ranking.LookupKind(args[0])
	if err != nil {
		return nil, err
	}
	paths := args[1:]

	tables, err := results.LoadTables(paths, kind.Arity)
	if err != nil {
		return nil, err
	}
	for _, table := range tables {
		logging.LogStage("load", "file", table.Path, "tasks", table.Len())
	}

	priority, err := ranking.ParsePriority(cfg.Priority, len(tables))
	if err != nil {
		return nil, err
	}
	rc := kind.Config(priority)

	names, err := ranking.OrderTrace(tables, rc, func(pass, table int, names []string) {
		logging.LogDebug("order pass %d on %s: %s", pass, tables[table].Path, strings.Join(names, " "))
	})
	if err != nil {
		return nil, err
	}
	raw := ranking.Materialize(tables, names, rc)

	l := &layout{
		Kind:     kind,
		Paths:    paths,
		Labels:   cfg.ConditionLabels(paths),
		Tables:   tables,
		Priority: priority,
		Names:    names,
		Raw:      raw,
		Values:   raw,
		Style:    chart.Bar,
	}
	if kind.Scatter {
		l.Style = chart.Scatter
	}
	if style != "" {
		if l.Style, err = chart.ParseStyle(style); err != nil {
			return nil, err
		}
	}
	l.Summary = ranking.Summarize(tables, names, raw, l.Labels)

	if l.Style == chart.Scatter {
		l.MinSeparation = cfg.MinSeparation
		if l.MinSeparation <= 0 {
			l.MinSeparation = ranking.AutoSeparation(raw, cfg.SeparationFraction())
		}
		l.Values, err = ranking.DeOverlap(raw, l.MinSeparation, cfg.MaxIterations)
		if err != nil {
			return nil, fmt.Errorf("scatter layout: %w", err)
		}
		logging.LogStage("scatter", "minSeparation", l.MinSeparation)
	}
	logging.LogStage("order", "kind", kind.Name, "tasks", len(names), "conditions", len(tables))
	return l, nil
}

func (l *layout) chart(cfg appconfig.Config) chart.Chart {
	w, h := cfg.FigureSize()
	return chart.Chart{
		Title:  l.Kind.Title,
		XLabel: l.Kind.XLabel,
		Names:  l.Names,
		Rows:   l.Values,
		Labels: l.Labels,
		Style:  l.Style,
		Width:  vg.Length(w) * vg.Inch,
		Height: vg.Length(h) * vg.Inch,
	}
}

// runPlot is the body of 'plot': compute, print the ordering, write the chart and the
// optional analysis JSON and HTML report.
func runPlot(out io.Writer, cfg appconfig.Config, opts plotOptions, args []string) error {
	l, err := buildLayout(cfg, opts.style, args)
	if err != nil {
		return err
	}

	printOrdering(out, l.Kind.Name, l.Names)

	outputPath := opts.outputPath
	if outputPath == "" {
		outputPath = cfg.OutputPath(l.Kind.Name)
	}
	c := l.chart(cfg)
	if err := chart.Save(c, outputPath); err != nil {
		return fmt.Errorf("unable to write chart %s: %w", outputPath, err)
	}
	logging.LogStage("render", "style", l.Style, "file", outputPath)
	fmt.Fprintf(out, "Chart written to %s\n", outputPath)

	if opts.analysisPath != "" {
		if err := writeAnalysisJSON(opts.analysisPath, l.analysis()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Analysis JSON written to %s\n", opts.analysisPath)
	}

	if opts.htmlPath != "" {
		svg, err := chart.Render(c, "svg")
		if err != nil {
			return fmt.Errorf("failed rendering report chart: %w", err)
		}
		html, err := report.Generate(report.Data{
			Title:   l.Kind.Title,
			Kind:    l.Kind.Name,
			XLabel:  l.Kind.XLabel,
			Labels:  l.Labels,
			Names:   l.Names,
			Rows:    l.Values,
			Summary: l.Summary,
			SVG:     svg,
		})
		if err != nil {
			return fmt.Errorf("failed generating HTML report: %w", err)
		}
		if err := util.WriteFile(opts.htmlPath, []byte(html)); err != nil {
			return fmt.Errorf("unable to write HTML report %s: %w", opts.htmlPath, err)
		}
		fmt.Fprintf(out, "Report written to %s\n", opts.htmlPath)
	}
	return nil
}

// analysis is the JSON document written by --analysis-output. Non-finite values are
// encoded as null.
type analysis struct {
	Kind          string                     `json:"kind"`
	Title         string                     `json:"title"`
	Style         string                     `json:"style"`
	Files         []string                   `json:"files"`
	Labels        []string                   `json:"labels"`
	Priority      []int                      `json:"priority"`
	MinSeparation float64                    `json:"min_separation,omitempty"`
	Tasks         []string                   `json:"tasks"`
	Values        [][]*float64               `json:"values"`
	RawValues     [][]*float64               `json:"raw_values,omitempty"`
	Summary       []ranking.ConditionSummary `json:"summary"`
}

func (l *layout) analysis() analysis {
	a := analysis{
		Kind:          l.Kind.Name,
		Title:         l.Kind.Title,
		Style:         l.Style.String(),
		Files:         l.Paths,
		Labels:        l.Labels,
		Priority:      l.Priority,
		MinSeparation: l.MinSeparation,
		Tasks:         l.Names,
		Values:        jsonMatrix(l.Values),
		Summary:       l.Summary,
	}
	if l.Style == chart.Scatter {
		a.RawValues = jsonMatrix(l.Raw)
	}
	return a
}

func jsonMatrix(m ranking.Matrix) [][]*float64 {
	out := make([][]*float64, len(m))
	for i, row := range m {
		out[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			v := v
			out[i][j] = &v
		}
	}
	return out
}

func writeAnalysisJSON(path string, a analysis) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}
