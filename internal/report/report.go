// internal/report/report.go
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mwiater/taskplot/internal/ranking"
	"github.com/mwiater/taskplot/internal/util"
)

// Data is the input for one HTML report.
type Data struct {
	Title   string
	Kind    string
	XLabel  string
	Labels  []string
	Names   []string
	Rows    ranking.Matrix
	Summary []ranking.ConditionSummary
	// SVG is the rendered chart, embedded inline.
	SVG []byte
}

type reportRow struct {
	Index  int
	Name   string
	Values []string
}

type viewModel struct {
	Title   string
	Kind    string
	XLabel  string
	Labels  []string
	Rows    []reportRow
	Summary []ranking.ConditionSummary
	Chart   template.HTML
}

// Generate renders a standalone HTML page with the chart, the task ordering and the
// per-condition summary.
func Generate(d Data) (string, error) {
	if len(d.Rows) != len(d.Labels) {
		return "", fmt.Errorf("report has %d value rows for %d labels", len(d.Rows), len(d.Labels))
	}
	rows := make([]reportRow, 0, len(d.Names))
	for j, name := range d.Names {
		values := make([]string, len(d.Rows))
		for i, row := range d.Rows {
			values[i] = util.FormatValue(row[j])
		}
		rows = append(rows, reportRow{Index: j, Name: name, Values: values})
	}

	vm := viewModel{
		Title:   d.Title,
		Kind:    d.Kind,
		XLabel:  d.XLabel,
		Labels:  d.Labels,
		Rows:    rows,
		Summary: d.Summary,
		Chart:   template.HTML(d.SVG),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, vm); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var reportTemplate = template.Must(template.New("taskplot-report").Funcs(template.FuncMap{
	"fmtValue": util.FormatValue,
}).Parse(reportTemplateHTML))

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>taskplot: {{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #334155;
      --light: #F1F5F9;
      --border: #E2E8F0;
    }
    body { background-color: var(--light); }
    .navbar-dark { background-color: var(--primary) !important; }
    .card { border: 1px solid var(--border); }
    .chart svg { max-width: 100%; height: auto; }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark mb-4">
    <div class="container-fluid">
      <span class="navbar-brand">{{ .Title }}</span>
      <span class="text-light">{{ .Kind }}</span>
    </div>
  </nav>
  <main class="container">
    {{ if .Chart }}
    <div class="card mb-4">
      <div class="card-body chart">{{ .Chart }}</div>
    </div>
    {{ end }}
    <div class="card mb-4">
      <div class="card-header">Summary ({{ .XLabel }})</div>
      <div class="card-body">
        <table class="table table-sm table-striped table-bordered">
          <thead>
            <tr><th>condition</th><th>present</th><th>missing</th><th>mean</th><th>median</th><th>min</th><th>max</th></tr>
          </thead>
          <tbody>
          {{ range .Summary }}
            <tr><td>{{ .Label }}</td><td>{{ .Present }}</td><td>{{ .Missing }}</td><td>{{ fmtValue .Mean }}</td><td>{{ fmtValue .Median }}</td><td>{{ fmtValue .Min }}</td><td>{{ fmtValue .Max }}</td></tr>
          {{ end }}
          </tbody>
        </table>
      </div>
    </div>
    <div class="card mb-4">
      <div class="card-header">Task ordering</div>
      <div class="card-body">
        <table class="table table-sm table-striped table-bordered">
          <thead>
            <tr><th>#</th><th>task</th>{{ range .Labels }}<th>{{ . }}</th>{{ end }}</tr>
          </thead>
          <tbody>
          {{ range .Rows }}
            <tr><td>{{ .Index }}</td><td>{{ .Name }}</td>{{ range .Values }}<td>{{ . }}</td>{{ end }}</tr>
          {{ end }}
          </tbody>
        </table>
      </div>
    </div>
  </main>
</body>
</html>
`
