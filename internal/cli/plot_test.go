package taskplot

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mwiater/taskplot/internal/appconfig"
	"github.com/mwiater/taskplot/internal/chart"
	"github.com/mwiater/taskplot/internal/ranking"
)

func init() {
	color.NoColor = true
}

func writeResults(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func scenarioArgs(t *testing.T, kind string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	writeResults(t, dir, map[string]string{
		"A.tsv": "t1\t2.0\t-1.0\t3.0\n",
		"B.tsv": "t1\t4.0\t-3.0\t5.0\nt2\t1.0\t-0.5\t2.0\n",
	})
	return dir, []string{kind, filepath.Join(dir, "A.tsv"), filepath.Join(dir, "B.tsv")}
}

func TestBuildLayoutSpeed(t *testing.T) {
	_, args := scenarioArgs(t, "speed")
	l, err := buildLayout(appconfig.Config{}, "", args)
	if err != nil {
		t.Fatalf("buildLayout error: %v", err)
	}
	if want := []string{"t2", "t1"}; !reflect.DeepEqual(l.Names, want) {
		t.Fatalf("expected %v, got %v", want, l.Names)
	}
	if want := (ranking.Matrix{{0, 0.5}, {1.0, 0.25}}); !reflect.DeepEqual(l.Values, want) {
		t.Fatalf("expected %v, got %v", want, l.Values)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(l.Labels, want) {
		t.Fatalf("expected labels %v, got %v", want, l.Labels)
	}
	if l.Style != chart.Bar {
		t.Fatalf("expected bar style, got %s", l.Style)
	}
}

func TestBuildLayoutFirstWins(t *testing.T) {
	_, args := scenarioArgs(t, "likelihood")
	l, err := buildLayout(appconfig.Config{Priority: "first-wins"}, "", args)
	if err != nil {
		t.Fatalf("buildLayout error: %v", err)
	}
	// A is primary: t1 has -1 while t2 is missing and sorts at NegInf.
	if want := []string{"t1", "t2"}; !reflect.DeepEqual(l.Names, want) {
		t.Fatalf("expected %v, got %v", want, l.Names)
	}
	if l.Values[0][1] != ranking.NegInf {
		t.Fatalf("expected NegInf for missing task, got %v", l.Values[0][1])
	}
}

func TestBuildLayoutScatterSeparates(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, map[string]string{
		"a.tsv": "t1\t1\t0\t10.0\n",
		"b.tsv": "t1\t1\t0\t10.2\n",
		"c.tsv": "t1\t1\t0\t2.0\n",
	})
	args := []string{"iteration-speed", filepath.Join(dir, "a.tsv"), filepath.Join(dir, "b.tsv"), filepath.Join(dir, "c.tsv")}
	l, err := buildLayout(appconfig.Config{MinSeparation: 0.05}, "", args)
	if err != nil {
		t.Fatalf("buildLayout error: %v", err)
	}
	if l.Style != chart.Scatter {
		t.Fatalf("expected scatter style, got %s", l.Style)
	}
	if gap := math.Abs(l.Values[0][0] - l.Values[1][0]); gap < 0.05-1e-9 {
		t.Fatalf("expected markers at least 0.05 apart, got %v", gap)
	}
	if l.Raw[0][0] != 0.1 {
		t.Fatalf("raw values must stay untouched, got %v", l.Raw[0][0])
	}
}

func TestBuildLayoutErrors(t *testing.T) {
	_, args := scenarioArgs(t, "velocity")
	if _, err := buildLayout(appconfig.Config{}, "", args); !errors.Is(err, ranking.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	// total-speed needs three fields per record.
	dir := t.TempDir()
	writeResults(t, dir, map[string]string{"two.tsv": "t1\t1\t-1\n"})
	if _, err := buildLayout(appconfig.Config{}, "", []string{"total-speed", filepath.Join(dir, "two.tsv")}); err == nil {
		t.Fatal("expected arity error")
	}

	_, args = scenarioArgs(t, "speed")
	if _, err := buildLayout(appconfig.Config{}, "pie", args); err == nil {
		t.Fatal("expected style error")
	}
	if _, err := buildLayout(appconfig.Config{Priority: "7"}, "", args); err == nil {
		t.Fatal("expected priority error")
	}
	if _, err := buildLayout(appconfig.Config{}, "", args[:1]); err == nil {
		t.Fatal("expected error without result files")
	}
}

func TestRunPlotWritesOutputs(t *testing.T) {
	dir, args := scenarioArgs(t, "speed")
	cfg := appconfig.Config{OutputDir: filepath.Join(dir, "charts"), Format: "svg", Labels: []string{"primitive"}}
	opts := plotOptions{
		analysisPath: filepath.Join(dir, "analysis", "speed.json"),
		htmlPath:     filepath.Join(dir, "speed.html"),
	}

	var out bytes.Buffer
	if err := runPlot(&out, cfg, opts, args); err != nil {
		t.Fatalf("runPlot error: %v", err)
	}

	console := out.String()
	for _, want := range []string{"speed", "0 t2", "1 t1", "Chart written to"} {
		if !strings.Contains(console, want) {
			t.Fatalf("expected console output to contain %q, got:\n%s", want, console)
		}
	}

	svg, err := os.ReadFile(filepath.Join(dir, "charts", "speed.svg"))
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatal("expected svg chart")
	}

	data, err := os.ReadFile(opts.analysisPath)
	if err != nil {
		t.Fatalf("read analysis: %v", err)
	}
	var doc struct {
		Kind   string       `json:"kind"`
		Tasks  []string     `json:"tasks"`
		Labels []string     `json:"labels"`
		Values [][]*float64 `json:"values"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	if doc.Kind != "speed" || !reflect.DeepEqual(doc.Tasks, []string{"t2", "t1"}) {
		t.Fatalf("unexpected analysis %+v", doc)
	}
	if !reflect.DeepEqual(doc.Labels, []string{"primitive", "B"}) {
		t.Fatalf("unexpected labels %v", doc.Labels)
	}
	if *doc.Values[1][0] != 1.0 {
		t.Fatalf("unexpected value %v", *doc.Values[1][0])
	}

	html, err := os.ReadFile(opts.htmlPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(html), "<svg") || !strings.Contains(string(html), "primitive") {
		t.Fatal("expected report with inline chart and labels")
	}
}

func TestRunPlotExplicitOutput(t *testing.T) {
	dir, args := scenarioArgs(t, "prob")
	path := filepath.Join(dir, "fig.eps")
	var out bytes.Buffer
	if err := runPlot(&out, appconfig.Config{}, plotOptions{outputPath: path}, args); err != nil {
		t.Fatalf("runPlot error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected chart at %s: %v", path, err)
	}
	if err := runPlot(&out, appconfig.Config{}, plotOptions{outputPath: filepath.Join(dir, "fig.gif")}, args); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestJSONMatrixNullsNonFinite(t *testing.T) {
	m := jsonMatrix(ranking.Matrix{{math.Inf(1), 2}})
	if m[0][0] != nil || m[0][1] == nil || *m[0][1] != 2 {
		t.Fatalf("unexpected json matrix %v", m)
	}
}
