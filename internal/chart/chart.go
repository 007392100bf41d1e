// internal/chart/chart.go
// Package chart draws the per-condition task values as horizontal grouped bars or as a
// scatter, using gonum/plot.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Style selects how a condition's values are drawn.
type Style int

const (
	Bar Style = iota
	Scatter
)

func (s Style) String() string {
	if s == Scatter {
		return "scatter"
	}
	return "bar"
}

// ParseStyle resolves "bar" or "scatter".
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bar", "bars":
		return Bar, nil
	case "scatter":
		return Scatter, nil
	}
	return Bar, fmt.Errorf("unknown chart style %q", name)
}

// groupFraction is the share of one task slot covered by its group of bars.
const groupFraction = 0.7

// plotAreaFraction approximates how much of the canvas height the data area gets once
// title, legend and axis are laid out.
const plotAreaFraction = 0.75

var formats = map[string]bool{"eps": true, "svg": true, "pdf": true, "png": true}

// Chart is everything needed to draw one figure. Rows[i][j] is condition i's value for
// task Names[j].
type Chart struct {
	Title  string
	XLabel string
	Names  []string
	Rows   [][]float64
	Labels []string
	Style  Style
	Width  vg.Length
	Height vg.Length
}

// Offsets returns the per-condition bar offsets, in bar widths, for t conditions. The
// first condition is drawn on top of its group.
func Offsets(t int) []float64 {
	out := make([]float64, t)
	for i := range out {
		out[i] = float64(t-1)/2 - float64(i)
	}
	return out
}

// New builds the plot for c.
func New(c Chart) (*plot.Plot, error) {
	for i, row := range c.Rows {
		if len(row) != len(c.Names) {
			return nil, fmt.Errorf("row %d has %d values for %d tasks", i, len(row), len(c.Names))
		}
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = "task"
	p.Legend.Top = true

	ticks := make([]plot.Tick, len(c.Names))
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i)}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	colors := palette(len(c.Rows))
	var err error
	if c.Style == Scatter {
		err = addScatter(p, c, colors)
	} else {
		err = addBars(p, c, colors)
	}
	if err != nil {
		return nil, err
	}
	if len(c.Names) > 0 {
		p.Y.Min = -0.5
		p.Y.Max = float64(len(c.Names)) - 0.5
	}
	return p, nil
}

func addBars(p *plot.Plot, c Chart, colors []color.Color) error {
	t := len(c.Rows)
	if t == 0 {
		return nil
	}
	slot := c.Height * plotAreaFraction / vg.Length(max(len(c.Names), 1))
	width := slot * groupFraction / vg.Length(t)
	offsets := Offsets(t)

	for i, row := range c.Rows {
		vals := make(plotter.Values, len(row))
		for j, v := range row {
			if finite(v) {
				vals[j] = v
			}
		}
		bars, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return fmt.Errorf("bars for condition %d: %w", i, err)
		}
		bars.Horizontal = true
		bars.Offset = vg.Length(offsets[i]) * width
		bars.Color = colors[i]
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		p.Legend.Add(label(c.Labels, i), bars)
	}
	return nil
}

func addScatter(p *plot.Plot, c Chart, colors []color.Color) error {
	for i, row := range c.Rows {
		pts := make(plotter.XYs, 0, len(row))
		for j, v := range row {
			if finite(v) {
				pts = append(pts, plotter.XY{X: v, Y: float64(j)})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("scatter for condition %d: %w", i, err)
		}
		s.GlyphStyle.Color = colors[i]
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(2.5)
		if len(pts) > 0 {
			p.Add(s)
		}
		p.Legend.Add(label(c.Labels, i), s)
	}
	p.Add(plotter.NewGrid())
	return nil
}

// finite reports whether v can be drawn; plotter rejects NaN and infinities.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func label(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("condition %d", i+1)
}

// palette picks distinguishable colours; the brewer set covers 3 to 9 series.
func palette(n int) []color.Color {
	if n >= 3 && n <= 9 {
		if pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", n); err == nil {
			return pal.Colors()
		}
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = plotutil.Color(i)
	}
	return out
}

// FormatFromPath returns the image format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("unsupported image format %q (want eps, svg, pdf or png)", ext)
	}
	return ext, nil
}

// Render draws c into memory in the given format.
func Render(c Chart, format string) ([]byte, error) {
	if !formats[format] {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	p, err := New(c)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return nil, fmt.Errorf("create %s canvas: %w", format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Save renders c to path, creating the parent directory. The file is replaced
// atomically.
func Save(c Chart, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Render(c, format)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".chart-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp chart: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp chart: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp chart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp chart: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename chart: %w", err)
	}
	return nil
}
