// Package export renders experiment results to image files (PNG or SVG
// by extension) using gonum/plot.
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// SaveLine writes a single-series line plot.
func SaveLine(xs, ys []float64, title, xLabel, yLabel, path string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("export: x/y length mismatch: %d vs %d", len(xs), len(ys))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), line)

	return p.Save(plotWidth, plotHeight, path)
}

// Series names one line of a multi-series plot.
type Series struct {
	Name string
	Xs   []float64
	Ys   []float64
}

// SaveLines writes several named series on shared axes with a legend.
func SaveLines(series []Series, title, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	args := make([]interface{}, 0, 2*len(series))
	for _, s := range series {
		pts := make(plotter.XYs, len(s.Xs))
		for i := range s.Xs {
			pts[i].X = s.Xs[i]
			pts[i].Y = s.Ys[i]
		}
		args = append(args, s.Name, pts)
	}

	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}

// SaveScatter writes a point cloud, sized for dense Poincare sections.
func SaveScatter(points [][2]float64, title, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(points))
	for i, xy := range points {
		pts[i].X = xy[0]
		pts[i].Y = xy[1]
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = vg.Points(0.8)
	p.Add(sc)

	return p.Save(plotWidth, plotHeight, path)
}

// SaveHistogram writes a normalized histogram of the values.
func SaveHistogram(values []float64, bins int, title, xLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "density"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	p.Add(h)

	return p.Save(plotWidth, plotHeight, path)
}

// grid adapts a [][]float64 to plotter.GridXYZ. Row index maps to y.
type grid struct {
	data                   [][]float64
	xmin, xmax, ymin, ymax float64
}

func (g grid) Dims() (int, int) { return len(g.data[0]), len(g.data) }

func (g grid) X(c int) float64 {
	nx, _ := g.Dims()
	return g.xmin + (g.xmax-g.xmin)*float64(c)/float64(nx-1)
}

func (g grid) Y(r int) float64 {
	_, ny := g.Dims()
	return g.ymin + (g.ymax-g.ymin)*float64(r)/float64(ny-1)
}

func (g grid) Z(c, r int) float64 { return g.data[r][c] }

// SaveHeatmap writes a false-color intensity map of the grid.
func SaveHeatmap(data [][]float64, xmin, xmax, ymin, ymax float64, title, path string) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return fmt.Errorf("export: empty heatmap grid")
	}

	p := plot.New()
	p.Title.Text = title

	hm := plotter.NewHeatMap(grid{data, xmin, xmax, ymin, ymax}, palette.Heat(16, 1))
	p.Add(hm)

	return p.Save(plotWidth, plotHeight, path)
}
