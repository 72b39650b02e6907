package chart

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Scatter renders an x/y point cloud. Config.Trend overlays the fitted
// trend curve.
func Scatter(path string, cfg Config, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("chart: x/y length mismatch: %d != %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return ErrNoData
	}

	points := make(plotter.XYs, len(xs))
	for i := range xs {
		points[i].X = xs[i]
		points[i].Y = ys[i]
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = plotutil.Color(0)

	p := newPlot(cfg)
	p.Add(scatter)

	if cfg.Trend {
		trend, err := trendLine(xs, ys)
		if err != nil {
			return err
		}
		p.Add(trend)
		p.Legend.Add("trend", trend)
		p.Legend.Top = true
	}

	return save(p, path)
}
