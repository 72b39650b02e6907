package chart

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Bar renders one bar per labeled point.
func Bar(path string, cfg Config, s Series) error {
	if s.Points.Len() == 0 {
		return ErrNoData
	}

	bars, err := plotter.NewBarChart(plotter.Values(s.Points.Values), vg.Points(24))
	if err != nil {
		return fmt.Errorf("failed to build bars: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(2)

	p := newPlot(cfg)
	p.Add(bars)
	p.NominalX(s.Points.Labels...)
	if s.Name != "" {
		p.Legend.Add(s.Name, bars)
		p.Legend.Top = true
	}

	return save(p, path)
}
