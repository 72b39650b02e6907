package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Line renders one or more series as lines. Points are positioned by their
// index within each series and the x axis is labeled from the longest
// series, so series of different lengths share the same timeline.
//
// Config.Trend fits the trend curve through the longest series.
// Config.MeanLine draws a horizontal rule at the mean of every plotted
// value.
func Line(path string, cfg Config, series ...Series) error {
	longest := -1
	for i, s := range series {
		if s.Points.Len() == 0 {
			continue
		}
		if longest < 0 || s.Points.Len() > series[longest].Points.Len() {
			longest = i
		}
	}
	if longest < 0 {
		return ErrNoData
	}

	p := newPlot(cfg)

	var all []float64
	for i, s := range series {
		if s.Points.Len() == 0 {
			continue
		}

		points := make(plotter.XYs, s.Points.Len())
		for j, v := range s.Points.Values {
			points[j].X = float64(j)
			points[j].Y = v
		}
		all = append(all, s.Points.Values...)

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to build line: %w", err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}
	p.NominalX(series[longest].Points.Labels...)
	p.Legend.Top = true

	if cfg.MeanLine {
		if err := addMeanRule(p, all, float64(series[longest].Points.Len()-1)); err != nil {
			return err
		}
	}

	if cfg.Trend {
		s := series[longest].Points
		xs := make([]float64, s.Len())
		for i := range xs {
			xs[i] = float64(i)
		}
		trend, err := trendLine(xs, s.Values)
		if err != nil {
			return err
		}
		p.Add(trend)
		p.Legend.Add("trend", trend)
	}

	return save(p, path)
}

// addMeanRule draws a horizontal dashed rule at the mean of values,
// spanning x in [0, maxX].
func addMeanRule(p *plot.Plot, values []float64, maxX float64) error {
	mean := stat.Mean(values, nil)
	rule, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: mean},
		{X: maxX, Y: mean},
	})
	if err != nil {
		return fmt.Errorf("failed to build mean rule: %w", err)
	}
	rule.LineStyle.Color = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	rule.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(rule)
	p.Legend.Add(fmt.Sprintf("mean %.2f", mean), rule)
	return nil
}
