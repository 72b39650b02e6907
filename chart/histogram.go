package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// defaultBins is the histogram bucket count when Config.Bins is zero.
const defaultBins = 10

// Histogram renders the frequency distribution of values. Config.MeanLine
// draws a vertical rule at the arithmetic mean.
func Histogram(path string, cfg Config, values []float64) error {
	if len(values) == 0 {
		return ErrNoData
	}

	bins := cfg.Bins
	if bins <= 0 {
		bins = defaultBins
	}

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	hist.FillColor = plotutil.Color(1)

	p := newPlot(cfg)
	p.Add(hist)

	if cfg.MeanLine {
		mean := stat.Mean(values, nil)
		top := 0.0
		for _, bin := range hist.Bins {
			if bin.Weight > top {
				top = bin.Weight
			}
		}

		rule, err := plotter.NewLine(plotter.XYs{
			{X: mean, Y: 0},
			{X: mean, Y: top},
		})
		if err != nil {
			return fmt.Errorf("failed to build mean rule: %w", err)
		}
		rule.LineStyle.Color = color.RGBA{R: 0xd6, G: 0x2f, B: 0x2f, A: 0xff}
		rule.LineStyle.Width = vg.Points(1.5)
		rule.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(rule)
		p.Legend.Add(fmt.Sprintf("mean %.2f", mean), rule)
		p.Legend.Top = true
	}

	return save(p, path)
}
