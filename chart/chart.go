package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kuwshyDEV/tabular"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("chart: no data to draw")

// Config carries the presentation settings shared by all chart types.
type Config struct {
	// Title is drawn above the plot.
	Title string
	// XLabel is the horizontal axis label.
	XLabel string
	// YLabel is the vertical axis label.
	YLabel string
	// Trend overlays a fitted second-degree polynomial curve on line and
	// scatter charts.
	Trend bool
	// MeanLine draws a rule at the arithmetic mean on line charts and
	// histograms.
	MeanLine bool
	// Bins is the histogram bucket count. Zero selects the default.
	Bins int
}

// Series is one named sequence of chart points.
type Series struct {
	// Name appears in the legend. An empty name is omitted.
	Name string
	// Points carries the labels and values to draw.
	Points tabular.Series
}

// Canvas size for every rendered file.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// newPlot builds an empty plot with the configured labels and a light
// background grid.
func newPlot(cfg Config) *plot.Plot {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Add(plotter.NewGrid())
	return p
}

// save writes the plot as a PNG file.
func save(p *plot.Plot, path string) error {
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}
