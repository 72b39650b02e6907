// Package chart renders Series data and raw numeric sequences as PNG
// chart files.
//
// # Chart Types
//
//   - Line: one or more labeled series positioned by point index
//   - Bar: one bar per labeled point
//   - Pie: positive shares of a whole
//   - Scatter: x/y point cloud
//   - Histogram: frequency distribution with a configurable bucket count
//   - Contour: filled contours of a rectangular z=f(x,y) grid
//
// # Overlays
//
// Config.Trend overlays a fitted second-degree polynomial curve on line
// and scatter charts. Config.MeanLine draws a rule at the arithmetic mean:
// horizontal on line charts, vertical on histograms.
//
// # Basic Usage
//
//	totals, err := table.SumSeries()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = chart.Line("totals.png",
//		chart.Config{Title: "Monthly totals", XLabel: "Month", YLabel: "Sales"},
//		chart.Series{Name: "All items", Points: totals})
//
// Every renderer writes a PNG file at the given path and reports any
// rendering or file system problem as an error.
package chart
