// Command gallery renders one demonstration chart per chart kind: lines,
// bars, pie slices, scatter clouds, histograms, contour surfaces, and a
// small sales report built from an in-memory Excel workbook.
//
// Each menu option writes a PNG file into the working directory and
// prints its path.
package main

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/kuwshyDEV/tabular/cli"
)

//go:embed data
var dataFS embed.FS

const (
	linePNG       = "gallery_line.png"
	barPNG        = "gallery_bar.png"
	piePNG        = "gallery_pie.png"
	scatterPNG    = "gallery_scatter.png"
	histogramPNG  = "gallery_histogram.png"
	comparisonPNG = "gallery_comparison.png"
	contourPNG    = "gallery_contour.png"
	spiralPNG     = "gallery_spiral.png"
	salesBarPNG   = "gallery_sales_by_product.png"
	salesLinePNG  = "gallery_sales_trend.png"
)

func main() {
	menu := cli.NewMenu("Chart Gallery", os.Stdin, os.Stdout)
	app := &app{out: os.Stdout}

	menu.Add("Temperature line chart", app.render(linePNG, temperatureLine))
	menu.Add("Fruit sales bar chart", app.render(barPNG, fruitBar))
	menu.Add("Language popularity pie chart", app.render(piePNG, languagePie))
	menu.Add("Study time scatter plot", app.render(scatterPNG, studyScatter))
	menu.Add("Exam score histogram", app.render(histogramPNG, scoreHistogram))
	menu.Add("Quarterly sales comparison", app.render(comparisonPNG, quarterComparison))
	menu.Add("Ripple contour plot", app.render(contourPNG, rippleContour))
	menu.Add("Spiral art", app.render(spiralPNG, spiralArt))
	menu.Add("Sales workbook report", app.sales)

	if err := menu.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app connects menu selections to the chart demos.
type app struct {
	out io.Writer
}

// render wraps a chart demo so the menu prints where the file went.
func (a *app) render(path string, demo func(string) error) func() error {
	return func() error {
		if err := demo(path); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Chart written to %s\n", path)
		return nil
	}
}

func (a *app) sales() error {
	if err := salesReport(a.out, salesBarPNG, salesLinePNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Charts written to %s and %s\n", salesBarPNG, salesLinePNG)
	return nil
}
