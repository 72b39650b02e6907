package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/kuwshyDEV/tabular"
	"github.com/kuwshyDEV/tabular/chart"
)

// temperatureLine draws average monthly temperatures as a single line.
func temperatureLine(path string) error {
	cfg := chart.Config{
		Title:  "Average Monthly Temperature",
		XLabel: "Month",
		YLabel: "Temperature (°C)",
	}
	return chart.Line(path, cfg, chart.Series{
		Name: "temperature",
		Points: tabular.Series{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Values: []float64{5, 7, 12, 18, 22, 25},
		},
	})
}

// fruitBar draws unit sales per fruit as bars.
func fruitBar(path string) error {
	cfg := chart.Config{
		Title:  "Fruit Sales",
		XLabel: "Fruit",
		YLabel: "Units Sold",
	}
	return chart.Bar(path, cfg, chart.Series{
		Name: "sales",
		Points: tabular.Series{
			Labels: []string{"Apple", "Banana", "Orange", "Mango"},
			Values: []float64{45, 38, 52, 41},
		},
	})
}

// languagePie draws language survey shares as pie slices.
func languagePie(path string) error {
	cfg := chart.Config{Title: "Programming Language Popularity"}
	return chart.Pie(path, cfg, chart.Series{
		Points: tabular.Series{
			Labels: []string{"Python", "JavaScript", "Java", "C++"},
			Values: []float64{35, 28, 20, 17},
		},
	})
}

// studyScatter draws a synthetic study-time experiment: exam scores rise
// with hours studied plus noise, with the fitted trend curve overlaid.
// The generator is seeded so the chart is reproducible.
func studyScatter(path string) error {
	r := rand.New(rand.NewPCG(42, 0))
	hours := make([]float64, 50)
	scores := make([]float64, 50)
	for i := range hours {
		hours[i] = r.Float64() * 10
		scores[i] = 40 + 8*hours[i] + r.NormFloat64()*5
	}

	cfg := chart.Config{
		Title:  "Study Time vs Exam Score",
		XLabel: "Hours Studied",
		YLabel: "Exam Score",
		Trend:  true,
	}
	return chart.Scatter(path, cfg, hours, scores)
}

// scoreHistogram draws the distribution of synthetic exam scores with a
// rule at the mean.
func scoreHistogram(path string) error {
	r := rand.New(rand.NewPCG(7, 0))
	scores := make([]float64, 100)
	for i := range scores {
		scores[i] = 75 + r.NormFloat64()*12
	}

	cfg := chart.Config{
		Title:    "Exam Score Distribution",
		XLabel:   "Score",
		YLabel:   "Frequency",
		MeanLine: true,
		Bins:     15,
	}
	return chart.Histogram(path, cfg, scores)
}

// quarterComparison draws two product lines on one chart.
func quarterComparison(path string) error {
	quarters := []string{"Q1", "Q2", "Q3", "Q4"}
	cfg := chart.Config{
		Title:  "Quarterly Sales Comparison",
		XLabel: "Quarter",
		YLabel: "Sales (thousands)",
	}
	return chart.Line(path, cfg,
		chart.Series{
			Name:   "Product A",
			Points: tabular.Series{Labels: quarters, Values: []float64{100, 120, 145, 160}},
		},
		chart.Series{
			Name:   "Product B",
			Points: tabular.Series{Labels: quarters, Values: []float64{95, 110, 125, 155}},
		},
	)
}

// rippleContour draws interference ripples as contours over a heatmap of
// the same surface.
func rippleContour(path string) error {
	grid := chart.NewGrid(-3, 3, -3, 3, 101, func(x, y float64) float64 {
		return math.Sin(math.Sqrt(x*x+y*y)) * math.Cos(x) * math.Sin(y)
	})

	cfg := chart.Config{
		Title:  "Ripple Surface",
		XLabel: "x",
		YLabel: "y",
	}
	return chart.Contour(path, cfg, grid)
}

// spiralArt plots an Archimedean spiral as a dense point cloud.
func spiralArt(path string) error {
	const n = 100
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		theta := 4 * math.Pi * float64(i) / (n - 1)
		radius := theta / (4 * math.Pi)
		xs[i] = radius * math.Cos(theta)
		ys[i] = radius * math.Sin(theta)
	}

	cfg := chart.Config{Title: "Spiral"}
	return chart.Scatter(path, cfg, xs, ys)
}

// salesReport prints per-product and overall sales statistics from the
// embedded workbook, then writes a bar chart of product totals and a line
// chart of the daily trend.
func salesReport(w io.Writer, barPath, linePath string) error {
	sales, err := loadSalesWorkbook()
	if err != nil {
		return err
	}

	products, err := sales.Distinct("Product")
	if err != nil {
		return err
	}
	type productTotal struct {
		name  string
		total float64
	}
	totals := make([]productTotal, 0, len(products))
	for _, product := range products {
		sub, err := sales.Select(tabular.Filter{"Product": product})
		if err != nil {
			return err
		}
		values, err := sub.Column("Sales")
		if err != nil {
			return err
		}
		stats, ok := tabular.Describe(values)
		if !ok {
			continue
		}
		totals = append(totals, productTotal{name: product, total: stats.Total})
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].total > totals[j].total })

	fmt.Fprintln(w, "\nSales by product:")
	labels := make([]string, len(totals))
	values := make([]float64, len(totals))
	for i, product := range totals {
		labels[i] = product.name
		values[i] = product.total
		fmt.Fprintf(w, "  %s: $%.2f\n", product.name, product.total)
	}

	all, err := sales.Column("Sales")
	if err != nil {
		return err
	}
	stats, ok := tabular.Describe(all)
	if !ok {
		return errors.New("sales workbook is empty")
	}
	fmt.Fprintln(w, "\n--- Sales Statistics ---")
	fmt.Fprintf(w, "Total Sales: $%.2f\n", stats.Total)
	fmt.Fprintf(w, "Average Sale: $%.2f\n", stats.Mean)
	fmt.Fprintf(w, "Highest Sale: $%.2f\n", stats.Max)

	barCfg := chart.Config{
		Title:  "Total Sales by Product",
		XLabel: "Product",
		YLabel: "Sales ($)",
	}
	if err := chart.Bar(barPath, barCfg, chart.Series{
		Name:   "sales",
		Points: tabular.Series{Labels: labels, Values: values},
	}); err != nil {
		return err
	}

	dates, err := sales.Distinct("Date")
	if err != nil {
		return err
	}
	days := make([]string, 0, len(dates))
	daily := make([]float64, 0, len(dates))
	for _, date := range dates {
		sub, err := sales.Select(tabular.Filter{"Date": date})
		if err != nil {
			return err
		}
		dayValues, err := sub.Column("Sales")
		if err != nil {
			return err
		}
		dayStats, ok := tabular.Describe(dayValues)
		if !ok {
			continue
		}
		days = append(days, date)
		daily = append(daily, dayStats.Total)
	}

	lineCfg := chart.Config{
		Title:  "Daily Sales Trend",
		XLabel: "Date",
		YLabel: "Sales ($)",
	}
	return chart.Line(linePath, lineCfg, chart.Series{
		Name:   "daily total",
		Points: tabular.Series{Labels: days, Values: daily},
	})
}

// loadSalesWorkbook loads the embedded sales data through an in-memory
// Excel workbook, exercising the same parsing path as workbook files on
// disk.
func loadSalesWorkbook() (*tabular.Table, error) {
	seed, err := tabular.LoadFS(dataFS, "data/sales.csv")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close() // Ignore close error
	}()

	const sheet = "Sheet1"
	rows := make([][]string, 0, seed.Len()+1)
	rows = append(rows, seed.Header())
	for _, record := range seed.Records() {
		rows = append(rows, record)
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return tabular.LoadReader(&buf, "sales", tabular.FileTypeXLSX)
}
