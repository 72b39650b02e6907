package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kuwshyDEV/tabular"
	"github.com/kuwshyDEV/tabular/chart"
)

// rule is the width of the heading underline in report output.
const rule = 75

// serviceLabel names a service filter for titles; the empty filter means
// every service.
func serviceLabel(service string) string {
	if service == "" {
		return "All Services"
	}
	return service
}

// itemSelection returns the rows for one menu item, optionally narrowed to
// a single service.
func itemSelection(sales *tabular.Table, item, service string) (*tabular.Table, error) {
	filter := tabular.Filter{"Menu Item": item}
	if service != "" {
		filter["Service"] = service
	}
	return sales.Select(filter)
}

// itemSeries returns the item's combined daily sales: the column-wise
// total across the selected rows, one point per date column.
func itemSeries(sales *tabular.Table, item, service string) (tabular.Series, error) {
	sub, err := itemSelection(sales, item, service)
	if err != nil {
		return tabular.Series{}, err
	}
	return sub.SumSeries()
}

// itemSummary prints overall statistics for one menu item across every
// service, followed by a per-service breakdown and, when the item runs in
// exactly two services, a head-to-head comparison.
func itemSummary(w io.Writer, sales *tabular.Table, item string) error {
	daily, err := itemSeries(sales, item, "")
	if err != nil {
		return err
	}
	stats, ok := tabular.Describe(daily.Values)
	if !ok {
		return fmt.Errorf("no sales recorded for %q", item)
	}

	fmt.Fprintf(w, "\n%s\nMENU ITEM ANALYSIS: %s\n%s\n",
		strings.Repeat("=", rule), strings.ToUpper(item), strings.Repeat("=", rule))
	fmt.Fprintf(w, "\nOVERALL STATISTICS (All Services):\n%s\n", strings.Repeat("-", rule))
	printStats(w, stats)

	services, err := sales.Distinct("Service")
	if err != nil {
		return err
	}
	present := make([]string, 0, len(services))
	totals := make(map[string]float64, len(services))
	for _, service := range services {
		perService, err := itemSeries(sales, item, service)
		if err != nil {
			return err
		}
		serviceStats, ok := tabular.Describe(perService.Values)
		if !ok {
			continue
		}
		present = append(present, service)
		totals[service] = serviceStats.Total

		fmt.Fprintf(w, "\n%s SERVICE:\n%s\n", strings.ToUpper(service), strings.Repeat("-", rule))
		fmt.Fprintf(w, "  Total Sales: %.0f units\n", serviceStats.Total)
		fmt.Fprintf(w, "  Average Daily Sales: %.2f units\n", serviceStats.Mean)
		fmt.Fprintf(w, "  Highest Daily Sales: %.0f units\n", serviceStats.Max)
	}

	if len(present) == 2 {
		winner, loser := present[0], present[1]
		if totals[loser] > totals[winner] {
			winner, loser = loser, winner
		}
		diff := totals[winner] - totals[loser]

		fmt.Fprintf(w, "\nSERVICE COMPARISON:\n%s\n", strings.Repeat("-", rule))
		if diff > 0 {
			fmt.Fprintf(w, "  %s outsells %s by %.0f units (%.1f%%)\n",
				winner, loser, diff, diff/totals[loser]*100)
		} else {
			fmt.Fprintf(w, "  %s and %s have equal sales\n", present[0], present[1])
		}
	}
	return nil
}

// printStats writes one indented statistics block.
func printStats(w io.Writer, stats tabular.Stats) {
	fmt.Fprintf(w, "  Total Sales: %.0f units\n", stats.Total)
	fmt.Fprintf(w, "  Average Daily Sales: %.2f units\n", stats.Mean)
	fmt.Fprintf(w, "  Highest Daily Sales: %.0f units\n", stats.Max)
	fmt.Fprintf(w, "  Lowest Daily Sales: %.0f units\n", stats.Min)
	fmt.Fprintf(w, "  Standard Deviation: %.2f\n", stats.StdDev)
	fmt.Fprintf(w, "  Total Days Tracked: %d\n", stats.Count)
}

// bestItem prints the menu item with the highest daily-sales statistic.
// Items tie toward the one appearing first in the dataset.
func bestItem(w io.Writer, sales *tabular.Table, service string, metric tabular.Metric) error {
	items, err := sales.Distinct("Menu Item")
	if err != nil {
		return err
	}

	var selectErr error
	best, value, ok := tabular.BestBy(items, func(item string) (float64, bool) {
		daily, err := itemSeries(sales, item, service)
		if err != nil {
			selectErr = err
			return 0, false
		}
		stats, ok := tabular.Describe(daily.Values)
		if !ok {
			return 0, false
		}
		return stats.Value(metric), true
	})
	if selectErr != nil {
		return selectErr
	}
	if !ok {
		return errors.New("no menu items to rank")
	}

	if service == "" {
		fmt.Fprintf(w, "\nBest-selling menu item: %s\n", best)
	} else {
		fmt.Fprintf(w, "\nBest-selling item (%s): %s\n", service, best)
	}
	fmt.Fprintf(w, "%s sales: %.0f\n", capitalize(metric.String()), value)
	return nil
}

// bestItemInPeriod ranks menu items over the inclusive date window only.
// Items with no sales in the selected services are skipped rather than
// ranked at zero.
func bestItemInPeriod(w io.Writer, sales *tabular.Table, service, from, to string, metric tabular.Metric) error {
	items, err := sales.Distinct("Menu Item")
	if err != nil {
		return err
	}

	var periodErr error
	best, value, ok := tabular.BestBy(items, func(item string) (float64, bool) {
		daily, err := itemSeries(sales, item, service)
		if err != nil {
			periodErr = err
			return 0, false
		}
		if daily.Len() == 0 {
			return 0, false
		}
		window, err := daily.Range(from, to)
		if err != nil {
			periodErr = err
			return 0, false
		}
		stats, ok := tabular.Describe(window.Values)
		if !ok {
			return 0, false
		}
		return stats.Value(metric), true
	})
	if periodErr != nil {
		return periodErr
	}
	if !ok {
		return fmt.Errorf("no sales between %s and %s", from, to)
	}

	fmt.Fprintf(w, "\nBest seller from %s to %s (%s): %s\n", from, to, metric, best)
	fmt.Fprintf(w, "%s sales: %.0f\n", capitalize(metric.String()), value)
	return nil
}

// trendChart renders the daily sales of one menu item as a line chart,
// optionally overlaid with a fitted trend curve.
func trendChart(sales *tabular.Table, item, service string, trend bool, path string) error {
	daily, err := itemSeries(sales, item, service)
	if err != nil {
		return err
	}
	if daily.Len() == 0 {
		return fmt.Errorf("no %s sales for %s", strings.ToLower(serviceLabel(service)), item)
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("Sales Trend: %s - %s", item, serviceLabel(service)),
		XLabel: "Date",
		YLabel: "Sales (Units Sold)",
		Trend:  trend,
	}
	return chart.Line(path, cfg, chart.Series{Name: item, Points: daily})
}

// serviceComparisonChart renders one line per service the item runs in.
func serviceComparisonChart(sales *tabular.Table, item, path string) error {
	sub, err := sales.Select(tabular.Filter{"Menu Item": item})
	if err != nil {
		return err
	}
	services, err := sub.Distinct("Service")
	if err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(services))
	for _, service := range services {
		byService, err := sub.Select(tabular.Filter{"Service": service})
		if err != nil {
			return err
		}
		daily, err := byService.SumSeries()
		if err != nil {
			return err
		}
		series = append(series, chart.Series{Name: service, Points: daily})
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("Service Comparison: %s", item),
		XLabel: "Date",
		YLabel: "Sales (Units Sold)",
	}
	return chart.Line(path, cfg, series...)
}

// comparisonChart renders the daily sales of every menu item on one chart.
// Items with no sales under the service filter are left off the chart.
func comparisonChart(sales *tabular.Table, service, path string) error {
	items, err := sales.Distinct("Menu Item")
	if err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(items))
	for _, item := range items {
		daily, err := itemSeries(sales, item, service)
		if err != nil {
			return err
		}
		if daily.Len() == 0 {
			continue
		}
		series = append(series, chart.Series{Name: item, Points: daily})
	}
	if len(series) == 0 {
		return fmt.Errorf("no sales for %s", strings.ToLower(serviceLabel(service)))
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("All Menu Items Comparison - %s", serviceLabel(service)),
		XLabel: "Date",
		YLabel: "Sales (Units Sold)",
	}
	return chart.Line(path, cfg, series...)
}

// capitalize upper-cases the first letter of a metric name for report
// output.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
