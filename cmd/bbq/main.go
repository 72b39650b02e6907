// Command bbq serves the Gurreb's BBQ sales dataset from a numbered
// text menu: menu item statistics, service comparisons, best-seller
// ranking, and trend charts written as PNG files.
//
// The program reads bbq.csv from the working directory. The file
// carries one row per menu item and service, with daily unit sales in
// the date columns.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kuwshyDEV/tabular"
	"github.com/kuwshyDEV/tabular/cli"
)

const (
	dataFile = "bbq.csv"

	trendPNG      = "bbq_trend.png"
	servicePNG    = "bbq_services.png"
	comparisonPNG = "bbq_comparison.png"
)

func main() {
	sales, err := tabular.Load(dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", dataFile, err)
		os.Exit(1)
	}

	menu := cli.NewMenu("Gurreb's BBQ Sales Data Service", os.Stdin, os.Stdout)
	app := &app{sales: sales, menu: menu, out: os.Stdout}

	menu.Add("Menu item summary", app.summary)
	menu.Add("Menu item sales trend chart", app.trend)
	menu.Add("Compare services for a menu item", app.services)
	menu.Add("Compare all menu items", app.comparison)
	menu.Add("Find best-selling menu item", app.best)
	menu.Add("Find best seller in a period", app.bestInPeriod)

	if err := menu.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app connects menu prompts to the report functions.
type app struct {
	sales *tabular.Table
	menu  *cli.Menu
	out   io.Writer
}

func (a *app) summary() error {
	item, ok := a.promptItem()
	if !ok {
		return nil
	}
	return itemSummary(a.out, a.sales, item)
}

func (a *app) trend() error {
	item, ok := a.promptItem()
	if !ok {
		return nil
	}
	service, ok := a.promptService()
	if !ok {
		return nil
	}
	overlay, ok := a.menu.Prompt("Overlay trend curve? (y/n):")
	if !ok {
		return nil
	}

	if err := trendChart(a.sales, item, service, strings.EqualFold(overlay, "y"), trendPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", trendPNG)
	return nil
}

func (a *app) services() error {
	item, ok := a.promptItem()
	if !ok {
		return nil
	}
	if err := serviceComparisonChart(a.sales, item, servicePNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", servicePNG)
	return nil
}

func (a *app) comparison() error {
	service, ok := a.promptService()
	if !ok {
		return nil
	}
	if err := comparisonChart(a.sales, service, comparisonPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", comparisonPNG)
	return nil
}

func (a *app) best() error {
	service, ok := a.promptService()
	if !ok {
		return nil
	}
	metric, ok := a.promptMetric("Rank by total or average sales? (default: total):")
	if !ok {
		return nil
	}
	return bestItem(a.out, a.sales, service, metric)
}

func (a *app) bestInPeriod() error {
	service, ok := a.promptService()
	if !ok {
		return nil
	}

	days := a.sales.Observations()
	if len(days) > 0 {
		fmt.Fprintf(a.out, "Days run from %s to %s\n", days[0], days[len(days)-1])
	}
	from, ok := a.menu.Prompt("Enter start date:")
	if !ok {
		return nil
	}
	to, ok := a.menu.Prompt("Enter end date:")
	if !ok {
		return nil
	}
	metric, ok := a.promptMetric("Rank by total, average or max sales? (default: total):")
	if !ok {
		return nil
	}
	return bestItemInPeriod(a.out, a.sales, service, from, to, metric)
}

// promptItem lists the menu items and reads one from the user.
func (a *app) promptItem() (string, bool) {
	if items, err := a.sales.Distinct("Menu Item"); err == nil {
		fmt.Fprintf(a.out, "Available menu items: %s\n", strings.Join(items, ", "))
	}
	return a.menu.Prompt("Enter menu item name:")
}

// promptService lists the services and reads one. Empty input keeps
// every service.
func (a *app) promptService() (string, bool) {
	if services, err := a.sales.Distinct("Service"); err == nil {
		fmt.Fprintf(a.out, "Available services: %s (or press Enter for all)\n", strings.Join(services, ", "))
	}
	return a.menu.Prompt("Enter service (optional):")
}

// promptMetric asks for a ranking metric until the answer parses.
// Empty input selects the total metric.
func (a *app) promptMetric(question string) (tabular.Metric, bool) {
	for {
		line, ok := a.menu.Prompt(question)
		if !ok {
			return tabular.MetricTotal, false
		}
		if line == "" {
			return tabular.MetricTotal, true
		}
		metric, err := tabular.ParseMetric(line)
		if err != nil {
			fmt.Fprintln(a.out, "Please enter total, average or max.")
			continue
		}
		return metric, true
	}
}
