// Command park serves the Recoats Adventure Park daily income dataset
// from a numbered text menu: payment type and day-of-week statistics,
// and income charts written as PNG files.
//
// The program reads park.csv from the working directory. The file
// carries one row per day and payment type, with the take of each
// income source in the trailing columns.
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
	dataFile = "park.csv"

	trendPNG    = "park_trend.png"
	sourcesPNG  = "park_sources.png"
	weekdaysPNG = "park_weekdays.png"
	paymentsPNG = "park_payments.png"
)

func main() {
	income, err := tabular.Load(dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", dataFile, err)
		os.Exit(1)
	}

	menu := cli.NewMenu("Recoats Adventure Park Income Data Service", os.Stdin, os.Stdout)
	app := &app{income: income, menu: menu, out: os.Stdout}

	menu.Add("Payment type analysis", app.payments)
	menu.Add("Day of week analysis", app.weekdays)
	menu.Add("Income trend chart", app.trend)
	menu.Add("Compare income sources chart", app.sources)
	menu.Add("Income by day of week chart", app.weekdayChart)
	menu.Add("Compare payment types chart", app.paymentChart)

	if err := menu.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app connects menu prompts to the report functions.
type app struct {
	income *tabular.Table
	menu   *cli.Menu
	out    io.Writer
}

func (a *app) payments() error {
	source, ok := a.promptSource()
	if !ok {
		return nil
	}
	return paymentAnalysis(a.out, a.income, source)
}

func (a *app) weekdays() error {
	source, ok := a.promptSource()
	if !ok {
		return nil
	}
	payType, ok := a.promptPayType()
	if !ok {
		return nil
	}
	return dayOfWeekAnalysis(a.out, a.income, source, payType)
}

func (a *app) trend() error {
	source, ok := a.promptSource()
	if !ok {
		return nil
	}
	payType, ok := a.promptPayType()
	if !ok {
		return nil
	}
	if err := incomeTrendChart(a.income, source, payType, trendPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", trendPNG)
	return nil
}

func (a *app) sources() error {
	payType, ok := a.promptPayType()
	if !ok {
		return nil
	}
	if err := sourceComparisonChart(a.income, payType, sourcesPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", sourcesPNG)
	return nil
}

func (a *app) weekdayChart() error {
	source, ok := a.promptSource()
	if !ok {
		return nil
	}
	payType, ok := a.promptPayType()
	if !ok {
		return nil
	}
	if err := dayOfWeekChart(a.income, source, payType, weekdaysPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", weekdaysPNG)
	return nil
}

func (a *app) paymentChart() error {
	source, ok := a.promptSource()
	if !ok {
		return nil
	}
	if err := paymentComparisonChart(a.income, source, paymentsPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", paymentsPNG)
	return nil
}

// promptSource lists the income sources and reads one. Empty input keeps
// every source.
func (a *app) promptSource() (string, bool) {
	fmt.Fprintf(a.out, "Available income sources: %s (or press Enter for all)\n", strings.Join(a.income.Observations(), ", "))
	return a.menu.Prompt("Enter income source (optional):")
}

// promptPayType lists the payment types and reads one. Empty input keeps
// every payment type.
func (a *app) promptPayType() (string, bool) {
	if payTypes, err := a.income.Distinct("Pay Type"); err == nil {
		fmt.Fprintf(a.out, "Payment types: %s (or press Enter for all)\n", strings.Join(payTypes, ", "))
	}
	return a.menu.Prompt("Enter payment type (optional):")
}
