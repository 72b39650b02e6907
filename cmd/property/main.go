// Command property serves the Newhaven property value dataset from a
// numbered text menu: regional statistics, performance ranking, and
// trend charts written as PNG files.
//
// The program reads property.csv from the working directory. The file
// carries one row per region, property type and room count, with
// monthly value increase observations from Jan-19 onward.
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
	dataFile   = "property.csv"
	firstMonth = "Jan-19"

	trendPNG      = "property_trend.png"
	comparisonPNG = "property_comparison.png"
)

func main() {
	prices, err := tabular.Load(dataFile, tabular.WithObservationsFrom(firstMonth))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", dataFile, err)
		os.Exit(1)
	}

	menu := cli.NewMenu("Newhaven Property Investments", os.Stdin, os.Stdout)
	app := &app{prices: prices, menu: menu, out: os.Stdout}

	menu.Add("List regions", app.regions)
	menu.Add("Region summary and statistics", app.summary)
	menu.Add("Property value trend chart", app.trend)
	menu.Add("Compare property types in a region", app.comparison)
	menu.Add("Find highest performing region", app.best)

	if err := menu.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app connects menu prompts to the report functions.
type app struct {
	prices *tabular.Table
	menu   *cli.Menu
	out    io.Writer
}

func (a *app) regions() error {
	return listRegions(a.out, a.prices)
}

func (a *app) summary() error {
	region, ok := a.promptRegion()
	if !ok {
		return nil
	}
	return regionSummary(a.out, a.prices, region)
}

func (a *app) trend() error {
	region, ok := a.promptRegion()
	if !ok {
		return nil
	}
	propertyType, ok := a.promptType(region)
	if !ok {
		return nil
	}
	rooms, ok := a.promptRooms(region, propertyType)
	if !ok {
		return nil
	}
	overlay, ok := a.menu.Prompt("Overlay trend curve? (y/n):")
	if !ok {
		return nil
	}

	if err := trendChart(a.prices, region, propertyType, rooms, strings.EqualFold(overlay, "y"), trendPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", trendPNG)
	return nil
}

func (a *app) comparison() error {
	region, ok := a.promptRegion()
	if !ok {
		return nil
	}
	if err := typeComparisonChart(a.prices, region, comparisonPNG); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Chart written to %s\n", comparisonPNG)
	return nil
}

func (a *app) best() error {
	return bestRegion(a.out, a.prices)
}

// promptRegion lists the known regions and reads one from the user.
func (a *app) promptRegion() (string, bool) {
	if regions, err := a.prices.Distinct("Region"); err == nil {
		fmt.Fprintf(a.out, "Available regions: %s\n", strings.Join(regions, ", "))
	}
	return a.menu.Prompt("Enter region name:")
}

// promptType lists the property types present in the region and reads one.
func (a *app) promptType(region string) (string, bool) {
	if sub, err := a.prices.Select(tabular.Filter{"Region": region}); err == nil {
		if types, err := sub.Distinct("Property Type"); err == nil {
			fmt.Fprintf(a.out, "Property types: %s\n", strings.Join(types, ", "))
		}
	}
	return a.menu.Prompt("Enter property type:")
}

// promptRooms lists the room counts recorded for the selection and reads
// one.
func (a *app) promptRooms(region, propertyType string) (int, bool) {
	sub, err := a.prices.Select(tabular.Filter{"Region": region, "Property Type": propertyType})
	if err == nil {
		if rooms, err := sub.Distinct("Rooms"); err == nil {
			fmt.Fprintf(a.out, "Available room sizes: %s\n", strings.Join(rooms, ", "))
		}
	}
	return a.menu.PromptInt("Enter number of rooms:")
}
