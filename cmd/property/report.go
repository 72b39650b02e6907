package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kuwshyDEV/tabular"
	"github.com/kuwshyDEV/tabular/chart"
)

// rule is the width of the heading underline in report output.
const rule = 70

// listRegions prints every region in the dataset with its record count.
func listRegions(w io.Writer, prices *tabular.Table) error {
	regions, err := prices.Distinct("Region")
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d regions, %d property records:\n", len(regions), prices.Len())
	for _, region := range regions {
		sub, err := prices.Select(tabular.Filter{"Region": region})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s: %d records\n", region, sub.Len())
	}
	return nil
}

// regionSummary prints overall statistics for one region across all of its
// month cells, followed by a per-property-type breakdown.
func regionSummary(w io.Writer, prices *tabular.Table, region string) error {
	sub, err := prices.Select(tabular.Filter{"Region": region})
	if err != nil {
		return err
	}

	values, err := sub.Flatten()
	if err != nil {
		return err
	}
	stats, ok := tabular.Describe(values)
	if !ok {
		return fmt.Errorf("no records for region %q", region)
	}

	fmt.Fprintf(w, "\n%s\nREGION ANALYSIS: %s\n%s\n",
		strings.Repeat("=", rule), strings.ToUpper(region), strings.Repeat("=", rule))
	fmt.Fprintf(w, "\nTotal Property Records: %d\n", sub.Len())
	fmt.Fprintf(w, "Average Value Increase (Overall): %.3f\n", stats.Mean)
	fmt.Fprintf(w, "Maximum Value Increase: %.3f\n", stats.Max)
	fmt.Fprintf(w, "Minimum Value Increase: %.3f\n", stats.Min)
	fmt.Fprintf(w, "Standard Deviation: %.3f\n", stats.StdDev)

	types, err := sub.Distinct("Property Type")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nProperty Types in %s:\n%s\n", region, strings.Repeat("-", rule))
	for _, propertyType := range types {
		byType, err := sub.Select(tabular.Filter{"Property Type": propertyType})
		if err != nil {
			return err
		}
		typeValues, err := byType.Flatten()
		if err != nil {
			return err
		}
		typeStats, ok := tabular.Describe(typeValues)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  • %s: %d records | Avg increase: %.3f\n",
			propertyType, byType.Len(), typeStats.Mean)
	}
	return nil
}

// bestRegion prints the region whose month cells have the highest mean.
// Regions tie toward the one appearing first in the dataset.
func bestRegion(w io.Writer, prices *tabular.Table) error {
	regions, err := prices.Distinct("Region")
	if err != nil {
		return err
	}

	region, mean, ok := tabular.BestBy(regions, func(region string) (float64, bool) {
		sub, err := prices.Select(tabular.Filter{"Region": region})
		if err != nil {
			return 0, false
		}
		values, err := sub.Flatten()
		if err != nil {
			return 0, false
		}
		stats, ok := tabular.Describe(values)
		if !ok {
			return 0, false
		}
		return stats.Mean, true
	})
	if !ok {
		return errors.New("no regions to rank")
	}

	fmt.Fprintf(w, "\nHighest Performing Region: %s\n", region)
	fmt.Fprintf(w, "Average Increase: %.3f\n", mean)
	return nil
}

// trendChart renders the monthly value series of one property selection as
// a line chart, optionally overlaid with a fitted trend curve.
func trendChart(prices *tabular.Table, region, propertyType string, rooms int, trend bool, path string) error {
	sub, err := prices.Select(tabular.Filter{
		"Region":        region,
		"Property Type": propertyType,
		"Rooms":         strconv.Itoa(rooms),
	})
	if err != nil {
		return err
	}
	if sub.Len() == 0 {
		return fmt.Errorf("no %s with %d rooms in %s", propertyType, rooms, region)
	}

	series, err := sub.RowSeries(0)
	if err != nil {
		return err
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("Property Value Trend: %s - %s (%d rooms)", region, propertyType, rooms),
		XLabel: "Month",
		YLabel: "Property Value Increase (%)",
		Trend:  trend,
	}
	return chart.Line(path, cfg, chart.Series{
		Name:   fmt.Sprintf("%s (%d rooms)", propertyType, rooms),
		Points: series,
	})
}

// typeComparisonChart renders the mean monthly series of every property
// type in the region on one chart.
func typeComparisonChart(prices *tabular.Table, region, path string) error {
	sub, err := prices.Select(tabular.Filter{"Region": region})
	if err != nil {
		return err
	}
	types, err := sub.Distinct("Property Type")
	if err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(types))
	for _, propertyType := range types {
		byType, err := sub.Select(tabular.Filter{"Property Type": propertyType})
		if err != nil {
			return err
		}
		mean, err := byType.MeanSeries()
		if err != nil {
			return err
		}
		series = append(series, chart.Series{Name: propertyType, Points: mean})
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("Property Type Comparison: %s", region),
		XLabel: "Month",
		YLabel: "Average Property Value Increase (%)",
	}
	return chart.Line(path, cfg, series...)
}
