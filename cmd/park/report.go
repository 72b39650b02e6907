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
const rule = 80

// sourceLabel names an income source filter for titles; the empty filter
// means every source.
func sourceLabel(source string) string {
	if source == "" {
		return "All Income Sources"
	}
	return source
}

// payLabel names a payment type filter for titles; the empty filter means
// every payment type.
func payLabel(payType string) string {
	if payType == "" {
		return "All Payment Types"
	}
	return payType
}

// filterIncome narrows the dataset by payment type and day of week. Empty
// arguments keep every row.
func filterIncome(income *tabular.Table, payType, day string) (*tabular.Table, error) {
	filter := tabular.Filter{}
	if payType != "" {
		filter["Pay Type"] = payType
	}
	if day != "" {
		filter["Day"] = day
	}
	if len(filter) == 0 {
		return income, nil
	}
	return income.Select(filter)
}

// incomeValues extracts the values to analyze from a selection: the named
// income source column, or each row's total across every source.
func incomeValues(sub *tabular.Table, source string) ([]float64, error) {
	if source == "" {
		return sub.RowTotals()
	}
	for _, name := range sub.Observations() {
		if name == source {
			return sub.Column(source)
		}
	}
	return nil, fmt.Errorf("%w: %q is not an income source", tabular.ErrUnknownColumn, source)
}

// paymentAnalysis prints income statistics for each payment type, followed
// by a head-to-head comparison when the dataset carries exactly two.
func paymentAnalysis(w io.Writer, income *tabular.Table, source string) error {
	title := fmt.Sprintf("PAYMENT TYPE ANALYSIS: %s", strings.ToUpper(sourceLabel(source)))
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", strings.Repeat("=", rule), title, strings.Repeat("=", rule))

	payTypes, err := income.Distinct("Pay Type")
	if err != nil {
		return err
	}

	present := make([]string, 0, len(payTypes))
	totals := make(map[string]float64, len(payTypes))
	for _, payType := range payTypes {
		sub, err := income.Select(tabular.Filter{"Pay Type": payType})
		if err != nil {
			return err
		}
		values, err := incomeValues(sub, source)
		if err != nil {
			return err
		}
		stats, ok := tabular.Describe(values)
		if !ok {
			continue
		}
		present = append(present, payType)
		totals[payType] = stats.Total

		fmt.Fprintf(w, "\n%s PAYMENT:\n%s\n", strings.ToUpper(payType), strings.Repeat("-", rule))
		printIncomeStats(w, stats)
	}

	if len(present) == 2 {
		winner, loser := present[0], present[1]
		if totals[loser] > totals[winner] {
			winner, loser = loser, winner
		}
		diff := totals[winner] - totals[loser]

		fmt.Fprintf(w, "\nCOMPARISON:\n%s\n", strings.Repeat("-", rule))
		if diff > 0 {
			fmt.Fprintf(w, "  %s generates £%.2f (%.1f%%) more than %s\n",
				winner, diff, diff/totals[loser]*100, loser)
		} else {
			fmt.Fprintf(w, "  %s and %s generate equal income\n", present[0], present[1])
		}
	}
	return nil
}

// printIncomeStats writes one indented statistics block.
func printIncomeStats(w io.Writer, stats tabular.Stats) {
	fmt.Fprintf(w, "  Total Income: £%.2f\n", stats.Total)
	fmt.Fprintf(w, "  Average Daily Income: £%.2f\n", stats.Mean)
	fmt.Fprintf(w, "  Highest Daily Income: £%.2f\n", stats.Max)
	fmt.Fprintf(w, "  Lowest Daily Income: £%.2f\n", stats.Min)
	fmt.Fprintf(w, "  Standard Deviation: £%.2f\n", stats.StdDev)
	fmt.Fprintf(w, "  Number of Days: %d\n", stats.Count)
}

// dayOfWeekAnalysis prints income statistics for each day of the week in
// Monday-first order, then names the best and worst days by total income.
// Days tie toward the earlier weekday.
func dayOfWeekAnalysis(w io.Writer, income *tabular.Table, source, payType string) error {
	sub, err := filterIncome(income, payType, "")
	if err != nil {
		return err
	}

	title := fmt.Sprintf("DAILY ANALYSIS: %s - %s",
		strings.ToUpper(sourceLabel(source)), strings.ToUpper(payLabel(payType)))
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", strings.Repeat("=", rule), title, strings.Repeat("=", rule))

	distinct, err := sub.Distinct("Day")
	if err != nil {
		return err
	}
	days := tabular.CanonicalOrder(distinct, tabular.Weekdays)

	byDay := make(map[string]float64, len(days))
	for _, day := range days {
		daySub, err := sub.Select(tabular.Filter{"Day": day})
		if err != nil {
			return err
		}
		values, err := incomeValues(daySub, source)
		if err != nil {
			return err
		}
		stats, ok := tabular.Describe(values)
		if !ok {
			continue
		}
		byDay[day] = stats.Total

		fmt.Fprintf(w, "\n%s:\n%s\n", strings.ToUpper(day), strings.Repeat("-", rule))
		fmt.Fprintf(w, "  Total Income: £%.2f\n", stats.Total)
		fmt.Fprintf(w, "  Average Daily Income: £%.2f\n", stats.Mean)
		fmt.Fprintf(w, "  Highest Single Day: £%.2f\n", stats.Max)
		fmt.Fprintf(w, "  Lowest Single Day: £%.2f\n", stats.Min)
		fmt.Fprintf(w, "  Days Recorded: %d\n", stats.Count)
	}

	dayTotal := func(day string) (float64, bool) {
		total, ok := byDay[day]
		return total, ok
	}
	best, bestTotal, ok := tabular.BestBy(days, dayTotal)
	if !ok {
		return errors.New("no days to rank")
	}
	worst, worstTotal, _ := tabular.WorstBy(days, dayTotal)

	fmt.Fprintf(w, "\nSUMMARY:\n%s\n", strings.Repeat("-", rule))
	fmt.Fprintf(w, "  Best Day (Total Income): %s - £%.2f\n", best, bestTotal)
	fmt.Fprintf(w, "  Worst Day (Total Income): %s - £%.2f\n", worst, worstTotal)
	return nil
}

// incomeTrendChart renders one income source in dataset order as a line
// chart with a fitted trend curve and a mean line. The empty source plots
// each day's total across every source.
func incomeTrendChart(income *tabular.Table, source, payType, path string) error {
	sub, err := filterIncome(income, payType, "")
	if err != nil {
		return err
	}
	values, err := incomeValues(sub, source)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no income recorded for %s", strings.ToLower(payLabel(payType)))
	}

	cfg := chart.Config{
		Title:    fmt.Sprintf("Income Trend: %s (%s)", sourceLabel(source), payLabel(payType)),
		XLabel:   "Days",
		YLabel:   "Income (£)",
		Trend:    true,
		MeanLine: true,
	}
	return chart.Line(path, cfg, chart.Series{
		Name:   fmt.Sprintf("%s - %s", sourceLabel(source), payLabel(payType)),
		Points: tabular.Series{Labels: dayNumbers(len(values)), Values: values},
	})
}

// sourceComparisonChart renders one line per income source.
func sourceComparisonChart(income *tabular.Table, payType, path string) error {
	sub, err := filterIncome(income, payType, "")
	if err != nil {
		return err
	}

	sources := sub.Observations()
	series := make([]chart.Series, 0, len(sources))
	for _, source := range sources {
		values, err := sub.Column(source)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			continue
		}
		series = append(series, chart.Series{
			Name:   source,
			Points: tabular.Series{Labels: dayNumbers(len(values)), Values: values},
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("no income records for %s", strings.ToLower(payLabel(payType)))
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("All Income Sources Comparison (%s)", payLabel(payType)),
		XLabel: "Days",
		YLabel: "Income (£)",
	}
	return chart.Line(path, cfg, series...)
}

// dayOfWeekChart renders total income per day of the week as a bar chart
// in Monday-first order.
func dayOfWeekChart(income *tabular.Table, source, payType, path string) error {
	sub, err := filterIncome(income, payType, "")
	if err != nil {
		return err
	}
	distinct, err := sub.Distinct("Day")
	if err != nil {
		return err
	}
	days := tabular.CanonicalOrder(distinct, tabular.Weekdays)

	labels := make([]string, 0, len(days))
	values := make([]float64, 0, len(days))
	for _, day := range days {
		daySub, err := sub.Select(tabular.Filter{"Day": day})
		if err != nil {
			return err
		}
		dayValues, err := incomeValues(daySub, source)
		if err != nil {
			return err
		}
		stats, ok := tabular.Describe(dayValues)
		if !ok {
			continue
		}
		labels = append(labels, day)
		values = append(values, stats.Total)
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("Income by Day of Week: %s (%s)", sourceLabel(source), payLabel(payType)),
		XLabel: "Day of Week",
		YLabel: "Total Income (£)",
	}
	return chart.Bar(path, cfg, chart.Series{
		Name:   sourceLabel(source),
		Points: tabular.Series{Labels: labels, Values: values},
	})
}

// paymentComparisonChart renders total income per payment type as a bar
// chart.
func paymentComparisonChart(income *tabular.Table, source, path string) error {
	payTypes, err := income.Distinct("Pay Type")
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(payTypes))
	values := make([]float64, 0, len(payTypes))
	for _, payType := range payTypes {
		sub, err := income.Select(tabular.Filter{"Pay Type": payType})
		if err != nil {
			return err
		}
		payValues, err := incomeValues(sub, source)
		if err != nil {
			return err
		}
		stats, ok := tabular.Describe(payValues)
		if !ok {
			continue
		}
		labels = append(labels, payType)
		values = append(values, stats.Total)
	}

	cfg := chart.Config{
		Title:  fmt.Sprintf("Income by Payment Type: %s", sourceLabel(source)),
		XLabel: "Payment Type",
		YLabel: "Total Income (£)",
	}
	return chart.Bar(path, cfg, chart.Series{
		Name:   sourceLabel(source),
		Points: tabular.Series{Labels: labels, Values: values},
	})
}

// dayNumbers labels n sequential records "1" through "n".
func dayNumbers(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}
