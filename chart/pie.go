package chart

import (
	"fmt"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// Pie renders the series as shares of a whole. Non-positive values cannot
// be drawn as slices and are skipped.
func Pie(path string, cfg Config, s Series) error {
	values := make([]gochart.Value, 0, s.Points.Len())
	for i, v := range s.Points.Values {
		if v <= 0 {
			continue
		}
		label := ""
		if i < len(s.Points.Labels) {
			label = s.Points.Labels[i]
		}
		values = append(values, gochart.Value{Value: v, Label: label})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	pie := gochart.PieChart{
		Title:  cfg.Title,
		Width:  600,
		Height: 600,
		Values: values,
	}

	f, err := os.Create(path) //nolint:gosec // Chart output path is caller-controlled
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	if err := pie.Render(gochart.PNG, f); err != nil {
		_ = f.Close() // Ignore close error
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file %s: %w", path, err)
	}
	return nil
}
