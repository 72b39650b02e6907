package tabular

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a numeric sequence.
type Stats struct {
	// Total is the arithmetic sum.
	Total float64
	// Mean is the arithmetic mean.
	Mean float64
	// Max is the largest value.
	Max float64
	// Min is the smallest value.
	Min float64
	// StdDev is the population standard deviation.
	StdDev float64
	// Count is the number of values.
	Count int
}

// Describe reduces values to summary statistics. The result is absent
// (ok false) for an empty sequence; Describe never divides by zero.
func Describe(values []float64) (Stats, bool) {
	if len(values) == 0 {
		return Stats{}, false
	}

	mean := stat.Mean(values, nil)
	return Stats{
		Total:  floats.Sum(values),
		Mean:   mean,
		Max:    floats.Max(values),
		Min:    floats.Min(values),
		StdDev: math.Sqrt(stat.MomentAbout(2, values, mean, nil)),
		Count:  len(values),
	}, true
}

// Value returns the statistic selected by the metric.
func (s Stats) Value(m Metric) float64 {
	switch m {
	case MetricMean:
		return s.Mean
	case MetricMax:
		return s.Max
	default:
		return s.Total
	}
}

// Metric selects the statistic used to rank candidates.
type Metric int

const (
	// MetricTotal ranks by Stats.Total.
	MetricTotal Metric = iota
	// MetricMean ranks by Stats.Mean.
	MetricMean
	// MetricMax ranks by Stats.Max.
	MetricMax
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricMean:
		return "average"
	case MetricMax:
		return "max"
	default:
		return "total"
	}
}

// ParseMetric maps user input to a Metric. It accepts "total" or "sum",
// "average", "mean" or "avg", and "max" or "maximum", ignoring case and
// surrounding space. Unrecognized input reports ErrUnknownMetric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "total", "sum":
		return MetricTotal, nil
	case "average", "mean", "avg":
		return MetricMean, nil
	case "max", "maximum":
		return MetricMax, nil
	default:
		return MetricTotal, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}
