package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series is an ordered sequence of labeled numeric values. Labels follow
// the source column order and are never re-sorted.
type Series struct {
	Labels []string
	Values []float64
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Values)
}

// Range returns the inclusive sub-series between the from and to labels.
// A label missing from the series reports ErrUnknownLabel.
func (s Series) Range(from, to string) (Series, error) {
	start := indexOfLabel(s.Labels, from)
	if start < 0 {
		return Series{}, fmt.Errorf("%w: %s", ErrUnknownLabel, from)
	}
	end := indexOfLabel(s.Labels, to)
	if end < 0 {
		return Series{}, fmt.Errorf("%w: %s", ErrUnknownLabel, to)
	}
	if start > end {
		return Series{}, fmt.Errorf("tabular: range start %q is after end %q", from, to)
	}
	return Series{
		Labels: s.Labels[start : end+1],
		Values: s.Values[start : end+1],
	}, nil
}

// indexOfLabel returns the position of the first matching label, or -1.
func indexOfLabel(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}

// RowSeries extracts the observation cells of row i as a labeled series,
// one point per observation column in column order.
func (t *Table) RowSeries(i int) (Series, error) {
	if i < 0 || i >= len(t.records) {
		return Series{}, fmt.Errorf("tabular: row %d out of range [0,%d)", i, len(t.records))
	}
	indexes, err := t.observationIndexes()
	if err != nil {
		return Series{}, err
	}

	values := make([]float64, len(indexes))
	for j, col := range indexes {
		v, err := t.cellNumeric(i, col)
		if err != nil {
			return Series{}, err
		}
		values[j] = v
	}
	return Series{Labels: t.observationLabels(), Values: values}, nil
}

// MeanSeries computes the column-wise mean across all rows: one value per
// observation column, each the arithmetic mean of that column. An empty
// table yields an empty series and no error, the absent result for an
// empty selection.
func (t *Table) MeanSeries() (Series, error) {
	if len(t.records) == 0 {
		return Series{}, nil
	}
	indexes, err := t.observationIndexes()
	if err != nil {
		return Series{}, err
	}

	values := make([]float64, len(indexes))
	for j, col := range indexes {
		column, err := t.columnValuesAt(col)
		if err != nil {
			return Series{}, err
		}
		values[j] = stat.Mean(column, nil)
	}
	return Series{Labels: t.observationLabels(), Values: values}, nil
}

// SumSeries computes the column-wise total across all rows. An empty table
// yields an empty series and no error.
func (t *Table) SumSeries() (Series, error) {
	if len(t.records) == 0 {
		return Series{}, nil
	}
	indexes, err := t.observationIndexes()
	if err != nil {
		return Series{}, err
	}

	values := make([]float64, len(indexes))
	for j, col := range indexes {
		column, err := t.columnValuesAt(col)
		if err != nil {
			return Series{}, err
		}
		values[j] = floats.Sum(column)
	}
	return Series{Labels: t.observationLabels(), Values: values}, nil
}

// Column returns the named column parsed as numbers.
func (t *Table) Column(name string) ([]float64, error) {
	i, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	return t.columnValuesAt(i)
}

// RowTotals returns, for each row, the sum across its observation cells.
func (t *Table) RowTotals() ([]float64, error) {
	indexes, err := t.observationIndexes()
	if err != nil {
		return nil, err
	}

	totals := make([]float64, len(t.records))
	for i := range t.records {
		sum := 0.0
		for _, col := range indexes {
			v, err := t.cellNumeric(i, col)
			if err != nil {
				return nil, err
			}
			sum += v
		}
		totals[i] = sum
	}
	return totals, nil
}

// Flatten returns every observation cell in row-major order.
func (t *Table) Flatten() ([]float64, error) {
	indexes, err := t.observationIndexes()
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(t.records)*len(indexes))
	for i := range t.records {
		for _, col := range indexes {
			v, err := t.cellNumeric(i, col)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// observationIndexes returns header positions of the observation columns.
func (t *Table) observationIndexes() ([]int, error) {
	if len(t.observations) == 0 {
		return nil, ErrNoObservations
	}
	indexes := make([]int, len(t.observations))
	for i, name := range t.observations {
		indexes[i] = t.index[name]
	}
	return indexes, nil
}

// observationLabels returns a copy of the observation names for use as
// series labels.
func (t *Table) observationLabels() []string {
	labels := make([]string, len(t.observations))
	copy(labels, t.observations)
	return labels
}

// columnValuesAt parses the column at position i as numbers.
func (t *Table) columnValuesAt(i int) ([]float64, error) {
	values := make([]float64, len(t.records))
	for row := range t.records {
		v, err := t.cellNumeric(row, i)
		if err != nil {
			return nil, err
		}
		values[row] = v
	}
	return values, nil
}

// cellNumeric parses the cell at row i, column position col.
func (t *Table) cellNumeric(i, col int) (float64, error) {
	v, err := parseNumeric(t.records[i][col])
	if err != nil {
		return 0, fmt.Errorf("row %d, column %s: %w", i, t.header[col], err)
	}
	return v, nil
}

// parseNumeric parses one cell as a float64.
func parseNumeric(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, cell)
	}
	return v, nil
}
