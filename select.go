package tabular

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Filter maps column names to the exact value rows must carry in them.
type Filter map[string]string

// Weekdays is the canonical day-of-week order for reports and charts.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Select returns the ordered subset of rows where every filter key matches
// exactly. Matching is case-sensitive string equality; for numeric columns
// both sides are compared as numbers, so "2" matches "2.0".
//
// Filter keys are validated against the receiver: a column missing from the
// header reports ErrUnknownColumn, and a value never observed in its column
// reports ErrUnknownValue. When every value is observed but the combined
// filter matches no rows, the result is an empty Table and a nil error.
//
// The result shares the receiver's header, column types, and observation
// range, so selections chain:
//
//	north, err := tbl.Select(tabular.Filter{"Region": "North"})
//	...
//	flats, err := north.Select(tabular.Filter{"Property Type": "Flat"})
func (t *Table) Select(filter Filter) (*Table, error) {
	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	type predicate struct {
		index int
		want  string
		ct    ColumnType
	}
	predicates := make([]predicate, 0, len(keys))
	for _, key := range keys {
		i, err := t.columnIndex(key)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, predicate{
			index: i,
			want:  filter[key],
			ct:    t.columnType(i),
		})
	}

	for _, p := range predicates {
		if !t.valueObserved(p.index, p.want, p.ct) {
			return nil, fmt.Errorf("%w: %s=%q", ErrUnknownValue, t.header[p.index], p.want)
		}
	}

	var matched []Record
	for _, record := range t.records {
		all := true
		for _, p := range predicates {
			if !matchValue(record[p.index], p.want, p.ct) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, record)
		}
	}
	return t.derive(matched), nil
}

// Distinct returns the distinct values of the named column in
// first-appearance order.
func (t *Table) Distinct(column string) ([]string, error) {
	i, err := t.columnIndex(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var values []string
	for _, record := range t.records {
		v := record[i]
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

// CanonicalOrder reorders values to follow the canonical sequence, e.g.
// Weekdays. Values missing from canonical keep their original relative
// order at the end; duplicates appear once.
func CanonicalOrder(values, canonical []string) []string {
	remaining := make(map[string]bool, len(values))
	for _, v := range values {
		remaining[v] = true
	}

	ordered := make([]string, 0, len(values))
	for _, c := range canonical {
		if remaining[c] {
			ordered = append(ordered, c)
			delete(remaining, c)
		}
	}
	for _, v := range values {
		if remaining[v] {
			ordered = append(ordered, v)
			delete(remaining, v)
		}
	}
	return ordered
}

// valueObserved reports whether want matches at least one cell of the
// column at position i.
func (t *Table) valueObserved(i int, want string, ct ColumnType) bool {
	for _, record := range t.records {
		if matchValue(record[i], want, ct) {
			return true
		}
	}
	return false
}

// matchValue compares a cell against a wanted value. Numeric columns
// compare numerically with a fall back to exact string equality.
func matchValue(cell, want string, ct ColumnType) bool {
	if ct.IsNumeric() {
		cellNum, cellErr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		wantNum, wantErr := strconv.ParseFloat(strings.TrimSpace(want), 64)
		if cellErr == nil && wantErr == nil {
			return cellNum == wantNum
		}
	}
	return cell == want
}
