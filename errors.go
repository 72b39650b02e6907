package tabular

import "errors"

// Sentinel errors returned by loading, selection, and extraction. Callers
// match them with errors.Is after unwrapping.
var (
	// ErrDataNotFound indicates the input file path does not resolve.
	ErrDataNotFound = errors.New("tabular: data file not found")

	// ErrUnsupportedFormat indicates an unsupported file format.
	ErrUnsupportedFormat = errors.New("tabular: unsupported file format")

	// ErrEmptyData indicates that the data source contains no records.
	ErrEmptyData = errors.New("tabular: empty data source")

	// ErrDuplicateColumn indicates a header with a repeated column name.
	ErrDuplicateColumn = errors.New("tabular: duplicate column name")

	// ErrUnknownColumn indicates a column name missing from the header.
	ErrUnknownColumn = errors.New("tabular: unknown column")

	// ErrUnknownValue indicates a filter value never observed in its column.
	ErrUnknownValue = errors.New("tabular: value not observed in column")

	// ErrUnknownLabel indicates a series label missing from the series.
	ErrUnknownLabel = errors.New("tabular: unknown series label")

	// ErrUnknownMetric indicates an unrecognized ranking metric name.
	ErrUnknownMetric = errors.New("tabular: unknown metric")

	// ErrNotNumeric indicates a cell that cannot be read as a number.
	ErrNotNumeric = errors.New("tabular: cell is not numeric")

	// ErrNoObservations indicates a table with no resolved observation columns.
	ErrNoObservations = errors.New("tabular: no observation columns")
)
