package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Header is the ordered list of column names.
type Header []string

// newHeader create new Header.
func newHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Record is one row of raw string cells in source column order.
type Record []string

// newRecord create new Record.
func newRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// Table is an immutable in-memory dataset: ordered rows over a fixed set of
// named columns. Columns are fixed at construction and every row shares the
// column set (short rows are padded with empty cells). A Table also carries
// the resolved observation columns, the trailing numeric range that series
// and statistics operations consume.
//
// Tables derived by Select share the parent's header, column types, and
// observation range; only the row subset differs.
type Table struct {
	// name is table name derived from file path or supplied by the caller.
	name string
	// header is table header.
	header Header
	// records is table records.
	records []Record
	// columns contains inferred type information for each column.
	columns []ColumnInfo
	// index maps column name to its position in header.
	index map[string]int
	// observations is the resolved observation column names, in header order.
	observations []string
}

// NewTable builds a Table from a raw header and rows. Rows shorter than the
// header are padded with empty cells. Column types are inferred from the
// data and the observation range is resolved from the options, defaulting
// to the longest numeric column suffix.
func NewTable(name string, header []string, rows [][]string, opts ...Option) (*Table, error) {
	cfg := newLoadConfig(opts...)
	if cfg.name != "" {
		name = cfg.name
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, newRecord(row))
	}
	return buildTable(name, newHeader(header), records, cfg)
}

// validateColumnNames rejects headers with repeated column names. Names
// are compared case-sensitively after trimming surrounding space.
func validateColumnNames(columns Header) error {
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		trimmed := strings.TrimSpace(col)
		if seen[trimmed] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, col)
		}
		seen[trimmed] = true
	}
	return nil
}

// buildTable validates the header, pads rows, infers column types, and
// resolves the observation range. All loaders funnel through here.
func buildTable(name string, header Header, records []Record, cfg *loadConfig) (*Table, error) {
	if err := validateColumnNames(header); err != nil {
		return nil, err
	}

	padded := make([]Record, len(records))
	for i, record := range records {
		if len(record) == len(header) {
			padded[i] = record
			continue
		}
		row := make(Record, len(header))
		copy(row, record)
		padded[i] = row
	}

	columns := inferColumnsInfo(header, padded)

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	observations, err := resolveObservations(header, columns, cfg)
	if err != nil {
		return nil, err
	}

	return &Table{
		name:         name,
		header:       header,
		records:      padded,
		columns:      columns,
		index:        index,
		observations: observations,
	}, nil
}

// derive returns a Table holding the given row subset while sharing the
// receiver's header, column types, and observation range.
func (t *Table) derive(records []Record) *Table {
	return &Table{
		name:         t.name,
		header:       t.header,
		records:      records,
		columns:      t.columns,
		index:        t.index,
		observations: t.observations,
	}
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Header return table header.
func (t *Table) Header() Header {
	return t.header
}

// Records return table records.
func (t *Table) Records() []Record {
	return t.records
}

// Columns returns column information with inferred types.
func (t *Table) Columns() []ColumnInfo {
	return t.columns
}

// Observations returns the resolved observation column names in header order.
func (t *Table) Observations() []string {
	return t.observations
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// columnIndex returns the position of the named column.
func (t *Table) columnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	return i, nil
}

// columnType returns the inferred type of the column at position i.
func (t *Table) columnType(i int) ColumnType {
	return t.columns[i].Type
}

// Equal compare Table.
func (t *Table) Equal(t2 *Table) bool {
	if t.Name() != t2.Name() {
		return false
	}
	if !t.header.Equal(t2.header) {
		return false
	}
	if len(t.Records()) != len(t2.Records()) {
		return false
	}
	for i, record := range t.Records() {
		if !record.Equal(t2.Records()[i]) {
			return false
		}
	}
	return true
}

// tableFromFilePath creates table name from file path.
func tableFromFilePath(filePath string) string {
	fileName := filepath.Base(filePath)
	// Remove compression extensions first
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(fileName, ext) {
			fileName = strings.TrimSuffix(fileName, ext)
			break
		}
	}
	// Then remove the file type extension
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
