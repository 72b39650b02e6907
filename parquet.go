package tabular

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
)

// parseParquet parses Parquet content. The whole payload is buffered first
// because the format requires random access.
func parseParquet(reader io.Reader) (Header, []Record, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, nil, ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	tbl, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read parquet table: %w", err)
	}
	defer tbl.Release()

	schema := tbl.Schema()
	header := make(Header, schema.NumFields())
	for i, field := range schema.Fields() {
		header[i] = field.Name
	}

	tableReader := array.NewTableReader(tbl, 0)
	defer tableReader.Release()

	var records []Record
	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := batch.NumRows()
		for i := range numRows {
			row := make(Record, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowCellString(col, int(i))
			}
			records = append(records, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading parquet records: %w", err)
	}

	return header, records, nil
}

// arrowCellString converts an Arrow column value at a specific position to
// its raw cell representation. Nulls become empty cells. Floats keep full
// precision so numeric extraction round-trips.
func arrowCellString(col arrow.Array, pos int) string {
	if col.IsNull(pos) {
		return ""
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)

	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)

	case arrow.BINARY:
		return string(col.(*array.Binary).Value(pos))

	case arrow.BOOL:
		if col.(*array.Boolean).Value(pos) {
			return "1"
		}
		return "0"

	case arrow.INT8:
		return strconv.FormatInt(int64(col.(*array.Int8).Value(pos)), 10)

	case arrow.INT16:
		return strconv.FormatInt(int64(col.(*array.Int16).Value(pos)), 10)

	case arrow.INT32:
		return strconv.FormatInt(int64(col.(*array.Int32).Value(pos)), 10)

	case arrow.INT64:
		return strconv.FormatInt(col.(*array.Int64).Value(pos), 10)

	case arrow.UINT8:
		return strconv.FormatUint(uint64(col.(*array.Uint8).Value(pos)), 10)

	case arrow.UINT16:
		return strconv.FormatUint(uint64(col.(*array.Uint16).Value(pos)), 10)

	case arrow.UINT32:
		return strconv.FormatUint(uint64(col.(*array.Uint32).Value(pos)), 10)

	case arrow.UINT64:
		return strconv.FormatUint(col.(*array.Uint64).Value(pos), 10)

	case arrow.FLOAT32:
		return strconv.FormatFloat(float64(col.(*array.Float32).Value(pos)), 'g', -1, 32)

	case arrow.FLOAT64:
		return strconv.FormatFloat(col.(*array.Float64).Value(pos), 'g', -1, 64)

	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime().Format("2006-01-02")

	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime().Format("2006-01-02")

	case arrow.TIMESTAMP:
		unit := col.DataType().(*arrow.TimestampType).Unit
		return col.(*array.Timestamp).Value(pos).ToTime(unit).Format("2006-01-02 15:04:05")

	default:
		return fmt.Sprintf("%v", col)
	}
}
