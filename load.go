package tabular

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Option configures table loading.
type Option func(*loadConfig)

// loadConfig carries loader settings shared by Load, LoadFS, LoadReader,
// and NewTable.
type loadConfig struct {
	name    string
	sheet   string
	obsFrom string
	obsCols []string
}

// newLoadConfig applies options over the defaults.
func newLoadConfig(opts ...Option) *loadConfig {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithName overrides the table name derived from the file path.
func WithName(name string) Option {
	return func(cfg *loadConfig) {
		cfg.name = name
	}
}

// WithSheet selects the workbook sheet to load. Only meaningful for XLSX
// input; the default is the first sheet.
func WithSheet(name string) Option {
	return func(cfg *loadConfig) {
		cfg.sheet = name
	}
}

// WithObservationsFrom resolves the observation range to the named column
// through the last column. Use it when a leading key column (a room count,
// a region code) is numeric and would otherwise be swallowed by the
// automatic numeric-suffix detection.
func WithObservationsFrom(column string) Option {
	return func(cfg *loadConfig) {
		cfg.obsFrom = column
	}
}

// WithObservations sets the observation columns explicitly. The names are
// normalized to header order, since series labels always follow the source
// column order.
func WithObservations(columns ...string) Option {
	return func(cfg *loadConfig) {
		cfg.obsCols = columns
	}
}

// Load reads a tabular data file into an immutable Table.
//
// The format is detected from the file name:
//   - CSV files (.csv)
//   - TSV files (.tsv)
//   - Excel workbooks (.xlsx)
//   - Parquet files (.parquet)
//   - Compressed delimited text (.csv.gz, .csv.bz2, .csv.xz, .csv.zst and
//     the TSV equivalents)
//
// The table name is derived from the file name without extensions unless
// WithName overrides it. The observation range defaults to the longest
// suffix of numeric columns; see WithObservationsFrom and WithObservations.
//
// A missing file reports ErrDataNotFound:
//
//	tbl, err := tabular.Load("sales.csv")
//	if errors.Is(err, tabular.ErrDataNotFound) {
//		log.Fatal(err)
//	}
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close() // Ignore close error
	}()

	return loadOpened(f, path, opts...)
}

// LoadFS reads a tabular data file from fsys. It behaves like Load and
// accepts any fs.FS, including embed.FS.
func LoadFS(fsys fs.FS, path string, opts ...Option) (*Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close() // Ignore close error
	}()

	return loadOpened(f, path, opts...)
}

// LoadReader reads tabular data of the given file type from reader. The
// name becomes the table name unless WithName overrides it.
func LoadReader(reader io.Reader, name string, fileType FileType, opts ...Option) (*Table, error) {
	if fileType == FileTypeUnsupported {
		return nil, ErrUnsupportedFormat
	}

	cfg := newLoadConfig(opts...)
	if cfg.name == "" {
		cfg.name = name
	}
	return parseSource(reader, fileType, cfg)
}

// loadOpened parses an opened file, deriving type and table name from path.
func loadOpened(reader io.Reader, path string, opts ...Option) (*Table, error) {
	fileType := detectFileType(path)
	if fileType == FileTypeUnsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg := newLoadConfig(opts...)
	if cfg.name == "" {
		cfg.name = tableFromFilePath(path)
	}
	return parseSource(reader, fileType, cfg)
}

// parseSource decompresses reader as needed, parses by base type, and
// builds the table.
func parseSource(reader io.Reader, fileType FileType, cfg *loadConfig) (*Table, error) {
	decompressed, cleanup, err := newDecompressedReader(reader, fileType.compression())
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cleanup() // Ignore cleanup error
	}()

	var header Header
	var records []Record
	switch fileType.baseType() {
	case FileTypeCSV:
		header, records, err = parseDelimited(decompressed, csvDelimiter)
	case FileTypeTSV:
		header, records, err = parseDelimited(decompressed, tsvDelimiter)
	case FileTypeXLSX:
		header, records, err = parseXLSX(decompressed, cfg.sheet)
	case FileTypeParquet:
		header, records, err = parseParquet(decompressed)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	return buildTable(cfg.name, header, records, cfg)
}

// resolveObservations resolves the observation column names once at load
// time. Explicit options win over the numeric-suffix default.
func resolveObservations(header Header, columns []ColumnInfo, cfg *loadConfig) ([]string, error) {
	if len(cfg.obsCols) > 0 {
		want := make(map[string]bool, len(cfg.obsCols))
		for _, name := range cfg.obsCols {
			found := false
			for _, col := range header {
				if col == name {
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
			}
			want[name] = true
		}

		observations := make([]string, 0, len(cfg.obsCols))
		for _, col := range header {
			if want[col] {
				observations = append(observations, col)
			}
		}
		return observations, nil
	}

	if cfg.obsFrom != "" {
		start := -1
		for i, col := range header {
			if col == cfg.obsFrom {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, cfg.obsFrom)
		}
		observations := make([]string, len(header)-start)
		copy(observations, header[start:])
		return observations, nil
	}

	// Default: the longest suffix of numeric columns.
	start := len(header)
	for start > 0 && columns[start-1].Type.IsNumeric() {
		start--
	}
	if start == len(header) {
		return nil, nil
	}
	observations := make([]string, len(header)-start)
	copy(observations, header[start:])
	return observations, nil
}
