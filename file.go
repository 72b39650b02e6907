package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileType represents supported file types including compression variants.
// Compression applies to delimited text only; XLSX and Parquet are already
// container formats.
type FileType int

const (
	// FileTypeUnsupported represents unsupported file type
	FileTypeUnsupported FileType = iota
	// FileTypeCSV represents CSV file type
	FileTypeCSV
	// FileTypeTSV represents TSV file type
	FileTypeTSV
	// FileTypeXLSX represents Excel XLSX file type
	FileTypeXLSX
	// FileTypeParquet represents Parquet file type
	FileTypeParquet
	// FileTypeCSVGZ represents gzip-compressed CSV file type
	FileTypeCSVGZ
	// FileTypeCSVBZ2 represents bzip2-compressed CSV file type
	FileTypeCSVBZ2
	// FileTypeCSVXZ represents xz-compressed CSV file type
	FileTypeCSVXZ
	// FileTypeCSVZSTD represents zstd-compressed CSV file type
	FileTypeCSVZSTD
	// FileTypeTSVGZ represents gzip-compressed TSV file type
	FileTypeTSVGZ
	// FileTypeTSVBZ2 represents bzip2-compressed TSV file type
	FileTypeTSVBZ2
	// FileTypeTSVXZ represents xz-compressed TSV file type
	FileTypeTSVXZ
	// FileTypeTSVZSTD represents zstd-compressed TSV file type
	FileTypeTSVZSTD
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// Delimiters for delimited text formats.
const (
	csvDelimiter = ','
	tsvDelimiter = '\t'
)

// detectFileType detects file type from extension, considering compressed files
func detectFileType(path string) FileType {
	compression := detectCompressionType(path)
	basePath := path
	if ext := compression.Extension(); ext != "" {
		basePath = strings.TrimSuffix(path, ext)
	}

	switch strings.ToLower(filepath.Ext(basePath)) {
	case extCSV:
		switch compression {
		case CompressionGZ:
			return FileTypeCSVGZ
		case CompressionBZ2:
			return FileTypeCSVBZ2
		case CompressionXZ:
			return FileTypeCSVXZ
		case CompressionZSTD:
			return FileTypeCSVZSTD
		default:
			return FileTypeCSV
		}
	case extTSV:
		switch compression {
		case CompressionGZ:
			return FileTypeTSVGZ
		case CompressionBZ2:
			return FileTypeTSVBZ2
		case CompressionXZ:
			return FileTypeTSVXZ
		case CompressionZSTD:
			return FileTypeTSVZSTD
		default:
			return FileTypeTSV
		}
	case extXLSX:
		if compression != CompressionNone {
			return FileTypeUnsupported
		}
		return FileTypeXLSX
	case extParquet:
		if compression != CompressionNone {
			return FileTypeUnsupported
		}
		return FileTypeParquet
	default:
		return FileTypeUnsupported
	}
}

// extension returns the file extension for this file type, including the
// compression suffix.
func (ft FileType) extension() string {
	switch ft.baseType() {
	case FileTypeCSV:
		return extCSV + ft.compression().Extension()
	case FileTypeTSV:
		return extTSV + ft.compression().Extension()
	case FileTypeXLSX:
		return extXLSX
	case FileTypeParquet:
		return extParquet
	default:
		return ""
	}
}

// baseType returns the underlying file type with compression stripped.
func (ft FileType) baseType() FileType {
	switch ft {
	case FileTypeCSVGZ, FileTypeCSVBZ2, FileTypeCSVXZ, FileTypeCSVZSTD:
		return FileTypeCSV
	case FileTypeTSVGZ, FileTypeTSVBZ2, FileTypeTSVXZ, FileTypeTSVZSTD:
		return FileTypeTSV
	default:
		return ft
	}
}

// compression returns the compression variant of this file type.
func (ft FileType) compression() CompressionType {
	switch ft {
	case FileTypeCSVGZ, FileTypeTSVGZ:
		return CompressionGZ
	case FileTypeCSVBZ2, FileTypeTSVBZ2:
		return CompressionBZ2
	case FileTypeCSVXZ, FileTypeTSVXZ:
		return CompressionXZ
	case FileTypeCSVZSTD, FileTypeTSVZSTD:
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// parseDelimited parses CSV or TSV content with the given delimiter.
func parseDelimited(reader io.Reader, delimiter rune) (Header, []Record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse delimited data: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	header := newHeader(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		records = append(records, newRecord(rows[i]))
	}
	return header, records, nil
}

// parseXLSX parses workbook content. An empty sheet name selects the first
// sheet.
func parseXLSX(reader io.Reader, sheet string) (Header, []Record, error) {
	xlsxFile, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open XLSX data: %w", err)
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, nil, fmt.Errorf("%w: no sheets in workbook", ErrEmptyData)
	}

	if sheet == "" {
		sheet = sheetNames[0]
	} else {
		found := false
		for _, name := range sheetNames {
			if name == sheet {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("sheet %q not found in workbook", sheet)
		}
	}

	rows, err := xlsxFile.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: sheet %s is empty", ErrEmptyData, sheet)
	}

	header, records := convertXLSXRows(rows)
	return header, records, nil
}

// convertXLSXRows converts sheet rows to a header and records.
// First row becomes the header, remaining rows become records with padding.
func convertXLSXRows(rows [][]string) (Header, []Record) {
	var header Header
	var records []Record

	if len(rows) > 0 {
		header = make(Header, len(rows[0]))
		copy(header, rows[0])
	}

	if len(rows) > 1 {
		records = make([]Record, len(rows)-1)
		for i, row := range rows[1:] {
			record := make(Record, len(header))
			for j := range header {
				if j < len(row) {
					record[j] = row[j]
				}
			}
			records[i] = record
		}
	}

	return header, records
}
