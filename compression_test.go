//nolint:errcheck // Test cleanup error handling is intentionally ignored
package tabular

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// TestCompressionTypeConstants tests the CompressionType constants and methods
func TestCompressionTypeConstants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compressionType CompressionType
		stringValue     string
		extension       string
	}{
		{CompressionNone, "none", ""},
		{CompressionGZ, "gz", ".gz"},
		{CompressionBZ2, "bz2", ".bz2"},
		{CompressionXZ, "xz", ".xz"},
		{CompressionZSTD, "zstd", ".zst"},
	}

	for _, tt := range tests {
		t.Run(tt.stringValue, func(t *testing.T) {
			t.Parallel()

			if got := tt.compressionType.String(); got != tt.stringValue {
				t.Errorf("String() = %v, want %v", got, tt.stringValue)
			}

			if got := tt.compressionType.Extension(); got != tt.extension {
				t.Errorf("Extension() = %v, want %v", got, tt.extension)
			}
		})
	}
}

// TestDetectCompressionType tests compression detection from file paths
func TestDetectCompressionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected CompressionType
	}{
		{"data.csv", CompressionNone},
		{"data.csv.gz", CompressionGZ},
		{"data.CSV.GZ", CompressionGZ}, // Test case insensitive
		{"data.tsv.bz2", CompressionBZ2},
		{"data.csv.xz", CompressionXZ},
		{"data.tsv.zst", CompressionZSTD},
		{"path/to/file.csv", CompressionNone},
		{"path/to/file.csv.gz", CompressionGZ},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got := detectCompressionType(tt.path)
			if got != tt.expected {
				t.Errorf("detectCompressionType(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

// TestNewDecompressedReader tests the decompression reader round-trip
func TestNewDecompressedReader(t *testing.T) {
	t.Parallel()

	testData := []byte("Region,Jan,Feb\nNewhaven,120.5,98.0\nSeaford,75.25,80.0\n")

	tests := []struct {
		name            string
		compressionType CompressionType
	}{
		{
			name:            "No compression",
			compressionType: CompressionNone,
		},
		{
			name:            "Gzip compression",
			compressionType: CompressionGZ,
		},
		{
			name:            "Bzip2 compression",
			compressionType: CompressionBZ2,
		},
		{
			name:            "XZ compression",
			compressionType: CompressionXZ,
		},
		{
			name:            "ZSTD compression",
			compressionType: CompressionZSTD,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var compressedData bytes.Buffer

			switch tt.compressionType {
			case CompressionNone:
				compressedData.Write(testData)
			case CompressionGZ:
				gzWriter := gzip.NewWriter(&compressedData)
				_, _ = gzWriter.Write(testData)
				_ = gzWriter.Close()
			case CompressionBZ2:
				// bzip2 doesn't have a writer in standard library,
				// so we'll skip the round-trip for bzip2
				t.Skip("Skipping bzip2 reader test (no writer available)")
			case CompressionXZ:
				xzWriter, err := xz.NewWriter(&compressedData)
				if err != nil {
					t.Fatalf("Failed to create xz writer: %v", err)
				}
				_, _ = xzWriter.Write(testData)
				_ = xzWriter.Close()
			case CompressionZSTD:
				zstdWriter, err := zstd.NewWriter(&compressedData)
				if err != nil {
					t.Fatalf("Failed to create zstd writer: %v", err)
				}
				_, _ = zstdWriter.Write(testData)
				_ = zstdWriter.Close()
			}

			reader, cleanup, err := newDecompressedReader(&compressedData, tt.compressionType)
			if err != nil {
				t.Fatalf("newDecompressedReader() error = %v", err)
			}
			defer func() {
				if cleanup != nil {
					_ = cleanup()
				}
			}()

			readData, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("Failed to read data: %v", err)
			}

			if !bytes.Equal(readData, testData) {
				t.Errorf("Read data = %q, want %q", readData, testData)
			}
		})
	}
}

// TestNewDecompressedReaderInvalidData tests handling of invalid compressed data
func TestNewDecompressedReaderInvalidData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		compressionType CompressionType
		data            []byte
	}{
		{
			name:            "Invalid gzip data",
			compressionType: CompressionGZ,
			data:            []byte("not gzip data"),
		},
		{
			name:            "Invalid xz data",
			compressionType: CompressionXZ,
			data:            []byte("not xz data"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := newDecompressedReader(bytes.NewReader(tt.data), tt.compressionType)
			if err == nil {
				t.Error("Expected error for invalid compressed data, got nil")
			}
		})
	}

	// Test zstd separately as it may handle invalid data differently
	t.Run("Invalid zstd data", func(t *testing.T) {
		t.Parallel()

		r, cleanup, err := newDecompressedReader(bytes.NewReader([]byte("not zstd data")), CompressionZSTD)
		// zstd.NewReader may not return an error immediately for invalid data
		// The error might occur when reading from the reader
		if err == nil {
			defer func() {
				if cleanup != nil {
					_ = cleanup()
				}
			}()

			_, readErr := io.ReadAll(r)
			if readErr == nil {
				// If both creating and reading succeed, skip the test as zstd
				// implementation may be lenient
				t.Skip("zstd implementation accepts invalid data - skipping test")
			}
		}
	})
}
