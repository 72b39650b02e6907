//nolint:errcheck // Test cleanup error handling is intentionally ignored
package tabular

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("load CSV file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "earnings.csv")
		content := "Region,Jan,Feb\nNewhaven,120.5,98.0\nSeaford,75.25,80.0\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if table.Name() != "earnings" {
			t.Errorf("Name() = %q, want %q", table.Name(), "earnings")
		}
		if !table.Header().Equal(newHeader([]string{"Region", "Jan", "Feb"})) {
			t.Errorf("Header() = %v", table.Header())
		}
		if table.Len() != 2 {
			t.Errorf("Len() = %d, want 2", table.Len())
		}
		wantObs := []string{"Jan", "Feb"}
		if got := table.Observations(); len(got) != 2 || got[0] != wantObs[0] || got[1] != wantObs[1] {
			t.Errorf("Observations() = %v, want %v", got, wantObs)
		}
	})

	t.Run("load TSV file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "menu.tsv")
		content := "Menu Item\tService\tMon\tTue\nBrisket\tLunch\t12\t15\nRibs\tDinner\t20\t18\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if table.Name() != "menu" {
			t.Errorf("Name() = %q, want %q", table.Name(), "menu")
		}
		if table.Len() != 2 {
			t.Errorf("Len() = %d, want 2", table.Len())
		}
	})

	t.Run("load gzip compressed CSV", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "earnings.csv.gz")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		gzWriter := gzip.NewWriter(f)
		_, _ = gzWriter.Write([]byte("Region,Jan\nNewhaven,120.5\n"))
		_ = gzWriter.Close()
		_ = f.Close()

		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Name() != "earnings" {
			t.Errorf("Name() = %q, want %q", table.Name(), "earnings")
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
	})

	t.Run("load xz compressed TSV", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "menu.tsv.xz")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		xzWriter, err := xz.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = xzWriter.Write([]byte("Item\tMon\nBrisket\t12\n"))
		_ = xzWriter.Close()
		_ = f.Close()

		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
	})

	t.Run("load zstd compressed CSV", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "earnings.csv.zst")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		zstdWriter, err := zstd.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = zstdWriter.Write([]byte("Region,Jan\nNewhaven,120.5\n"))
		_ = zstdWriter.Close()
		_ = f.Close()

		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
	})

	t.Run("load bzip2 compressed CSV", func(t *testing.T) {
		t.Parallel()

		// Pre-built fixture since the standard library has no bzip2 writer.
		table, err := Load(filepath.Join("testdata", "daily.csv.bz2"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Name() != "daily" {
			t.Errorf("Name() = %q, want %q", table.Name(), "daily")
		}
		if !table.Header().Equal(newHeader([]string{"Day", "Pay Type", "Tickets", "Gift Shop"})) {
			t.Errorf("Header() = %v", table.Header())
		}
		if table.Len() != 2 {
			t.Errorf("Len() = %d, want 2", table.Len())
		}
		wantObs := []string{"Tickets", "Gift Shop"}
		if got := table.Observations(); len(got) != 2 || got[0] != wantObs[0] || got[1] != wantObs[1] {
			t.Errorf("Observations() = %v, want %v", got, wantObs)
		}
	})

	t.Run("load XLSX file", func(t *testing.T) {
		t.Parallel()

		data := newTestWorkbook(t, "Visitors", [][]any{
			{"Day", "Tickets"},
			{"Monday", 120.5},
			{"Tuesday", 98},
		})
		path := filepath.Join(t.TempDir(), "visitors.xlsx")
		if err := os.WriteFile(path, data, 0600); err != nil {
			t.Fatal(err)
		}

		table, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Name() != "visitors" {
			t.Errorf("Name() = %q, want %q", table.Name(), "visitors")
		}
		if table.Len() != 2 {
			t.Errorf("Len() = %d, want 2", table.Len())
		}
	})

	t.Run("file not found returns ErrDataNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
		if !errors.Is(err, ErrDataNotFound) {
			t.Errorf("error = %v, want ErrDataNotFound", err)
		}
	})

	t.Run("unsupported extension returns ErrUnsupportedFormat", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "notes.txt")
		if err := os.WriteFile(path, []byte("plain text"), 0600); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("empty file returns ErrEmptyData", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.csv")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if !errors.Is(err, ErrEmptyData) {
			t.Errorf("error = %v, want ErrEmptyData", err)
		}
	})

	t.Run("WithName overrides derived name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "raw_export_2024.csv")
		if err := os.WriteFile(path, []byte("Region,Jan\nNewhaven,120.5\n"), 0600); err != nil {
			t.Fatal(err)
		}

		table, err := Load(path, WithName("earnings"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Name() != "earnings" {
			t.Errorf("Name() = %q, want %q", table.Name(), "earnings")
		}
	})

	t.Run("WithSheet selects workbook sheet", func(t *testing.T) {
		t.Parallel()

		data := newTestWorkbook(t, "Sales", [][]any{
			{"Item", "Total"},
			{"Brisket", 42},
		})
		path := filepath.Join(t.TempDir(), "book.xlsx")
		if err := os.WriteFile(path, data, 0600); err != nil {
			t.Fatal(err)
		}

		table, err := Load(path, WithSheet("Sales"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}

		_, err = Load(path, WithSheet("Missing"))
		if err == nil {
			t.Error("Expected error for unknown sheet, got nil")
		}
	})

	t.Run("WithObservationsFrom keeps numeric key column", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "property.csv")
		content := "Region,Rooms,Jan,Feb\nNewhaven,2,120.5,98.0\nNewhaven,3,150.0,160.5\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		table, err := Load(path, WithObservationsFrom("Jan"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		wantObs := []string{"Jan", "Feb"}
		if got := table.Observations(); len(got) != 2 || got[0] != wantObs[0] || got[1] != wantObs[1] {
			t.Errorf("Observations() = %v, want %v", got, wantObs)
		}
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	t.Run("load from fs.FS", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"data/earnings.csv": &fstest.MapFile{
				Data: []byte("Region,Jan,Feb\nNewhaven,120.5,98.0\n"),
			},
		}

		table, err := LoadFS(fsys, "data/earnings.csv")
		if err != nil {
			t.Fatalf("LoadFS() error = %v", err)
		}
		if table.Name() != "earnings" {
			t.Errorf("Name() = %q, want %q", table.Name(), "earnings")
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
	})

	t.Run("missing path returns ErrDataNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFS(fstest.MapFS{}, "missing.csv")
		if !errors.Is(err, ErrDataNotFound) {
			t.Errorf("error = %v, want ErrDataNotFound", err)
		}
	})
}

func TestLoadReader(t *testing.T) {
	t.Parallel()

	t.Run("load CSV from reader", func(t *testing.T) {
		t.Parallel()

		reader := strings.NewReader("Region,Jan\nNewhaven,120.5\n")
		table, err := LoadReader(reader, "earnings", FileTypeCSV)
		if err != nil {
			t.Fatalf("LoadReader() error = %v", err)
		}
		if table.Name() != "earnings" {
			t.Errorf("Name() = %q, want %q", table.Name(), "earnings")
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
	})

	t.Run("load compressed reader", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		gzWriter := gzip.NewWriter(&buf)
		_, _ = gzWriter.Write([]byte("Region,Jan\nNewhaven,120.5\n"))
		_ = gzWriter.Close()

		table, err := LoadReader(&buf, "earnings", FileTypeCSVGZ)
		if err != nil {
			t.Fatalf("LoadReader() error = %v", err)
		}
		if table.Len() != 1 {
			t.Errorf("Len() = %d, want 1", table.Len())
		}
	})

	t.Run("unsupported type returns ErrUnsupportedFormat", func(t *testing.T) {
		t.Parallel()

		_, err := LoadReader(strings.NewReader("data"), "bad", FileTypeUnsupported)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("WithName overrides reader name", func(t *testing.T) {
		t.Parallel()

		reader := strings.NewReader("Region,Jan\nNewhaven,120.5\n")
		table, err := LoadReader(reader, "raw", FileTypeCSV, WithName("earnings"))
		if err != nil {
			t.Fatalf("LoadReader() error = %v", err)
		}
		if table.Name() != "earnings" {
			t.Errorf("Name() = %q, want %q", table.Name(), "earnings")
		}
	})
}
