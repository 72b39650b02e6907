package tabular

import (
	"testing"
)

func TestInferColumnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		expected ColumnType
	}{
		{
			name:     "all integers",
			values:   []string{"123", "456", "789"},
			expected: ColumnTypeInteger,
		},
		{
			name:     "mixed integers and floats",
			values:   []string{"123", "45.6", "789"},
			expected: ColumnTypeReal,
		},
		{
			name:     "all floats",
			values:   []string{"12.3", "45.6", "78.9"},
			expected: ColumnTypeReal,
		},
		{
			name:     "mixed numbers and text",
			values:   []string{"123", "hello", "789"},
			expected: ColumnTypeText,
		},
		{
			name:     "all text",
			values:   []string{"hello", "world", "test"},
			expected: ColumnTypeText,
		},
		{
			name:     "empty values",
			values:   []string{"", "", ""},
			expected: ColumnTypeText,
		},
		{
			name:     "integers with empty values",
			values:   []string{"123", "", "789"},
			expected: ColumnTypeInteger,
		},
		{
			name:     "negative integers",
			values:   []string{"-123", "456", "-789"},
			expected: ColumnTypeInteger,
		},
		{
			name:     "scientific notation",
			values:   []string{"1e10", "2.5e-3", "3.14e2"},
			expected: ColumnTypeReal,
		},
		{
			name:     "ISO8601 dates",
			values:   []string{"2023-01-15", "2023-02-20", "2023-03-10"},
			expected: ColumnTypeDatetime,
		},
		{
			name:     "US date format",
			values:   []string{"1/15/2023", "2/20/2023", "3/10/2023"},
			expected: ColumnTypeDatetime,
		},
		{
			name:     "mixed datetime and text",
			values:   []string{"2023-01-15", "not a date", "2023-03-10"},
			expected: ColumnTypeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := inferColumnType(tt.values)
			if result != tt.expected {
				t.Errorf("inferColumnType(%v) = %v, want %v", tt.values, result, tt.expected)
			}
		})
	}
}

func TestInferColumnsInfo(t *testing.T) {
	t.Parallel()

	t.Run("mixed column types", func(t *testing.T) {
		t.Parallel()

		header := newHeader([]string{"name", "sold", "price", "date"})
		records := []Record{
			newRecord([]string{"Ribs", "12", "8.50", "2023-05-01"}),
			newRecord([]string{"Wings", "7", "6.25", "2023-05-02"}),
		}

		columns := inferColumnsInfo(header, records)
		if len(columns) != 4 {
			t.Fatalf("expected 4 columns, got %d", len(columns))
		}

		wantTypes := []ColumnType{
			ColumnTypeText,
			ColumnTypeInteger,
			ColumnTypeReal,
			ColumnTypeDatetime,
		}
		for i, want := range wantTypes {
			if columns[i].Name != header[i] {
				t.Errorf("column %d: expected name %s, got %s", i, header[i], columns[i].Name)
			}
			if columns[i].Type != want {
				t.Errorf("column %s: expected %s, got %s", header[i], want, columns[i].Type)
			}
		}
	})

	t.Run("no records defaults to text", func(t *testing.T) {
		t.Parallel()

		columns := inferColumnsInfo(newHeader([]string{"a", "b"}), nil)
		for _, col := range columns {
			if col.Type != ColumnTypeText {
				t.Errorf("column %s: expected text, got %s", col.Name, col.Type)
			}
		}
	})

	t.Run("empty header", func(t *testing.T) {
		t.Parallel()

		if columns := inferColumnsInfo(nil, nil); columns != nil {
			t.Errorf("expected nil columns, got %v", columns)
		}
	})
}

func TestColumnType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ct   ColumnType
		want string
	}{
		{ColumnTypeText, "text"},
		{ColumnTypeInteger, "integer"},
		{ColumnTypeReal, "real"},
		{ColumnTypeDatetime, "datetime"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("ColumnType(%d).String() = %s, want %s", tt.ct, got, tt.want)
		}
	}
}

func TestColumnType_IsNumeric(t *testing.T) {
	t.Parallel()

	if !ColumnTypeInteger.IsNumeric() || !ColumnTypeReal.IsNumeric() {
		t.Error("expected integer and real to be numeric")
	}
	if ColumnTypeText.IsNumeric() || ColumnTypeDatetime.IsNumeric() {
		t.Error("expected text and datetime to be non-numeric")
	}
}
