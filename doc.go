// Package tabular loads small tabular datasets into an immutable in-memory
// Table and derives selections, descriptive statistics, and labeled time
// series from it.
//
// The package backs teaching examples and exam-style exercises: each
// dataset has a few leading categorical key columns (a region, a menu item,
// a day of week) followed by numeric observation columns (monthly prices,
// daily sales). Every operation is a single pass over data that fits
// comfortably in memory.
//
// # Features
//
//   - Load CSV, TSV, Excel (XLSX), and Parquet files into one Table shape
//   - Automatic handling of compressed delimited text (gzip, bzip2, xz,
//     zstandard)
//   - Load from paths, io.Reader, or any fs.FS including embed.FS
//   - Exact-match selection over categorical columns with a closed set of
//     valid values resolved at load time
//   - Summary statistics (total, mean, max, min, population standard
//     deviation, count) and labeled series extraction
//   - Best/worst ranking with a stable first-seen tie-break
//
// # Basic Usage
//
// Load a file, filter it, and describe the result:
//
//	tbl, err := tabular.Load("property_prices.csv",
//	    tabular.WithObservationsFrom("Jan-19"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	north, err := tbl.Select(tabular.Filter{"Region": "North"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := north.Flatten()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if stats, ok := tabular.Describe(values); ok {
//	    fmt.Printf("mean price: %.2f\n", stats.Mean)
//	}
//
// # Observation Columns
//
// Series and statistics operations consume the table's observation range,
// the trailing numeric columns resolved once at load time:
//   - by default, the longest suffix of columns whose values are numeric
//   - WithObservationsFrom("Jan-19") starts the range at a named column,
//     for layouts where a numeric key column touches the range
//   - WithObservations("m1", "m2") lists the columns explicitly
//
// # Table Naming
//
// Table names are derived from file paths:
//   - "sales.csv" becomes table "sales"
//   - "data.tsv.gz" becomes table "data"
//   - "/path/to/prices.xlsx" becomes table "prices"
//
// # Error Handling
//
// Failures surface as wrapped sentinel errors: ErrDataNotFound for missing
// files, ErrUnknownColumn and ErrUnknownValue for filters that reference
// anything outside the loaded data, ErrNotNumeric for cells that will not
// parse. Match them with errors.Is. An empty selection is not an error;
// statistics over it are absent instead (the comma-ok form of Describe).
package tabular
