package tabular

import "testing"

func TestBestBy(t *testing.T) {
	t.Parallel()

	t.Run("largest value wins", func(t *testing.T) {
		t.Parallel()

		totals := map[string]float64{"A": 5, "B": 5, "C": 7}
		name, value, ok := BestBy([]string{"A", "B", "C"}, func(c string) (float64, bool) {
			v, ok := totals[c]
			return v, ok
		})
		if !ok {
			t.Fatal("BestBy() ok = false, want true")
		}
		if name != "C" || value != 7 {
			t.Errorf("BestBy() = %q %v, want C 7", name, value)
		}
	})

	t.Run("ties keep the earliest candidate", func(t *testing.T) {
		t.Parallel()

		totals := map[string]float64{"A": 7, "B": 7}
		name, _, ok := BestBy([]string{"A", "B"}, func(c string) (float64, bool) {
			v, ok := totals[c]
			return v, ok
		})
		if !ok || name != "A" {
			t.Errorf("BestBy() = %q, want A", name)
		}
	})

	t.Run("candidates without data are skipped", func(t *testing.T) {
		t.Parallel()

		totals := map[string]float64{"B": 3}
		name, value, ok := BestBy([]string{"A", "B"}, func(c string) (float64, bool) {
			v, ok := totals[c]
			return v, ok
		})
		if !ok || name != "B" || value != 3 {
			t.Errorf("BestBy() = %q %v %v, want B 3 true", name, value, ok)
		}
	})

	t.Run("no data at all", func(t *testing.T) {
		t.Parallel()

		_, _, ok := BestBy([]string{"A", "B"}, func(string) (float64, bool) {
			return 0, false
		})
		if ok {
			t.Error("BestBy() ok = true, want false")
		}
	})

	t.Run("negative values", func(t *testing.T) {
		t.Parallel()

		totals := map[string]float64{"A": -5, "B": -2}
		name, value, ok := BestBy([]string{"A", "B"}, func(c string) (float64, bool) {
			v, ok := totals[c]
			return v, ok
		})
		if !ok || name != "B" || value != -2 {
			t.Errorf("BestBy() = %q %v, want B -2", name, value)
		}
	})
}

func TestWorstBy(t *testing.T) {
	t.Parallel()

	t.Run("smallest value wins", func(t *testing.T) {
		t.Parallel()

		totals := map[string]float64{"A": 5, "B": 2, "C": 7}
		name, value, ok := WorstBy([]string{"A", "B", "C"}, func(c string) (float64, bool) {
			v, ok := totals[c]
			return v, ok
		})
		if !ok || name != "B" || value != 2 {
			t.Errorf("WorstBy() = %q %v, want B 2", name, value)
		}
	})

	t.Run("ties keep the earliest candidate", func(t *testing.T) {
		t.Parallel()

		totals := map[string]float64{"A": 2, "B": 2}
		name, _, ok := WorstBy([]string{"A", "B"}, func(c string) (float64, bool) {
			v, ok := totals[c]
			return v, ok
		})
		if !ok || name != "A" {
			t.Errorf("WorstBy() = %q, want A", name)
		}
	})

	t.Run("no data at all", func(t *testing.T) {
		t.Parallel()

		_, _, ok := WorstBy(nil, func(string) (float64, bool) {
			return 0, false
		})
		if ok {
			t.Error("WorstBy() ok = true, want false")
		}
	})
}

func TestBestBy_TableMetric(t *testing.T) {
	t.Parallel()

	// Rank regions by the mean over every observation cell.
	tbl := newPropertyTable(t)
	regions, err := tbl.Distinct("Region")
	if err != nil {
		t.Fatal(err)
	}

	name, value, ok := BestBy(regions, func(region string) (float64, bool) {
		subset, err := tbl.Select(Filter{"Region": region})
		if err != nil {
			return 0, false
		}
		values, err := subset.Flatten()
		if err != nil {
			return 0, false
		}
		stats, ok := Describe(values)
		return stats.Mean, ok
	})
	if !ok {
		t.Fatal("BestBy() ok = false, want true")
	}

	// North averages 22/6, South 20/2.
	if name != "South" || value != 10 {
		t.Errorf("BestBy() = %q %v, want South 10", name, value)
	}
}
