package tabular

// BestBy scans candidates in order and returns the one with the largest
// metric value. Ties keep the earliest candidate: a later candidate wins
// only with a strictly greater value, which makes report output
// deterministic. The metric reports ok=false for candidates with no data;
// those are skipped. BestBy returns ok=false when no candidate has data.
func BestBy(candidates []string, metric func(string) (float64, bool)) (string, float64, bool) {
	bestName := ""
	bestValue := 0.0
	found := false

	for _, candidate := range candidates {
		value, ok := metric(candidate)
		if !ok {
			continue
		}
		if !found || value > bestValue {
			bestName = candidate
			bestValue = value
			found = true
		}
	}
	return bestName, bestValue, found
}

// WorstBy is the BestBy counterpart for the smallest metric value, with the
// same first-seen tie-break.
func WorstBy(candidates []string, metric func(string) (float64, bool)) (string, float64, bool) {
	worstName := ""
	worstValue := 0.0
	found := false

	for _, candidate := range candidates {
		value, ok := metric(candidate)
		if !ok {
			continue
		}
		if !found || value < worstValue {
			worstName = candidate
			worstValue = value
			found = true
		}
	}
	return worstName, worstValue, found
}
