package core

func intp(n int) *int { return &n }

// DefaultStreets is the built-in street list applied on first run. The tool
// started life as a Miskolc canvassing planner; the seed stays idempotent, so
// re-applying it never duplicates records.
func DefaultStreets() []Street {
	return []Street{
		{Name: "Áchim utca", Start: intp(1), Interval: IntervalAll, Municipality: "Miskolc"},
		{Name: "Ács utca", Start: intp(1), Interval: IntervalAll, Municipality: "Miskolc"},
		{Name: "Adler Károly utca", Start: intp(1), Interval: IntervalAll, Municipality: "Miskolc"},
		{Name: "Ady Endre utca", Start: intp(1), End: intp(9), Interval: IntervalAll, Municipality: "Miskolc"},
		{Name: "Ady Endre utca", Start: intp(14), Interval: IntervalAll, Municipality: "Miskolc"},
		{Name: "Áfonyás utca", Start: intp(1), Interval: IntervalOdd, Municipality: "Miskolc"},
	}
}
