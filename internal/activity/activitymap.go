package activity

import "time"

// Map associates a calendar day with an activity count.
type Map map[Day]int

// BuildYearMap folds records into a dense map covering every day of the given
// year. Days without activity stay at zero; multiple records for the same day
// accumulate. Records outside the year and non-positive counts are ignored.
func BuildYearMap(records []Record, year int) Map {
	start := MakeDay(year, time.January, 1)
	end := MakeDay(year, time.December, 31)

	m := make(Map, int(end-start)+1)
	for d := start; d <= end; d++ {
		m[d] = 0
	}
	for _, r := range records {
		if r.Count <= 0 {
			continue
		}
		if r.Day >= start && r.Day <= end {
			m[r.Day] += r.Count
		}
	}
	return m
}

// BuildUnboundedMap folds records into a sparse map spanning all available
// history. Only days with positive activity get an entry.
func BuildUnboundedMap(records []Record) Map {
	m := make(Map)
	for _, r := range records {
		if r.Count <= 0 {
			continue
		}
		m[r.Day] += r.Count
	}
	return m
}

// Total sums all counts in a map.
func Total(m Map) int {
	sum := 0
	for _, c := range m {
		sum += c
	}
	return sum
}
