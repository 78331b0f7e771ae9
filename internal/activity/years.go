package activity

import "sort"

const recentYearSpan = 5

// AvailableYears returns the selectable years: the five most recent calendar
// years unioned with every year present in the records, deduplicated and
// sorted descending.
func AvailableYears(records []Record, currentYear int) []int {
	seen := make(map[int]bool)
	for i := 0; i < recentYearSpan; i++ {
		seen[currentYear-i] = true
	}
	for _, r := range records {
		seen[r.Day.Year()] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
