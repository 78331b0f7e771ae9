package activity

import "time"

// Cell is one day square of the heatmap grid.
type Cell struct {
	Day    Day
	Count  int
	InYear bool
}

// Week is exactly seven cells, Sunday through Saturday.
type Week [7]Cell

// MonthLabel spans the grid columns belonging to one month of the selected
// year. Widths are contiguous and sum to the total week count.
type MonthLabel struct {
	Name      string
	StartWeek int
	Width     int
}

// BuildGrid lays a year-scoped map onto Sunday-start weeks covering the
// selected year, padded to full weeks at both ends. Padding days belong to
// the neighboring years and are flagged InYear=false with a zero count.
func BuildGrid(yearMap Map, year int) ([]Week, []MonthLabel) {
	jan1 := MakeDay(year, time.January, 1)
	dec31 := MakeDay(year, time.December, 31)

	first := jan1 - Day(jan1.Weekday())
	last := dec31 + Day(time.Saturday-dec31.Weekday())

	var weeks []Week
	var months []MonthLabel
	var week Week
	slot := 0
	currentMonth := time.Month(0)
	monthStart := 0

	for d := first; d <= last; d++ {
		inYear := d >= jan1 && d <= dec31
		count := 0
		if inYear {
			count = yearMap[d]
		}

		// A month opens at the week holding its first in-year day, even
		// when that day falls mid-week. The previous label closes with the
		// week-index delta.
		if inYear && d.Month() != currentMonth {
			if currentMonth != 0 {
				months[len(months)-1].Width = len(weeks) - monthStart
			}
			currentMonth = d.Month()
			monthStart = len(weeks)
			months = append(months, MonthLabel{
				Name:      d.Time().Format("Jan"),
				StartWeek: monthStart,
			})
		}

		week[slot] = Cell{Day: d, Count: count, InYear: inYear}
		slot++
		if slot == len(week) {
			weeks = append(weeks, week)
			week = Week{}
			slot = 0
		}
	}

	if len(months) > 0 {
		months[len(months)-1].Width = len(weeks) - monthStart
	}
	return weeks, months
}
