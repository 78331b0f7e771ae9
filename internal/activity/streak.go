package activity

import "sort"

// StreakResult holds both streak aggregates derived from an unbounded map.
type StreakResult struct {
	Max     int
	Current int
}

// Streaks computes both streaks in one call.
func Streaks(m Map, today Day) StreakResult {
	return StreakResult{
		Max:     MaxStreak(m),
		Current: CurrentStreak(m, today),
	}
}

// MaxStreak returns the longest run of consecutive calendar days with
// positive activity. A day missing from a sparse map breaks the run the same
// way a zero-count day does: continuity requires consecutive calendar days,
// not merely consecutive keys.
func MaxStreak(m Map) int {
	days := make([]Day, 0, len(m))
	for d := range m {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	best, run := 0, 0
	for i, d := range days {
		if m[d] <= 0 {
			run = 0
			continue
		}
		if run > 0 && d == days[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// CurrentStreak anchors at today when today has activity, otherwise at
// yesterday, and walks backward one calendar day at a time until the first
// inactive day. Two consecutive inactive days always yield zero.
func CurrentStreak(m Map, today Day) int {
	anchor := today
	if m[today] <= 0 {
		anchor = today - 1
	}
	streak := 0
	for d := anchor; m[d] > 0; d-- {
		streak++
	}
	return streak
}
