package codewars

import (
	"fmt"
	"time"

	"portfolio-stats/internal/activity"
)

const recentChallengeLimit = 3

// Widget is the composed view model for the Codewars activity card.
type Widget struct {
	User             *User
	Year             int
	ActivityMap      activity.Map
	Weeks            []activity.Week
	Months           []activity.MonthLabel
	TotalSolved      int
	Streaks          activity.StreakResult
	AvailableYears   []int
	TopLanguages     []activity.LanguageRank
	RecentChallenges []Challenge
}

// BuildWidget derives the view model from already-fetched data. Every
// completed kata counts as one activity on its completion day. user may be
// nil when only challenge data is available.
func BuildWidget(user *User, challenges []Challenge, year int, now time.Time) (*Widget, error) {
	events := make([]activity.RawEvent, 0, len(challenges))
	completedAt := make([]time.Time, 0, len(challenges))
	for _, ch := range challenges {
		at, err := time.Parse(time.RFC3339, ch.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: completedAt %q for kata %q", activity.ErrMalformedDate, ch.CompletedAt, ch.Name)
		}
		events = append(events, activity.RawEvent{OccurredAt: at, Kind: "kata"})
		completedAt = append(completedAt, at)
	}

	records := activity.NormalizeEvents(events)
	yearMap := activity.BuildYearMap(records, year)
	weeks, months := activity.BuildGrid(yearMap, year)
	streaks := activity.Streaks(activity.BuildUnboundedMap(records), activity.DayOf(now))

	var scores map[string]int
	if user != nil {
		scores = make(map[string]int, len(user.Ranks.Languages))
		for name, rank := range user.Ranks.Languages {
			scores[name] = rank.Score
		}
	}

	var recent []Challenge
	for i, ch := range challenges {
		if completedAt[i].UTC().Year() != year {
			continue
		}
		recent = append(recent, ch)
		if len(recent) == recentChallengeLimit {
			break
		}
	}

	return &Widget{
		User:             user,
		Year:             year,
		ActivityMap:      yearMap,
		Weeks:            weeks,
		Months:           months,
		TotalSolved:      activity.Total(yearMap),
		Streaks:          streaks,
		AvailableYears:   activity.AvailableYears(records, now.UTC().Year()),
		TopLanguages:     activity.RankLanguages(scores),
		RecentChallenges: recent,
	}, nil
}
