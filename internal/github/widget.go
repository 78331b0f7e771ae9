package github

import (
	"sort"
	"time"

	"portfolio-stats/internal/activity"
)

const (
	topRepoLimit     = 5
	recentEventLimit = 5
)

// Data is everything the fetch layer hands to the widget builder. Any field
// may be empty; the builder degrades instead of failing.
type Data struct {
	Profile       *Profile
	Repositories  []Repository
	Events        []Event
	Contributions []activity.RawContribution // selected year's calendar
	MultiYear     []activity.RawContribution // recent years, for streaks
}

// Widget is the composed view model for the GitHub activity card.
type Widget struct {
	Profile            *Profile
	Year               int
	FullHistory        bool // calendar data available for the selected year
	ActivityMap        activity.Map
	Weeks              []activity.Week
	Months             []activity.MonthLabel
	TotalContributions int
	Streaks            activity.StreakResult
	AvailableYears     []int
	Languages          []activity.LanguageStat
	TotalStars         int
	TotalForks         int
	TopRepositories    []Repository
	RecentEvents       []Event
}

// BuildWidget derives the whole view model from already-fetched data. The
// heatmap prefers the contribution calendar; without one it falls back to
// weighted events, which only cover the feed's recent window. Streaks always
// come from the widest history available.
func BuildWidget(data Data, year int, now time.Time) (*Widget, error) {
	eventRecords := activity.NormalizeEvents(toRawEvents(data.Events))

	yearRecords := eventRecords
	fullHistory := len(data.Contributions) > 0
	if fullHistory {
		recs, err := activity.NormalizeContributions(data.Contributions)
		if err != nil {
			return nil, err
		}
		yearRecords = recs
	}

	allTimeRecords := eventRecords
	if len(data.MultiYear) > 0 {
		recs, err := activity.NormalizeContributions(data.MultiYear)
		if err != nil {
			return nil, err
		}
		allTimeRecords = recs
	}

	yearMap := activity.BuildYearMap(yearRecords, year)
	weeks, months := activity.BuildGrid(yearMap, year)
	streaks := activity.Streaks(activity.BuildUnboundedMap(allTimeRecords), activity.DayOf(now))

	languages := make([]string, len(data.Repositories))
	totalStars, totalForks := 0, 0
	for i, r := range data.Repositories {
		languages[i] = r.Language
		totalStars += r.Stars
		totalForks += r.Forks
	}

	return &Widget{
		Profile:            data.Profile,
		Year:               year,
		FullHistory:        fullHistory,
		ActivityMap:        yearMap,
		Weeks:              weeks,
		Months:             months,
		TotalContributions: activity.Total(yearMap),
		Streaks:            streaks,
		AvailableYears:     activity.AvailableYears(eventRecords, now.UTC().Year()),
		Languages:          activity.LanguageStats(languages),
		TotalStars:         totalStars,
		TotalForks:         totalForks,
		TopRepositories:    topRepositories(data.Repositories),
		RecentEvents:       recentEvents(data.Events, year),
	}, nil
}

func toRawEvents(events []Event) []activity.RawEvent {
	raw := make([]activity.RawEvent, len(events))
	for i, e := range events {
		raw[i] = activity.RawEvent{OccurredAt: e.CreatedAt, Kind: e.Type}
	}
	return raw
}

// topRepositories returns the most starred non-fork repositories.
func topRepositories(repos []Repository) []Repository {
	var own []Repository
	for _, r := range repos {
		if r.Fork {
			continue
		}
		own = append(own, r)
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Stars > own[j].Stars
	})

	if len(own) > topRepoLimit {
		own = own[:topRepoLimit]
	}
	return own
}

// recentEvents keeps the newest events of the selected year. The feed is
// already newest-first.
func recentEvents(events []Event, year int) []Event {
	var recent []Event
	for _, e := range events {
		if e.CreatedAt.UTC().Year() != year {
			continue
		}
		recent = append(recent, e)
		if len(recent) == recentEventLimit {
			break
		}
	}
	return recent
}
