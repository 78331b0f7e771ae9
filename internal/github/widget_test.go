package github

import (
	"errors"
	"testing"
	"time"

	"portfolio-stats/internal/activity"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func TestBuildWidgetFromContributions(t *testing.T) {
	data := Data{
		Contributions: []activity.RawContribution{
			{Date: "2024-06-08", Count: 3},
			{Date: "2024-06-09", Count: 1},
		},
		MultiYear: []activity.RawContribution{
			{Date: "2024-06-08", Count: 3},
			{Date: "2024-06-09", Count: 1},
		},
	}

	w, err := BuildWidget(data, 2024, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !w.FullHistory {
		t.Error("expected FullHistory with contribution data present")
	}
	if w.TotalContributions != 4 {
		t.Errorf("expected 4 total contributions, got %d", w.TotalContributions)
	}
	if len(w.ActivityMap) != 366 {
		t.Errorf("expected dense leap-year map, got %d entries", len(w.ActivityMap))
	}
	// June 10 inactive, anchor falls to June 9.
	if w.Streaks.Current != 2 || w.Streaks.Max != 2 {
		t.Errorf("unexpected streaks: %+v", w.Streaks)
	}
}

func TestBuildWidgetFallsBackToWeightedEvents(t *testing.T) {
	data := Data{
		Events: []Event{
			{Type: "PushEvent", Repo: "me/site", CreatedAt: time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC)},
			{Type: "PullRequestEvent", Repo: "me/site", CreatedAt: time.Date(2024, 6, 9, 9, 0, 0, 0, time.UTC)},
		},
	}

	w, err := BuildWidget(data, 2024, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.FullHistory {
		t.Error("expected event fallback without contribution data")
	}
	// PushEvent weighs 2, PullRequestEvent 3.
	if got := w.ActivityMap[activity.MakeDay(2024, time.June, 9)]; got != 5 {
		t.Errorf("expected weighted count 5, got %d", got)
	}
	if w.Streaks.Current != 1 {
		t.Errorf("expected current streak 1, got %d", w.Streaks.Current)
	}
}

func TestBuildWidgetMalformedContributionFails(t *testing.T) {
	data := Data{
		Contributions: []activity.RawContribution{{Date: "bogus", Count: 1}},
	}
	if _, err := BuildWidget(data, 2024, testNow); !errors.Is(err, activity.ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
}

func TestBuildWidgetEmptyInput(t *testing.T) {
	w, err := BuildWidget(Data{}, 2024, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.TotalContributions != 0 || w.Streaks.Max != 0 || w.Streaks.Current != 0 {
		t.Errorf("expected zeroed aggregates, got %+v", w)
	}
	if len(w.Weeks) == 0 {
		t.Error("expected a structurally complete grid even with no data")
	}
	if len(w.AvailableYears) != 5 {
		t.Errorf("expected the 5 recent years, got %v", w.AvailableYears)
	}
}

func TestBuildWidgetRepositoryAggregates(t *testing.T) {
	data := Data{
		Repositories: []Repository{
			{Name: "a", Language: "Go", Stars: 10, Forks: 2},
			{Name: "b", Language: "Go", Stars: 3},
			{Name: "fork", Language: "Rust", Stars: 99, Fork: true},
			{Name: "c", Language: "", Stars: 1, Forks: 1},
		},
	}

	w, err := BuildWidget(data, 2024, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.TotalStars != 113 || w.TotalForks != 3 {
		t.Errorf("star/fork totals wrong: %d/%d", w.TotalStars, w.TotalForks)
	}

	// Forks are excluded from the top list but not from the totals.
	if len(w.TopRepositories) != 3 || w.TopRepositories[0].Name != "a" {
		t.Errorf("unexpected top repositories: %+v", w.TopRepositories)
	}

	// Language stats skip the language-less repo and the percentage
	// denominator follows.
	if len(w.Languages) != 2 || w.Languages[0].Name != "Go" || w.Languages[0].Count != 2 {
		t.Fatalf("unexpected languages: %+v", w.Languages)
	}
	if w.Languages[0].Percentage != float64(2)/3*100 {
		t.Errorf("unexpected Go percentage: %f", w.Languages[0].Percentage)
	}
}

func TestRecentEventsFilteredByYear(t *testing.T) {
	events := []Event{
		{Type: "PushEvent", Repo: "me/site", CreatedAt: time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC)},
		{Type: "WatchEvent", Repo: "me/other", CreatedAt: time.Date(2023, 12, 30, 8, 0, 0, 0, time.UTC)},
	}
	w, err := BuildWidget(Data{Events: events}, 2024, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.RecentEvents) != 1 || w.RecentEvents[0].Repo != "me/site" {
		t.Errorf("unexpected recent events: %+v", w.RecentEvents)
	}
}

func TestEventDescription(t *testing.T) {
	cases := []struct {
		event Event
		want  string
	}{
		{Event{Type: "PushEvent", Repo: "me/site"}, "Pushed to site"},
		{Event{Type: "WatchEvent", Repo: "other/lib"}, "Starred lib"},
		{Event{Type: "PullRequestEvent", Repo: "me/site"}, "Pull request in site"},
		{Event{Type: "MemberEvent", Repo: "me/site"}, "Activity in site"},
		{Event{Type: "PushEvent", Repo: "noslash"}, "Pushed to noslash"},
	}
	for _, tc := range cases {
		if got := tc.event.Description(); got != tc.want {
			t.Errorf("%s on %s: expected %q, got %q", tc.event.Type, tc.event.Repo, tc.want, got)
		}
	}
}
