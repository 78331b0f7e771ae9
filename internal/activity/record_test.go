package activity

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeGroupsEventsByDay(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	events := []RawEvent{
		{OccurredAt: day.Add(9 * time.Hour), Kind: "PushEvent"},        // 2
		{OccurredAt: day.Add(12 * time.Hour), Kind: "PullRequestEvent"}, // 3
		{OccurredAt: day.Add(23 * time.Hour), Kind: "WatchEvent"},       // 1
		{OccurredAt: day.AddDate(0, 0, 1), Kind: "PushEvent"},           // next day, 2
	}

	recs := NormalizeEvents(events)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Day != MakeDay(2024, time.May, 1) || recs[0].Count != 6 {
		t.Errorf("first record: expected 2024-05-01 count 6, got %s count %d", recs[0].Day, recs[0].Count)
	}
	if recs[1].Day != MakeDay(2024, time.May, 2) || recs[1].Count != 2 {
		t.Errorf("second record: expected 2024-05-02 count 2, got %s count %d", recs[1].Day, recs[1].Count)
	}
}

func TestNormalizeUnknownKindDefaultsToOne(t *testing.T) {
	recs := NormalizeEvents([]RawEvent{
		{OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Kind: "GollumEvent"},
		{OccurredAt: time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC), Kind: ""},
	})
	if len(recs) != 1 || recs[0].Count != 2 {
		t.Fatalf("expected one record with count 2, got %+v", recs)
	}
}

func TestNormalizeContributionsPassThrough(t *testing.T) {
	recs, err := NormalizeContributions([]RawContribution{
		{Date: "2024-01-15", Count: 4},
		{Date: "2024-01-16", Count: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Day != MakeDay(2024, time.January, 15) || recs[0].Count != 4 {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Count != 0 {
		t.Errorf("zero-count contribution must survive normalization, got %+v", recs[1])
	}
}

func TestNormalizeMalformedContributionFailsWhole(t *testing.T) {
	_, err := NormalizeContributions([]RawContribution{
		{Date: "2024-01-15", Count: 4},
		{Date: "15/01/2024", Count: 1},
	})
	if !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}
}

func TestNormalizeMixedShapes(t *testing.T) {
	recs, err := Normalize([]SourceRecord{
		RawContribution{Date: "2024-03-01", Count: 2},
		RawEvent{OccurredAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), Kind: "PushEvent"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// Both target the same day; the map builders sum them.
	m := BuildUnboundedMap(recs)
	if m[MakeDay(2024, time.March, 1)] != 4 {
		t.Errorf("expected combined count 4, got %d", m[MakeDay(2024, time.March, 1)])
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	recs, err := Normalize(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty output, got %d records", len(recs))
	}
}

func TestEventWeights(t *testing.T) {
	cases := map[string]int{
		"PushEvent":        2,
		"PullRequestEvent": 3,
		"ReleaseEvent":     2,
		"WatchEvent":       1,
		"SomethingNew":     1,
	}
	for kind, want := range cases {
		if got := EventWeight(kind); got != want {
			t.Errorf("EventWeight(%q) = %d, want %d", kind, got, want)
		}
	}
}
