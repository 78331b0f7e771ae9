package activity

import (
	"fmt"
	"time"
)

// Record is the canonical normalized unit: one calendar day's activity count.
type Record struct {
	Day   Day
	Count int
}

// SourceRecord is either a RawEvent or a RawContribution. Normalize is the
// only place that distinguishes the two shapes.
type SourceRecord interface {
	sourceRecord()
}

// RawEvent is a discrete timestamped action reported by a source, weighted by
// its kind before aggregation.
type RawEvent struct {
	OccurredAt time.Time
	Kind       string
}

// RawContribution is a per-day count already aggregated by the source. The
// date stays a string until Normalize so a bad value fails loudly instead of
// landing in the wrong bucket.
type RawContribution struct {
	Date  string // "2006-01-02"
	Count int
}

func (RawEvent) sourceRecord()        {}
func (RawContribution) sourceRecord() {}

var eventWeights = map[string]int{
	"PushEvent":        2,
	"CreateEvent":      1,
	"PullRequestEvent": 3,
	"IssuesEvent":      1,
	"ReleaseEvent":     2,
	"ForkEvent":        1,
	"WatchEvent":       1,
}

// EventWeight returns the activity weight of an event kind. Unknown kinds
// count as 1.
func EventWeight(kind string) int {
	if w, ok := eventWeights[kind]; ok {
		return w
	}
	return 1
}

// Normalize converts source-shaped records into canonical per-day records.
// Events are grouped by UTC calendar day and their kind weights summed;
// contributions pass through one record per input. A contribution with an
// unparseable date fails the whole call.
func Normalize(records []SourceRecord) ([]Record, error) {
	eventCounts := make(map[Day]int)
	var eventDays []Day // first-seen order keeps the output deterministic
	var out []Record

	for _, sr := range records {
		switch r := sr.(type) {
		case RawEvent:
			day := DayOf(r.OccurredAt)
			if _, seen := eventCounts[day]; !seen {
				eventDays = append(eventDays, day)
			}
			eventCounts[day] += EventWeight(r.Kind)
		case RawContribution:
			day, err := ParseDay(r.Date)
			if err != nil {
				return nil, err
			}
			out = append(out, Record{Day: day, Count: r.Count})
		default:
			return nil, fmt.Errorf("unsupported source record type %T", sr)
		}
	}

	for _, day := range eventDays {
		out = append(out, Record{Day: day, Count: eventCounts[day]})
	}
	return out, nil
}

// NormalizeEvents normalizes an event-shaped feed. Events carry no parseable
// fields, so this never fails.
func NormalizeEvents(events []RawEvent) []Record {
	srcs := make([]SourceRecord, len(events))
	for i, e := range events {
		srcs[i] = e
	}
	recs, _ := Normalize(srcs)
	return recs
}

// NormalizeContributions normalizes a contribution-shaped feed.
func NormalizeContributions(contribs []RawContribution) ([]Record, error) {
	srcs := make([]SourceRecord, len(contribs))
	for i, c := range contribs {
		srcs[i] = c
	}
	return Normalize(srcs)
}
