package activity

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildYearMapCompleteness(t *testing.T) {
	cases := []struct {
		year int
		days int
	}{
		{2023, 365},
		{2024, 366}, // leap year
		{2000, 366}, // divisible by 400
		{1900, 365}, // divisible by 100 but not 400
	}
	for _, tc := range cases {
		m := BuildYearMap(nil, tc.year)
		if len(m) != tc.days {
			t.Errorf("year %d: expected %d entries, got %d", tc.year, tc.days, len(m))
		}
		for d := range m {
			if d.Year() != tc.year {
				t.Errorf("year %d: entry %s outside the year", tc.year, d)
			}
		}
	}
}

func TestBuildYearMapAccumulatesAdditively(t *testing.T) {
	day := MakeDay(2024, time.July, 4)
	m := BuildYearMap([]Record{
		{Day: day, Count: 3},
		{Day: day, Count: 5},
	}, 2024)

	if m[day] != 8 {
		t.Errorf("expected 3+5=8, got %d", m[day])
	}
}

func TestBuildYearMapIgnoresOutOfYearRecords(t *testing.T) {
	m := BuildYearMap([]Record{
		{Day: MakeDay(2023, time.December, 31), Count: 7},
		{Day: MakeDay(2025, time.January, 1), Count: 7},
		{Day: MakeDay(2024, time.January, 1), Count: 2},
	}, 2024)

	if len(m) != 366 {
		t.Fatalf("expected 366 entries, got %d", len(m))
	}
	if m[MakeDay(2024, time.January, 1)] != 2 {
		t.Errorf("in-year record lost: %d", m[MakeDay(2024, time.January, 1)])
	}
	if Total(m) != 2 {
		t.Errorf("out-of-year records leaked in, total = %d", Total(m))
	}
}

func TestBuildYearMapClampsNegativeCounts(t *testing.T) {
	day := MakeDay(2024, time.July, 4)
	m := BuildYearMap([]Record{
		{Day: day, Count: -3},
		{Day: day, Count: 2},
	}, 2024)

	if m[day] != 2 {
		t.Errorf("negative count must contribute nothing, got %d", m[day])
	}
}

func TestBuildUnboundedMapSparsePositiveOnly(t *testing.T) {
	m := BuildUnboundedMap([]Record{
		{Day: MakeDay(2019, time.March, 3), Count: 1},
		{Day: MakeDay(2024, time.March, 3), Count: 2},
		{Day: MakeDay(2024, time.March, 3), Count: 2},
		{Day: MakeDay(2024, time.March, 4), Count: 0},
	})

	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m[MakeDay(2024, time.March, 3)] != 4 {
		t.Errorf("expected additive 4, got %d", m[MakeDay(2024, time.March, 3)])
	}
	if _, ok := m[MakeDay(2024, time.March, 4)]; ok {
		t.Error("zero-count record must not create an entry")
	}
}

func TestBuildMapsOrderIndependent(t *testing.T) {
	recs := []Record{
		{Day: MakeDay(2024, time.May, 1), Count: 1},
		{Day: MakeDay(2024, time.May, 2), Count: 2},
		{Day: MakeDay(2024, time.May, 1), Count: 3},
	}
	reversed := []Record{recs[2], recs[1], recs[0]}

	if !reflect.DeepEqual(BuildYearMap(recs, 2024), BuildYearMap(reversed, 2024)) {
		t.Error("BuildYearMap is input-order dependent")
	}
	if !reflect.DeepEqual(BuildUnboundedMap(recs), BuildUnboundedMap(reversed)) {
		t.Error("BuildUnboundedMap is input-order dependent")
	}
}

func TestBuildYearMapIdempotent(t *testing.T) {
	recs := []Record{{Day: MakeDay(2024, time.May, 1), Count: 1}}
	first := BuildYearMap(recs, 2024)
	second := BuildYearMap(recs, 2024)
	if !reflect.DeepEqual(first, second) {
		t.Error("two calls with identical input differ")
	}
}

func TestTotal(t *testing.T) {
	m := Map{
		MakeDay(2024, time.May, 1): 3,
		MakeDay(2024, time.May, 2): 4,
	}
	if got := Total(m); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := Total(Map{}); got != 0 {
		t.Errorf("expected 0 for empty map, got %d", got)
	}
}
