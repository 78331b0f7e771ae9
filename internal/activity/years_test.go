package activity

import (
	"reflect"
	"testing"
	"time"
)

func TestAvailableYearsUnion(t *testing.T) {
	records := []Record{
		{Day: MakeDay(2019, time.April, 2), Count: 1},
		{Day: MakeDay(2025, time.January, 10), Count: 1},
	}
	got := AvailableYears(records, 2025)
	want := []int{2025, 2024, 2023, 2022, 2021, 2019}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailableYearsNoRecords(t *testing.T) {
	got := AvailableYears(nil, 2025)
	want := []int{2025, 2024, 2023, 2022, 2021}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailableYearsDeduplicates(t *testing.T) {
	records := []Record{
		{Day: MakeDay(2024, time.March, 1), Count: 1},
		{Day: MakeDay(2024, time.March, 2), Count: 1},
	}
	got := AvailableYears(records, 2025)
	want := []int{2025, 2024, 2023, 2022, 2021}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
