package booking

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateDayTimeListBaseline(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)

	want := []string{
		"09:00", "09:45", "10:30", "11:15", "12:00", "12:45",
		"13:30", "14:15", "15:00", "15:45", "16:30", "17:15",
		"18:00", "18:45", "19:30", "20:15", "21:00",
	}

	got := GenerateDayTimeList(date)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateDayTimeList = %v, want %v", got, want)
	}
}

func TestGenerateDayTimeListIgnoresTimeOfDay(t *testing.T) {
	midnight := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)
	evening := time.Date(2024, 5, 10, 23, 59, 12, 0, time.Local)

	if !reflect.DeepEqual(GenerateDayTimeList(midnight), GenerateDayTimeList(evening)) {
		t.Fatal("time-of-day on the argument leaked into the slot list")
	}
}

func TestGenerateDayTimeListDeterministic(t *testing.T) {
	date := time.Date(2031, 12, 25, 7, 12, 0, 0, time.UTC)

	first := GenerateDayTimeList(date)
	second := GenerateDayTimeList(date)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two calls disagree: %v vs %v", first, second)
	}
}

func TestGenerateDayTimeListSpacingAndBounds(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
		time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	for _, date := range dates {
		list := GenerateDayTimeList(date)

		if len(list) == 0 || list[0] != "09:00" {
			t.Fatalf("%v: list must start at 09:00, got %v", date, list)
		}

		prev, _ := time.Parse("15:04", list[0])
		for _, label := range list[1:] {
			cur, err := time.Parse("15:04", label)
			if err != nil {
				t.Fatalf("%v: bad label %q: %v", date, label, err)
			}
			if cur.Sub(prev) != SlotInterval {
				t.Fatalf("%v: %q -> %q is not a %v step", date, prev.Format("15:04"), label, SlotInterval)
			}
			prev = cur
		}

		closing, _ := time.Parse("15:04", "21:00")
		if prev.After(closing) {
			t.Fatalf("%v: last slot %q exceeds closing time", date, list[len(list)-1])
		}
	}
}
