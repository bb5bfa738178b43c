package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		1900: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
		2400: true,
	}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	for year := 1999; year <= 2025; year++ {
		for m := time.January; m <= time.December; m++ {
			// Day 0 of the next month is the last day of this one.
			want := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysIn(year, m); got != want {
				t.Errorf("DaysIn(%d, %v) = %d, want %d", year, m, got, want)
			}
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	start := time.Date(1890, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2110, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if got, want := WeekdayOf(d.Year(), d.Month(), d.Day()), d.Weekday(); got != want {
			t.Fatalf("WeekdayOf(%s) = %v, want %v", d.Format(time.DateOnly), got, want)
		}
	}
}

func TestLast(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		wd    time.Weekday
		want  int
	}{
		{2021, time.March, time.Sunday, 28},
		{2021, time.October, time.Sunday, 31},
		{2020, time.February, time.Saturday, 29},
		{2021, time.February, time.Saturday, 27},
	}
	for _, c := range cases {
		if got := Last(c.year, c.month, c.wd); got != c.want {
			t.Errorf("Last(%d, %v, %v) = %d, want %d", c.year, c.month, c.wd, got, c.want)
		}
	}
}

type date struct {
	Year  int
	Month time.Month
	Day   int
}

func TestOnOrAfter(t *testing.T) {
	cases := []struct {
		name string
		in   date
		wd   time.Weekday
		want date
	}{
		{"exact day", date{2021, time.March, 28}, time.Sunday, date{2021, time.March, 28}},
		{"later in month", date{2021, time.March, 15}, time.Sunday, date{2021, time.March, 21}},
		{"leap day", date{2020, time.February, 28}, time.Saturday, date{2020, time.February, 29}},
		{"no leap day", date{2021, time.February, 28}, time.Saturday, date{2021, time.March, 6}},
		{"next month", date{2021, time.March, 30}, time.Sunday, date{2021, time.April, 4}},
		{"next year", date{2021, time.December, 30}, time.Sunday, date{2022, time.January, 2}},
		{"second Sunday of March 2024", date{2024, time.March, 8}, time.Sunday, date{2024, time.March, 10}},
		{"first Sunday of November 2024", date{2024, time.November, 1}, time.Sunday, date{2024, time.November, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			y, m, d := OnOrAfter(c.in.Year, c.in.Month, c.in.Day, c.wd)
			if diff := cmp.Diff(c.want, date{y, m, d}); diff != "" {
				t.Errorf("OnOrAfter(%+v, %v) mismatch (-want +got):\n%s", c.in, c.wd, diff)
			}
		})
	}
}

func TestOnOrBefore(t *testing.T) {
	cases := []struct {
		name string
		in   date
		wd   time.Weekday
		want date
	}{
		{"exact day", date{2021, time.March, 28}, time.Sunday, date{2021, time.March, 28}},
		{"earlier in month", date{2021, time.March, 15}, time.Sunday, date{2021, time.March, 14}},
		{"previous month", date{2021, time.March, 5}, time.Sunday, date{2021, time.February, 28}},
		{"previous year", date{2021, time.January, 2}, time.Sunday, date{2020, time.December, 27}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			y, m, d := OnOrBefore(c.in.Year, c.in.Month, c.in.Day, c.wd)
			if diff := cmp.Diff(c.want, date{y, m, d}); diff != "" {
				t.Errorf("OnOrBefore(%+v, %v) mismatch (-want +got):\n%s", c.in, c.wd, diff)
			}
		})
	}
}
