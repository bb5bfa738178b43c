// Package calendar implements the proleptic Gregorian date arithmetic needed
// to resolve day-of-month rules such as "Sun>=8" or "lastSun" without going
// through time.Location.
package calendar

import "time"

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// WeekdayOf returns the day of the week of the given date.
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	// Zeller's congruence, with January and February counted as months 13
	// and 14 of the previous year.
	m, y := int(month), year
	if m < 3 {
		m += 12
		y--
	}
	k := mod(y, 100)
	j := floorDiv(y, 100)
	h := mod(day+(13*(m+1))/5+k+k/4+floorDiv(j, 4)+5*j, 7)
	// h is 0 for Saturday.
	return time.Weekday((h + 6) % 7)
}

// Last returns the day of month of the last wd in month of year.
func Last(year int, month time.Month, wd time.Weekday) int {
	last := DaysIn(year, month)
	offset := (int(WeekdayOf(year, month, last)) - int(wd) + 7) % 7
	return last - offset
}

// OnOrAfter returns the date of the first wd on or after day. The result may
// fall into the following month or year.
func OnOrAfter(year int, month time.Month, day int, wd time.Weekday) (int, time.Month, int) {
	diff := (int(wd) - int(WeekdayOf(year, month, day)) + 7) % 7
	day += diff
	if n := DaysIn(year, month); day > n {
		day -= n
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return year, month, day
}

// OnOrBefore returns the date of the last wd on or before day. The result may
// fall into the preceding month or year.
func OnOrBefore(year int, month time.Month, day int, wd time.Weekday) (int, time.Month, int) {
	diff := (int(WeekdayOf(year, month, day)) - int(wd) + 7) % 7
	day -= diff
	if day < 1 {
		month--
		if month < time.January {
			month = time.December
			year--
		}
		day += DaysIn(year, month)
	}
	return year, month, day
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
