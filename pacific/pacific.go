// Package pacific decides whether United States Pacific Time observes
// Standard Time (UTC-8) or Daylight Time (UTC-7) at a given instant.
//
// Only the U.S. policy effective 2007 is modeled: daylight time begins at
// 02:00 local standard time on the second Sunday in March and ends at 02:00
// local daylight time on the first Sunday in November. The policy is applied
// to every instant, including instants before 2007. No tz database is
// consulted.
//
// Offsets are expressed in minutes behind UTC, the convention of
// JavaScript's Date.getTimezoneOffset: 480 for PST and 420 for PDT. Zone
// returns the same offset as seconds east of UTC, the convention of
// time.Time.Zone.
package pacific

import "time"

// Minutes to subtract from UTC to reach Pacific local time.
const (
	StandardOffset = 480
	DaylightOffset = 420
)

// Time zone abbreviations.
const (
	StandardName = "PST"
	DaylightName = "PDT"
)

// UTC hours at which the transition days switch. Both transitions happen at
// 02:00 local time, which is 10:00 UTC in standard time and 09:00 UTC in
// daylight time.
const (
	springForwardHour = 10
	fallBackHour      = 9
)

// Fields are the UTC calendar fields of an instant. They are the only input
// to the daylight decision.
type Fields struct {
	Month   time.Month
	Day     int
	Weekday time.Weekday
	Hour    int
}

// FieldsOf returns the UTC calendar fields of t.
func FieldsOf(t time.Time) Fields {
	u := t.UTC()
	return Fields{
		Month:   u.Month(),
		Day:     u.Day(),
		Weekday: u.Weekday(),
		Hour:    u.Hour(),
	}
}

// IsDaylightTime reports whether t falls within Pacific Daylight Time.
func IsDaylightTime(t time.Time) bool {
	return IsDaylightTimeAt(FieldsOf(t))
}

// IsDaylightTimeAt reports whether an instant with the UTC fields f falls
// within Pacific Daylight Time.
func IsDaylightTimeAt(f Fields) bool {
	// Day of month of the most recent Sunday. Zero or negative if there has
	// been no Sunday yet this month.
	prevSunday := f.Day - int(f.Weekday)

	switch {
	case f.Month < time.March:
		return false
	case f.Month == time.March:
		if prevSunday < 8 {
			// At most one Sunday so far.
			return false
		}
		if f.Weekday == time.Sunday && prevSunday < 15 {
			// Second Sunday.
			return f.Hour >= springForwardHour
		}
		return true
	case f.Month < time.November:
		return true
	case f.Month == time.November:
		if prevSunday < 1 {
			return true
		}
		if f.Weekday == time.Sunday && prevSunday < 8 {
			// First Sunday.
			return f.Hour < fallBackHour
		}
		return false
	}
	return false
}

// Offset returns DaylightOffset if t falls within daylight time and
// StandardOffset otherwise.
func Offset(t time.Time) int {
	if IsDaylightTime(t) {
		return DaylightOffset
	}
	return StandardOffset
}

// Zone returns the abbreviated name of the Pacific zone in effect at t and
// its offset in seconds east of UTC.
func Zone(t time.Time) (name string, offset int) {
	if IsDaylightTime(t) {
		return DaylightName, -DaylightOffset * 60
	}
	return StandardName, -StandardOffset * 60
}

// In returns t with its location set to a fixed zone for the Pacific offset
// in effect at t.
func In(t time.Time) time.Time {
	return t.In(fixedZone(IsDaylightTime(t)))
}

var (
	pst = time.FixedZone(StandardName, -StandardOffset*60)
	pdt = time.FixedZone(DaylightName, -DaylightOffset*60)
)

func fixedZone(daylight bool) *time.Location {
	if daylight {
		return pdt
	}
	return pst
}
