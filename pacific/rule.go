package pacific

import (
	"fmt"
	"strings"
	"time"

	"github.com/ngrash/go-pacifictime/internal/calendar"
)

// DayForm is the form of the ON column of a tz source rule line.
type DayForm int

func (f DayForm) String() string {
	switch f {
	case DayFormNum:
		return "DayFormNum"
	case DayFormLast:
		return "DayFormLast"
	case DayFormAfter:
		return "DayFormAfter"
	case DayFormBefore:
		return "DayFormBefore"
	}
	return fmt.Sprintf("DayForm(%d)", int(f))
}

const (
	DayFormNum    DayForm = iota // 5
	DayFormLast                  // lastSun
	DayFormAfter                 // Sun>=8
	DayFormBefore                // Sun<=25
)

// Day selects a day within a month.
type Day struct {
	Form    DayForm
	Weekday time.Weekday
	Num     int
}

// NewDayNum returns a Day for a fixed day of the month.
func NewDayNum(num int) Day {
	return Day{Form: DayFormNum, Num: num}
}

// NewDayLast returns a Day for the last wd of the month.
func NewDayLast(wd time.Weekday) Day {
	return Day{Form: DayFormLast, Weekday: wd}
}

// NewDayAfter returns a Day for the first wd on or after num.
func NewDayAfter(num int, wd time.Weekday) Day {
	return Day{Form: DayFormAfter, Weekday: wd, Num: num}
}

// NewDayBefore returns a Day for the last wd on or before num.
func NewDayBefore(num int, wd time.Weekday) Day {
	return Day{Form: DayFormBefore, Weekday: wd, Num: num}
}

// Resolve returns the date d selects in month of year. Sun>=N and Sun<=N may
// select a date in a neighbouring month.
func (d Day) Resolve(year int, month time.Month) (int, time.Month, int) {
	switch d.Form {
	case DayFormLast:
		return year, month, calendar.Last(year, month, d.Weekday)
	case DayFormAfter:
		return calendar.OnOrAfter(year, month, d.Num, d.Weekday)
	case DayFormBefore:
		return calendar.OnOrBefore(year, month, d.Num, d.Weekday)
	}
	return year, month, d.Num
}

// String returns d in tz source notation.
func (d Day) String() string {
	wd := d.Weekday.String()[:3]
	switch d.Form {
	case DayFormLast:
		return "last" + wd
	case DayFormAfter:
		return fmt.Sprintf("%s>=%d", wd, d.Num)
	case DayFormBefore:
		return fmt.Sprintf("%s<=%d", wd, d.Num)
	}
	return fmt.Sprint(d.Num)
}

// Rule is one line of a tz source rule set. At is local wall clock time.
// Save is the amount added to standard time once the rule takes effect.
type Rule struct {
	Name   string
	From   int
	In     time.Month
	On     Day
	At     time.Duration
	Save   time.Duration
	Letter string
}

// Format is the FORMAT column of the Pacific zone; %s is replaced by a rule's
// Letter.
const Format = "P%sT"

// Rules returns the U.S. daylight saving rules effective 2007, in the order
// they apply within a year.
func Rules() []Rule {
	return []Rule{
		{Name: "US", From: 2007, In: time.March, On: NewDayAfter(8, time.Sunday), At: 2 * time.Hour, Save: time.Hour, Letter: "D"},
		{Name: "US", From: 2007, In: time.November, On: NewDayAfter(1, time.Sunday), At: 2 * time.Hour, Save: 0, Letter: "S"},
	}
}

// Abbreviation returns the zone abbreviation in effect while r applies.
func (r Rule) Abbreviation() string {
	return strings.Replace(Format, "%s", r.Letter, 1)
}

// String returns r as a tz source Rule line.
func (r Rule) String() string {
	return strings.Join([]string{
		"Rule",
		r.Name,
		fmt.Sprint(r.From),
		"max",
		"-",
		r.In.String()[:3],
		r.On.String(),
		formatClock(r.At),
		formatClock(r.Save),
		r.Letter,
	}, "\t")
}

// occurrence returns the UTC instant at which r takes effect in year, given
// the save amount of the rule it replaces.
func (r Rule) occurrence(year int, priorSave time.Duration) time.Time {
	y, m, d := r.On.Resolve(year, r.In)
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return midnight.Add(r.At + StandardOffset*time.Minute - priorSave)
}

// Source returns the policy as tz source text: the rule lines followed by a
// zone line that uses them.
func Source() string {
	var b strings.Builder
	b.WriteString("# Rule\tNAME\tFROM\tTO\t-\tIN\tON\tAT\tSAVE\tLETTER/S\n")
	rules := Rules()
	for _, r := range rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	b.WriteString("# Zone\tNAME\tSTDOFF\tRULES\tFORMAT\n")
	fmt.Fprintf(&b, "Zone\tAmerica/Los_Angeles\t-%s\t%s\t%s\n",
		formatClock(StandardOffset*time.Minute), rules[0].Name, Format)
	return b.String()
}

// POSIX returns the policy as a POSIX TZ string.
func POSIX() string {
	rules := Rules()
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d%s", StandardName, StandardOffset/60, DaylightName)
	if StandardOffset-DaylightOffset != 60 {
		fmt.Fprintf(&b, "%d", DaylightOffset/60)
	}
	for _, r := range rules {
		fmt.Fprintf(&b, ",M%d.%d.%d", int(r.In), posixWeek(r.On), int(r.On.Weekday))
		if r.At != 2*time.Hour {
			fmt.Fprintf(&b, "/%s", formatClock(r.At))
		}
	}
	return b.String()
}

// posixWeek maps d to the week number of a POSIX Mm.w.d rule, where 5 means
// the last week.
func posixWeek(d Day) int {
	if d.Form == DayFormLast {
		return 5
	}
	return (d.Num-1)/7 + 1
}

// formatClock formats d as h:mm, or 0 for zero.
func formatClock(d time.Duration) string {
	if d == 0 {
		return "0"
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%d:%02d", h, m)
}
