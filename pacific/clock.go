package pacific

import "time"

// Clock provides the current time to an Evaluator.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Evaluator answers the package questions for the current time of its clock.
// The zero value uses the system clock.
type Evaluator struct {
	Clock Clock
}

func (e Evaluator) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// IsDaylightTime reports whether the clock's current time falls within
// Pacific Daylight Time.
func (e Evaluator) IsDaylightTime() bool {
	return IsDaylightTime(e.now())
}

// Offset returns the offset in minutes behind UTC at the clock's current time.
func (e Evaluator) Offset() int {
	return Offset(e.now())
}

// Zone returns the zone abbreviation and offset in seconds east of UTC at the
// clock's current time.
func (e Evaluator) Zone() (name string, offset int) {
	return Zone(e.now())
}

// NextTransition returns the first transition after the clock's current time.
func (e Evaluator) NextTransition() Transition {
	return NextTransition(e.now())
}

// IsDaylightTimeNow reports whether the current time falls within Pacific
// Daylight Time.
func IsDaylightTimeNow() bool {
	return Evaluator{}.IsDaylightTime()
}

// OffsetNow returns the offset in minutes behind UTC for the current time.
func OffsetNow() int {
	return Evaluator{}.Offset()
}
