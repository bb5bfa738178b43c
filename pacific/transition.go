package pacific

import "time"

// Transition is a switch between standard and daylight time. Daylight, Name
// and Offset describe the state after the switch.
type Transition struct {
	At       time.Time
	Daylight bool
	Name     string
	Offset   int
}

// Transitions returns the start and the end of daylight time in year, as
// UTC instants.
func Transitions(year int) (spring, fall Transition) {
	rules := Rules()
	start, end := rules[0], rules[1]
	spring = Transition{
		At:       start.occurrence(year, end.Save),
		Daylight: true,
		Name:     start.Abbreviation(),
		Offset:   StandardOffset - int(start.Save/time.Minute),
	}
	fall = Transition{
		At:       end.occurrence(year, start.Save),
		Daylight: false,
		Name:     end.Abbreviation(),
		Offset:   StandardOffset - int(end.Save/time.Minute),
	}
	return spring, fall
}

// NextTransition returns the first transition strictly after t.
func NextTransition(t time.Time) Transition {
	year := t.UTC().Year()
	spring, fall := Transitions(year)
	switch {
	case t.Before(spring.At):
		return spring
	case t.Before(fall.At):
		return fall
	}
	spring, _ = Transitions(year + 1)
	return spring
}
