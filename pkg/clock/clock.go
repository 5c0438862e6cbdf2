package clock

import "time"

// Clock supplies the current time in the hospital's timezone.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type locationClock struct {
	loc *time.Location
}

func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &locationClock{loc: loc}
}

func (c *locationClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *locationClock) Today() time.Time {
	return StartOfDay(c.Now())
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Fixed is a Clock frozen at a single instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

func (f Fixed) Today() time.Time {
	return StartOfDay(time.Time(f))
}
