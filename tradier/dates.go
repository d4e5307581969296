package tradier

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a query date argument. Callers may supply either a structured
// time, serialized as YYYY-MM-DD, or a pre-formatted string transmitted
// as-is. The zero Date means "not set".
type Date struct {
	t time.Time
	s string
}

// DateOf wraps a structured time value.
func DateOf(t time.Time) Date {
	return Date{t: t}
}

// DateString wraps a pre-formatted date string.
func DateString(s string) Date {
	return Date{s: s}
}

// IsZero reports whether the Date is unset.
func (d Date) IsZero() bool {
	return d.s == "" && d.t.IsZero()
}

// queryValue serializes the Date for transmission.
func (d Date) queryValue() string {
	if d.s != "" {
		return d.s
	}
	return d.t.Format(dateLayout)
}

// asTime returns the date as a time value, parsing the pre-formatted form
// when necessary.
func (d Date) asTime() (time.Time, error) {
	if d.s == "" {
		return d.t, nil
	}
	t, err := time.Parse(dateLayout, d.s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not YYYY-MM-DD: %w", d.s, ErrInvalidArgument)
	}
	return t, nil
}

// lastMonday returns the most recent Monday on or before t. Used to anchor
// historical bar requests to the current trading week.
func lastMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
