package entity

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar date without time component, serialized as YYYY-MM-DD.
// Values written by other clients may carry a time suffix; Day ignores it.
type Date string

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Day returns the YYYY-MM-DD part of the date.
func (d Date) Day() string {
	s := string(d)
	if len(s) > len(dateLayout) {
		return s[:len(dateLayout)]
	}
	return s
}

// Time parses the calendar date at midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(dateLayout, d.Day())
}

// Before reports whether d is strictly earlier than o. ISO dates order lexically.
func (d Date) Before(o Date) bool { return d.Day() < o.Day() }

// IsZero reports whether no date is set.
func (d Date) IsZero() bool { return d == "" }
