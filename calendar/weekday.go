// Package calendar holds the small amount of date arithmetic the calendar
// scene needs. Weeks start on Monday, following ISO 8601.
package calendar

import (
	"iter"
	"time"
)

// DaysPerWeek is the number of weekdays in a header row.
const DaysPerWeek = 7

// Weekday is an ISO 8601 weekday: Monday is 1 and Sunday is 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var shortNames = [DaysPerWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// FromTime converts a time.Weekday (Sunday = 0) to an ISO weekday.
func FromTime(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(d)
}

// Ordinal returns the ISO number of the weekday, 1 through 7.
func (d Weekday) Ordinal() int {
	return int(d)
}

// Index returns the zero-based column of the weekday in a Monday-first week.
func (d Weekday) Index() int {
	return (int(d) - 1) % DaysPerWeek
}

// Valid reports whether d is one of Monday..Sunday.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Next returns the following weekday, wrapping Sunday to Monday.
func (d Weekday) Next() Weekday {
	return Weekday(d.Index()+1)%DaysPerWeek + 1
}

// Short returns the two-letter label used in the header row.
func (d Weekday) Short() string {
	if !d.Valid() {
		return "??"
	}
	return shortNames[d.Index()]
}

// Time converts back to the standard library representation.
func (d Weekday) Time() time.Weekday {
	return time.Weekday(int(d) % DaysPerWeek)
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(?)"
	}
	return d.Time().String()
}

// CycleForward yields d and the weekdays after it, forever.
// Callers bound the sequence themselves, usually with Take.
func (d Weekday) CycleForward() iter.Seq[Weekday] {
	return func(yield func(Weekday) bool) {
		for cur := d; ; cur = cur.Next() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Take yields at most n values from seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Week returns Monday through Sunday.
func Week() []Weekday {
	days := make([]Weekday, 0, DaysPerWeek)
	for d := range Take(Monday.CycleForward(), DaysPerWeek) {
		days = append(days, d)
	}
	return days
}
