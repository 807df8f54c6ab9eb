// Package day handles Advent of Code day identifiers and their
// zero-padded display form used in directory and crate names.
package day

import "fmt"

// Day is a puzzle day number within an event year.
type Day int

// New validates a day number. Days start at 1.
func New(n int) (Day, error) {
	if n < 1 {
		return 0, fmt.Errorf("invalid day %d: day numbers start at 1", n)
	}
	return Day(n), nil
}

// Padded returns the two-digit zero-padded form, e.g. 1 -> "01".
// Days above 99 keep their full decimal representation.
func (d Day) Padded() string {
	return fmt.Sprintf("%02d", int(d))
}

// Int returns the plain integer value, used in URL paths.
func (d Day) Int() int { return int(d) }
