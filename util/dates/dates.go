// Package dates handles the two date representations the back-office deals
// with (ISO "2006-01-02" and pt-BR "02/01/2006") and calendar-day comparison.
// Comparisons work on year/month/day tuples, never on timestamps, so a value
// parsed in one offset can't slip a day when compared in another.
package dates

import (
	"errors"
	"time"
)

const layoutBR = "02/01/2006"

var ErrInvalidDate = errors.New("invalid date")

// ParseBR parses a pt-BR "dd/mm/yyyy" date.
func ParseBR(s string) (time.Time, error) {
	t, err := time.Parse(layoutBR, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatBR renders t as "dd/mm/yyyy". ParseBR(FormatBR(t)) preserves the
// calendar day.
func FormatBR(t time.Time) string { return t.Format(layoutBR) }

// ParseISO parses an ISO "yyyy-mm-dd" date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatISO renders t as "yyyy-mm-dd".
func FormatISO(t time.Time) string { return t.Format(time.DateOnly) }

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDay reports whether a's calendar day is strictly before b's.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// InMonth reports whether t falls in the given calendar year and month.
func InMonth(t time.Time, year int, month time.Month) bool {
	y, m, _ := t.Date()
	return y == year && m == month
}
