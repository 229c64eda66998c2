package rental

import (
	"time"

	"github.com/guburchardt/kingsystem-backoffice/model"
	"github.com/guburchardt/kingsystem-backoffice/util/dates"
)

// Totals are the agenda counters for one calendar month. Counts always cover
// the full monthly scope regardless of the active filter, so switching filters
// never changes the numbers on screen.
type Totals struct {
	Counts      map[Category]int64 `json:"counts"`
	All         int64              `json:"all"`
	EventsToday int64              `json:"events_today"`
	Concluded   int64              `json:"concluded"`
}

// Aggregate scopes rentals to the given calendar month (local year+month of
// the event date), classifies each one, and returns per-category counts plus
// the subset matching filter. Pass CategoryAll to keep every in-scope rental.
// Rentals without an event date are out of scope. Deterministic: the same
// inputs always produce the same totals and subset.
func Aggregate(rentals []model.Rental, year int, month time.Month, today time.Time, filter Category) (Totals, []model.Rental) {
	totals := Totals{Counts: make(map[Category]int64, len(Categories))}
	for _, c := range Categories {
		totals.Counts[c] = 0
	}

	var filtered []model.Rental
	for _, r := range rentals {
		if r.EventDate == nil || !dates.InMonth(*r.EventDate, year, month) {
			continue
		}
		totals.All++
		if dates.SameDay(*r.EventDate, today) {
			totals.EventsToday++
		}
		if dates.BeforeDay(*r.EventDate, today) {
			totals.Concluded++
		}

		cat := Classify(r, today)
		totals.Counts[cat]++
		if filter == CategoryAll || cat == filter {
			filtered = append(filtered, r)
		}
	}
	return totals, filtered
}
