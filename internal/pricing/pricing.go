// Package pricing is the single source of truth for the price and
// day-activation rules of a reservation. Every call site that needs to know
// what a reservation costs or which event days it covers must go through
// this package; the quoted price, the persisted price and the price
// recomputed when an invitation is reverted all come from ComputePrice.
package pricing

import (
	"time"

	"github.com/higholive/party-api/internal/model"
)

// Per-person unit prices in CHF.
const (
	PriceJourEtSoir     = 45 // day and evening
	PriceJourSoirEtNuit = 55 // day, evening and night
	PricePass2Days      = 90 // flat two-day bundle, lodging included
)

// DayCount is the number of event days. Day indices run 0..DayCount-1 in
// calendar order (Thursday, Friday, Saturday).
const DayCount = 3

// DayLabels are the labels carried on day records and shown in the UI.
var DayLabels = [DayCount]string{
	"Jeudi - 9 octobre 2025",
	"Vendredi - 10 octobre 2025",
	"Samedi - 11 octobre 2025",
}

// EventDates are the calendar dates of the three event days, in UTC.
var EventDates = [DayCount]time.Time{
	time.Date(2025, time.October, 9, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
	time.Date(2025, time.October, 11, 0, 0, 0, 0, time.UTC),
}

// passDays maps a two-day pass selection to the pair of day indices it
// covers. Unknown selections are simply absent and yield no active days.
var passDays = map[string][2]int{
	model.DaysJeudiVendredi:  {0, 1},
	model.DaysVendrediSamedi: {1, 2},
	model.DaysJeudiSamedi:    {0, 2},
}

// ActiveDayIndices returns the sorted indices of the event days the
// reservation attends. In pass mode the pair is fixed by DaysSelection;
// in independent mode a day is active iff its option is non-empty.
func ActiveDayIndices(r *model.Reservation) []int {
	if r.Pass2Days.Selected {
		pair, ok := passDays[r.Pass2Days.DaysSelection]
		if !ok {
			return nil
		}
		return []int{pair[0], pair[1]}
	}
	var days []int
	for i, rec := range r.DayRecords {
		if i >= DayCount {
			break
		}
		if rec.Option != "" {
			days = append(days, i)
		}
	}
	return days
}

// IsActiveDay reports whether day index i is active for the reservation.
func IsActiveDay(r *model.Reservation, i int) bool {
	for _, d := range ActiveDayIndices(r) {
		if d == i {
			return true
		}
	}
	return false
}

// UnitPrice returns the per-person price of a day option. Unknown or empty
// options cost nothing.
func UnitPrice(option string) int {
	switch option {
	case model.OptionJourEtSoir:
		return PriceJourEtSoir
	case model.OptionJourSoirEtNuit:
		return PriceJourSoirEtNuit
	}
	return 0
}

// ComputePrice returns the total price of the reservation in CHF. The pass
// is a flat per-person rate regardless of which pair of days is selected;
// otherwise each day is priced by its own option. The result scales with
// the number of people and carries no hidden state, so calling it twice on
// the same reservation always yields the same value.
func ComputePrice(r *model.Reservation) float64 {
	price := 0
	if r.Pass2Days.Selected {
		price = PricePass2Days
	} else {
		for i, rec := range r.DayRecords {
			if i >= DayCount {
				break
			}
			price += UnitPrice(rec.Option)
		}
	}
	return float64(price * r.NumberOfPeople)
}

// NormalizeDayRecords pads or truncates r.DayRecords to exactly DayCount
// entries and fills in the canonical day labels. Client payloads are not
// trusted to carry the right shape.
func NormalizeDayRecords(r *model.Reservation) {
	recs := make([]model.DayRecord, DayCount)
	for i := 0; i < DayCount; i++ {
		if i < len(r.DayRecords) {
			recs[i] = r.DayRecords[i]
		}
		recs[i].Day = DayLabels[i]
	}
	r.DayRecords = recs
}
