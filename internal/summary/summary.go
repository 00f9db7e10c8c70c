// Package summary builds the admin dashboard overview from the full set of
// stored reservations. Day activation is delegated to the pricing package
// so the dashboard can never drift from the pricing rules.
package summary

import (
	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/pricing"
)

// Global holds the event-wide counters.
type Global struct {
	TotalReservations int     `json:"totalReservations"`
	TotalPaid         int     `json:"totalPaid"`
	TotalPending      int     `json:"totalPending"`
	TotalDeleted      int     `json:"totalDeleted"`
	TotalParticipants int     `json:"totalParticipants"`
	TotalRevenuePaid  float64 `json:"totalRevenuePaid"`
}

// Day holds the per-day headcounts. Lodging counts only independent-mode
// "jourSoirEtNuit" bookings: the two-day pass includes lodging by
// construction but is intentionally not tracked in this figure.
type Day struct {
	Name                 string `json:"name"`
	Participants         int    `json:"participants"`
	MealMiddayAndEvening int    `json:"mealMiddayAndEvening"`
	MealEveningOnly      int    `json:"mealEveningOnly"`
	Lodging              int    `json:"lodging"`
}

// Summary is the aggregate consumed by the admin dashboard.
type Summary struct {
	Global Global                 `json:"global"`
	Days   [pricing.DayCount]Day `json:"days"`
}

// Summarize scans the reservations once and produces the dashboard
// aggregate. Deleted reservations count in the global deletion counter but
// are excluded from participants, revenue and all per-day figures; pending
// reservations count toward attendance (expected, not confirmed).
func Summarize(reservations []model.Reservation) Summary {
	var s Summary
	for i := range s.Days {
		s.Days[i].Name = pricing.DayLabels[i]
	}

	s.Global.TotalReservations = len(reservations)
	for i := range reservations {
		r := &reservations[i]
		switch r.Status {
		case model.StatusPaid:
			s.Global.TotalPaid++
		case model.StatusPending:
			s.Global.TotalPending++
		case model.StatusDeleted:
			s.Global.TotalDeleted++
		}
		if r.Status == model.StatusDeleted {
			continue
		}
		s.Global.TotalParticipants += r.NumberOfPeople
		if r.Status == model.StatusPaid {
			s.Global.TotalRevenuePaid += r.TotalPrice
		}

		for _, d := range pricing.ActiveDayIndices(r) {
			if d < 0 || d >= pricing.DayCount || d >= len(r.DayRecords) {
				continue
			}
			day := &s.Days[d]
			day.Participants += r.NumberOfPeople
			switch r.DayRecords[d].MealOption {
			case model.MealMidiEtSoir:
				day.MealMiddayAndEvening += r.NumberOfPeople
			case model.MealSoirSeulement:
				day.MealEveningOnly += r.NumberOfPeople
			}
			if !r.Pass2Days.Selected && r.DayRecords[d].Option == model.OptionJourSoirEtNuit {
				day.Lodging += r.NumberOfPeople
			}
		}
	}
	return s
}
