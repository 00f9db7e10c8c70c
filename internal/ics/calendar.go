// Package ics builds the calendar attachment a guest can import after
// reserving. The event spans the reservation's active days as a single
// all-day block.
package ics

import (
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/pricing"
)

// ErrNoActiveDays is returned for a reservation that covers no event day.
// Stored reservations always have at least one, so seeing this means the
// caller skipped validation.
var ErrNoActiveDays = errors.New("reservation has no active day")

// Build returns the serialized iCalendar document for a reservation. The
// all-day event runs from the first active day through the last one; the
// DTEND date is exclusive per RFC 5545, hence the extra day.
func Build(r *model.Reservation) (string, error) {
	days := pricing.ActiveDayIndices(r)
	if len(days) == 0 {
		return "", ErrNoActiveDays
	}
	start := pricing.EventDates[days[0]]
	end := pricing.EventDates[days[len(days)-1]].Add(24 * time.Hour)

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//higholive-party//reservation//FR")

	ev := cal.AddEvent(r.ReservationID + "@higholive-party")
	ev.SetCreatedTime(r.CreatedAt.UTC())
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetAllDayStartAt(start)
	ev.SetAllDayEndAt(end)
	ev.SetSummary("30 ans de Ben & Lulu")
	ev.SetLocation("Saxon")
	ev.SetDescription(fmt.Sprintf("Réservation %s - %d personne(s)", r.ReservationID, r.NumberOfPeople))

	return cal.Serialize(), nil
}
