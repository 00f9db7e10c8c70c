package model

import "time"

// Reservation statuses. A reservation is never removed from storage;
// "deleted" is a reversible status value like the other two.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusDeleted = "deleted"
)

// ValidStatus reports whether s is one of the three reservation statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid || s == StatusDeleted
}

// Values accepted for Pass2Days.DaysSelection.
const (
	DaysJeudiVendredi  = "jeudiVendredi"
	DaysVendrediSamedi = "vendrediSamedi"
	DaysJeudiSamedi    = "jeudiSamedi"
)

// Values accepted for DayRecord.Option.
const (
	OptionJourEtSoir     = "jourEtSoir"
	OptionJourSoirEtNuit = "jourSoirEtNuit"
)

// Values accepted for DayRecord.MealOption.
const (
	MealMidiEtSoir    = "midiEtSoir"
	MealSoirSeulement = "soirSeulement"
)

// MainContact identifies the person who submitted the reservation and
// who the QR bill is addressed from.
type MainContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Town      string `json:"town"`
	Email     string `json:"email"`
}

// Person is an additional participant covered by the same reservation.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Pass2Days is the fixed two-day bundle. When Selected is true,
// DaysSelection names which pair of event days the pass covers and the
// per-day Option fields are ignored.
type Pass2Days struct {
	Selected      bool   `json:"selected"`
	DaysSelection string `json:"daysSelection"`
}

// DayRecord holds the per-day choices for one of the three event days.
// An empty Option means the day is not booked in independent mode.
type DayRecord struct {
	Day        string `json:"day"`
	Option     string `json:"option"`
	MealOption string `json:"mealOption"`
}

// Reservation is the stored document for one submission. ReservationID is
// the external lookup key; it is generated server-side and never changes.
type Reservation struct {
	ReservationID    string      `json:"reservationId"`
	MainContact      MainContact `json:"mainContact"`
	NumberOfPeople   int         `json:"numberOfPeople"`
	AdditionalPeople []Person    `json:"additionalPeople"`
	Pass2Days        Pass2Days   `json:"pass2Days"`
	DayRecords       []DayRecord `json:"dayRecords"`
	TotalPrice       float64     `json:"totalPrice"`
	Status           string      `json:"status"`
	IsInvited        bool        `json:"isInvited"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// StatusUpdate carries the fields an admin may change on a stored
// reservation. Nil pointers mean "leave as is".
type StatusUpdate struct {
	Status     *string
	IsInvited  *bool
	TotalPrice *float64
}
