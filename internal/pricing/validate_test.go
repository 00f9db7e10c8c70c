package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/pricing"
)

const maxPeople = 4

func validReservation() *model.Reservation {
	r := &model.Reservation{
		MainContact: model.MainContact{
			FirstName: "Marie",
			LastName:  "Dupont",
			Address:   "Rue du Lac 12",
			Town:      "Saxon",
			Email:     "marie@example.com",
		},
		NumberOfPeople: 1,
	}
	pricing.NormalizeDayRecords(r)
	r.DayRecords[1].Option = model.OptionJourSoirEtNuit
	r.DayRecords[1].MealOption = model.MealMidiEtSoir
	return r
}

func TestValidate_AcceptsCompleteReservation(t *testing.T) {
	assert.Empty(t, pricing.Validate(validReservation(), maxPeople))
}

func TestValidate_AccumulatesAllContactErrors(t *testing.T) {
	r := validReservation()
	r.MainContact = model.MainContact{}

	errs := pricing.Validate(r, maxPeople)
	assert.Contains(t, errs, "Le prénom du contact principal est requis")
	assert.Contains(t, errs, "Le nom de famille du contact principal est requis")
	assert.Contains(t, errs, "L'adresse du contact principal est requise")
	assert.Contains(t, errs, "La ville du contact principal est requise")
	assert.Contains(t, errs, "L'email du contact principal est requis")
}

func TestValidate_EmailShape(t *testing.T) {
	r := validReservation()
	r.MainContact.Email = "not-an-email"
	assert.Contains(t, pricing.Validate(r, maxPeople), "L'email doit être valide")
}

func TestValidate_PeopleBounds(t *testing.T) {
	for _, n := range []int{0, -1, maxPeople + 1} {
		r := validReservation()
		r.NumberOfPeople = n
		assert.Contains(t, pricing.Validate(r, maxPeople),
			"Le nombre de personnes doit être compris entre 1 et 4", "numberOfPeople=%d", n)
	}
}

func TestValidate_AdditionalPeopleMustMatchCount(t *testing.T) {
	r := validReservation()
	r.NumberOfPeople = 3
	r.AdditionalPeople = []model.Person{{FirstName: "Luc", LastName: "Martin"}}
	assert.Contains(t, pricing.Validate(r, maxPeople),
		"Le nombre de personnes supplémentaires ne correspond pas au nombre de personnes")
}

func TestValidate_AdditionalPeopleNeedNames(t *testing.T) {
	r := validReservation()
	r.NumberOfPeople = 2
	r.AdditionalPeople = []model.Person{{FirstName: " ", LastName: ""}}

	errs := pricing.Validate(r, maxPeople)
	assert.Contains(t, errs, "Le prénom de la personne 2 est requis")
	assert.Contains(t, errs, "Le nom de famille de la personne 2 est requis")
}

func TestValidate_PassNeedsDaysSelection(t *testing.T) {
	r := validReservation()
	r.Pass2Days = model.Pass2Days{Selected: true}
	assert.Contains(t, pricing.Validate(r, maxPeople),
		"Veuillez sélectionner quels jours pour le pass 2 jours")
}

func TestValidate_PassRejectsUnknownSelection(t *testing.T) {
	r := validReservation()
	r.Pass2Days = model.Pass2Days{Selected: true, DaysSelection: "lundiMardi"}
	assert.Contains(t, pricing.Validate(r, maxPeople),
		"La sélection de jours du pass 2 jours est invalide")
}

func TestValidate_PassDaysNeedMealOption(t *testing.T) {
	r := validReservation()
	r.Pass2Days = model.Pass2Days{Selected: true, DaysSelection: model.DaysVendrediSamedi}
	r.DayRecords[1].MealOption = ""
	r.DayRecords[2].MealOption = ""

	errs := pricing.Validate(r, maxPeople)
	assert.Contains(t, errs, "Veuillez sélectionner une option de repas pour Vendredi - 10 octobre 2025")
	assert.Contains(t, errs, "Veuillez sélectionner une option de repas pour Samedi - 11 octobre 2025")
}

func TestValidate_PassWithMealsIsValid(t *testing.T) {
	r := validReservation()
	r.Pass2Days = model.Pass2Days{Selected: true, DaysSelection: model.DaysJeudiVendredi}
	r.DayRecords[0].MealOption = model.MealSoirSeulement
	r.DayRecords[1].MealOption = model.MealMidiEtSoir
	assert.Empty(t, pricing.Validate(r, maxPeople))
}

func TestValidate_IndependentModeNeedsOneDay(t *testing.T) {
	r := validReservation()
	r.DayRecords[1].Option = ""
	r.DayRecords[1].MealOption = ""

	errs := pricing.Validate(r, maxPeople)
	assert.Contains(t, errs, "Veuillez sélectionner au moins une option de réservation pour un jour")
	assert.Contains(t, errs, "Aucune option n'a été sélectionnée, impossible de procéder au paiement")
}

func TestValidate_SelectedDayNeedsMealOption(t *testing.T) {
	r := validReservation()
	r.DayRecords[1].MealOption = ""
	assert.Contains(t, pricing.Validate(r, maxPeople),
		"Veuillez sélectionner une option de repas pour Vendredi - 10 octobre 2025")
}

func TestValidate_RejectsUnknownEnums(t *testing.T) {
	r := validReservation()
	r.DayRecords[0].Option = "weekend"
	r.DayRecords[0].MealOption = "brunch"

	errs := pricing.Validate(r, maxPeople)
	assert.Contains(t, errs, "L'option sélectionnée pour Jeudi - 9 octobre 2025 est invalide")
	assert.Contains(t, errs, "L'option de repas sélectionnée pour Jeudi - 9 octobre 2025 est invalide")
}
