package pricing

import (
	"fmt"
	"strings"

	"github.com/higholive/party-api/internal/model"
)

// Validate checks every business rule on a submitted reservation and
// returns the full list of violations as user-facing French messages. The
// list is never truncated: the caller shows everything at once so the user
// can fix the form in one pass. An empty slice means the reservation is
// acceptable.
//
// maxPeople is the configured upper bound on the party size.
func Validate(r *model.Reservation, maxPeople int) []string {
	var errs []string

	c := r.MainContact
	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, "Le prénom du contact principal est requis")
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, "Le nom de famille du contact principal est requis")
	}
	if strings.TrimSpace(c.Address) == "" {
		errs = append(errs, "L'adresse du contact principal est requise")
	}
	if strings.TrimSpace(c.Town) == "" {
		errs = append(errs, "La ville du contact principal est requise")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs = append(errs, "L'email du contact principal est requis")
	} else if !strings.Contains(email, "@") {
		errs = append(errs, "L'email doit être valide")
	}

	if r.NumberOfPeople < 1 || r.NumberOfPeople > maxPeople {
		errs = append(errs, fmt.Sprintf("Le nombre de personnes doit être compris entre 1 et %d", maxPeople))
	} else if r.NumberOfPeople > 1 {
		if len(r.AdditionalPeople) != r.NumberOfPeople-1 {
			errs = append(errs, "Le nombre de personnes supplémentaires ne correspond pas au nombre de personnes")
		}
		for i, p := range r.AdditionalPeople {
			if strings.TrimSpace(p.FirstName) == "" {
				errs = append(errs, fmt.Sprintf("Le prénom de la personne %d est requis", i+2))
			}
			if strings.TrimSpace(p.LastName) == "" {
				errs = append(errs, fmt.Sprintf("Le nom de famille de la personne %d est requis", i+2))
			}
		}
	}

	if r.Pass2Days.Selected {
		switch r.Pass2Days.DaysSelection {
		case "":
			errs = append(errs, "Veuillez sélectionner quels jours pour le pass 2 jours")
		case model.DaysJeudiVendredi, model.DaysVendrediSamedi, model.DaysJeudiSamedi:
		default:
			errs = append(errs, "La sélection de jours du pass 2 jours est invalide")
		}
		// Every day covered by the pass still needs a meal choice.
		for _, i := range ActiveDayIndices(r) {
			if i < len(r.DayRecords) && r.DayRecords[i].MealOption == "" {
				errs = append(errs, fmt.Sprintf("Veuillez sélectionner une option de repas pour %s", r.DayRecords[i].Day))
			}
		}
	} else {
		hasAny := false
		for _, rec := range r.DayRecords {
			if rec.Option != "" {
				hasAny = true
			}
		}
		if !hasAny {
			errs = append(errs, "Veuillez sélectionner au moins une option de réservation pour un jour")
		}
		for _, rec := range r.DayRecords {
			if rec.Option != "" && rec.MealOption == "" {
				errs = append(errs, fmt.Sprintf("Veuillez sélectionner une option de repas pour %s", rec.Day))
			}
		}
	}

	for _, rec := range r.DayRecords {
		if rec.Option != "" && rec.Option != model.OptionJourEtSoir && rec.Option != model.OptionJourSoirEtNuit {
			errs = append(errs, fmt.Sprintf("L'option sélectionnée pour %s est invalide", rec.Day))
		}
		if rec.MealOption != "" && rec.MealOption != model.MealMidiEtSoir && rec.MealOption != model.MealSoirSeulement {
			errs = append(errs, fmt.Sprintf("L'option de repas sélectionnée pour %s est invalide", rec.Day))
		}
	}

	if ComputePrice(r) <= 0 {
		errs = append(errs, "Aucune option n'a été sélectionnée, impossible de procéder au paiement")
	}

	return errs
}
