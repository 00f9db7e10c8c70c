package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/pricing"
	"github.com/higholive/party-api/internal/queue"
	"github.com/higholive/party-api/internal/repository"
	"github.com/higholive/party-api/internal/utils"
)

// ReservationHandler serves the public endpoints: form submission and
// lookup by identifier. The identifier is unguessable and works as the
// access control for a guest checking their own reservation.
type ReservationHandler struct {
	Store     ReservationStore
	Publisher EventPublisher
	MaxPeople int
	Log       *zap.Logger
}

func NewReservationHandler(store ReservationStore, pub EventPublisher, maxPeople int, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Store: store, Publisher: pub, MaxPeople: maxPeople, Log: log}
}

// Create handles POST /api/reservations. The client's reservation shape is
// taken as input but nothing authoritative is trusted from it: the price
// is recomputed here, the status is forced to pending, the invited flag is
// stripped and the identifier and timestamp are generated server-side.
// Validation reports every violation at once so the guest fixes the form
// in a single pass. The notification is published only after the record is
// durably stored, and its failure never fails the submission.
func (h *ReservationHandler) Create(c echo.Context) error {
	var res model.Reservation
	if err := c.Bind(&res); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Corps de la requête JSON invalide.",
		})
	}

	pricing.NormalizeDayRecords(&res)
	res.TotalPrice = pricing.ComputePrice(&res)
	res.Status = model.StatusPending
	res.IsInvited = false
	res.ReservationID = utils.NewReservationID()
	res.CreatedAt = time.Now().UTC()

	if errs := pricing.Validate(&res, h.MaxPeople); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Store.Create(ctx, &res); err != nil {
		h.Log.Error("create reservation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"message": "Une erreur s'est produite lors du traitement de votre réservation",
		})
	}

	// Stored. Notify in the background so broker latency never shows up in
	// the guest's submission time.
	ev := queue.ReservationCreatedEvent{
		ID:          uuid.NewString(),
		Reservation: res,
		CreatedAt:   res.CreatedAt.Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = h.Publisher.PublishReservationCreated(pubCtx, ev)
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "Réservation enregistrée avec succès",
		"reservationId": res.ReservationID,
	})
}

// Get handles GET /api/reservations/:id and returns the stored document.
func (h *ReservationHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "L'identifiant de la réservation est manquant.",
		})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Aucune réservation trouvée avec cet identifiant.",
			})
		}
		h.Log.Error("get reservation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"message": "Une erreur s'est produite lors de la récupération de la réservation.",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": res})
}
