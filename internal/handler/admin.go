package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/pricing"
	"github.com/higholive/party-api/internal/queue"
	"github.com/higholive/party-api/internal/repository"
	"github.com/higholive/party-api/internal/summary"
)

// AdminHandler serves the cookie-authenticated dashboard endpoints:
// listing, the aggregated summary, status transitions and replay of
// notifications that exhausted their webhook retries.
type AdminHandler struct {
	Store         ReservationStore
	Notifications NotificationStore
	Publisher     EventPublisher
	Log           *zap.Logger
}

func NewAdminHandler(store ReservationStore, notifications NotificationStore, pub EventPublisher, log *zap.Logger) *AdminHandler {
	return &AdminHandler{Store: store, Notifications: notifications, Publisher: pub, Log: log}
}

// List returns every reservation, newest first.
func (h *AdminHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	reservations, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("list reservations failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur serveur lors de la récupération des réservations",
		})
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": reservations})
}

// Summary returns the aggregated dashboard overview.
func (h *AdminHandler) Summary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	reservations, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("summarize reservations failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur serveur lors du calcul du résumé",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": summary.Summarize(reservations)})
}

type statusUpdateReq struct {
	Status    *string `json:"status"`
	IsInvited *bool   `json:"isInvited"`
}

// UpdateStatus handles PUT /api/admin/reservations/:id. Any transition
// between the three statuses is allowed. Two side effects apply:
//   - marking a reservation invited forces status "paid" and price 0;
//   - taking an invited reservation out of that state (moving it to
//     pending, or clearing the flag explicitly) recomputes the price from
//     the stored day selection, restoring what the guest would have paid.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	var req statusUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Corps de la requête JSON invalide.",
		})
	}
	if req.Status == nil && req.IsInvited == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Aucune modification demandée.",
		})
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Statut invalide.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	current, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Aucune réservation trouvée avec cet identifiant.",
			})
		}
		h.Log.Error("load reservation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur lors de la mise à jour du statut",
		})
	}

	upd := model.StatusUpdate{Status: req.Status, IsInvited: req.IsInvited}
	if req.IsInvited != nil && *req.IsInvited {
		paid := model.StatusPaid
		zero := 0.0
		upd.Status = &paid
		upd.TotalPrice = &zero
	} else if current.IsInvited &&
		((req.Status != nil && *req.Status == model.StatusPending) ||
			(req.IsInvited != nil && !*req.IsInvited)) {
		cleared := false
		price := pricing.ComputePrice(current)
		upd.IsInvited = &cleared
		upd.TotalPrice = &price
	}

	updated, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Aucune réservation trouvée avec cet identifiant.",
			})
		}
		h.Log.Error("update reservation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur lors de la mise à jour du statut",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": updated})
}

// ListFailedNotifications returns the webhook payloads that exhausted
// their retries and await manual replay.
func (h *AdminHandler) ListFailedNotifications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Notifications.ListAll(ctx)
	if err != nil {
		h.Log.Error("list failed notifications failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur serveur lors de la récupération des notifications",
		})
	}
	if items == nil {
		items = []repository.FailedNotification{}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": items})
}

// ReplayNotification re-publishes a failed payload to the queue and, on
// success, removes its record. The consumer will attempt delivery again
// with all retries available.
func (h *AdminHandler) ReplayNotification(c echo.Context) error {
	id := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	failed, err := h.Notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Aucune notification trouvée avec cet identifiant.",
			})
		}
		h.Log.Error("load failed notification failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur lors de la relecture de la notification",
		})
	}

	var ev queue.ReservationCreatedEvent
	if err := json.Unmarshal(failed.Payload, &ev); err != nil {
		h.Log.Error("failed notification payload corrupt", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Le contenu de la notification est illisible.",
		})
	}
	if err := h.Publisher.PublishReservationCreated(ctx, ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "La republication de la notification a échoué.",
		})
	}
	if err := h.Notifications.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.Log.Error("delete replayed notification failed", zap.String("id", id), zap.Error(err))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Notification republiée."})
}
