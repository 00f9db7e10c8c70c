package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/higholive/party-api/internal/config"
	"github.com/higholive/party-api/internal/ics"
	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/qrbill"
	"github.com/higholive/party-api/internal/repository"
)

// PaymentHandler serves the two guest-facing artefacts derived from a
// stored reservation: the Swiss QR-bill used to pay it and the calendar
// file covering the selected days.
type PaymentHandler struct {
	Store ReservationStore
	QR    config.QRConfig
	Log   *zap.Logger
}

func NewPaymentHandler(store ReservationStore, qr config.QRConfig, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Store: store, QR: qr, Log: log}
}

// QRBill handles GET /api/reservations/:id/qrbill. The default response is
// a PNG image; ?format=text returns the raw Swiss Payments Code payload,
// which is handy for debugging and for clients that render their own code.
func (h *PaymentHandler) QRBill(c echo.Context) error {
	r, err := h.load(c)
	if err != nil || r == nil {
		return err
	}

	bill := qrbill.Bill{
		Creditor: qrbill.Creditor{
			IBAN:     h.QR.IBAN,
			Name:     h.QR.CreditorName,
			Street:   h.QR.CreditorStreet,
			Building: h.QR.CreditorBuilding,
			Zip:      h.QR.CreditorZip,
			Town:     h.QR.CreditorTown,
			Country:  h.QR.CreditorCountry,
		},
		Amount:   r.TotalPrice,
		Currency: h.QR.Currency,
		Message:  fmt.Sprintf("%s - %s %s", h.QR.MessagePrefix, r.MainContact.FirstName, r.MainContact.LastName),
	}

	if c.QueryParam("format") == "text" {
		return c.String(http.StatusOK, bill.Payload())
	}

	size := 256
	if s := c.QueryParam("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 64 || n > 1024 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false, "message": "Taille d'image invalide.",
			})
		}
		size = n
	}
	png, err := bill.PNG(size)
	if err != nil {
		h.Log.Error("render qr bill failed", zap.String("reservation_id", r.ReservationID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur lors de la génération du QR de paiement.",
		})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Calendar handles GET /api/reservations/:id/calendar and returns an ICS
// attachment covering the reservation's active days.
func (h *PaymentHandler) Calendar(c echo.Context) error {
	r, err := h.load(c)
	if err != nil || r == nil {
		return err
	}

	body, err := ics.Build(r)
	if err != nil {
		if errors.Is(err, ics.ErrNoActiveDays) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false, "message": "Cette réservation ne couvre aucune journée.",
			})
		}
		h.Log.Error("build calendar failed", zap.String("reservation_id", r.ReservationID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur lors de la génération du calendrier.",
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "reservation-"+r.ReservationID+".ics"))
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// load fetches the reservation from the path parameter. On failure it
// writes the error response and returns a nil reservation.
func (h *PaymentHandler) load(c echo.Context) (*model.Reservation, error) {
	id := c.Param("id")
	if id == "" {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Identifiant de réservation manquant.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{
				"success": false, "message": "Aucune réservation trouvée avec cet identifiant.",
			})
		}
		h.Log.Error("load reservation failed", zap.String("reservation_id", id), zap.Error(err))
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Erreur serveur lors de la récupération de la réservation",
		})
	}
	return r, nil
}
