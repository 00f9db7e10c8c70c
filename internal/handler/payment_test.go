package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/higholive/party-api/internal/config"
	"github.com/higholive/party-api/internal/handler"
	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/repository"
)

func paymentConfig() config.QRConfig {
	return config.QRConfig{
		IBAN:             "CH5400266266100331M2C",
		CreditorName:     "Böhi Lucien",
		CreditorStreet:   "Nouvelle Avenue",
		CreditorBuilding: "34",
		CreditorZip:      "1907",
		CreditorTown:     "Saxon",
		CreditorCountry:  "CH",
		Currency:         "CHF",
		MessagePrefix:    "PARTY",
	}
}

func newPaymentHandler(store *fakeStore) *handler.PaymentHandler {
	return handler.NewPaymentHandler(store, paymentConfig(), zap.NewNop())
}

func fixtureStore(r *model.Reservation) *fakeStore {
	return &fakeStore{
		getByID: func(_ context.Context, id string) (*model.Reservation, error) {
			if r != nil && id == r.ReservationID {
				return r, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

func TestQRBill_TextPayload(t *testing.T) {
	r := storedReservation("m2abc")
	h := newPaymentHandler(fixtureStore(r))

	c, rec := newJSONContext(http.MethodGet, "/api/reservations/m2abc/qrbill?format=text", "")
	c.SetParamNames("id")
	c.SetParamValues("m2abc")
	require.NoError(t, h.QRBill(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(rec.Body.String(), "\n")
	assert.Equal(t, "SPC", lines[0])
	assert.Contains(t, rec.Body.String(), "CH5400266266100331M2C")
	assert.Contains(t, rec.Body.String(), "110.00")
	assert.Contains(t, rec.Body.String(), "PARTY - Marie Dupont")
}

func TestQRBill_PNGDefault(t *testing.T) {
	r := storedReservation("m2abc")
	h := newPaymentHandler(fixtureStore(r))

	c, rec := newJSONContext(http.MethodGet, "/api/reservations/m2abc/qrbill", "")
	c.SetParamNames("id")
	c.SetParamValues("m2abc")
	require.NoError(t, h.QRBill(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestQRBill_InvalidSize(t *testing.T) {
	r := storedReservation("m2abc")
	h := newPaymentHandler(fixtureStore(r))

	for _, size := range []string{"abc", "10", "9999"} {
		c, rec := newJSONContext(http.MethodGet, "/api/reservations/m2abc/qrbill?size="+size, "")
		c.SetParamNames("id")
		c.SetParamValues("m2abc")
		require.NoError(t, h.QRBill(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "size %s", size)
	}
}

func TestQRBill_NotFound(t *testing.T) {
	h := newPaymentHandler(fixtureStore(nil))

	c, rec := newJSONContext(http.MethodGet, "/api/reservations/unknown/qrbill", "")
	c.SetParamNames("id")
	c.SetParamValues("unknown")
	require.NoError(t, h.QRBill(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalendar_Attachment(t *testing.T) {
	r := storedReservation("m2abc")
	h := newPaymentHandler(fixtureStore(r))

	c, rec := newJSONContext(http.MethodGet, "/api/reservations/m2abc/calendar", "")
	c.SetParamNames("id")
	c.SetParamValues("m2abc")
	require.NoError(t, h.Calendar(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reservation-m2abc.ics")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, rec.Body.String(), "UID:m2abc@higholive-party")
}

func TestCalendar_NoActiveDays(t *testing.T) {
	r := storedReservation("m2abc")
	r.DayRecords[1].Option = "" // nothing selected anymore
	h := newPaymentHandler(fixtureStore(r))

	c, rec := newJSONContext(http.MethodGet, "/api/reservations/m2abc/calendar", "")
	c.SetParamNames("id")
	c.SetParamValues("m2abc")
	require.NoError(t, h.Calendar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
