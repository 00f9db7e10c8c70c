package handler_test

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/higholive/party-api/internal/handler"
	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/pricing"
	"github.com/higholive/party-api/internal/queue"
	"github.com/higholive/party-api/internal/repository"
)

// ---- function-field fakes ---------------------------------------------------

type fakeStore struct {
	create  func(ctx context.Context, res *model.Reservation) error
	getByID func(ctx context.Context, id string) (*model.Reservation, error)
	update  func(ctx context.Context, id string, upd model.StatusUpdate) (*model.Reservation, error)
	listAll func(ctx context.Context) ([]model.Reservation, error)
}

func (f *fakeStore) Create(ctx context.Context, res *model.Reservation) error {
	return f.create(ctx, res)
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	return f.getByID(ctx, id)
}

func (f *fakeStore) Update(ctx context.Context, id string, upd model.StatusUpdate) (*model.Reservation, error) {
	return f.update(ctx, id, upd)
}

func (f *fakeStore) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return f.listAll(ctx)
}

var _ handler.ReservationStore = (*fakeStore)(nil)

type fakePublisher struct {
	publish func(ctx context.Context, ev queue.ReservationCreatedEvent) error
}

func (f *fakePublisher) PublishReservationCreated(ctx context.Context, ev queue.ReservationCreatedEvent) error {
	if f.publish == nil {
		return nil
	}
	return f.publish(ctx, ev)
}

var _ handler.EventPublisher = (*fakePublisher)(nil)

type fakeNotifications struct {
	getByID func(ctx context.Context, id string) (*repository.FailedNotification, error)
	listAll func(ctx context.Context) ([]repository.FailedNotification, error)
	delete  func(ctx context.Context, id string) error
}

func (f *fakeNotifications) GetByID(ctx context.Context, id string) (*repository.FailedNotification, error) {
	return f.getByID(ctx, id)
}

func (f *fakeNotifications) ListAll(ctx context.Context) ([]repository.FailedNotification, error) {
	return f.listAll(ctx)
}

func (f *fakeNotifications) Delete(ctx context.Context, id string) error {
	return f.delete(ctx, id)
}

var _ handler.NotificationStore = (*fakeNotifications)(nil)

// ---- helpers ---------------------------------------------------------------

// newJSONContext builds an echo context around a JSON request body.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// storedReservation is a fixture mirroring what the repository would
// return: normalized day records, a computed price, pending status.
func storedReservation(id string) *model.Reservation {
	r := &model.Reservation{
		ReservationID: id,
		MainContact: model.MainContact{
			FirstName: "Marie",
			LastName:  "Dupont",
			Address:   "Rue du Lac 12",
			Town:      "Saxon",
			Email:     "marie@example.com",
		},
		NumberOfPeople: 2,
		Status:         model.StatusPending,
	}
	pricing.NormalizeDayRecords(r)
	r.DayRecords[1].Option = model.OptionJourSoirEtNuit
	r.DayRecords[1].MealOption = model.MealMidiEtSoir
	r.TotalPrice = pricing.ComputePrice(r)
	return r
}
