package handler

import (
	"context"

	"github.com/higholive/party-api/internal/model"
	"github.com/higholive/party-api/internal/queue"
	"github.com/higholive/party-api/internal/repository"
)

// ReservationStore is the slice of the storage layer the handlers need.
// *repository.ReservationRepo satisfies it; tests substitute fakes.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	Update(ctx context.Context, id string, upd model.StatusUpdate) (*model.Reservation, error)
	ListAll(ctx context.Context) ([]model.Reservation, error)
}

// EventPublisher pushes reservation events toward the notification
// pipeline. Failures are logged by the implementation and never surfaced
// to the guest.
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, ev queue.ReservationCreatedEvent) error
}

// NotificationStore exposes the failed-notification records to the admin
// endpoints. *repository.NotificationRepo satisfies it.
type NotificationStore interface {
	GetByID(ctx context.Context, id string) (*repository.FailedNotification, error)
	ListAll(ctx context.Context) ([]repository.FailedNotification, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ ReservationStore  = (*repository.ReservationRepo)(nil)
	_ NotificationStore = (*repository.NotificationRepo)(nil)
)
