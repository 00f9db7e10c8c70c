// Package queue connects the reservation API to the notification pipeline
// through RabbitMQ. The API publishes one event per accepted reservation;
// a background consumer turns each event into a webhook delivery.
package queue

import "github.com/higholive/party-api/internal/model"

// ReservationQueueName is the durable queue events travel through.
const ReservationQueueName = "reservation.created"

// ReservationCreatedEvent is published after a reservation has been
// durably stored. It carries the whole document so the consumer can build
// the webhook payload without querying the database.
type ReservationCreatedEvent struct {
	ID          string            `json:"id"` // message id, for tracing and replay
	Reservation model.Reservation `json:"reservation"`
	CreatedAt   string            `json:"createdAt"`
}

// WebhookBody is the JSON shape posted to the automation endpoint.
type WebhookBody struct {
	Reservation model.Reservation `json:"reservation"`
}
