package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// FailedNotification is a webhook payload whose delivery exhausted all
// retries. Rows stay until an admin replays them successfully.
type FailedNotification struct {
	ID        string    `json:"id"`
	Payload   []byte    `json:"payload"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationRepo stores failed webhook payloads for manual replay.
type NotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepo returns a NotificationRepo bound to the given database.
func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Insert records a payload that could not be delivered.
func (r *NotificationRepo) Insert(ctx context.Context, n *FailedNotification) error {
	const q = `INSERT INTO failed_notifications (id, payload, attempts, last_error, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, n.ID, n.Payload, n.Attempts, n.LastError, n.CreatedAt.UTC())
	return err
}

// GetByID returns a single failed notification, or ErrNotFound.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*FailedNotification, error) {
	const q = `SELECT id, payload, attempts, last_error, created_at FROM failed_notifications WHERE id = ?`
	var n FailedNotification
	err := r.db.QueryRowContext(ctx, q, id).Scan(&n.ID, &n.Payload, &n.Attempts, &n.LastError, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// ListAll returns every failed notification, oldest first, so an admin
// replays them in their original order.
func (r *NotificationRepo) ListAll(ctx context.Context) ([]FailedNotification, error) {
	const q = `SELECT id, payload, attempts, last_error, created_at FROM failed_notifications ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FailedNotification
	for rows.Next() {
		var n FailedNotification
		if err := rows.Scan(&n.ID, &n.Payload, &n.Attempts, &n.LastError, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Delete removes a failed notification after a successful replay.
func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM failed_notifications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
