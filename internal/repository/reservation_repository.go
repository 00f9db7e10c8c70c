package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/higholive/party-api/internal/model"
)

// ReservationRepo provides CRUD operations for reservations. The external
// key is always the opaque reservation_id string, never the numeric
// primary key. The nested document parts (additional people, day records)
// are stored as JSON columns; they are only ever read and written whole.
// All timestamps are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `reservation_id, first_name, last_name, address, town, email,
	number_of_people, additional_people, pass_2_days, days_selection, day_records,
	total_price, status, is_invited, created_at`

// Create inserts a new reservation. The caller is responsible for having
// set ReservationID, Status, TotalPrice and CreatedAt beforehand.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	people, err := json.Marshal(res.AdditionalPeople)
	if err != nil {
		return fmt.Errorf("marshal additional people: %w", err)
	}
	days, err := json.Marshal(res.DayRecords)
	if err != nil {
		return fmt.Errorf("marshal day records: %w", err)
	}
	const q = `INSERT INTO reservations (` + reservationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q,
		res.ReservationID,
		res.MainContact.FirstName, res.MainContact.LastName,
		res.MainContact.Address, res.MainContact.Town, res.MainContact.Email,
		res.NumberOfPeople, people,
		res.Pass2Days.Selected, res.Pass2Days.DaysSelection, days,
		res.TotalPrice, res.Status, res.IsInvited, res.CreatedAt.UTC(),
	)
	return err
}

// GetByID returns the reservation with the given external identifier, or
// ErrNotFound when it does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

// Update applies the given field changes to a single reservation row in one
// statement (last writer wins) and returns the updated record. ErrNotFound
// is returned when the identifier resolves to nothing.
func (r *ReservationRepo) Update(ctx context.Context, id string, upd model.StatusUpdate) (*model.Reservation, error) {
	set := ""
	args := make([]interface{}, 0, 4)
	appendSet := func(col string, v interface{}) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if upd.Status != nil {
		appendSet("status", *upd.Status)
	}
	if upd.IsInvited != nil {
		appendSet("is_invited", *upd.IsInvited)
	}
	if upd.TotalPrice != nil {
		appendSet("total_price", *upd.TotalPrice)
	}
	if set == "" {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	// RowsAffected is 0 both for a missing row and for a no-op update, so
	// existence is decided by the follow-up read.
	if _, err := r.db.ExecContext(ctx, `UPDATE reservations SET `+set+` WHERE reservation_id = ?`, args...); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ListAll returns every reservation ordered by creation time descending,
// newest first, matching what the admin dashboard displays.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	var (
		res    model.Reservation
		people []byte
		days   []byte
	)
	err := row.Scan(
		&res.ReservationID,
		&res.MainContact.FirstName, &res.MainContact.LastName,
		&res.MainContact.Address, &res.MainContact.Town, &res.MainContact.Email,
		&res.NumberOfPeople, &people,
		&res.Pass2Days.Selected, &res.Pass2Days.DaysSelection, &days,
		&res.TotalPrice, &res.Status, &res.IsInvited, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(people, &res.AdditionalPeople); err != nil {
		return nil, fmt.Errorf("unmarshal additional people: %w", err)
	}
	if err := json.Unmarshal(days, &res.DayRecords); err != nil {
		return nil, fmt.Errorf("unmarshal day records: %w", err)
	}
	return &res, nil
}
