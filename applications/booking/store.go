package booking

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store owns all SQL against the bookings table. Every operation is a single
// statement; bookings carry no cross-row invariants that would need a
// transaction.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

const insertBookingSQL = `
	INSERT INTO bookings (name, email, phone, service_type, event_date, event_time, message)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at`

// Insert writes one booking row and fills in the store-owned fields
// (id, created_at, pending status).
func (s *Store) Insert(ctx context.Context, bk *Booking) error {
	row := s.db.QueryRowContext(ctx, insertBookingSQL,
		bk.Name, bk.Email, bk.Phone, bk.ServiceType, bk.EventDate, bk.EventTime, bk.Message)

	if err := row.Scan(&bk.ID, &bk.CreatedAt); err != nil {
		return fmt.Errorf("booking insert error: %w", err)
	}
	bk.Status = StatusPending
	return nil
}

// ListAll returns every booking, newest first.
func (s *Store) ListAll(ctx context.Context) ([]Booking, error) {
	bookings := []Booking{}
	err := s.db.SelectContext(ctx, &bookings,
		`SELECT * FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("booking list error: %w", err)
	}
	return bookings, nil
}

// UpdateStatus stores the new status and reports how many rows matched.
// Zero matches is not an error; the admin view may race a delete.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status Status) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, fmt.Errorf("booking status update error: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes the row if it exists and reports the affected count.
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("booking delete error: %w", err)
	}
	return res.RowsAffected()
}
