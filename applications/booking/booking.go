package booking

import "time"

// Status is the closed set of states the admin view can move a booking
// through. The boundary rejects anything outside it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps raw client input onto the closed status set.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(raw), true
	}
	return "", false
}

type Booking struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	ServiceType string    `db:"service_type" json:"service_type"`
	EventDate   string    `db:"event_date" json:"event_date"`
	EventTime   string    `db:"event_time" json:"event_time"`
	Message     string    `db:"message" json:"message"`
	Status      Status    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
