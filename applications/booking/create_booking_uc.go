package booking

import (
	"context"
	"fmt"

	"github.com/Rachana0206/dream-frame-studio/applications/notify"
	"github.com/Rachana0206/dream-frame-studio/logger"
)

type CreateParams struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	ServiceType string `json:"service_type" validate:"required"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Message     string `json:"message"`
}

// CreateBooking validates and persists a booking request, then notifies the
// studio owner without waiting on the mail leg. Persistence success alone
// decides the caller's outcome.
func (s *Service) CreateBooking(ctx context.Context, p CreateParams) (*Booking, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	bk := &Booking{
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		ServiceType: p.ServiceType,
		EventDate:   p.EventDate,
		EventTime:   p.EventTime,
		Message:     p.Message,
		Status:      StatusPending,
	}
	if err := s.store.Insert(ctx, bk); err != nil {
		logger.Log.Error(fmt.Sprintf("[create-booking-uc] Database error: %v", err))
		return nil, err
	}
	logger.Log.Info(fmt.Sprintf("[create-booking-uc] Booking %d saved for %s (%s).", bk.ID, bk.Name, bk.ServiceType))

	// Owner notification is fire-and-forget; the response never waits on it.
	s.dispatcher.Dispatch(notify.Job{
		To:      s.ownerEmail,
		Subject: fmt.Sprintf("🎬 New Booking Request from %s", bk.Name),
		HTML:    bookingEmailHTML(bk, s.appURL),
	})

	return bk, nil
}
