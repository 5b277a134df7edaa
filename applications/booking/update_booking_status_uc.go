package booking

import (
	"context"
	"fmt"

	"github.com/Rachana0206/dream-frame-studio/logger"
)

// SetStatus moves a booking into one of the recognized states. An id that
// matches no row is an idempotent no-op, mirroring the store's affected-rows
// contract.
func (s *Service) SetStatus(ctx context.Context, id int64, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: status is required", ErrValidation)
	}
	status, ok := ParseStatus(raw)
	if !ok {
		return fmt.Errorf("%w: unrecognized status %q", ErrValidation, raw)
	}

	affected, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[update-booking-status-uc] Database error for booking %d: %v", id, err))
		return err
	}
	if affected == 0 {
		logger.Log.Warn(fmt.Sprintf("[update-booking-status-uc] Status update matched no booking for id %d.", id))
	} else {
		logger.Log.Info(fmt.Sprintf("[update-booking-status-uc] Booking %d marked %s.", id, status))
	}
	return nil
}
