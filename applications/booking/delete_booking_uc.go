package booking

import (
	"context"
	"fmt"

	"github.com/Rachana0206/dream-frame-studio/logger"
)

// DeleteBooking removes the booking outright. Deleting an id that no longer
// exists succeeds; a second delete is indistinguishable from the first.
func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[delete-booking-uc] Database error for booking %d: %v", id, err))
		return err
	}
	if affected == 0 {
		logger.Log.Warn(fmt.Sprintf("[delete-booking-uc] Delete matched no booking for id %d.", id))
	} else {
		logger.Log.Info(fmt.Sprintf("[delete-booking-uc] Booking %d deleted.", id))
	}
	return nil
}
