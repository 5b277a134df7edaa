package booking

import "context"

// ListBookings returns every booking for the admin view, newest first.
// Read-only; no filtering or pagination.
func (s *Service) ListBookings(ctx context.Context) ([]Booking, error) {
	return s.store.ListAll(ctx)
}
