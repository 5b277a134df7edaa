package booking

import (
	"context"
	"errors"

	"github.com/Rachana0206/dream-frame-studio/applications/notify"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks a request rejected before any side effect happened.
var ErrValidation = errors.New("missing required fields")

// Storer is what the service needs from persistence. *Store satisfies it;
// tests substitute an in-memory fake.
type Storer interface {
	Insert(ctx context.Context, bk *Booking) error
	ListAll(ctx context.Context) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service carries the booking business rules. The store and the notification
// dispatcher are injected once at startup and owned by main.
type Service struct {
	store      Storer
	dispatcher *notify.Dispatcher
	ownerEmail string
	appURL     string
	validate   *validator.Validate
}

func NewService(store Storer, dispatcher *notify.Dispatcher, ownerEmail, appURL string) *Service {
	return &Service{
		store:      store,
		dispatcher: dispatcher,
		ownerEmail: ownerEmail,
		appURL:     appURL,
		validate:   validator.New(),
	}
}
