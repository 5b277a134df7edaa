package contact

import (
	"errors"
	"fmt"

	"github.com/Rachana0206/dream-frame-studio/applications/notify"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks a submission rejected before any side effect happened.
var ErrValidation = errors.New("missing required fields")

// Service relays contact messages to the studio owner. Email is optional and
// handled server-side: once validation passes, the submitter always sees
// success, whatever the mail leg does.
type Service struct {
	dispatcher *notify.Dispatcher
	ownerEmail string
	validate   *validator.Validate
}

func NewService(dispatcher *notify.Dispatcher, ownerEmail string) *Service {
	return &Service{
		dispatcher: dispatcher,
		ownerEmail: ownerEmail,
		validate:   validator.New(),
	}
}

// SubmitContact validates the message and hands it to the dispatcher.
// Dispatch is fire-and-forget; this returns before any delivery outcome
// exists.
func (s *Service) SubmitContact(p Params) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.dispatcher.Dispatch(notify.Job{
		To:      s.ownerEmail,
		Subject: fmt.Sprintf("📧 New Contact Form Submission from %s", p.Name),
		HTML:    contactEmailHTML(p),
	})
	return nil
}
