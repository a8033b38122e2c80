package notifications

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a mailer that was built without credentials.
var ErrNotConfigured = errors.New("email provider not configured")

type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer sends one message and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

func validateMessage(msg Message) error {
	if msg.From == "" {
		return errors.New("missing sender")
	}
	if len(msg.To) == 0 {
		return errors.New("missing recipient email")
	}
	if msg.Subject == "" {
		return errors.New("missing subject")
	}
	if msg.HTML == "" {
		return errors.New("missing html body")
	}
	return nil
}
