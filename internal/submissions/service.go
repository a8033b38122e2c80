package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/CryptoCardia/pilotroom-web/internal/metrics"
	"github.com/CryptoCardia/pilotroom-web/internal/notifications"
)

type Outcome string

const (
	OutcomeSent    Outcome = metrics.OutcomeSent
	OutcomeSkipped Outcome = metrics.OutcomeSkipped
)

type Service struct {
	mailer notifications.Mailer
	from   string
	to     []string
}

// NewService accepts a nil mailer; submissions are then acknowledged without being sent.
func NewService(mailer notifications.Mailer, from string, to []string) *Service {
	return &Service{
		mailer: mailer,
		from:   from,
		to:     append([]string(nil), to...),
	}
}

func (s *Service) Enabled() bool {
	return s != nil && s.mailer != nil && len(s.to) > 0
}

// Submit sends one notification email for sub. There is no retry; a failed send is
// returned to the caller and nothing is queued.
func (s *Service) Submit(ctx context.Context, sub PilotSubmission) (Outcome, string, error) {
	return s.SubmitPayload(ctx, Format(sub))
}

// SubmitPayload is Submit for a payload whose key set is already fixed by the caller.
func (s *Service) SubmitPayload(ctx context.Context, payload Payload) (Outcome, string, error) {
	if !s.Enabled() {
		metrics.Submissions.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return OutcomeSkipped, "", nil
	}

	html, err := notifications.BuildPilotSubmissionHTML(payload.Entries())
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return "", "", fmt.Errorf("render submission email: %w", err)
	}

	id, err := s.mailer.Send(ctx, notifications.Message{
		From:    s.from,
		To:      s.to,
		Subject: notifications.PilotSubmissionSubject,
		HTML:    html,
	})
	if err != nil {
		if errors.Is(err, notifications.ErrNotConfigured) {
			metrics.Submissions.WithLabelValues(metrics.OutcomeSkipped).Inc()
			return OutcomeSkipped, "", nil
		}
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return "", "", fmt.Errorf("send submission email: %w", err)
	}

	metrics.Submissions.WithLabelValues(metrics.OutcomeSent).Inc()
	return OutcomeSent, id, nil
}
