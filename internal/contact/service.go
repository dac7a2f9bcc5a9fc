package contact

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/shared/telemetry"
)

// Service handles contact submissions: a best-effort write of the message
// document, then a self-notification email to the operator. The caller's
// outcome is decided by the email alone; a failed write is logged and never
// blocks the send.
type Service struct {
	Repo   Repo // nil when the store connection was never established
	Mailer mailer.Mailer

	// OperatorAddress receives the notification.
	OperatorAddress string
}

// Submit records the message and notifies the operator.
func (s *Service) Submit(ctx context.Context, name, email, message string) error {
	if s.Repo == nil {
		return ErrStoreUnavailable
	}

	msg := Message{
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		telemetry.Error("contact.persist_failed", map[string]any{"error": err.Error()})
	}

	body := fmt.Sprintf("You have a new message from:\n\nName: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)
	return s.Mailer.Send(ctx, mailer.Message{
		Subject: fmt.Sprintf("New Portfolio Contact from %s", name),
		To:      s.OperatorAddress,
		Body:    body,
	})
}
