package resume

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/shared/telemetry"
)

const subject = "Your Requested Resume"

// Service handles resume requests: a best-effort write of the request
// document, then the resume email. The caller's outcome is decided by the
// email alone; a failed write is logged and never blocks the send.
type Service struct {
	Repo   Repo // nil when the store connection was never established
	Mailer mailer.Mailer

	ResumeKey      string
	ResumeFilename string
	OwnerName      string
}

// Request records the submission and emails the resume to the given address.
func (s *Service) Request(ctx context.Context, name, email string) error {
	if s.Repo == nil {
		return ErrStoreUnavailable
	}

	req := Request{
		Name:      name,
		Email:     email,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		telemetry.Error("resume.persist_failed", map[string]any{"error": err.Error()})
	}

	body := fmt.Sprintf("Hi %s,\n\nHere is my resume as requested.\n\nRegards,\n%s", name, s.OwnerName)
	return s.Mailer.Send(ctx, mailer.Message{
		Subject: subject,
		To:      email,
		Body:    body,
		Attachment: &mailer.Attachment{
			Key:      s.ResumeKey,
			Filename: s.ResumeFilename,
		},
	})
}
