// Package mailer composes and sends notification email over an encrypted,
// authenticated SMTP submission session.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"portfolio-backend/internal/shared/storage/object"
	"portfolio-backend/internal/shared/telemetry"
)

var (
	// ErrNotConfigured indicates the mail account address or credential is missing.
	ErrNotConfigured = errors.New("mail account is not configured")

	// ErrAttachmentNotFound indicates the configured attachment does not exist.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrDelivery indicates a dial, login, protocol or send failure.
	ErrDelivery = errors.New("mail delivery failed")
)

// Attachment names an object-store document to attach under a display filename.
type Attachment struct {
	Key      string
	Filename string
}

// Message is a single outbound email.
type Message struct {
	Subject    string
	To         string
	Body       string
	Attachment *Attachment
}

// Mailer sends exactly one message per call. No retries, no queueing.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type dialer interface {
	DialAndSend(msgs ...*gomail.Message) error
}

// SMTP is a Mailer over a fixed submission endpoint. Port 465 selects
// implicit TLS in gomail.
type SMTP struct {
	dialer   dialer
	address  string
	password string
	files    object.ObjectStore
}

// NewSMTP constructs an SMTP mailer. files supplies attachment content.
func NewSMTP(host string, port int, address, password string, files object.ObjectStore) *SMTP {
	return &SMTP{
		dialer:   gomail.NewDialer(host, port, address, password),
		address:  address,
		password: password,
		files:    files,
	}
}

// Send delivers one message. The dial blocks the caller for its duration.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.address == "" || s.password == "" {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.address)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if msg.Attachment != nil {
		data, err := s.readAttachment(ctx, msg.Attachment.Key)
		if err != nil {
			return err
		}
		m.Attach(msg.Attachment.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	telemetry.Info("mail.sent", map[string]any{"to": msg.To, "subject": msg.Subject})
	return nil
}

func (s *SMTP) readAttachment(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.files.Open(ctx, key)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAttachmentNotFound, key)
		}
		return nil, fmt.Errorf("read attachment %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read attachment %s: %w", key, err)
	}
	return data, nil
}

var _ Mailer = (*SMTP)(nil)
