package health

import (
	"bytes"
	"context"
	"io"

	"github.com/ledongthuc/pdf"

	"portfolio-backend/internal/shared/storage/docstore"
	"portfolio-backend/internal/shared/storage/object"
)

// Service encapsulates health-related checks: database reachability and the
// presence of a parseable resume document. Informational only; it never
// gates request handling.
type Service struct {
	Store     *docstore.Store // nil when the connection was never established
	Files     object.ObjectStore
	ResumeKey string
}

// NewService constructs a health service.
func NewService(store *docstore.Store, files object.ObjectStore, resumeKey string) *Service {
	return &Service{Store: store, Files: files, ResumeKey: resumeKey}
}

// Status reports the health payload.
func (s *Service) Status(ctx context.Context) map[string]any {
	return map[string]any{
		"ok":       true,
		"database": s.databaseReachable(ctx),
		"resume":   s.resumeReadable(ctx),
	}
}

func (s *Service) databaseReachable(ctx context.Context) bool {
	if s.Store == nil {
		return false
	}
	return s.Store.Ping(ctx) == nil
}

// resumeReadable reports whether the configured resume object exists and
// parses as a PDF with at least one page.
func (s *Service) resumeReadable(ctx context.Context) bool {
	if s.Files == nil || s.ResumeKey == "" {
		return false
	}
	rc, err := s.Files.Open(ctx, s.ResumeKey)
	if err != nil {
		return false
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return false
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	return reader.NumPage() > 0
}
