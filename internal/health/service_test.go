package health

import (
	"bytes"
	"context"
	"io"
	"testing"

	"portfolio-backend/internal/shared/storage/object"
)

type fakeStore struct {
	objects map[string][]byte
}

func (s *fakeStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, object.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestStatusWithNothingConfigured(t *testing.T) {
	svc := NewService(nil, nil, "")
	status := svc.Status(context.Background())

	if status["ok"] != true {
		t.Fatalf("expected ok true, got %v", status["ok"])
	}
	if status["database"] != false {
		t.Fatalf("expected database false, got %v", status["database"])
	}
	if status["resume"] != false {
		t.Fatalf("expected resume false, got %v", status["resume"])
	}
}

func TestStatusMissingResume(t *testing.T) {
	svc := NewService(nil, &fakeStore{}, "resume.pdf")
	if got := svc.Status(context.Background())["resume"]; got != false {
		t.Fatalf("expected resume false for missing object, got %v", got)
	}
}

func TestStatusUnparseableResume(t *testing.T) {
	store := &fakeStore{objects: map[string][]byte{"resume.pdf": []byte("not a pdf")}}
	svc := NewService(nil, store, "resume.pdf")
	if got := svc.Status(context.Background())["resume"]; got != false {
		t.Fatalf("expected resume false for unparseable object, got %v", got)
	}
}
