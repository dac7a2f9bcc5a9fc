package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound indicates the requested object does not exist in the store.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for retrieving binary objects, such as
// the resume document attached to outgoing mail.
type ObjectStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
