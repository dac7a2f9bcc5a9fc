package contact

import (
	"context"

	"portfolio-backend/internal/shared/storage/docstore"
)

// DocstoreRepo implements Repo over the shared document store.
type DocstoreRepo struct {
	Store *docstore.Store
}

// Create appends one contact message document.
func (r *DocstoreRepo) Create(ctx context.Context, msg Message) error {
	return r.Store.Insert(ctx, Collection, msg)
}

var _ Repo = (*DocstoreRepo)(nil)
