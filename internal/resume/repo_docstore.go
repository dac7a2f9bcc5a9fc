package resume

import (
	"context"

	"portfolio-backend/internal/shared/storage/docstore"
)

// DocstoreRepo implements Repo over the shared document store.
type DocstoreRepo struct {
	Store *docstore.Store
}

// Create appends one resume request document.
func (r *DocstoreRepo) Create(ctx context.Context, req Request) error {
	return r.Store.Insert(ctx, Collection, req)
}

var _ Repo = (*DocstoreRepo)(nil)
