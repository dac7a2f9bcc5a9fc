package resume

import "context"

// Repo defines persistence operations for resume requests.
type Repo interface {
	Create(ctx context.Context, req Request) error
}
