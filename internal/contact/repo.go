package contact

import "context"

// Repo defines persistence operations for contact messages.
type Repo interface {
	Create(ctx context.Context, msg Message) error
}
