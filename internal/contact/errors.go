package contact

import "errors"

// ErrStoreUnavailable indicates the document store connection was never
// established, so the request cannot be served at all.
var ErrStoreUnavailable = errors.New("document store unavailable")
