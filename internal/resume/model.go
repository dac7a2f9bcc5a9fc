package resume

import "time"

// Collection is the document collection resume requests are appended to.
const Collection = "resume_requests"

// Request is one resume request, written once and never read back.
type Request struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
