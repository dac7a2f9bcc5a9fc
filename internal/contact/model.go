package contact

import "time"

// Collection is the document collection contact messages are appended to.
const Collection = "contact_messages"

// Message is one contact-form submission, written once and never read back.
type Message struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
