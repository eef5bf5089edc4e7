package model

import "time"

// ContactSubmission is one validated contact-form payload.
// Once stored, a submission is immutable: no update or delete path exists.
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
