package service

import (
	"context"

	"github.com/shubhang/portfolio-api/internal/model"
)

// SendStatus is the per-channel outcome of one email send.
type SendStatus struct {
	Sent      bool
	MessageID string
	Err       error
}

// SubmitOutcome aggregates the two sends triggered by a submission.
// Email delivery is best-effort: a failed send shows up here, never as a
// Submit error.
type SubmitOutcome struct {
	ThankYou     SendStatus
	Notification SendStatus
}

// AllSent reports whether both emails were delivered.
func (o *SubmitOutcome) AllSent() bool {
	return o.ThankYou.Sent && o.Notification.Sent
}

// GatewayStatus is the result of a mail-gateway connectivity check.
type GatewayStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stamps ReceivedAt, persists the submission, runs the mail
	// preflight and sends the thank-you and notification emails.
	// Persistence is always attempted before any email; a store failure
	// aborts, and a preflight failure returns *MailUnavailableError with
	// zero sends attempted.
	Submit(ctx context.Context, sub *model.ContactSubmission) (*SubmitOutcome, error)

	// CheckMailGateway runs the connectivity preflight only. No side effects.
	CheckMailGateway(ctx context.Context) GatewayStatus
}
