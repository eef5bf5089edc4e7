// Package mailer provides the SMTP mail gateway for the contact flow:
// a Sender interface with connection preflight, an SMTP implementation,
// and the email templates as pure functions.
package mailer

import "context"

// Template is a fully rendered email: subject plus HTML and plain-text bodies.
type Template struct {
	Subject string
	HTML    string
	Text    string
}

// Sender is the interface to the mail gateway. Implementations must be safe
// for concurrent use.
type Sender interface {
	// Verify checks connectivity to the gateway without sending anything.
	Verify(ctx context.Context) error

	// Send delivers one message to the given recipient and returns the
	// message ID assigned to it.
	Send(ctx context.Context, to string, tpl Template) (string, error)
}
