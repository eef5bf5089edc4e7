package mailer

import (
	"context"

	"github.com/wneessen/go-mail"
)

// SMTPSender is the production implementation of Sender.
//
// A client is built per call rather than held on the struct: go-mail clients
// carry dial state, and building late also keeps configuration errors (for
// example an empty host) on the request path instead of at startup.
type SMTPSender struct {
	cfg Config
}

// NewSMTPSender creates an SMTPSender with the given configuration.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Ensure SMTPSender implements Sender at compile time.
var _ Sender = (*SMTPSender)(nil)

// Defaults of the reference deployment, applied only when dialing so that
// Config keeps reporting what the environment actually provides.
const (
	defaultSMTPHost = "smtp.gmail.com"
	defaultSMTPPort = 587
)

func (s *SMTPSender) client() (*mail.Client, error) {
	host := s.cfg.Host
	if host == "" {
		host = defaultSMTPHost
	}
	port := s.cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return mail.NewClient(host, opts...)
}

// Verify dials the SMTP server and closes the connection without sending.
func (s *SMTPSender) Verify(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return err
	}
	return c.Close()
}

// Send delivers one message as multipart/alternative (plain text plus HTML)
// and returns the generated message ID.
func (s *SMTPSender) Send(ctx context.Context, to string, tpl Template) (string, error) {
	c, err := s.client()
	if err != nil {
		return "", err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(fromName, s.cfg.Username); err != nil {
		return "", err
	}
	if err := msg.To(to); err != nil {
		return "", err
	}
	msg.Subject(tpl.Subject)
	msg.SetBodyString(mail.TypeTextPlain, tpl.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, tpl.HTML)
	// Normal importance sets the X-Priority/Importance headers that help
	// deliverability with strict providers.
	msg.SetImportance(mail.ImportanceNormal)
	msg.SetMessageID()

	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return "", err
	}
	return msg.GetMessageID(), nil
}
