package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shubhang/portfolio-api/internal/model"
	"github.com/shubhang/portfolio-api/internal/repository"
	"github.com/shubhang/portfolio-api/pkg/mailer"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	sender   mailer.Sender
	notifyTo string
}

// NewContactService creates a ContactService backed by the given repository
// and mail gateway. notifyTo is the already-resolved notification recipient.
func NewContactService(repo repository.ContactRepository, sender mailer.Sender, notifyTo string) ContactService {
	return &contactServiceImpl{repo: repo, sender: sender, notifyTo: notifyTo}
}

// Submit runs the submission flow: persist, preflight, two sends, aggregate.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) (*SubmitOutcome, error) {
	sub.ReceivedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, sub); err != nil {
		slog.Error("contact submission store write failed", "error", err)
		return nil, fmt.Errorf("save contact submission: %w", err)
	}
	slog.Info("contact submission stored", "id", sub.ID)

	if err := s.sender.Verify(ctx); err != nil {
		slog.Error("smtp preflight failed", "error", err)
		return nil, &MailUnavailableError{Err: err}
	}

	// One failed send never aborts the other; both outcomes are aggregated
	// and the submission still reads as accepted.
	out := &SubmitOutcome{
		ThankYou:     s.send(ctx, "thank_you", sub.Email, mailer.ThankYou(sub.Name)),
		Notification: s.send(ctx, "notification", s.notifyTo, mailer.Notification(sub.Name, sub.Email, sub.Message, sub.ReceivedAt)),
	}

	if out.AllSent() {
		slog.Info("submission emails sent",
			"thank_you_message_id", out.ThankYou.MessageID,
			"notification_message_id", out.Notification.MessageID,
		)
	}
	return out, nil
}

func (s *contactServiceImpl) send(ctx context.Context, kind, to string, tpl mailer.Template) SendStatus {
	id, err := s.sender.Send(ctx, to, tpl)
	if err != nil {
		slog.Error("email send failed", "kind", kind, "error", err)
		return SendStatus{Err: err}
	}
	return SendStatus{Sent: true, MessageID: id}
}

// CheckMailGateway runs the connectivity preflight only.
func (s *contactServiceImpl) CheckMailGateway(ctx context.Context) GatewayStatus {
	if err := s.sender.Verify(ctx); err != nil {
		return GatewayStatus{Success: false, Error: err.Error()}
	}
	return GatewayStatus{Success: true, Message: "SMTP connection verified"}
}
