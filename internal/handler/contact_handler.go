package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/shubhang/portfolio-api/internal/model"
	"github.com/shubhang/portfolio-api/internal/service"
	"github.com/shubhang/portfolio-api/pkg/mailer"
)

// emailPattern is the shape check applied to the submitter address: at least
// one @, at least one dot after it, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-visible message strings. Dependency-failure messages stay generic;
// raw error text goes only into the details field.
const (
	msgAllFieldsRequired = "All fields are required"
	msgInvalidEmail      = "Invalid email format"
	msgMailUnavailable   = "Email service is currently unavailable. Please try again later."
	msgGenericFailure    = "Failed to process your message. Please try again later."
	msgFullSuccess       = "Message sent successfully! Thank you for reaching out."
	msgPartialSuccess    = "Message received! I'll get back to you soon."
	warnPartialSend      = "Some email notifications may have failed to send."
)

// ContactHandler handles contact form submission and diagnostics.
type ContactHandler struct {
	contactService service.ContactService
	mailCfg        mailer.Config
}

// NewContactHandler creates a ContactHandler with the given service. The mail
// configuration is only consulted for the diagnostic presence report.
func NewContactHandler(contactService service.ContactService, mailCfg mailer.Config) *ContactHandler {
	return &ContactHandler{contactService: contactService, mailCfg: mailCfg}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// sendErrors carries per-channel error text on partial failure; a nil field
// means that channel succeeded.
type sendErrors struct {
	ThankYou     *string `json:"thankYou"`
	Notification *string `json:"notification"`
}

type submitDetails struct {
	ThankYouSent          bool        `json:"thankYouSent"`
	NotificationSent      bool        `json:"notificationSent"`
	ThankYouMessageID     string      `json:"thankYouMessageId,omitempty"`
	NotificationMessageID string      `json:"notificationMessageId,omitempty"`
	Errors                *sendErrors `json:"errors,omitempty"`
}

type submitResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Warning string        `json:"warning,omitempty"`
	Details submitDetails `json:"details"`
}

// Submit handles POST /api/contact.
//
// All three fields are required and email must pass the shape check before
// anything is persisted or sent. Partial email failure still reports
// top-level success: the submission was received and stored, and delivery is
// best-effort.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A body that does not parse is an unexpected failure, not a
		// validation error.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msgGenericFailure, Details: err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msgAllFieldsRequired})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msgInvalidEmail})
		return
	}

	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	outcome, err := h.contactService.Submit(r.Context(), sub)
	if err != nil {
		var unavailable *service.MailUnavailableError
		if errors.As(err, &unavailable) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: msgMailUnavailable, Details: unavailable.Err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msgGenericFailure, Details: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if outcome.AllSent() {
		_ = json.NewEncoder(w).Encode(submitResponse{
			Success: true,
			Message: msgFullSuccess,
			Details: submitDetails{
				ThankYouSent:          true,
				NotificationSent:      true,
				ThankYouMessageID:     outcome.ThankYou.MessageID,
				NotificationMessageID: outcome.Notification.MessageID,
			},
		})
		return
	}

	_ = json.NewEncoder(w).Encode(submitResponse{
		Success: true,
		Message: msgPartialSuccess,
		Warning: warnPartialSend,
		Details: submitDetails{
			ThankYouSent:     outcome.ThankYou.Sent,
			NotificationSent: outcome.Notification.Sent,
			Errors: &sendErrors{
				ThankYou:     errText(outcome.ThankYou.Err),
				Notification: errText(outcome.Notification.Err),
			},
		},
	})
}

func errText(err error) *string {
	if err == nil {
		return nil
	}
	s := err.Error()
	return &s
}

// environmentReport states which configuration variables are set. Credential
// values never appear, only presence.
type environmentReport struct {
	SMTPHost          string `json:"smtpHost"`
	SMTPPort          string `json:"smtpPort"`
	SMTPUser          string `json:"smtpUser"`
	SMTPPassword      string `json:"smtpPassword"`
	NotificationEmail string `json:"notificationEmail"`
}

type diagnosticsResponse struct {
	Message        string                `json:"message"`
	Timestamp      string                `json:"timestamp"`
	SMTPConnection service.GatewayStatus `json:"smtpConnection"`
	Environment    environmentReport     `json:"environment"`
}

// Diagnostics handles GET /api/contact: gateway connectivity plus a
// configuration presence report. Read-only, no side effects.
func (h *ContactHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	status := h.contactService.CheckMailGateway(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(diagnosticsResponse{
		Message:        "Contact API is working",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		SMTPConnection: status,
		Environment: environmentReport{
			SMTPHost:          valueOrUnset(h.mailCfg.Host),
			SMTPPort:          portOrUnset(h.mailCfg.Port),
			SMTPUser:          presence(h.mailCfg.Username),
			SMTPPassword:      presence(h.mailCfg.Password),
			NotificationEmail: presence(h.mailCfg.NotificationEmail),
		},
	})
}

func presence(v string) string {
	if v == "" {
		return "not configured"
	}
	return "configured"
}

// Host and port are not secrets; they are reported verbatim when set.
func valueOrUnset(v string) string {
	if v == "" {
		return "not configured"
	}
	return v
}

func portOrUnset(p int) string {
	if p == 0 {
		return "not configured"
	}
	return strconv.Itoa(p)
}
