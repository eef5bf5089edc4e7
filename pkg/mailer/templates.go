package mailer

import (
	"fmt"
	"html"
	"time"
)

// Email templates as pure functions: fields in, rendered Template out.
// User-supplied fields are HTML-escaped in the HTML body; the plain-text
// body carries them verbatim.

// ThankYou builds the auto-reply sent to the submitter.
func ThankYou(name string) Template {
	escaped := html.EscapeString(name)
	return Template{
		Subject: "Thank you for reaching out! - Shubhang Mishra",
		HTML: fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Thank You</title>
    <style>
      body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px; background-color: #f8fafc; }
      .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); }
      .header { background: linear-gradient(135deg, #0f172a 0%%, #1e293b 100%%); color: white; padding: 30px; text-align: center; }
      .header h1 { margin: 0; font-size: 24px; font-weight: 700; }
      .content { padding: 30px; }
      .content h2 { color: #1e293b; margin-top: 0; font-size: 20px; }
      .content p { margin-bottom: 15px; color: #64748b; font-size: 16px; }
      .highlight { background-color: #f0fdfa; border-left: 4px solid #14b8a6; padding: 15px; margin: 20px 0; border-radius: 4px; }
      .footer { background-color: #f8fafc; padding: 20px; text-align: center; border-top: 1px solid #e2e8f0; }
      .footer p { margin: 5px 0; color: #64748b; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>Thank You, %s!</h1>
      </div>
      <div class="content">
        <h2>Message Received Successfully</h2>
        <p>Hi %s,</p>
        <p>Thank you for reaching out through my portfolio website. I've received your message and appreciate you taking the time to contact me!</p>
        <div class="highlight">
          <p><strong>What's next?</strong></p>
          <p>I'll review your message and get back to you within 24-48 hours. Looking forward to connecting with you!</p>
        </div>
        <p>Best regards,<br><strong>Shubhang Mishra</strong><br>Full-Stack Developer &amp; Cybersecurity Student</p>
      </div>
      <div class="footer">
        <p>Shubhang Mishra | Portfolio Contact</p>
        <p>Email: %s</p>
        <p>This is an automated response to your contact form submission.</p>
      </div>
    </div>
  </body>
</html>`, escaped, escaped, DefaultNotificationRecipient),
		Text: fmt.Sprintf(`Hi %s,

Thank you for reaching out through my portfolio website! I've received your message and appreciate you taking the time to contact me.

I'll review your message and get back to you within 24-48 hours.

Best regards,
Shubhang Mishra
Full-Stack Developer & Cybersecurity Student

Email: %s
`, name, DefaultNotificationRecipient),
	}
}

// Notification builds the owner-facing alert for a new submission.
func Notification(name, email, message string, receivedAt time.Time) Template {
	received := receivedAt.Format("Monday, January 2, 2006 at 3:04 PM MST")
	return Template{
		Subject: fmt.Sprintf("🔔 New Portfolio Contact: %s", name),
		HTML: fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission</title>
    <style>
      body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px; background-color: #f8fafc; }
      .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); }
      .header { background: linear-gradient(135deg, #dc2626 0%%, #ef4444 100%%); color: white; padding: 25px; text-align: center; }
      .header h1 { margin: 0; font-size: 22px; font-weight: 700; }
      .content { padding: 25px; }
      .field { margin-bottom: 20px; padding: 15px; background-color: #f8fafc; border-radius: 6px; border-left: 4px solid #14b8a6; }
      .field-label { font-weight: 600; color: #1e293b; margin-bottom: 5px; font-size: 14px; text-transform: uppercase; }
      .field-value { color: #475569; font-size: 16px; }
      .message-field { background-color: #fefefe; border: 1px solid #e2e8f0; padding: 15px; border-radius: 6px; white-space: pre-wrap; }
      .timestamp { text-align: center; padding: 15px; background-color: #f1f5f9; color: #64748b; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>📧 New Contact Form Submission</h1>
      </div>
      <div class="content">
        <div class="field">
          <div class="field-label">Name</div>
          <div class="field-value">%s</div>
        </div>
        <div class="field">
          <div class="field-label">Email</div>
          <div class="field-value">%s</div>
        </div>
        <div class="field">
          <div class="field-label">Message</div>
          <div class="field-value message-field">%s</div>
        </div>
      </div>
      <div class="timestamp">Received: %s</div>
    </div>
  </body>
</html>`, html.EscapeString(name), html.EscapeString(email), html.EscapeString(message), received),
		Text: fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s

Message:
%s

Received: %s
`, name, email, message, received),
	}
}
