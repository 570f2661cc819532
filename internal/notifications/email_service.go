package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"playbox/internal/shared/config"
	"playbox/pkg/logger"
)

// EmailService delivers booking notifications to a recipient address.
type EmailService interface {
	SendBookingEmail(ctx context.Context, to string, event *BookingEvent) error
}

type smtpEmailService struct {
	cfg config.EmailConfig
	log *logger.Logger
}

// NewSMTPEmailService creates an SMTP-backed sender. When no SMTP host is
// configured, use NewLogEmailService instead.
func NewSMTPEmailService(cfg config.EmailConfig, log *logger.Logger) EmailService {
	return &smtpEmailService{cfg: cfg, log: log}
}

var confirmedTemplate = template.Must(template.New("confirmed").Parse(`
<h2>Booking Confirmed</h2>
<p>Your booking <strong>{{.BookingRef}}</strong> at {{.VenueName}} is confirmed.</p>
<ul>
  <li>Sport: {{.Sport}}</li>
  <li>Start: {{.StartTime.Format "Mon, 02 Jan 2006 15:04 MST"}}</li>
  <li>Duration: {{.DurationHours}} hour(s)</li>
  <li>Amount: {{printf "%.2f" .Amount}}</li>
</ul>
`))

var cancelledTemplate = template.Must(template.New("cancelled").Parse(`
<h2>Booking Cancelled</h2>
<p>Your booking <strong>{{.BookingRef}}</strong> at {{.VenueName}} has been cancelled.</p>
<p>The reserved slots are available again for other players.</p>
`))

func (s *smtpEmailService) SendBookingEmail(ctx context.Context, to string, event *BookingEvent) error {
	var tmpl *template.Template
	var subject string

	switch event.Type {
	case EventBookingConfirmed:
		tmpl = confirmedTemplate
		subject = fmt.Sprintf("Booking confirmed: %s", event.VenueName)
	case EventBookingCancelled:
		tmpl = cancelledTemplate
		subject = fmt.Sprintf("Booking cancelled: %s", event.VenueName)
	default:
		return fmt.Errorf("unsupported event type: %s", event.Type)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	msg := buildMIMEMessage(s.cfg.FromEmail, to, subject, body.String())

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.InfoWithContext(ctx, "booking email sent", map[string]interface{}{
		"to":         to,
		"event_type": string(event.Type),
		"booking_id": event.BookingID.String(),
	})

	return nil
}

func buildMIMEMessage(from, to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}

// logEmailService stands in when SMTP is not configured, so local setups
// still see every notification in the log stream.
type logEmailService struct {
	log *logger.Logger
}

func NewLogEmailService(log *logger.Logger) EmailService {
	return &logEmailService{log: log}
}

func (s *logEmailService) SendBookingEmail(ctx context.Context, to string, event *BookingEvent) error {
	s.log.InfoWithContext(ctx, "booking notification (email delivery disabled)", map[string]interface{}{
		"to":          to,
		"event_type":  string(event.Type),
		"booking_ref": event.BookingRef,
		"venue":       event.VenueName,
		"start_time":  event.StartTime.Format(time.RFC3339),
	})
	return nil
}
