package service

import (
	"fmt"
	"net/smtp"

	"event-portal-backend/internal/config"
	"event-portal-backend/internal/logger"
)

// TicketEmail carries everything a ticket confirmation message needs
type TicketEmail struct {
	RecipientName string
	EventName     string
	TicketID      string
	TeamName      string
}

// TicketNotifier sends ticket confirmations. Callers invoke it after commit,
// in a goroutine; a failed send is logged and never unwinds the registration.
type TicketNotifier interface {
	SendTicketEmail(to string, email TicketEmail) error
}

// SMTPNotifier sends ticket emails through a configured SMTP relay
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// Ensure SMTPNotifier implements TicketNotifier
var _ TicketNotifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier creates an SMTP-backed notifier from config
func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// SendTicketEmail sends a ticket confirmation to a single recipient
func (n *SMTPNotifier) SendTicketEmail(to string, email TicketEmail) error {
	body := fmt.Sprintf("Hi %s,\r\n\r\nYour ticket for %s is confirmed.\r\nTicket ID: %s\r\n",
		email.RecipientName, email.EventName, email.TicketID)
	if email.TeamName != "" {
		body += fmt.Sprintf("Team: %s\r\n", email.TeamName)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Ticket confirmed: %s\r\n\r\n%s",
		n.from, to, email.EventName, body)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}
	addr := fmt.Sprintf("%s:%s", n.host, n.port)
	if err := smtp.SendMail(addr, auth, n.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send ticket email: %w", err)
	}
	return nil
}

// LogNotifier writes ticket confirmations to the log instead of sending them.
// Used in development and tests, and whenever SMTP_HOST is unset.
type LogNotifier struct {
	log *logger.Logger
}

// Ensure LogNotifier implements TicketNotifier
var _ TicketNotifier = (*LogNotifier)(nil)

// NewLogNotifier creates a log-only notifier
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendTicketEmail logs the ticket confirmation
func (n *LogNotifier) SendTicketEmail(to string, email TicketEmail) error {
	n.log.WithFields(map[string]interface{}{
		"to":        to,
		"event":     email.EventName,
		"ticket_id": email.TicketID,
		"team":      email.TeamName,
	}).Info("ticket email (log only)")
	return nil
}

// NewTicketNotifier picks the SMTP notifier when a relay is configured and
// falls back to log-only otherwise.
func NewTicketNotifier(cfg *config.Config, log *logger.Logger) TicketNotifier {
	if cfg.SMTPHost != "" {
		return NewSMTPNotifier(cfg)
	}
	return NewLogNotifier(log)
}
