// Package mailer decouples email dispatch from the request/response cycle.
// Handlers enqueue messages onto a Redis-backed queue and return
// immediately; a separate worker process drains the queue and talks SMTP.
// Delivery failures never propagate back to the request that caused them.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"storefront-backend/internal/logger"
)

// Message is one outbound email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Enqueuer accepts messages for asynchronous delivery.
type Enqueuer interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Sender performs the actual delivery of one message.
type Sender interface {
	Send(msg Message) error
}

// SMTPConfig carries the connection settings for SMTPSender.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPSender delivers messages over SMTP with STARTTLS.
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

// Send delivers one message
func (s *SMTPSender) Send(msg Message) error {
	from := s.config.From
	if from == "" {
		from = s.config.Username
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		from, msg.To, msg.Subject, msg.Body)

	addr := s.config.Host + ":" + s.config.Port
	var auth smtp.Auth
	if s.config.Username != "" && s.config.Password != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	if err := smtp.SendMail(addr, auth, from, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// LogSender logs messages instead of delivering them. Used in development
// and tests where no SMTP credentials are configured.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a sender that only logs
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the message
func (s *LogSender) Send(msg Message) error {
	s.log.WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("email delivery skipped (no SMTP configured)")
	return nil
}
