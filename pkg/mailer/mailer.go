// Package mailer provides SMTP message delivery with optional configuration.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured indicates SMTP credentials are not configured.
var ErrNotConfigured = errors.New("smtp delivery not configured")

// Message represents an outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// System delivers email messages.
type System interface {
	// Send delivers the message over SMTP. Returns ErrNotConfigured
	// when SMTP credentials are absent.
	Send(ctx context.Context, msg Message) error
	// Recipient returns the configured delivery address.
	Recipient() string
}

type smtpMailer struct {
	cfg    *Config
	logger *slog.Logger
}

// New creates a mailer system from the given configuration.
func New(cfg *Config, logger *slog.Logger) System {
	return &smtpMailer{
		cfg:    cfg,
		logger: logger.With("system", "mailer"),
	}
}

func (m *smtpMailer) Recipient() string {
	return m.cfg.Recipient
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}

	message := mail.NewMsg()
	if err := message.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(
		m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	m.logger.Info("message delivered", "to", msg.To, "subject", msg.Subject)
	return nil
}
