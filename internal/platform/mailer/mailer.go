// Package mailer sends newsletter mail over SMTP using go-mail.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// sender is the part of *mail.Client the mailer uses.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	ImplicitTLS bool
}

// Mailer delivers one message to a list of recipients per call. It does not
// retry; a failed send is returned to the caller.
type Mailer struct {
	client sender
	from   string
	logger *slog.Logger
}

// New builds an SMTP client from cfg. No connection is made until the first send.
func New(cfg Config, logger *slog.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.ImplicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: failed to create smtp client: %w", err)
	}
	return newWithSender(client, cfg.From, logger), nil
}

func newWithSender(client sender, from string, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{
		client: client,
		from:   from,
		logger: logger.With(slog.String("component", "mailer")),
	}
}

// Send delivers one plain-text message to every recipient, blind-copied and
// addressed to the sender, and returns the generated Message-ID.
func (m *Mailer) Send(ctx context.Context, to []string, subject, body string) (string, error) {
	if len(to) == 0 {
		return "", errors.New("mailer: no recipients")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return "", fmt.Errorf("mailer: invalid sender address: %w", err)
	}
	// Recipients go in Bcc so subscribers never see each other's addresses.
	if err := msg.To(m.from); err != nil {
		return "", fmt.Errorf("mailer: invalid sender address: %w", err)
	}
	if err := msg.Bcc(to...); err != nil {
		return "", fmt.Errorf("mailer: invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	msg.SetMessageID()

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("mailer: send failed: %w", err)
	}

	var messageID string
	if ids := msg.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		messageID = ids[0]
	}

	m.logger.Info("mail sent",
		slog.String("message_id", messageID),
		slog.Int("recipients", len(to)))
	return messageID, nil
}
