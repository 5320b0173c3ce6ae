// Package mailer delivers HTML email through a transport chosen by configuration.
// Delivery is best-effort: callers log a returned error and carry on.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"homeRental/internal/config"
)

const (
	TransportSMTP  = "smtp"
	TransportGmail = "gmail"
	TransportAPI   = "api"
	TransportLog   = "log"
)

var ErrNoRecipient = errors.New("recipient address is empty")

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Transport hands a fully built message to a delivery backend.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

type Mailer struct {
	log       *slog.Logger
	from      string
	timeout   time.Duration
	transport Transport
}

func New(log *slog.Logger, cfg config.Mailer) (*Mailer, error) {
	const op = "mailer.New"

	transport, err := newTransport(log, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithTransport(log, cfg, transport), nil
}

func NewWithTransport(log *slog.Logger, cfg config.Mailer, transport Transport) *Mailer {
	from := cfg.From
	if cfg.FromName != "" {
		from = (&mail.Address{Name: cfg.FromName, Address: cfg.From}).String()
	}

	return &Mailer{
		log:       log,
		from:      from,
		timeout:   cfg.Timeout,
		transport: transport,
	}
}

func newTransport(log *slog.Logger, cfg config.Mailer) (Transport, error) {
	switch cfg.Transport {
	case TransportSMTP:
		return NewSMTPTransport(cfg.SMTP)
	case TransportGmail:
		return NewGmailTransport(cfg.Gmail)
	case TransportAPI:
		return NewAPITransport(cfg.API, cfg.Timeout)
	case TransportLog, "":
		return NewLogTransport(log), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.Transport)
	}
}

func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	const op = "mailer.Send"

	if to == "" {
		return fmt.Errorf("%s: %w", op, ErrNoRecipient)
	}

	msg := Message{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := m.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.log.Info("email sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

// SendTemplate renders one of the named templates and sends the result.
func (m *Mailer) SendTemplate(ctx context.Context, to, subject, name string, data any) error {
	const op = "mailer.SendTemplate"

	body, err := Render(name, data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return m.Send(ctx, to, subject, body)
}
