package mailer

import (
	"context"
	"errors"
	"fmt"

	"homeRental/internal/config"

	"gopkg.in/gomail.v2"
)

type SMTPTransport struct {
	dialer *gomail.Dialer
}

func NewSMTPTransport(cfg config.SMTP) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid smtp port: %d", cfg.Port)
	}

	return &SMTPTransport{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return sendWithin(ctx, func() error {
		return t.dialer.DialAndSend(buildMessage(msg))
	})
}

// sendWithin stops waiting for send once ctx is done. gomail sets no read
// deadline, so an abandoned send ends only when the server answers or drops
// the connection.
func sendWithin(ctx context.Context, send func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- send()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("send abandoned: %w", ctx.Err())
	}
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	return m
}
