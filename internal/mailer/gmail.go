package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"homeRental/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/gomail.v2"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587
)

// GmailTransport sends through Gmail SMTP, authenticating with an OAuth2 access
// token minted from a long-lived refresh token.
type GmailTransport struct {
	user   string
	tokens oauth2.TokenSource
}

func NewGmailTransport(cfg config.Gmail) (*GmailTransport, error) {
	return newGmailTransport(cfg, google.Endpoint)
}

func newGmailTransport(cfg config.Gmail, endpoint oauth2.Endpoint) (*GmailTransport, error) {
	if cfg.User == "" || cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, errors.New("gmail transport needs user, client id, client secret and refresh token")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  "https://developers.google.com/oauthplayground",
	}

	src := oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.RefreshToken})

	return &GmailTransport{
		user:   cfg.User,
		tokens: oauth2.ReuseTokenSource(nil, src),
	}, nil
}

func (t *GmailTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return sendWithin(ctx, func() error {
		token, err := t.tokens.Token()
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}

		d := gomail.NewDialer(gmailHost, gmailPort, t.user, "")
		d.Auth = &xoauth2Auth{user: t.user, accessToken: token.AccessToken}

		return d.DialAndSend(buildMessage(msg))
	})
}

type xoauth2Auth struct {
	user        string
	accessToken string
}

func (a *xoauth2Auth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	resp := "user=" + a.user + "\x01auth=Bearer " + a.accessToken + "\x01\x01"
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// the server sends a JSON error challenge before failing the exchange
		return nil, fmt.Errorf("xoauth2 rejected: %s", fromServer)
	}
	return nil, nil
}
