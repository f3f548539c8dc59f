package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type gmailSender struct {
	service     *gmail.Service
	tokenSource oauth2.TokenSource
}

// NewGmailFromCredentialsJSON creates a Sender that posts through the Gmail API as
// mailbox, using a service account with domain-wide delegation.
func NewGmailFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, mailbox string) (Sender, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}
	config.Subject = mailbox

	tokenSource := oauth2.ReuseTokenSource(nil, config.TokenSource(ctx))
	svc, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &gmailSender{service: svc, tokenSource: tokenSource}, nil
}

// NewGmailFromHTTP creates a Gmail Sender from a pre-configured HTTP client.
func NewGmailFromHTTP(ctx context.Context, httpClient *http.Client) (Sender, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &gmailSender{service: svc}, nil
}

func (s *gmailSender) Verify(ctx context.Context) error {
	if s.tokenSource == nil {
		return nil
	}
	if _, err := s.tokenSource.Token(); err != nil {
		return fmt.Errorf("failed to obtain gmail access token: %w", err)
	}
	return nil
}

func (s *gmailSender) Send(ctx context.Context, msg Message) error {
	raw, err := Render(msg)
	if err != nil {
		return err
	}

	_, err = s.service.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
