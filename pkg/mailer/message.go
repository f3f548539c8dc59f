package mailer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
	"google.golang.org/api/googleapi"
)

// buildMsg turns msg into a go-mail message with Date and Message-ID set.
func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidMessage, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	m.SetDate()
	m.SetMessageID()
	return m, nil
}

// Render returns msg as an RFC 5322 document.
func Render(msg Message) ([]byte, error) {
	m, err := buildMsg(msg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render message: %w", err)
	}
	return buf.Bytes(), nil
}

// DescribeError extracts relay details from a send failure.
func DescribeError(err error) Detail {
	if err == nil {
		return Detail{}
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		d := Detail{Code: gErr.Code, Message: gErr.Message}
		for _, item := range gErr.Errors {
			d.Details = append(d.Details, item.Reason+": "+item.Message)
		}
		return d
	}

	var sErr *mail.SendError
	if errors.As(err, &sErr) {
		return Detail{Message: err.Error(), Details: []string{sErr.Reason.String()}}
	}

	return Detail{Message: err.Error()}
}
