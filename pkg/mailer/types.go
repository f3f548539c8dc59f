package mailer

import "errors"

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Detail is what a relay reported about a failed send.
type Detail struct {
	Code    int
	Message string
	Details []string
}

var ErrInvalidMessage = errors.New("invalid message")
