package mailer

import "context"

// Sender delivers one plain-text message. Implementations hold their credentials
// for the life of the process and are safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	// Verify authenticates against the relay once so bad credentials surface at startup.
	Verify(ctx context.Context) error
}
