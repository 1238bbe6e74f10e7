package email

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Provider abstracts the delivery channel. The SMTP provider is used in
// real environments, the mock in tests and local runs without SMTP config.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}
