package email

import "context"

// Sender is the interface that all email transports must implement.
type Sender interface {
	// Send delivers msg with exactly one attempt.
	Send(ctx context.Context, msg *Message) error
}

// Message represents a rendered email ready for delivery.
type Message struct {
	Subject     string
	HTMLBody    string // complete HTML document with inline CSS
	FromName    string // display name
	FromAddress string
	To          string
	ReplyTo     string // empty when absent
}

// RenderedPair holds the two messages produced for one submission.
type RenderedPair struct {
	Notification *Message // to the agency inbox, Reply-To set to the visitor
	Confirmation *Message // to the visitor
}
