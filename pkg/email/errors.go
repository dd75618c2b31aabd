package email

import (
	"errors"
	"fmt"
)

var ErrNotConfigured = errors.New("email: smtp host is not configured")

// TransportError describes a failed SMTP step.
// It carries the relay host and the failing step, never credentials.
type TransportError struct {
	Op   string // dial, starttls, auth, mail, rcpt, data, encode
	Host string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("smtp %s %s: %v", e.Op, e.Host, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
