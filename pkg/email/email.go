package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"
)

const defaultTimeout = 10 * time.Second

// SMTPConfig holds the relay connection parameters
type SMTPConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	Timeout     time.Duration // bounds dial and the whole conversation
	ImplicitTLS bool          // SMTPS instead of STARTTLS
}

// SMTPSender delivers messages through an SMTP relay, one connection per message.
// Construction never contacts the relay; a bad configuration surfaces on the first Send.
type SMTPSender struct {
	cfg SMTPConfig
	now func() time.Time
}

// NewSMTPSender creates a sender bound to cfg for the process lifetime
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &SMTPSender{cfg: cfg, now: time.Now}
}

// IsConfigured checks if the sender has a relay host to talk to
func (s *SMTPSender) IsConfigured() bool {
	return s.cfg.Host != ""
}

// Send makes exactly one delivery attempt for msg
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return &TransportError{Op: "dial", Err: ErrNotConfigured}
	}

	raw, err := msg.Bytes(s.now())
	if err != nil {
		return s.fail("encode", err)
	}

	deadline := time.Now().Add(s.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{Timeout: s.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return s.fail("dial", err)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return s.fail("dial", err)
	}

	tlsConfig := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	if s.cfg.ImplicitTLS {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return s.fail("dial", err)
	}
	defer client.Close()

	if !s.cfg.ImplicitTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return s.fail("starttls", err)
			}
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return s.fail("auth", err)
		}
	}

	if err := client.Mail(msg.FromAddress); err != nil {
		return s.fail("mail", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return s.fail("rcpt", err)
	}

	w, err := client.Data()
	if err != nil {
		return s.fail("data", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return s.fail("data", err)
	}
	if err := w.Close(); err != nil {
		return s.fail("data", err)
	}

	// The relay accepted the message; a failing QUIT does not undo that.
	_ = client.Quit()
	return nil
}

func (s *SMTPSender) fail(op string, err error) error {
	return &TransportError{Op: op, Host: fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port), Err: err}
}
