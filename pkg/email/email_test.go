package email_test

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"agency-contact-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRelay is a minimal plaintext SMTP server for transport tests
type fakeRelay struct {
	listener  net.Listener
	rcptReply string
	offerAuth bool
	received  chan string
}

func startFakeRelay(t *testing.T, rcptReply string, offerAuth bool) *fakeRelay {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	relay := &fakeRelay{
		listener:  ln,
		rcptReply: rcptReply,
		offerAuth: offerAuth,
		received:  make(chan string, 4),
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go relay.serve(conn)
		}
	}()
	return relay
}

func (f *fakeRelay) hostPort() (string, string) {
	host, port, _ := net.SplitHostPort(f.listener.Addr().String())
	return host, port
}

func (f *fakeRelay) serve(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	reply := func(line string) { fmt.Fprintf(conn, "%s\r\n", line) }

	reply("220 localhost ESMTP fake")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			if f.offerAuth {
				reply("250-localhost")
				reply("250 AUTH PLAIN")
			} else {
				reply("250 localhost")
			}
		case strings.HasPrefix(cmd, "HELO"):
			reply("250 localhost")
		case strings.HasPrefix(cmd, "AUTH"):
			reply("535 5.7.8 Authentication credentials invalid")
		case strings.HasPrefix(cmd, "MAIL"):
			reply("250 2.1.0 Ok")
		case strings.HasPrefix(cmd, "RCPT"):
			reply(f.rcptReply)
		case cmd == "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			var body strings.Builder
			for {
				dataLine, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if dataLine == ".\r\n" {
					break
				}
				body.WriteString(dataLine)
			}
			f.received <- body.String()
			reply("250 2.0.0 Ok: queued")
		case cmd == "QUIT":
			reply("221 2.0.0 Bye")
			return
		default:
			reply("250 Ok")
		}
	}
}

func testMessage() *email.Message {
	return &email.Message{
		Subject:     "Neue Kontaktanfrage",
		HTMLBody:    "<!DOCTYPE html><p>Hallo</p>",
		FromName:    "Nordlicht Digital",
		FromAddress: "hallo@nordlicht-digital.de",
		To:          "anfragen@nordlicht-digital.de",
		ReplyTo:     "max@example.com",
	}
}

func TestSMTPSender_Send(t *testing.T) {
	t.Run("Should deliver message", func(t *testing.T) {
		relay := startFakeRelay(t, "250 2.1.5 Ok", false)
		host, port := relay.hostPort()
		sender := email.NewSMTPSender(email.SMTPConfig{Host: host, Port: port, Timeout: 2 * time.Second})

		require.NoError(t, sender.Send(context.Background(), testMessage()))

		select {
		case body := <-relay.received:
			assert.Contains(t, body, "Reply-To: <max@example.com>")
			assert.Contains(t, body, "Hallo")
		case <-time.After(2 * time.Second):
			t.Fatal("relay did not receive message")
		}
	})

	t.Run("Should report rejected recipient", func(t *testing.T) {
		relay := startFakeRelay(t, "550 5.1.1 Mailbox unavailable", false)
		host, port := relay.hostPort()
		sender := email.NewSMTPSender(email.SMTPConfig{Host: host, Port: port, Timeout: 2 * time.Second})

		err := sender.Send(context.Background(), testMessage())

		var transportErr *email.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "rcpt", transportErr.Op)
	})

	t.Run("Should not leak password on auth failure", func(t *testing.T) {
		relay := startFakeRelay(t, "250 2.1.5 Ok", true)
		host, port := relay.hostPort()
		sender := email.NewSMTPSender(email.SMTPConfig{
			Host:     host,
			Port:     port,
			Username: "mailer",
			Password: "s3cr3t-passw0rd",
			Timeout:  2 * time.Second,
		})

		err := sender.Send(context.Background(), testMessage())

		var transportErr *email.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "auth", transportErr.Op)
		assert.NotContains(t, err.Error(), "s3cr3t-passw0rd")
	})

	t.Run("Should fail on unreachable relay", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		host, port, _ := net.SplitHostPort(ln.Addr().String())
		ln.Close()

		sender := email.NewSMTPSender(email.SMTPConfig{Host: host, Port: port, Timeout: time.Second})
		err = sender.Send(context.Background(), testMessage())

		var transportErr *email.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "dial", transportErr.Op)
	})

	t.Run("Should fail lazily when unconfigured", func(t *testing.T) {
		sender := email.NewSMTPSender(email.SMTPConfig{})
		assert.False(t, sender.IsConfigured())

		err := sender.Send(context.Background(), testMessage())
		assert.True(t, errors.Is(err, email.ErrNotConfigured))
	})
}
