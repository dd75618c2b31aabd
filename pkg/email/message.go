package email

import (
	"bytes"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// Bytes encodes the message as an RFC 5322 document with a quoted-printable HTML body.
func (m *Message) Bytes(now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	from := mail.Address{Name: sanitizeHeader(m.FromName), Address: sanitizeHeader(m.FromAddress)}
	to := mail.Address{Address: sanitizeHeader(m.To)}

	writeHeader(&buf, "From", from.String())
	writeHeader(&buf, "To", to.String())
	if m.ReplyTo != "" {
		replyTo := mail.Address{Address: sanitizeHeader(m.ReplyTo)}
		writeHeader(&buf, "Reply-To", replyTo.String())
	}
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("UTF-8", sanitizeHeader(m.Subject)))
	writeHeader(&buf, "Date", now.Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(m.FromAddress)))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", "text/html; charset=UTF-8")
	writeHeader(&buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(m.HTMLBody)); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

// sanitizeHeader drops CR/LF so visitor input cannot inject headers
func sanitizeHeader(s string) string {
	return headerSanitizer.Replace(s)
}

func domainOf(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		return sanitizeHeader(address[at+1:])
	}
	return "localhost"
}
