// Package mail delivers the password reset email.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"

	"github.com/heartmarshall/delicious-backend/internal/config"
)

const resetSubject = "Password Reset"

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif;">
	<h2>Password Reset</h2>
	<p>You are receiving this email because a password reset was requested for your account.</p>
	<p><a href="{{.URL}}">Reset my password</a></p>
	<p>If you did not request this, you can ignore this email. The link expires in one hour.</p>
</body>
</html>
`))

// LogMailer writes reset links to the application log instead of sending
// them. It is the default for local development.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{log: logger.With("adapter", "mail")}
}

// SendPasswordReset logs the reset URL for the recipient.
func (m *LogMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	m.log.InfoContext(ctx, "password reset email",
		slog.String("to", to),
		slog.String("reset_url", resetURL),
	)
	return nil
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends HTML mail through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	addr string
	host string
	from string
	auth smtp.Auth
	send sendFunc
}

// NewSMTPMailer creates an SMTPMailer from the mail config.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		host: cfg.Host,
		from: cfg.From,
		auth: auth,
		send: smtp.SendMail,
	}
}

// SendPasswordReset renders the reset email and hands it to the relay.
// net/smtp has no context support, so ctx is only checked up front.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from, err := mail.ParseAddress(m.from)
	if err != nil {
		return fmt.Errorf("mail: parse from %q: %w", m.from, err)
	}
	rcpt, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("mail: parse to: %w", err)
	}

	msg, err := buildMessage(from, rcpt, resetURL)
	if err != nil {
		return err
	}

	if err := m.send(m.addr, m.auth, from.Address, []string{rcpt.Address}, msg); err != nil {
		return fmt.Errorf("mail: send to %s: %w", m.host, err)
	}
	return nil
}

func buildMessage(from, to *mail.Address, resetURL string) ([]byte, error) {
	var body bytes.Buffer
	if err := resetTemplate.Execute(&body, struct{ URL string }{resetURL}); err != nil {
		return nil, fmt.Errorf("mail: render: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from.String())
	fmt.Fprintf(&msg, "To: %s\r\n", to.String())
	fmt.Fprintf(&msg, "Subject: %s\r\n", resetSubject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
