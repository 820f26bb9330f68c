package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"catering/pkg/logger"

	"github.com/google/uuid"
)

// Mailer delivers a single message through some transport.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTP security modes
const (
	SecuritySTARTTLS = "starttls"
	SecurityTLS      = "tls"
	SecurityNone     = "none"
)

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Security string
	Timeout  time.Duration
}

// SMTPMailer sends mail through an authenticated relay
type SMTPMailer struct {
	config SMTPConfig
	addr   string
	auth   smtp.Auth
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config SMTPConfig) (*SMTPMailer, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}

	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPMailer{
		config: config,
		addr:   net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		auth:   auth,
	}, nil
}

// validateSMTPConfig validates SMTP configuration
func validateSMTPConfig(config SMTPConfig) error {
	if config.Host == "" {
		return errors.New("SMTP host is required")
	}

	if config.Port <= 0 || config.Port > 65535 {
		return errors.New("SMTP port must be between 1 and 65535")
	}

	switch config.Security {
	case SecuritySTARTTLS, SecurityTLS, SecurityNone:
	default:
		return fmt.Errorf("unknown SMTP security mode %q", config.Security)
	}

	return nil
}

// Send delivers msg over a fresh SMTP session
func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	from, to, err := msg.envelope()
	if err != nil {
		return err
	}

	raw, err := buildMessage(msg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	client, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if s.config.Security == SecuritySTARTTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errors.New("failed to start TLS: server does not support STARTTLS")
		}
		if err := client.StartTLS(s.tlsConfig()); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.auth != nil && s.shouldAuth(client) {
		if err := client.Auth(s.auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}

// dial opens the connection, applies the session deadline and, for implicit
// TLS, wraps it before the greeting is read.
func (s *SMTPMailer) dial(ctx context.Context) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: s.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	deadline := time.Now().Add(s.config.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set SMTP deadline: %w", err)
	}

	if s.config.Security == SecurityTLS {
		conn = tls.Client(conn, s.tlsConfig())
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return client, nil
}

// shouldAuth reports whether to authenticate. Plain relays (local test
// servers) are only authenticated when they advertise AUTH.
func (s *SMTPMailer) shouldAuth(client *smtp.Client) bool {
	if s.config.Security != SecurityNone {
		return true
	}
	ok, _ := client.Extension("AUTH")
	return ok
}

func (s *SMTPMailer) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName: s.config.Host,
		MinVersion: tls.VersionTLS12,
	}
}

// buildMessage creates the email message with proper headers
func buildMessage(msg Message, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, "From", msg.From)
	writeHeader(&buf, "To", msg.To)
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("UTF-8", msg.Subject))
	writeHeader(&buf, "Date", now.Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), messageDomain(msg.From)))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", "text/html; charset=UTF-8")
	writeHeader(&buf, "Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("\r\n")

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

// messageDomain returns the sender's domain for the Message-ID header
func messageDomain(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		if i := strings.LastIndex(addr.Address, "@"); i >= 0 && i < len(addr.Address)-1 {
			return addr.Address[i+1:]
		}
	}
	return "localhost"
}

// LogMailer logs messages instead of delivering them. Used for local
// development with MAIL_DRIVER=log.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer creates a new log-only mailer
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the message and always succeeds
func (s *LogMailer) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "📧 [LOG] Email not delivered (log driver)",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTMLBody),
	)
	s.log.DebugContext(ctx, "📧 [LOG] HTML body", "html", msg.HTMLBody)
	return nil
}
