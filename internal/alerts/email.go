package alerts

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
)

// EmailConfig holds SMTP delivery configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From defaults to Username
	From string
	To   []string
}

type emailNotifier struct {
	addr   string
	auth   smtp.Auth
	from   string
	to     []string
	sender adapter.SMTPSender
}

// NewEmailNotifier creates an SMTP notifier.
// It returns domain.ErrNotifierDisabled when the host or recipients are missing.
func NewEmailNotifier(cfg EmailConfig, sender adapter.SMTPSender) (Notifier, error) {
	if cfg.Host == "" || len(cfg.To) == 0 {
		return nil, domain.ErrNotifierDisabled
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if from == "" {
		return nil, fmt.Errorf("%w: smtp sender address is required", domain.ErrNotifierDisabled)
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &emailNotifier{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:   auth,
		from:   from,
		to:     cfg.To,
		sender: sender,
	}, nil
}

func (n *emailNotifier) Channel() domain.Channel {
	return domain.ChannelEmail
}

func (n *emailNotifier) Send(ctx context.Context, alert Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildEmail(n.from, n.to, alert.Subject, alert.Message+"\n\n"+alert.Breakdown())
	if err := n.sender.SendMail(n.addr, n.auth, n.from, n.to, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildEmail renders a plain-text RFC 5322 message
func buildEmail(from string, to []string, subject, body string) []byte {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, sanitizeHeader(addr))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", sanitizeHeader(from))
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", sanitizeHeader(subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	buf.WriteString("\r\n")
	return buf.Bytes()
}

// sanitizeHeader folds CR and LF so a founder name cannot inject headers
func sanitizeHeader(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool {
		return r == '\r' || r == '\n'
	}), " ")
}
