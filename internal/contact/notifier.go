package contact

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	mail "github.com/wneessen/go-mail"
)

// Notifier announces a stored message to the site owners.
type Notifier interface {
	Notify(ctx context.Context, msg *Message) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, msg *Message) error

// Notify implements Notifier.
func (fn NotifierFunc) Notify(ctx context.Context, msg *Message) error {
	return fn(ctx, msg)
}

// Email is a rendered notification.
type Email struct {
	Subject string
	Text    string
	HTML    string
	ReplyTo string
}

// BuildEmail renders the notification sent for msg.
func BuildEmail(msg *Message) Email {
	return Email{
		Subject: "New Contact Form: " + msg.Subject,
		Text:    buildText(msg),
		HTML:    buildHTML(msg),
		ReplyTo: msg.Email,
	}
}

func buildText(msg *Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n", msg.Subject)
	b.WriteString("Message:\n")
	b.WriteString(msg.Body)
	b.WriteString("\n")
	return b.String()
}

func buildHTML(msg *Message) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>\n", html.EscapeString(msg.Subject))
	b.WriteString("<h3>Message:</h3>\n")
	body := strings.ReplaceAll(html.EscapeString(msg.Body), "\r\n", "\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(body, "\n", "<br>"))
	return b.String()
}

// MailConfig configures the SMTP transport.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
	Timeout  time.Duration
}

func (c MailConfig) configured() bool {
	return strings.TrimSpace(c.Host) != "" && strings.TrimSpace(c.From) != "" && strings.TrimSpace(c.To) != ""
}

// MailNotifier delivers notifications over SMTP with go-mail. A client is
// dialled per message.
type MailNotifier struct {
	cfg MailConfig
}

// NewMailNotifier returns a notifier for cfg. Missing settings are reported
// when sending, not here.
func NewMailNotifier(cfg MailConfig) *MailNotifier {
	return &MailNotifier{cfg: cfg}
}

// Notify implements Notifier.
func (n *MailNotifier) Notify(ctx context.Context, msg *Message) error {
	if !n.cfg.configured() {
		return ErrMailNotConfigured
	}
	m, err := n.message(msg)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(strings.TrimSpace(n.cfg.Host), n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("contact: mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("contact: send mail: %w", err)
	}
	return nil
}

func (n *MailNotifier) message(msg *Message) (*mail.Msg, error) {
	email := BuildEmail(msg)
	m := mail.NewMsg()
	if err := m.From(strings.TrimSpace(n.cfg.From)); err != nil {
		return nil, fmt.Errorf("contact: mail from: %w", err)
	}
	if err := m.To(splitAddresses(n.cfg.To)...); err != nil {
		return nil, fmt.Errorf("contact: mail to: %w", err)
	}
	if email.ReplyTo != "" {
		// A malformed submitter address only loses the Reply-To header.
		_ = m.ReplyTo(email.ReplyTo)
	}
	m.Subject(email.Subject)
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, email.Text)
	m.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	return m, nil
}

func (n *MailNotifier) clientOptions() []mail.Option {
	port := n.cfg.Port
	if port <= 0 {
		port = 587
	}
	opts := []mail.Option{mail.WithPort(port)}
	if port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if n.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.User),
			mail.WithPassword(n.cfg.Password),
		)
	}
	if n.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(n.cfg.Timeout))
	}
	return opts
}

func splitAddresses(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
