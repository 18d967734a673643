package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/harborlaw/website/internal/db"
)

// Notifier delivers an advisory notification for a new contact submission.
// The stored row is the source of truth; delivery failure is never surfaced
// to the submitting user.
type Notifier interface {
	NotifySubmission(sub *db.ContactSubmission) error
}

// Mailer sends submission notifications over SMTP.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer builds a Mailer. Auth is used only when username is non-empty.
func NewMailer(host, port, username, password, from, to string) *Mailer {
	return &Mailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		To:       to,
		send:     smtp.SendMail,
	}
}

// NotifySubmission emails a summary of the submission to the firm inbox.
func (m *Mailer) NotifySubmission(sub *db.ContactSubmission) error {
	if m.Host == "" || m.To == "" {
		return fmt.Errorf("mailer is not configured")
	}

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	subject := fmt.Sprintf("New contact submission from %s %s", sub.FirstName, sub.LastName)
	body := buildBody(sub)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", m.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	return m.send(addr, auth, m.From, []string{m.To}, []byte(msg.String()))
}

func buildBody(sub *db.ContactSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", sub.Reference)
	fmt.Fprintf(&b, "Name: %s %s\n", sub.FirstName, sub.LastName)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	if sub.ServiceType != "" {
		fmt.Fprintf(&b, "Service: %s\n", sub.ServiceType)
	}
	b.WriteString("\n")
	b.WriteString(sub.Message)
	b.WriteString("\n")
	return b.String()
}

// NopNotifier is used when outbound mail is not configured.
type NopNotifier struct{}

// NotifySubmission does nothing and always succeeds.
func (NopNotifier) NotifySubmission(*db.ContactSubmission) error { return nil }
