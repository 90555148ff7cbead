package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"

	"github.com/wneessen/go-mail"

	"fastship/internal/entities"
	"fastship/internal/pkg/config"
)

//go:embed templates/*.html
var templateFS embed.FS

var kindTemplates = map[entities.NotificationKind]string{
	entities.NotificationAccountVerify:  "templates/account_verify.html",
	entities.NotificationShipmentPlaced: "templates/shipment_placed.html",
	entities.NotificationReviewRequest:  "templates/review_request.html",
	entities.NotificationOverdueAlert:   "templates/overdue_alert.html",
}

// Mailer renders notifications into HTML bodies and delivers them over
// SMTP.
type Mailer struct {
	client    *mail.Client
	from      string
	templates *template.Template
}

func New(cfg *config.Mail) (*Mailer, error) {
	client, err := mail.NewClient(
		cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}

	return &Mailer{
		client:    client,
		from:      cfg.From,
		templates: templates,
	}, nil
}

func (m *Mailer) Send(notification entities.Notification) error {
	body, err := m.render(notification)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail from %q: %w", m.from, err)
	}
	if err := msg.To(notification.Recipient); err != nil {
		return fmt.Errorf("mail to %q: %w", notification.Recipient, err)
	}
	msg.Subject(notification.Subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *Mailer) render(notification entities.Notification) (string, error) {
	name, ok := kindTemplates[notification.Kind]
	if !ok {
		return "", fmt.Errorf("no template for notification kind %q", notification.Kind)
	}

	var buf bytes.Buffer
	err := m.templates.ExecuteTemplate(&buf, path.Base(name), notification.Context)
	if err != nil {
		return "", fmt.Errorf("render %q: %w", name, err)
	}
	return buf.String(), nil
}
