package notify

import (
	"bytes"
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"dps.app/disease-prediction/internal/core"
)

// Mailer sends result emails over authenticated SMTP with mandatory STARTTLS.
type Mailer struct {
	host       string
	port       int
	username   string
	password   string
	senderName string
	webAppURL  string
	log        *zap.SugaredLogger
}

func NewMailer(host string, port int, username, password, senderName, webAppURL string, log *zap.SugaredLogger) *Mailer {
	return &Mailer{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		senderName: senderName,
		webAppURL:  webAppURL,
		log:        log,
	}
}

// Send composes the HTML result email, attaches the PDF report, and submits
// it. Any transport or authentication failure is returned to the caller; the
// pipeline treats it as non-fatal.
func (m *Mailer) Send(ctx context.Context, n core.Notification) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.senderName, m.username); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.Recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subjectFor(n.Disease))
	msg.SetBodyString(mail.TypeTextHTML, htmlBody(n, m.webAppURL))

	if len(n.Report) > 0 {
		filename := fmt.Sprintf("Disease_Prediction_Report_%s.pdf", n.ReportID)
		if err := msg.AttachReader(filename, bytes.NewReader(n.Report)); err != nil {
			return fmt.Errorf("failed to attach report: %w", err)
		}
	}

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.log.Infow("result email sent", "recipient", n.Recipient, "report_id", n.ReportID)
	return nil
}
