package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<p>Hi {{.Name}},</p>
<p>Thanks for signing up to Movies Watchlist. Please confirm your email
address by clicking the link below. The link is valid for one hour.</p>
<p><a href="{{.ConfirmURL}}">Confirm your email address</a></p>
<p>If you did not register, you can ignore this email.</p>
`))

// Mailer dispatches emails over SSL SMTP. Dispatch is synchronous; a failure
// fails the surrounding request.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) *Mailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.User, config.Password)
	dialer.SSL = config.UseSSL

	return &Mailer{
		dialer: dialer,
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *Mailer) SendConfirmation(ctx context.Context, toEmail, name, confirmURL string) error {
	var body bytes.Buffer
	err := confirmationTemplate.Execute(&body, struct {
		Name       string
		ConfirmURL string
	}{Name: name, ConfirmURL: confirmURL})
	if err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Confirm Your Email Address")
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("to", toEmail))
		return fmt.Errorf("send confirmation email: %w", err)
	}

	m.log.Info("Confirmation email sent", zap.String("to", toEmail))

	return nil
}
