// Package email sends alert emails over SMTP.
package email

import (
	"context"
	"log/slog"

	"hivewatch/config"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"

	"gopkg.in/gomail.v2"
)

const gpsAlertSubject = "Alerte deplacement GPS"

// dialer is the part of *gomail.Dialer used by the mailer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer implements service.EmailSender and service.AlertMailer.
type Mailer struct {
	dialer      dialer
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

// NewMailer builds an SMTP mailer. A disabled or unconfigured transport returns ErrEmailDisabled on send.
func NewMailer(cfg *config.Config, logger *slog.Logger) *Mailer {
	m := &Mailer{logger: logger}

	ec := cfg.Email
	if ec == nil || !ec.Enabled || ec.Host == "" {
		logger.Info("Email transport disabled")

		return m
	}

	m.dialer = gomail.NewDialer(ec.Host, ec.Port, ec.Username, ec.Password)
	m.fromAddress = ec.FromAddress
	if m.fromAddress == "" {
		m.fromAddress = ec.Username
	}
	m.fromName = ec.FromName

	return m
}

// NewAlertMailer exposes the mailer as the alert port for fx.
func NewAlertMailer(m *Mailer) service.AlertMailer {
	return m
}

// NewEmailSender exposes the mailer as the raw email port for fx.
func NewEmailSender(m *Mailer) service.EmailSender {
	return m
}

// Send delivers one HTML email.
func (m *Mailer) Send(ctx context.Context, msg service.EmailMessage) error {
	if m.dialer == nil {
		return service.ErrEmailDisabled
	}
	if msg.To == "" {
		return errors.New("email recipient is empty")
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	gm := gomail.NewMessage()
	if m.fromName != "" {
		gm.SetAddressHeader("From", m.fromAddress, m.fromName)
	} else {
		gm.SetHeader("From", m.fromAddress)
	}
	if msg.ToName != "" {
		gm.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		gm.SetHeader("To", msg.To)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", msg.To)
	}

	m.logger.DebugContext(ctx, "[Email] Sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}

// SendGPSAlert renders the GPS displacement email and sends it.
func (m *Mailer) SendGPSAlert(ctx context.Context, mail service.GPSAlertEmail) error {
	if m.dialer == nil {
		return service.ErrEmailDisabled
	}

	body, err := RenderGPSAlert(mail)
	if err != nil {
		return err
	}

	return m.Send(ctx, service.EmailMessage{
		To:       mail.To,
		ToName:   mail.RecipientName,
		Subject:  gpsAlertSubject,
		HTMLBody: body,
	})
}
