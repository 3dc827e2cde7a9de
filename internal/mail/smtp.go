package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/mmdpc/courierd/internal/config"
)

type smtpSender struct {
	cfg config.MailConfig
	log *zap.Logger
}

func newSMTPSender(cfg config.MailConfig, log *zap.Logger) Sender {
	return &smtpSender{cfg: cfg, log: log.Named("mail")}
}

func (s *smtpSender) Enabled() bool { return true }

func (s *smtpSender) SendConfirmation(ctx context.Context, c Confirmation) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("M&M DPC <%s>", s.cfg.Sender))
	msg.SetHeader("To", c.Email)
	msg.SetHeader("Subject", "Delivery confirmation")
	msg.SetBody("text/html", confirmationHTML(c))

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}

	s.log.Info("confirmation mail sent", zap.String("to", c.Email))
	return nil
}
