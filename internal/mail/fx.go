package mail

import (
	"context"
	"errors"

	"github.com/mmdpc/courierd/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("mail",
	fx.Provide(New),
)

func New(cfg config.Config, log *zap.Logger) Sender {
	if !cfg.MailEnabled() {
		log.Info("mail provider not configured, confirmations disabled")
		return Disabled{}
	}
	return newSMTPSender(cfg.Mail, log)
}

// Disabled is the no-provider sender: deliveries complete with a
// "not sent" mail status.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) SendConfirmation(ctx context.Context, c Confirmation) error {
	return errors.New("mail: no provider configured")
}
