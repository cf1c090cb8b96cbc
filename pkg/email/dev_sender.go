package email

import (
	"context"
	"log/slog"
)

// devSender implements EmailSender for local development: it logs the email
// instead of sending it through a provider.
type devSender struct {
	log *slog.Logger
}

// NewDevSender creates a development email sender that logs deliveries.
func NewDevSender(log *slog.Logger) EmailSender {
	if log == nil {
		log = slog.Default()
	}
	return &devSender{log: log}
}

func (d *devSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	d.log.InfoContext(ctx, "dev email delivery",
		slog.String("send_to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
	)
	return nil
}
