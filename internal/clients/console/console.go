package console

import (
	"context"
	"log/slog"

	"github.com/samandr77/microservices/identity/internal/entity"
)

const providerName = "console"

// Transport writes messages to the log instead of delivering them. Meant for
// local development only, since message bodies carry one-time codes.
type Transport struct {
	l *slog.Logger
}

func New(l *slog.Logger) *Transport {
	return &Transport{l: l.WithGroup("console_transport")}
}

func (t *Transport) SendSMS(ctx context.Context, phone, message string) (entity.DeliveryReceipt, error) {
	t.l.InfoContext(ctx, "SMS", "to", phone, "message", message)
	return entity.DeliveryReceipt{Provider: providerName}, nil
}

func (t *Transport) SendEmail(ctx context.Context, to, subject, message string) (entity.DeliveryReceipt, error) {
	t.l.InfoContext(ctx, "Email", "to", to, "subject", subject, "message", message)
	return entity.DeliveryReceipt{Provider: providerName}, nil
}
