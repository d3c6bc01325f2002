package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/identity/internal/entity"
)

const providerName = "kafka"

// MessageWriter is the subset of *kafka.Writer the producer needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l             *slog.Logger
	notifications MessageWriter
	events        MessageWriter
}

// NewProducer builds a producer with a synchronous writer for notification
// messages, whose failures are reported to the caller, and an async writer
// for auth events.
func NewProducer(l *slog.Logger, brokers []string, notificationsTopic, eventsTopic string) *Producer {
	l = l.WithGroup("kafka")

	notifications := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  notificationsTopic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		Logger:                 &infoLogger{l: l.With("topic", notificationsTopic)},
		ErrorLogger:            &errorLogger{l: l.With("topic", notificationsTopic)},
		AllowAutoTopicCreation: true,
	}

	events := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  eventsTopic,
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l.With("topic", eventsTopic)},
		ErrorLogger:            &errorLogger{l: l.With("topic", eventsTopic)},
		AllowAutoTopicCreation: true,
	}

	return NewProducerWithWriters(l, notifications, events)
}

func NewProducerWithWriters(l *slog.Logger, notifications, events MessageWriter) *Producer {
	return &Producer{
		l:             l,
		notifications: notifications,
		events:        events,
	}
}

type SendEmailEvent struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// SendEmail hands an email to the notification service.
func (p *Producer) SendEmail(ctx context.Context, to, subject, message string) (entity.DeliveryReceipt, error) {
	event := SendEmailEvent{
		Type:       "email",
		Subject:    subject,
		Message:    message,
		Recipients: []string{to},
	}

	b, err := json.Marshal(event)
	if err != nil {
		return entity.DeliveryReceipt{}, fmt.Errorf("marshal event: %w", err)
	}

	err = p.notifications.WriteMessages(ctx, kafka.Message{
		Key:   []byte(to),
		Value: b,
	})
	if err != nil {
		return entity.DeliveryReceipt{}, fmt.Errorf("write kafka message: %w", err)
	}

	return entity.DeliveryReceipt{Provider: providerName}, nil
}

// PublishAuthEvent never fails the caller; errors are logged.
func (p *Producer) PublishAuthEvent(ctx context.Context, event entity.AuthEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal auth event: %s", err))
		return
	}

	err = p.events.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AccountID.String()),
		Value: b,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write auth event: %s", err))
	}
}

func (p *Producer) Close() {
	err := errors.Join(p.notifications.Close(), p.events.Close())
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
