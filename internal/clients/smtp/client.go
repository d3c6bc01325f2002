package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/config"
)

const providerName = "smtp"

var htmlTag = regexp.MustCompile("<[^>]+>")

// Sender abstracts the SMTP dialer so delivery can be exercised without a server.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Client struct {
	cfg    config.SMTPConfig
	dialer Sender
}

func New(cfg config.SMTPConfig) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return NewWithSender(cfg, dialer)
}

func NewWithSender(cfg config.SMTPConfig, dialer Sender) *Client {
	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// SendEmail does not observe ctx: gomail dials without a context.
func (c *Client) SendEmail(_ context.Context, to, subject, message string) (entity.DeliveryReceipt, error) {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	if htmlTag.MatchString(message) {
		msg.SetBody("text/html", message)
	} else {
		msg.SetBody("text/plain", message)
	}

	if err := c.dialer.DialAndSend(msg); err != nil {
		return entity.DeliveryReceipt{}, fmt.Errorf("failed to send email: %w", err)
	}

	return entity.DeliveryReceipt{Provider: providerName}, nil
}
