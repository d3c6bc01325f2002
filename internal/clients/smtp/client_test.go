package smtp_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/identity/internal/clients/smtp"
	"github.com/samandr77/microservices/identity/pkg/config"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}

	d.sent = append(d.sent, m...)

	return nil
}

func TestSendEmail(t *testing.T) {
	t.Parallel()

	dialer := &fakeDialer{}
	c := smtp.NewWithSender(config.SMTPConfig{From: "no-reply@example.com", FromName: "Identity"}, dialer)

	receipt, err := c.SendEmail(context.Background(), "user@example.com", "Your verification code", "Your verification code is 123456.")
	require.NoError(t, err)
	require.Equal(t, "smtp", receipt.Provider)
	require.Len(t, dialer.sent, 1)

	msg := dialer.sent[0]
	require.Equal(t, []string{"user@example.com"}, msg.GetHeader("To"))
	require.Equal(t, []string{"Your verification code"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "text/plain")
}

func TestSendEmailFailure(t *testing.T) {
	t.Parallel()

	c := smtp.NewWithSender(config.SMTPConfig{From: "no-reply@example.com"}, &fakeDialer{err: errors.New("connection refused")})

	_, err := c.SendEmail(context.Background(), "user@example.com", "s", "<b>html</b>")
	require.ErrorContains(t, err, "connection refused")
}
