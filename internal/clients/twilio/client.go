package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samandr77/microservices/identity/internal/clients/retry"
	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/config"
)

const (
	providerName  = "twilio"
	maxErrorBytes = 2048
)

var ErrNotConfigured = errors.New("twilio account credentials are not configured")

type Client struct {
	client *http.Client
	cfg    config.TwilioConfig
}

func NewClient(cfg config.TwilioConfig) *Client {
	return &Client{
		client: retry.NewClient(cfg.Timeout, cfg.RetryAttempts),
		cfg:    cfg,
	}
}

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) SendSMS(ctx context.Context, phone, message string) (entity.DeliveryReceipt, error) {
	if c.cfg.AccountSID == "" || c.cfg.AuthToken == "" {
		return entity.DeliveryReceipt{}, ErrNotConfigured
	}

	if c.cfg.FromNumber == "" && c.cfg.MessagingServiceSID == "" {
		return entity.DeliveryReceipt{}, errors.New("configure TWILIO_FROM_NUMBER or TWILIO_MESSAGING_SERVICE_SID")
	}

	data := url.Values{}
	data.Set("To", phone)
	data.Set("Body", message)

	if c.cfg.MessagingServiceSID != "" {
		data.Set("MessagingServiceSid", c.cfg.MessagingServiceSID)
	} else {
		data.Set("From", c.cfg.FromNumber)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.AccountSID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return entity.DeliveryReceipt{}, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.DeliveryReceipt{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))

		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return entity.DeliveryReceipt{}, fmt.Errorf("twilio error %d: %s", apiErr.Code, apiErr.Message)
		}

		return entity.DeliveryReceipt{}, fmt.Errorf("twilio error: status %d", resp.StatusCode)
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return entity.DeliveryReceipt{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.DeliveryReceipt{Provider: providerName, MessageID: msg.SID}, nil
}
