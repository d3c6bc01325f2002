package picture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/samandr77/microservices/identity/internal/clients/retry"
)

var (
	ErrTooLarge           = errors.New("picture exceeds size limit")
	ErrContentTypeBlocked = errors.New("picture content type not allowed")
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Picture struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Client downloads profile pictures under a byte cap and a content-type
// allow-list.
type Client struct {
	httpClient   *http.Client
	maxBytes     int64
	allowedTypes []string
}

func NewClient(timeout time.Duration, maxBytes int64, allowedTypes []string) *Client {
	allowed := make([]string, 0, len(allowedTypes))
	for _, t := range allowedTypes {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			allowed = append(allowed, t)
		}
	}

	return &Client{
		httpClient:   retry.NewClient(timeout, 0),
		maxBytes:     maxBytes,
		allowedTypes: allowed,
	}
}

func (c *Client) Download(ctx context.Context, url string) (Picture, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Picture{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Picture{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Picture{}, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	contentType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return Picture{}, fmt.Errorf("%w: %q", ErrContentTypeBlocked, resp.Header.Get("Content-Type"))
	}

	contentType = strings.ToLower(contentType)

	if !strings.HasPrefix(contentType, "image/") || !slices.Contains(c.allowedTypes, contentType) {
		return Picture{}, fmt.Errorf("%w: %s", ErrContentTypeBlocked, contentType)
	}

	if resp.ContentLength > c.maxBytes {
		return Picture{}, ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return Picture{}, err
	}

	if int64(len(data)) > c.maxBytes {
		return Picture{}, ErrTooLarge
	}

	ext, ok := extensions[contentType]
	if !ok {
		ext = "jpg"
	}

	return Picture{Data: data, ContentType: contentType, Extension: ext}, nil
}
