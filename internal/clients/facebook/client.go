package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/samandr77/microservices/identity/internal/clients/retry"
	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/config"
)

const (
	providerName  = "facebook"
	profileFields = "id,email,first_name,last_name,picture.type(large)"
)

// Client validates Facebook access tokens through the Graph API.
type Client struct {
	client *http.Client
	cfg    config.FacebookConfig
}

func NewClient(cfg config.FacebookConfig) *Client {
	return &Client{
		client: retry.NewClient(cfg.Timeout, cfg.RetryAttempts),
		cfg:    cfg,
	}
}

func (c *Client) Name() string {
	return providerName
}

type debugTokenResponse struct {
	Data struct {
		IsValid bool            `json:"is_valid"`
		AppID   json.RawMessage `json:"app_id"`
	} `json:"data"`
}

type pictureData struct {
	URL string `json:"url"`
}

type profileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   struct {
		Data pictureData `json:"data"`
	} `json:"picture"`
}

func (c *Client) Authenticate(ctx context.Context, payload entity.SocialPayload) (entity.SocialIdentity, error) {
	accessToken := strings.TrimSpace(payload.AccessToken)
	if accessToken == "" {
		return entity.SocialIdentity{}, entity.ErrSocialBadRequest.WithDetail("accessToken is required for Facebook social login")
	}

	if err := c.debugToken(ctx, accessToken); err != nil {
		return entity.SocialIdentity{}, err
	}

	params := url.Values{}
	params.Set("fields", profileFields)
	params.Set("access_token", accessToken)

	var raw map[string]any
	if err := c.getJSON(ctx, c.graphURL(c.cfg.GraphAPIVersion, "me", params), &raw); err != nil {
		return entity.SocialIdentity{}, err
	}

	var profile profileResponse
	if err := remarshal(raw, &profile); err != nil || profile.ID == "" {
		return entity.SocialIdentity{}, entity.ErrSocialInvalidToken.WithDetail("Facebook response missing user id")
	}

	return entity.SocialIdentity{
		Provider:       providerName,
		ProviderUserID: profile.ID,
		Email:          profile.Email,
		EmailVerified:  profile.Email != "" && c.cfg.AssumeEmailVerified,
		FirstName:      profile.FirstName,
		LastName:       profile.LastName,
		PictureURL:     profile.Picture.Data.URL,
		RawClaims:      raw,
	}, nil
}

// debugToken runs only when app credentials are configured.
func (c *Client) debugToken(ctx context.Context, accessToken string) error {
	if c.cfg.AppID == "" || c.cfg.AppSecret == "" {
		return nil
	}

	params := url.Values{}
	params.Set("input_token", accessToken)
	params.Set("access_token", c.cfg.AppID+"|"+c.cfg.AppSecret)

	var resp debugTokenResponse
	if err := c.getJSON(ctx, c.graphURL("", "debug_token", params), &resp); err != nil {
		return err
	}

	if !resp.Data.IsValid {
		return entity.ErrSocialInvalidToken.WithDetail("Facebook access token is invalid")
	}

	if strings.Trim(string(resp.Data.AppID), `"`) != c.cfg.AppID {
		return entity.ErrSocialInvalidToken.WithDetail("Facebook access token app_id does not match configuration")
	}

	return nil
}

func (c *Client) graphURL(version, path string, params url.Values) string {
	base := strings.TrimRight(c.cfg.GraphBaseURL, "/")
	if version != "" {
		base += "/" + version
	}

	return base + "/" + path + "?" + params.Encode()
}

// getJSON treats transport failures and non-200 answers alike: the token
// could not be validated.
func (c *Client) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "Facebook Graph request failed", "error", err)
		return entity.ErrSocialInvalidToken.WithDetail("could not validate Facebook access token")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.InfoContext(ctx, "Facebook Graph rejected request", "status", resp.StatusCode)
		return entity.ErrSocialInvalidToken.WithDetail("could not validate Facebook access token")
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return entity.ErrSocialInvalidToken.WithDetail("could not validate Facebook access token")
	}

	return nil
}

func remarshal(src map[string]any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, dst)
}
