package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/service"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks -typed

type Service interface {
	RequestCode(ctx context.Context, in service.RequestCodeInput) (entity.Channel, error)
	VerifyCode(ctx context.Context, in service.VerifyCodeInput) (entity.SessionResponse, error)
	LoginWithPassword(ctx context.Context, in service.PasswordLoginInput) (entity.SessionResponse, error)
	SocialLogin(ctx context.Context, in service.SocialLoginInput) (entity.SessionResponse, error)
	SocialPrecheck(ctx context.Context, providerName string, payload entity.SocialPayload) (entity.SocialPrecheck, error)
	LinkSocialAccount(ctx context.Context, accountID uuid.UUID, providerName string, payload entity.SocialPayload) (entity.SocialLinkResult, error)
	UnlinkSocialAccount(ctx context.Context, accountID uuid.UUID, providerName string) error
	ListSocialAccounts(ctx context.Context, accountID uuid.UUID) ([]entity.SocialAccountLink, error)
	Providers() []string
	RefreshToken(ctx context.Context, refreshToken string) (*entity.Tokens, error)
	ValidateToken(ctx context.Context, accessToken string) (entity.SessionClaims, error)
	RevokeTokens(ctx context.Context, accountID uuid.UUID) error
}

// @title Identity API
// @version 1.0
// @description Sign-in with one-time codes, passwords and social providers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

const errBadRequestText = "Incorrect request"

// @Summary Health check
// @Description Reports that the server is up
// @Tags health
// @Produce  plain
// @Success 200 {string} string "Server is up"
// @Router  /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Server is up!\n"))
}

type RequestCodeRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Channel string `json:"channel" enums:"email,sms"`
}

type RequestCodeResponse struct {
	Message string         `json:"message"`
	Channel entity.Channel `json:"channel"`
}

// @Summary Request a one-time code
// @Description Sends a code by email or SMS. The channel defaults to sms when a phone is given.
// @Tags otp
// @Accept  json
// @Produce  json
// @Param   request body RequestCodeRequest true "Code target"
// @Success 200 {object} RequestCodeResponse "Code sent"
// @Failure 400 {object} ResponseError "Incorrect request"
// @Failure 429 {object} ResponseError "Cooldown or rate limit"
// @Failure 503 {object} ResponseError "Code could not be delivered"
// @Router  /api/v1/otp/request [post]
func (h *Handler) RequestCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "otp")

	var req RequestCodeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	channel := entity.Channel(strings.ToLower(strings.TrimSpace(req.Channel)))
	if channel == "" {
		channel = entity.ChannelEmail
		if strings.TrimSpace(req.Phone) != "" {
			channel = entity.ChannelSMS
		}
	}

	sent, err := h.s.RequestCode(ctx, service.RequestCodeInput{
		Email:   req.Email,
		Phone:   req.Phone,
		Channel: channel,
	})
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, RequestCodeResponse{
		Message: "Code sent",
		Channel: sent,
	})
}

type VerifyCodeRequest struct {
	Email  string             `json:"email"`
	Phone  string             `json:"phone"`
	Code   string             `json:"code"`
	Client string             `json:"client" enums:"web,mobile"`
	Device *entity.DeviceInfo `json:"device,omitempty"`
}

// @Summary Verify a one-time code
// @Description Verifies the code and signs in, creating the account on first use
// @Tags otp
// @Accept  json
// @Produce  json
// @Param   request body VerifyCodeRequest true "Code and client"
// @Success 200 {object} entity.SessionResponse "Signed in"
// @Failure 400 {object} ResponseError "Incorrect request"
// @Failure 401 {object} ResponseError "Invalid or expired code"
// @Failure 429 {object} ResponseError "Too many attempts or rate limit"
// @Router  /api/v1/otp/verify [post]
func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	var req VerifyCodeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		handleErr(ctx, w, entity.NewValidationError("code", "code is required"))
		return
	}

	client, err := parseClient(req.Client)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	resp, err := h.s.VerifyCode(ctx, service.VerifyCodeInput{
		Email:  req.Email,
		Phone:  req.Phone,
		Code:   strings.TrimSpace(req.Code),
		Client: client,
		Device: req.Device,
	})
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

type LoginRequest struct {
	Login    string             `json:"login"`
	Password string             `json:"password"`
	Client   string             `json:"client" enums:"web,mobile"`
	Device   *entity.DeviceInfo `json:"device,omitempty"`
}

// @Summary Sign in with a password
// @Description Login is an email or a username
// @Tags login
// @Accept  json
// @Produce  json
// @Param   request body LoginRequest true "Credentials"
// @Success 200 {object} entity.SessionResponse "Signed in"
// @Failure 400 {object} ResponseError "Incorrect request"
// @Failure 401 {object} ResponseError "Invalid login or password"
// @Failure 429 {object} ResponseError "Rate limit"
// @Router  /api/v1/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	client, err := parseClient(req.Client)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	resp, err := h.s.LoginWithPassword(ctx, service.PasswordLoginInput{
		Login:    req.Login,
		Password: req.Password,
		Client:   client,
		Device:   req.Device,
	})
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

type SocialLoginRequest struct {
	entity.SocialPayload
	Client                     string             `json:"client" enums:"web,mobile"`
	Device                     *entity.DeviceInfo `json:"device,omitempty"`
	TermsAndConditionsAccepted bool               `json:"termsAndConditionsAccepted"`
}

// @Summary Sign in with a social provider
// @Description Signs in with an id token, an authorization code or an access token, depending on the provider
// @Tags social
// @Accept  json
// @Produce  json
// @Param   provider path string true "Provider name" Enums(google, apple, facebook)
// @Param   request body SocialLoginRequest true "Provider payload and client"
// @Success 200 {object} entity.SessionResponse "Signed in"
// @Failure 400 {object} ResponseError "Incorrect request"
// @Failure 401 {object} ResponseError "Provider rejected the credential"
// @Failure 409 {object} ResponseError "Identity already linked"
// @Failure 429 {object} ResponseError "Rate limit"
// @Router  /api/v1/social/{provider}/login [post]
func (h *Handler) SocialLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	var req SocialLoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		handleErr(ctx, w, entity.ErrSocialBadRequest.WithDetail(err.Error()))
		return
	}

	client, err := parseClient(req.Client)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	resp, err := h.s.SocialLogin(ctx, service.SocialLoginInput{
		Provider:      r.PathValue("provider"),
		Payload:       req.SocialPayload,
		Client:        client,
		Device:        req.Device,
		TermsAccepted: req.TermsAndConditionsAccepted,
	})
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

// @Summary Check what a social sign-in would do
// @Description Verifies the credential and reports whether the sign-in would link, create or be refused. Nothing is written.
// @Tags social
// @Accept  json
// @Produce  json
// @Param   provider path string true "Provider name" Enums(google, apple, facebook)
// @Param   request body entity.SocialPayload true "Provider payload"
// @Success 200 {object} entity.SocialPrecheck "Outcome"
// @Failure 400 {object} ResponseError "Incorrect request"
// @Failure 401 {object} ResponseError "Provider rejected the credential"
// @Router  /api/v1/social/{provider}/precheck [post]
func (h *Handler) SocialPrecheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	var payload entity.SocialPayload

	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		handleErr(ctx, w, entity.ErrSocialBadRequest.WithDetail(err.Error()))
		return
	}

	resp, err := h.s.SocialPrecheck(ctx, r.PathValue("provider"), payload)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

// @Summary Link a social identity
// @Description Attaches the identity to the signed-in account
// @Tags social
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   provider path string true "Provider name" Enums(google, apple, facebook)
// @Param   request body entity.SocialPayload true "Provider payload"
// @Success 200 {object} entity.SocialLinkResult "Link refreshed"
// @Success 201 {object} entity.SocialLinkResult "Link created"
// @Failure 401 {object} ResponseError "Not signed in or credential rejected"
// @Failure 409 {object} ResponseError "Identity already linked to another account"
// @Router  /api/v1/social/{provider}/link [post]
func (h *Handler) LinkSocial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	accountID, ok := entity.AccountIDFromCtx(ctx)
	if !ok {
		handleErr(ctx, w, entity.ErrUnauthorized)
		return
	}

	var payload entity.SocialPayload

	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		handleErr(ctx, w, entity.ErrSocialBadRequest.WithDetail(err.Error()))
		return
	}

	result, err := h.s.LinkSocialAccount(ctx, accountID, r.PathValue("provider"), payload)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	code := http.StatusOK
	if result.Created {
		code = http.StatusCreated
	}

	sendJSON(ctx, w, code, result)
}

// @Summary Unlink a social identity
// @Tags social
// @Produce  json
// @Security BearerAuth
// @Param   provider path string true "Provider name" Enums(google, apple, facebook)
// @Success 200 {object} MessageResponse "Unlinked"
// @Failure 401 {object} ResponseError "Not signed in"
// @Failure 404 {object} ResponseError "No link for this provider"
// @Router  /api/v1/social/{provider} [delete]
func (h *Handler) UnlinkSocial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	accountID, ok := entity.AccountIDFromCtx(ctx)
	if !ok {
		handleErr(ctx, w, entity.ErrUnauthorized)
		return
	}

	err := h.s.UnlinkSocialAccount(ctx, accountID, r.PathValue("provider"))
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Social account unlinked"})
}

type SocialAccountsResponse struct {
	Accounts []entity.SocialAccountLink `json:"accounts"`
}

// @Summary List linked social identities
// @Tags social
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} SocialAccountsResponse "Linked identities"
// @Failure 401 {object} ResponseError "Not signed in"
// @Router  /api/v1/social [get]
func (h *Handler) ListSocial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := entity.AccountIDFromCtx(ctx)
	if !ok {
		handleErr(ctx, w, entity.ErrUnauthorized)
		return
	}

	links, err := h.s.ListSocialAccounts(ctx, accountID)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	if links == nil {
		links = []entity.SocialAccountLink{}
	}

	sendJSON(ctx, w, http.StatusOK, SocialAccountsResponse{Accounts: links})
}

type ProvidersResponse struct {
	Providers []string `json:"providers"`
}

// @Summary List enabled social providers
// @Tags social
// @Produce  json
// @Success 200 {object} ProvidersResponse "Enabled providers"
// @Router  /api/v1/social/providers [get]
func (h *Handler) Providers(w http.ResponseWriter, r *http.Request) {
	sendJSON(r.Context(), w, http.StatusOK, ProvidersResponse{Providers: h.s.Providers()})
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh"`
}

// @Summary Refresh the session
// @Description Rotates the refresh token. The old one stops working.
// @Tags token
// @Accept  json
// @Produce  json
// @Param   request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} entity.Tokens "New token pair"
// @Failure 401 {object} ResponseError "Refresh token invalid, expired or used"
// @Failure 429 {object} ResponseError "Rate limit"
// @Router  /api/v1/token/refresh [post]
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "token")

	var req RefreshTokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	if req.Refresh == "" {
		sendErr(ctx, w, http.StatusUnauthorized, errors.New("refresh token not provided"), "Refresh token not provided")
		return
	}

	tokens, err := h.s.RefreshToken(ctx, req.Refresh)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, tokens)
}

type ValidateTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

type ValidateTokenResponse struct {
	AccountID string `json:"accountId"`
	ProfileID string `json:"profileId"`
	Role      string `json:"role"`
}

// @Summary Validate an access token
// @Description Used by other services to resolve the caller
// @Tags token
// @Accept  json
// @Produce  json
// @Param   request body ValidateTokenRequest true "Access token"
// @Success 200 {object} ValidateTokenResponse "Token is valid"
// @Failure 401 {object} ResponseError "Token is invalid"
// @Router  /api/v1/token/validate [post]
func (h *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "token")

	var req ValidateTokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	if req.AccessToken == "" {
		sendErr(ctx, w, http.StatusUnauthorized, errors.New("access token not provided"), "Access token not provided")
		return
	}

	claims, err := h.s.ValidateToken(ctx, req.AccessToken)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, ValidateTokenResponse{
		AccountID: claims.AccountID.String(),
		ProfileID: claims.ProfileID.String(),
		Role:      claims.Role,
	})
}

// @Summary Sign out
// @Description Deletes every refresh token of the signed-in account
// @Tags token
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} MessageResponse "Signed out"
// @Failure 401 {object} ResponseError "Not signed in"
// @Router  /api/v1/token/destroy [post]
func (h *Handler) DestroyToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "token")

	accountID, ok := entity.AccountIDFromCtx(ctx)
	if !ok {
		handleErr(ctx, w, entity.ErrUnauthorized)
		return
	}

	err := h.s.RevokeTokens(ctx, accountID)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, "Could not delete tokens")
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Tokens deleted"})
}

type DestroyTokenInternalRequest struct {
	AccountID string `json:"accountId"`
}

// @Summary Delete an account's tokens (internal)
// @Description Service-to-service endpoint. Deletes every refresh token of the account.
// @Tags internal
// @Accept  json
// @Produce  json
// @Param   request body DestroyTokenInternalRequest true "Account id"
// @Success 200 {object} MessageResponse "Tokens deleted"
// @Failure 400 {object} ResponseError "Incorrect request or account id"
// @Router  /internal/api/v1/token/destroy [post]
func (h *Handler) DestroyTokenInternal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "token")

	var req DestroyTokenInternalRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
		return
	}

	accountID, err := uuid.FromString(req.AccountID)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Incorrect account id")
		return
	}

	err = h.s.RevokeTokens(ctx, accountID)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, "Could not delete tokens")
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Tokens deleted"})
}

// parseClient defaults to web when the field is left out.
func parseClient(raw string) (entity.ClientType, error) {
	if strings.TrimSpace(raw) == "" {
		return entity.ClientWeb, nil
	}

	return entity.ParseClientType(raw)
}
