package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strings"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

type RequestCodeInput struct {
	Email   string
	Phone   string
	Channel entity.Channel
}

type VerifyCodeInput struct {
	Email  string
	Phone  string
	Code   string
	Client entity.ClientType
	Device *entity.DeviceInfo
}

// Channel picks sms when a phone was given, email otherwise.
func (in VerifyCodeInput) Channel() entity.Channel {
	if strings.TrimSpace(in.Phone) != "" {
		return entity.ChannelSMS
	}

	return entity.ChannelEmail
}

func (s *Service) target(channel entity.Channel, email, phone string) (string, error) {
	switch channel {
	case entity.ChannelSMS:
		if strings.TrimSpace(phone) == "" {
			return "", entity.NewValidationError("phone", "phone is required for the sms channel")
		}

		normalized, err := NormalizePhone(phone, s.cfg.OTP.DefaultCountryCode)
		if err != nil {
			return "", fieldError("phone", err)
		}

		return normalized, nil
	case entity.ChannelEmail:
		if strings.TrimSpace(email) == "" {
			return "", entity.NewValidationError("email", "email is required for the email channel")
		}

		normalized, err := NormalizeEmail(email)
		if err != nil {
			return "", fieldError("email", err)
		}

		return normalized, nil
	default:
		return "", entity.NewValidationError("channel", "must be 'email' or 'sms'")
	}
}

// RequestCode issues a new one-time code for the target and hands it to the
// channel transport. A code requested again within the resend cooldown is
// refused with *entity.ThrottledError.
func (s *Service) RequestCode(ctx context.Context, in RequestCodeInput) (entity.Channel, error) {
	target, err := s.target(in.Channel, in.Email, in.Phone)
	if err != nil {
		return "", err
	}

	now := s.now()

	latest, err := s.otps.LatestUnused(ctx, target, in.Channel)
	switch {
	case err == nil:
		if elapsed := now.Sub(latest.LastSentAt); elapsed < s.cfg.OTP.ResendCooldown {
			slog.InfoContext(ctx, "code requested within cooldown", "channel", in.Channel)

			return "", &entity.ThrottledError{
				Reason:     "resend cooldown",
				RetryAfter: s.cfg.OTP.ResendCooldown - elapsed,
			}
		}
	case !errors.Is(err, entity.ErrNotFound):
		return "", fmt.Errorf("find latest challenge: %w", err)
	}

	code, err := s.GenerateCode()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	codeHash, err := s.HashCode(code)
	if err != nil {
		return "", fmt.Errorf("hash code: %w", err)
	}

	challenge := entity.OtpChallenge{
		ID:         uuid.Must(uuid.NewV4()),
		Target:     target,
		Channel:    in.Channel,
		CodeHash:   codeHash,
		CreatedAt:  now.UTC(),
		LastSentAt: now.UTC(),
		ExpiresAt:  now.Add(s.cfg.OTP.CodeTTL).UTC(),
	}

	if err := s.otps.SaveChallenge(ctx, challenge); err != nil {
		return "", fmt.Errorf("save challenge: %w", err)
	}

	if err := s.deliver(ctx, in.Channel, target, s.codeMessage(code)); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "verification code sent", "channel", in.Channel, "challenge_id", challenge.ID)

	return in.Channel, nil
}

func (s *Service) codeMessage(code string) string {
	minutes := int(math.Ceil(s.cfg.OTP.CodeTTL.Minutes()))

	return fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes)
}

// deliver sends the message and records the outcome in the channel log. SMS
// outcomes are always recorded; email outcomes only when an email log exists.
func (s *Service) deliver(ctx context.Context, channel entity.Channel, target, message string) error {
	var (
		receipt entity.DeliveryReceipt
		err     error
		sink    DeliveryLogRepository
		name    string
	)

	switch channel {
	case entity.ChannelSMS:
		receipt, err = s.sms.SendSMS(ctx, target, message)
		sink, name = s.smsLog, s.cfg.Delivery.SMSTransport
	case entity.ChannelEmail:
		receipt, err = s.email.SendEmail(ctx, target, s.cfg.Delivery.EmailSubject, message)
		sink, name = s.emailLog, s.cfg.Delivery.EmailTransport
	}

	if receipt.Provider != "" {
		name = receipt.Provider
	}

	record := entity.DeliveryLog{
		ID:        uuid.Must(uuid.NewV4()),
		Channel:   channel,
		Target:    target,
		Provider:  name,
		Status:    entity.DeliveryStatusSent,
		CreatedAt: s.now().UTC(),
	}

	if err != nil {
		record.Status = entity.DeliveryStatusFailed
		record.ErrorMessage = err.Error()

		slog.ErrorContext(ctx, "code delivery failed",
			"channel", channel, "provider", name, "target", target, "error", err)
	}

	if sink != nil {
		if logErr := sink.SaveDeliveryLog(ctx, record); logErr != nil {
			slog.ErrorContext(ctx, "failed to save delivery log", "channel", channel, "error", logErr)
		}
	}

	if err != nil {
		return &entity.DeliveryError{Channel: channel, Err: err}
	}

	return nil
}

// VerifyCode checks the code against the newest live challenge of the target
// and starts a session. Missing, expired, used and mismatched codes all yield
// entity.ErrInvalidCode.
func (s *Service) VerifyCode(ctx context.Context, in VerifyCodeInput) (entity.SessionResponse, error) {
	if err := ValidateClient(in.Client, in.Device); err != nil {
		return entity.SessionResponse{}, err
	}

	channel := in.Channel()

	target, err := s.target(channel, in.Email, in.Phone)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	secCtx := logger.SetLogType(ctx, "security")
	maxAttempts := s.cfg.OTP.MaxAttempts

	challenge, err := s.otps.FindActive(ctx, target, channel, s.now())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(secCtx, "no active challenge", "channel", channel)
			return entity.SessionResponse{}, entity.ErrInvalidCode
		}

		return entity.SessionResponse{}, fmt.Errorf("find challenge: %w", err)
	}

	if challenge.Attempts >= maxAttempts {
		slog.WarnContext(secCtx, "challenge attempts exhausted", "challenge_id", challenge.ID)
		return entity.SessionResponse{}, &entity.ThrottledError{Reason: "too many attempts"}
	}

	// The attempt is reserved before the comparison so concurrent guesses
	// never compare more than maxAttempts times.
	attempts, err := s.otps.IncrementAttempts(ctx, challenge.ID, maxAttempts)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(secCtx, "challenge attempts exhausted", "challenge_id", challenge.ID)
			return entity.SessionResponse{}, &entity.ThrottledError{Reason: "too many attempts"}
		}

		return entity.SessionResponse{}, fmt.Errorf("increment attempts: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(in.Code)) != nil {
		slog.WarnContext(secCtx, "wrong verification code", "challenge_id", challenge.ID, "attempts", attempts)
		return entity.SessionResponse{}, entity.ErrInvalidCode
	}

	if err := s.otps.MarkUsed(ctx, challenge.ID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(secCtx, "challenge consumed concurrently", "challenge_id", challenge.ID)
			return entity.SessionResponse{}, entity.ErrInvalidCode
		}

		return entity.SessionResponse{}, fmt.Errorf("mark challenge used: %w", err)
	}

	account, err := s.resolveOtpAccount(ctx, channel, target)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	if err := s.markVerified(ctx, &account); err != nil {
		return entity.SessionResponse{}, err
	}

	profile, err := s.ensureProfile(ctx, account.ID, "", "")
	if err != nil {
		return entity.SessionResponse{}, err
	}

	return s.startSession(logger.SetUserID(ctx, account.ID.String()), sessionRequest{
		account: account,
		profile: profile,
		client:  in.Client,
		device:  in.Device,
		method:  MethodOTP,
	})
}

// resolveOtpAccount finds the account owning the verified target or creates
// one. Phone-only accounts get a synthetic email.
func (s *Service) resolveOtpAccount(ctx context.Context, channel entity.Channel, target string) (entity.Account, error) {
	email := target

	var phone *string

	if channel == entity.ChannelSMS {
		account, err := s.accounts.FindByPhone(ctx, target)
		if err == nil {
			return account, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Account{}, fmt.Errorf("find account by phone: %w", err)
		}

		email = syntheticEmail(target)
		phone = &target
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Account{}, fmt.Errorf("find account by email: %w", err)
	}

	account, _, err = s.createAccount(ctx, newAccount{
		Email:        email,
		Phone:        phone,
		UsernameBase: usernameBase(email, "", ""),
		Verified:     true,
	})
	if errors.Is(err, entity.ErrAlreadyExists) {
		account, err = s.accounts.FindByEmail(ctx, email)
	}

	if err != nil {
		return entity.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// GenerateCode returns a zero-padded code uniformly drawn from
// [0, 10^length).
func (s *Service) GenerateCode() (string, error) {
	length := s.cfg.OTP.CodeLength
	if length <= 0 {
		length = 6
	}

	n, err := rand.Int(rand.Reader, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

func (s *Service) HashCode(code string) (string, error) {
	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), s.codeHashCost)
	if err != nil {
		return "", err
	}

	return string(codeHash), nil
}
