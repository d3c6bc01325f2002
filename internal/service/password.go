package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

type PasswordLoginInput struct {
	Login    string
	Password string
	Client   entity.ClientType
	Device   *entity.DeviceInfo
}

// LoginWithPassword accepts an email or a username. Every refusal is the same
// entity.ErrInvalidCredentials; only the log tells them apart.
func (s *Service) LoginWithPassword(ctx context.Context, in PasswordLoginInput) (entity.SessionResponse, error) {
	if err := ValidateClient(in.Client, in.Device); err != nil {
		return entity.SessionResponse{}, err
	}

	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return entity.SessionResponse{}, entity.NewValidationError("login", "login and password are required")
	}

	secCtx := logger.SetLogType(ctx, "security")

	account, err := s.accounts.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(secCtx, "password login refused", "reason", "unknown account")
			return entity.SessionResponse{}, entity.ErrInvalidCredentials
		}

		return entity.SessionResponse{}, fmt.Errorf("find account: %w", err)
	}

	secCtx = logger.SetUserID(secCtx, account.ID.String())

	if !account.HasUsablePassword() {
		slog.WarnContext(secCtx, "password login refused", "reason", "no usable password")
		return entity.SessionResponse{}, entity.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		slog.WarnContext(secCtx, "password login refused", "reason", "wrong password")
		return entity.SessionResponse{}, entity.ErrInvalidCredentials
	}

	if !account.IsActive {
		slog.WarnContext(secCtx, "password login refused", "reason", "inactive account")
		return entity.SessionResponse{}, entity.ErrInvalidCredentials
	}

	if !account.IsVerified {
		slog.WarnContext(secCtx, "password login refused", "reason", "unverified account")
		return entity.SessionResponse{}, entity.ErrInvalidCredentials
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
		method:  MethodPassword,
	})
}
