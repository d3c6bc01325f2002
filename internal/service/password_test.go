package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/service"
)

func TestLoginWithPassword(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	valid := entity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "a@x.com",
		Username:     "ada",
		PasswordHash: string(hash),
		IsActive:     true,
		IsVerified:   true,
	}

	with := func(mod func(a *entity.Account)) entity.Account {
		a := valid
		mod(&a)
		return a
	}

	tests := []struct {
		name     string
		password string
		account  entity.Account
		findErr  error
		wantErr  error
	}{
		{name: "Success", password: "correct horse", account: valid},
		{name: "Unknown account", password: "correct horse", findErr: entity.ErrNotFound, wantErr: entity.ErrInvalidCredentials},
		{name: "Wrong password", password: "battery staple", account: valid, wantErr: entity.ErrInvalidCredentials},
		{
			name:     "Unusable password",
			password: "correct horse",
			account:  with(func(a *entity.Account) { a.PasswordHash = "!abc" }),
			wantErr:  entity.ErrInvalidCredentials,
		},
		{
			name:     "Inactive",
			password: "correct horse",
			account:  with(func(a *entity.Account) { a.IsActive = false }),
			wantErr:  entity.ErrInvalidCredentials,
		},
		{
			name:     "Unverified",
			password: "correct horse",
			account:  with(func(a *entity.Account) { a.IsVerified = false }),
			wantErr:  entity.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			ts.accounts.EXPECT().FindByLogin(gomock.Any(), "ada").Return(tt.account, tt.findErr)

			if tt.wantErr == nil {
				ts.profiles.EXPECT().FindDefault(gomock.Any(), valid.ID).Return(entity.Profile{ID: uuid.Must(uuid.NewV4())}, nil)
				ts.expectSession()
			}

			resp, err := ts.s.LoginWithPassword(context.Background(), service.PasswordLoginInput{
				Login: " ada ", Password: tt.password, Client: entity.ClientWeb,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, valid.ID, resp.User.ID)
			require.NotNil(t, resp.Tokens)
		})
	}
}
