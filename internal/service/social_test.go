package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/identity/internal/clients/picture"
	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/service"
	"github.com/samandr77/microservices/identity/pkg/config"
)

func googleIdentity(sub, email string, verified bool) entity.SocialIdentity {
	return entity.SocialIdentity{
		Provider:       "google",
		ProviderUserID: sub,
		Email:          email,
		EmailVerified:  verified,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		RawClaims:      map[string]any{"sub": sub},
	}
}

var idTokenPayload = entity.SocialPayload{IDToken: "header.payload.signature"}

func TestSocialLogin_CreatesAccount(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)
	ctx := context.Background()

	identity := googleIdentity("abc", "A@x.com", true)
	linkID := uuid.Must(uuid.NewV4())

	var account entity.Account

	ts.google.EXPECT().Authenticate(gomock.Any(), idTokenPayload).Return(identity, nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").Return(entity.SocialAccountLink{}, entity.ErrNotFound)
	ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(entity.Account{}, entity.ErrNotFound)
	ts.accounts.EXPECT().UsernameExists(gomock.Any(), "a").Return(true, nil)
	ts.accounts.EXPECT().UsernameExists(gomock.Any(), "a_2").Return(false, nil)
	ts.accounts.EXPECT().CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entity.Account, p entity.Profile) error {
			r.Equal("a@x.com", a.Email)
			r.Equal("a_2", a.Username)
			r.True(a.IsVerified)
			r.False(a.HasUsablePassword())
			r.Nil(a.TermsAcceptedAt)
			r.Equal("Ada", p.FirstName)
			r.Equal("Lovelace", p.LastName)
			account = a
			return nil
		})
	ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error) {
			r.Equal(account.ID, l.AccountID)
			r.Equal(fixedNow, l.LastLoginAt)
			r.Equal("abc", l.RawResponse["sub"])
			l.ID = linkID
			return l, true, nil
		})
	ts.expectSession()

	resp, err := ts.s.SocialLogin(ctx, service.SocialLoginInput{
		Provider: "Google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	r.NoError(err)

	r.Equal("google", resp.SocialProvider)
	r.True(*resp.UserCreated)
	r.False(*resp.LinkedExistingUser)
	r.Equal(linkID, *resp.SocialAccountID)
	r.False(resp.ProfileCompletionRequired)
	r.NotNil(resp.Tokens)
}

func TestSocialLogin_ExistingLinkRefreshed(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	account := entity.Account{ID: uuid.Must(uuid.NewV4()), Email: "a@x.com", IsActive: true}
	link := entity.SocialAccountLink{ID: uuid.Must(uuid.NewV4()), AccountID: account.ID, Provider: "google", ProviderUserID: "abc"}

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(googleIdentity("abc", "a@x.com", true), nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").Return(link, nil)
	ts.accounts.EXPECT().FindByID(gomock.Any(), account.ID).Return(account, nil)
	ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error) {
			r.Equal(fixedNow, l.LastLoginAt)
			l.ID = link.ID
			return l, false, nil
		})
	ts.profiles.EXPECT().FindDefault(gomock.Any(), account.ID).
		Return(entity.Profile{ID: uuid.Must(uuid.NewV4()), AccountID: account.ID, FirstName: "Ada", LastName: "L"}, nil)
	ts.expectSession()

	resp, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	r.NoError(err)
	r.False(*resp.UserCreated)
	r.False(*resp.LinkedExistingUser)
	r.Equal(link.ID, *resp.SocialAccountID)
}

func TestSocialLogin_LinksExistingByEmail(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	account := entity.Account{ID: uuid.Must(uuid.NewV4()), Email: "a@x.com", IsActive: true, IsVerified: true}
	profile := entity.Profile{ID: uuid.Must(uuid.NewV4()), AccountID: account.ID}
	identity := googleIdentity("zzz", "a@x.com", true)
	identity.PictureURL = "https://cdn.example.com/p.png"

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(identity, nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "zzz").Return(entity.SocialAccountLink{}, entity.ErrNotFound)
	ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(account, nil)
	ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error) {
			return l, true, nil
		})
	ts.profiles.EXPECT().FindDefault(gomock.Any(), account.ID).Return(profile, nil)
	ts.pictures.EXPECT().Download(gomock.Any(), identity.PictureURL).
		Return(picture.Picture{Data: []byte{0x89, 'P', 'N', 'G'}, ContentType: "image/png", Extension: "png"}, nil)
	ts.profiles.EXPECT().UpdatePicture(gomock.Any(), profile.ID, gomock.Any(), "image/png", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, name, _ string, _ []byte) error {
			r.Regexp(`^social-`+profile.ID.String()+`-[0-9a-f]{10}\.png$`, name)
			return nil
		})
	ts.expectSession()

	resp, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	r.NoError(err)
	r.False(*resp.UserCreated)
	r.True(*resp.LinkedExistingUser)
	r.Equal(account.ID, resp.User.ID)
	r.NotEmpty(resp.ActiveProfile.PictureName)
}

func TestSocialLogin_LinkByEmailDisabledExistingEmail(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, func(c *config.Config) { c.Social.LinkByEmail = false })

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(googleIdentity("attacker-sub", "a@x.com", true), nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "attacker-sub").Return(entity.SocialAccountLink{}, entity.ErrNotFound)
	ts.accounts.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(false, nil)
	ts.accounts.EXPECT().CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.ErrAlreadyExists)

	resp, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	require.ErrorIs(t, err, entity.ErrSocialAlreadyLinked)
	require.Nil(t, resp.Tokens)
}

func TestSocialLogin_EmailCreatedConcurrentlyIsLinked(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ts := newTestService(t)

	account := entity.Account{ID: uuid.Must(uuid.NewV4()), Email: "a@x.com", IsActive: true, IsVerified: true}

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(googleIdentity("abc", "a@x.com", true), nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").Return(entity.SocialAccountLink{}, entity.ErrNotFound)
	gomock.InOrder(
		ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(entity.Account{}, entity.ErrNotFound),
		ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(account, nil),
	)
	ts.accounts.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(false, nil)
	ts.accounts.EXPECT().CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.ErrAlreadyExists)
	ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error) {
			r.Equal(account.ID, l.AccountID)
			return l, true, nil
		})
	ts.profiles.EXPECT().FindDefault(gomock.Any(), account.ID).Return(entity.Profile{ID: uuid.Must(uuid.NewV4()), AccountID: account.ID}, nil)
	ts.expectSession()

	resp, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	r.NoError(err)
	r.False(*resp.UserCreated)
	r.True(*resp.LinkedExistingUser)
	r.Equal(account.ID, resp.User.ID)
}

func TestSocialLogin_PictureFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	account := entity.Account{ID: uuid.Must(uuid.NewV4()), Email: "a@x.com", IsActive: true}
	identity := googleIdentity("abc", "a@x.com", true)
	identity.PictureURL = "https://cdn.example.com/huge.jpg"

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(identity, nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.SocialAccountLink{AccountID: account.ID}, nil)
	ts.accounts.EXPECT().FindByID(gomock.Any(), account.ID).Return(account, nil)
	ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, false, nil)
	ts.profiles.EXPECT().FindDefault(gomock.Any(), account.ID).Return(entity.Profile{ID: uuid.Must(uuid.NewV4())}, nil)
	ts.pictures.EXPECT().Download(gomock.Any(), gomock.Any()).Return(picture.Picture{}, picture.ErrTooLarge)
	ts.expectSession()

	_, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	require.NoError(t, err)
}

func TestSocialLogin_Refusals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity entity.SocialIdentity
		terms    bool
		cfg      func(*config.Config)
		wantErr  error
	}{
		{
			name:     "Auto create disabled",
			identity: googleIdentity("abc", "a@x.com", true),
			cfg:      func(c *config.Config) { c.Social.AutoCreateUser = false },
			wantErr:  entity.ErrSocialNotLinked,
		},
		{
			name:     "Email missing",
			identity: googleIdentity("abc", "", false),
			wantErr:  entity.ErrSocialEmailMissing,
		},
		{
			name:     "Email not verified",
			identity: googleIdentity("abc", "a@x.com", false),
			wantErr:  entity.ErrSocialEmailNotVerified,
		},
		{
			name:     "Terms required",
			identity: googleIdentity("abc", "a@x.com", true),
			cfg:      func(c *config.Config) { c.Social.TermsRequired = true },
			wantErr:  entity.ErrTermsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mutate []func(*config.Config)
			if tt.cfg != nil {
				mutate = append(mutate, tt.cfg)
			}

			ts := newTestService(t, mutate...)

			ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(tt.identity, nil)
			ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(entity.SocialAccountLink{}, entity.ErrNotFound)
			ts.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(entity.Account{}, entity.ErrNotFound).AnyTimes()

			_, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
				Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb, TermsAccepted: tt.terms,
			})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSocialLogin_ProviderErrors(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	_, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "myspace", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	require.ErrorIs(t, err, entity.ErrSocialProviderNotSupported)

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(entity.SocialIdentity{}, entity.ErrSocialInvalidToken)

	_, err = ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	require.ErrorIs(t, err, entity.ErrSocialInvalidToken)
}

func TestSocialLogin_AccountHoldsOtherIdentity(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	account := entity.Account{ID: uuid.Must(uuid.NewV4()), Email: "a@x.com"}

	ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(googleIdentity("second", "a@x.com", true), nil)
	ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, entity.ErrNotFound)
	ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(account, nil)
	ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, false, entity.ErrConflict)

	_, err := ts.s.SocialLogin(context.Background(), service.SocialLoginInput{
		Provider: "google", Payload: idTokenPayload, Client: entity.ClientWeb,
	})
	require.ErrorIs(t, err, entity.ErrSocialAlreadyLinked)
}

func TestSocialPrecheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		autoCreate   bool
		noEmailLink  bool
		mockBehavior func(ts *testService)
		want         entity.SocialPrecheck
	}{
		{
			name:        "Existing email without link by email",
			autoCreate:  true,
			noEmailLink: true,
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(entity.Account{}, nil)
			},
			want: entity.SocialPrecheck{},
		},
		{
			name:       "Linked identity",
			autoCreate: true,
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").Return(entity.SocialAccountLink{}, nil)
			},
			want: entity.SocialPrecheck{SocialAccountExists: true, UserExists: true, CanLogin: true},
		},
		{
			name:       "Existing email",
			autoCreate: false,
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(entity.Account{}, nil)
			},
			want: entity.SocialPrecheck{LinkedExistingUser: true, UserExists: true, CanLogin: true},
		},
		{
			name:       "New user",
			autoCreate: true,
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(entity.Account{}, entity.ErrNotFound)
			},
			want: entity.SocialPrecheck{WouldCreateUser: true, CanLogin: true},
		},
		{
			name:       "Nothing to log into",
			autoCreate: false,
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(entity.Account{}, entity.ErrNotFound)
			},
			want: entity.SocialPrecheck{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t, func(c *config.Config) {
				c.Social.AutoCreateUser = tt.autoCreate
				c.Social.LinkByEmail = !tt.noEmailLink
			})

			ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(googleIdentity("abc", "a@x.com", true), nil)
			tt.mockBehavior(ts)

			got, err := ts.s.SocialPrecheck(context.Background(), "google", idTokenPayload)
			require.NoError(t, err)

			tt.want.Provider = "google"
			tt.want.Email = "a@x.com"
			tt.want.EmailVerified = true
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLinkSocialAccount(t *testing.T) {
	t.Parallel()

	user1 := uuid.Must(uuid.NewV4())
	user2 := uuid.Must(uuid.NewV4())

	tests := []struct {
		name         string
		mockBehavior func(ts *testService)
		wantErr      error
		wantCreated  bool
	}{
		{
			name: "Owned by another user",
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").
					Return(entity.SocialAccountLink{AccountID: user1}, nil)
			},
			wantErr: entity.ErrSocialAlreadyLinked,
		},
		{
			name: "Account holds another google identity",
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").
					Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.links.EXPECT().FindByAccountProvider(gomock.Any(), user2, "google").
					Return(entity.SocialAccountLink{ID: uuid.Must(uuid.NewV4()), AccountID: user2, ProviderUserID: "old"}, nil)
			},
			wantErr: entity.ErrSocialAlreadyLinked,
		},
		{
			name: "New link",
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").
					Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.links.EXPECT().FindByAccountProvider(gomock.Any(), user2, "google").
					Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error) {
						return l, true, nil
					})
			},
			wantCreated: true,
		},
		{
			name: "Relink refreshes",
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").
					Return(entity.SocialAccountLink{AccountID: user2}, nil)
				ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, false, nil)
			},
		},
		{
			name: "Lost race to another user",
			mockBehavior: func(ts *testService) {
				ts.links.EXPECT().FindByProviderUser(gomock.Any(), "google", "abc").
					Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.links.EXPECT().FindByAccountProvider(gomock.Any(), user2, "google").
					Return(entity.SocialAccountLink{}, entity.ErrNotFound)
				ts.links.EXPECT().UpsertLink(gomock.Any(), gomock.Any()).Return(entity.SocialAccountLink{}, false, entity.ErrConflict)
			},
			wantErr: entity.ErrSocialAlreadyLinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)

			ts.google.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(googleIdentity("abc", "a@x.com", true), nil)
			tt.mockBehavior(ts)

			res, err := ts.s.LinkSocialAccount(context.Background(), user2, "google", idTokenPayload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "google", res.Provider)
			require.Equal(t, tt.wantCreated, res.Created)
		})
	}
}

func TestUnlinkSocialAccount(t *testing.T) {
	t.Parallel()

	accountID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"Removed", nil, nil},
		{"Not linked", entity.ErrNotFound, entity.ErrSocialNotFound},
		{"Storage failure", errors.New("connection reset"), errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestService(t)
			ts.links.EXPECT().DeleteLink(gomock.Any(), accountID, "google").Return(tt.repoErr)

			err := ts.s.UnlinkSocialAccount(context.Background(), accountID, "google")

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
			case tt.repoErr == entity.ErrNotFound:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.ErrorContains(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestUsernameBase_TruncatesByRune(t *testing.T) {
	t.Parallel()

	local := strings.Repeat("é", 200)

	base := service.UsernameBase(local+"@x.com", "google", "abc")
	require.True(t, utf8.ValidString(base))
	require.Equal(t, 140, utf8.RuneCountInString(base))

	require.Equal(t, "google_abc", service.UsernameBase("", "Google", "ABC"))
	require.Equal(t, "jane_doe", service.UsernameBase("Jane Doe@x.com", "google", "abc"))
}

func TestUniqueUsername_SuffixKeepsRunesWhole(t *testing.T) {
	t.Parallel()

	ts := newTestService(t)

	base := strings.Repeat("ж", 150)

	ts.accounts.EXPECT().UsernameExists(gomock.Any(), base).Return(true, nil)
	ts.accounts.EXPECT().UsernameExists(gomock.Any(), gomock.Any()).Return(false, nil)

	got, err := service.UniqueUsername(context.Background(), ts.s, base)
	require.NoError(t, err)
	require.True(t, utf8.ValidString(got))
	require.True(t, strings.HasSuffix(got, "_2"))
	require.Equal(t, 150, utf8.RuneCountInString(got))
}
