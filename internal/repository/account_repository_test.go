package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/repository"
)

func createAccount(t *testing.T, repo *repository.AccountRepository, email, username string) entity.Account {
	t.Helper()

	now := time.Now().UTC()
	a := entity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        email,
		Username:     username,
		PasswordHash: entity.UnusablePasswordPrefix + "x",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p := entity.Profile{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: a.ID,
		Role:      entity.DefaultProfileRole,
		IsDefault: true,
		CreatedAt: now,
	}

	require.NoError(t, repo.CreateWithProfile(context.Background(), a, p))

	return a
}

type AccountRepositoryTestSuite struct {
	suite.Suite
	repo     *repository.AccountRepository
	profiles *repository.ProfileRepository
	devices  *repository.DeviceRepository
}

func (ts *AccountRepositoryTestSuite) SetupTest() {
	db := repository.SetupTestDatabase(ts.T())
	ts.repo = repository.NewAccountRepository(db)
	ts.profiles = repository.NewProfileRepository(db)
	ts.devices = repository.NewDeviceRepository(db)
}

func TestAccountRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (ts *AccountRepositoryTestSuite) TestFindByEmailIgnoresCase() {
	ctx := context.Background()
	a := createAccount(ts.T(), ts.repo, "Mixed@Example.com", "mixed")

	got, err := ts.repo.FindByEmail(ctx, "mixed@example.COM")
	ts.Require().NoError(err)
	ts.Require().Equal(a.ID, got.ID)

	got, err = ts.repo.FindByLogin(ctx, "mixed")
	ts.Require().NoError(err)
	ts.Require().Equal(a.ID, got.ID)

	_, err = ts.repo.FindByEmail(ctx, "missing@example.com")
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *AccountRepositoryTestSuite) TestCreateDuplicateEmail() {
	createAccount(ts.T(), ts.repo, "dup@example.com", "dup1")

	a := entity.Account{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "DUP@example.com",
		Username:  "dup2",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	p := entity.Profile{ID: uuid.Must(uuid.NewV4()), AccountID: a.ID, Role: "USER", IsDefault: true, CreatedAt: time.Now()}

	err := ts.repo.CreateWithProfile(context.Background(), a, p)
	ts.Require().ErrorIs(err, entity.ErrAlreadyExists)

	exists, err := ts.repo.UsernameExists(context.Background(), "dup2")
	ts.Require().NoError(err)
	ts.Require().False(exists)
}

func (ts *AccountRepositoryTestSuite) TestDefaultProfile() {
	ctx := context.Background()
	a := createAccount(ts.T(), ts.repo, "profile@example.com", "profile")

	p, err := ts.profiles.FindDefault(ctx, a.ID)
	ts.Require().NoError(err)
	ts.Require().True(p.CompletionRequired())

	second := entity.Profile{ID: uuid.Must(uuid.NewV4()), AccountID: a.ID, Role: "USER", CreatedAt: time.Now()}
	ts.Require().ErrorIs(ts.profiles.CreateDefault(ctx, second), entity.ErrAlreadyExists)

	ts.Require().NoError(ts.profiles.UpdatePicture(ctx, p.ID, "social-x.png", "image/png", []byte{1, 2}))

	p, err = ts.profiles.FindDefault(ctx, a.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("social-x.png", p.PictureName)
}

func (ts *AccountRepositoryTestSuite) TestSaveDeviceUpsertsByToken() {
	ctx := context.Background()
	a := createAccount(ts.T(), ts.repo, "device@example.com", "device")
	token := "device-token"

	d := entity.Device{
		ID:                uuid.Must(uuid.NewV4()),
		AccountID:         a.ID,
		Platform:          "ios",
		Name:              "iPhone",
		Token:             &token,
		NotificationToken: "push-1",
		LinkedAt:          time.Now(),
	}

	first, err := ts.devices.SaveDevice(ctx, d)
	ts.Require().NoError(err)

	d.ID = uuid.Must(uuid.NewV4())
	d.NotificationToken = "push-2"

	second, err := ts.devices.SaveDevice(ctx, d)
	ts.Require().NoError(err)
	ts.Require().Equal(first.ID, second.ID)

	d.ID = uuid.Must(uuid.NewV4())
	d.Token = nil

	_, err = ts.devices.SaveDevice(ctx, d)
	ts.Require().NoError(err)

	n, err := ts.devices.CountByAccount(ctx, a.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(2, n)
}
