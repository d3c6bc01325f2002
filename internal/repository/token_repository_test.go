package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/repository"
)

type TokenRepositoryTestSuite struct {
	suite.Suite
	repo *repository.RefreshTokenRepository
}

func (ts *TokenRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewRefreshTokenRepository(repository.SetupTestDatabase(ts.T()))
}

func TestTokenRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(TokenRepositoryTestSuite))
}

func (ts *TokenRepositoryTestSuite) TestConsumeRefreshToken() {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV4())
	token := "refresh_" + uuid.Must(uuid.NewV4()).String()

	ts.Require().NoError(ts.repo.SaveRefreshToken(ctx, accountID, token, time.Now().Add(time.Hour)))

	ts.Run("first use returns owner", func() {
		got, err := ts.repo.ConsumeRefreshToken(ctx, token)
		ts.Require().NoError(err)
		ts.Require().Equal(accountID, got)
	})

	ts.Run("second use fails", func() {
		_, err := ts.repo.ConsumeRefreshToken(ctx, token)
		ts.Require().ErrorIs(err, entity.ErrTokenNotFound)
	})

	ts.Run("expired token", func() {
		expired := "expired_" + uuid.Must(uuid.NewV4()).String()
		ts.Require().NoError(ts.repo.SaveRefreshToken(ctx, accountID, expired, time.Now().Add(-time.Hour)))

		_, err := ts.repo.ConsumeRefreshToken(ctx, expired)
		ts.Require().ErrorIs(err, entity.ErrTokenNotFound)
	})
}

func (ts *TokenRepositoryTestSuite) TestDeleteByAccountID() {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV4())

	for range 3 {
		token := "refresh_" + uuid.Must(uuid.NewV4()).String()
		ts.Require().NoError(ts.repo.SaveRefreshToken(ctx, accountID, token, time.Now().Add(time.Hour)))
	}

	ts.Require().NoError(ts.repo.DeleteByAccountID(ctx, accountID))
}

func (ts *TokenRepositoryTestSuite) TestCleanExpired() {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV4())
	live := "live_" + uuid.Must(uuid.NewV4()).String()

	ts.Require().NoError(ts.repo.SaveRefreshToken(ctx, accountID, live, time.Now().Add(time.Hour)))
	ts.Require().NoError(ts.repo.SaveRefreshToken(ctx, accountID, "stale", time.Now().Add(-time.Hour)))

	ts.Require().NoError(ts.repo.CleanExpired(ctx))

	_, err := ts.repo.ConsumeRefreshToken(ctx, live)
	ts.Require().NoError(err)
}
