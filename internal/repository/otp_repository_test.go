package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/repository"
)

type OtpRepositoryTestSuite struct {
	suite.Suite
	repo *repository.OtpRepository
}

func (ts *OtpRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewOtpRepository(repository.SetupTestDatabase(ts.T()))
}

func TestOtpRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(OtpRepositoryTestSuite))
}

func (ts *OtpRepositoryTestSuite) newChallenge(target string, createdAt time.Time, ttl time.Duration) entity.OtpChallenge {
	c := entity.OtpChallenge{
		ID:         uuid.Must(uuid.NewV4()),
		Target:     target,
		Channel:    entity.ChannelEmail,
		CodeHash:   "hash",
		CreatedAt:  createdAt,
		LastSentAt: createdAt,
		ExpiresAt:  createdAt.Add(ttl),
	}

	ts.Require().NoError(ts.repo.SaveChallenge(context.Background(), c))

	return c
}

func (ts *OtpRepositoryTestSuite) TestFindActive() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	ts.newChallenge("a@example.com", now.Add(-2*time.Minute), 10*time.Minute)
	latest := ts.newChallenge("a@example.com", now.Add(-time.Minute), 10*time.Minute)
	ts.newChallenge("expired@example.com", now.Add(-time.Hour), time.Minute)

	testCases := []struct {
		name    string
		target  string
		wantID  uuid.UUID
		wantErr error
	}{
		{name: "most recent wins", target: "a@example.com", wantID: latest.ID},
		{name: "expired is ignored", target: "expired@example.com", wantErr: entity.ErrNotFound},
		{name: "unknown target", target: "none@example.com", wantErr: entity.ErrNotFound},
	}

	for _, tc := range testCases {
		ts.Run(tc.name, func() {
			got, err := ts.repo.FindActive(ctx, tc.target, entity.ChannelEmail, now)
			if tc.wantErr != nil {
				ts.Require().ErrorIs(err, tc.wantErr)
				return
			}

			ts.Require().NoError(err)
			ts.Require().Equal(tc.wantID, got.ID)
		})
	}

	ts.Run("latest unused includes expired", func() {
		got, err := ts.repo.LatestUnused(ctx, "expired@example.com", entity.ChannelEmail)
		ts.Require().NoError(err)
		ts.Require().Equal("expired@example.com", got.Target)
	})
}

func (ts *OtpRepositoryTestSuite) TestIncrementAttemptsStopsAtLimit() {
	ctx := context.Background()
	c := ts.newChallenge("b@example.com", time.Now(), 10*time.Minute)

	for i := 1; i <= 3; i++ {
		n, err := ts.repo.IncrementAttempts(ctx, c.ID, 3)
		ts.Require().NoError(err)
		ts.Require().Equal(i, n)
	}

	_, err := ts.repo.IncrementAttempts(ctx, c.ID, 3)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	// the last reserved attempt may still consume the challenge
	ts.Require().NoError(ts.repo.MarkUsed(ctx, c.ID))

	_, err = ts.repo.IncrementAttempts(ctx, c.ID, 5)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *OtpRepositoryTestSuite) TestMarkUsedOnlyOnceUnderConcurrency() {
	ctx := context.Background()
	c := ts.newChallenge("c@example.com", time.Now(), 10*time.Minute)

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if ts.repo.MarkUsed(ctx, c.ID) == nil {
				winners.Add(1)
			}
		}()
	}

	wg.Wait()

	ts.Require().Equal(int32(1), winners.Load())

	_, err := ts.repo.FindActive(ctx, c.Target, c.Channel, time.Now())
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *OtpRepositoryTestSuite) TestDeleteStale() {
	ctx := context.Background()
	now := time.Now()

	ts.newChallenge("old@example.com", now.Add(-48*time.Hour), time.Minute)
	ts.newChallenge("fresh@example.com", now, 10*time.Minute)

	n, err := ts.repo.DeleteStale(ctx, now.Add(-24*time.Hour))
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)
}
