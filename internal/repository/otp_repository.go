package repository

import (
	"context"
	"errors"
	"time"

	uuid "github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

type OtpRepository struct {
	db *pgxpool.Pool
}

func NewOtpRepository(db *pgxpool.Pool) *OtpRepository {
	return &OtpRepository{db: db}
}

func (r *OtpRepository) SaveChallenge(ctx context.Context, c entity.OtpChallenge) error {
	q := `
	INSERT INTO otp_challenges (id, target, channel, code_hash, created_at, last_sent_at, expires_at, used, attempts)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx, q,
		c.ID, c.Target, c.Channel, c.CodeHash,
		c.CreatedAt, c.LastSentAt, c.ExpiresAt, c.Used, c.Attempts,
	)
	if err != nil {
		return err
	}

	return nil
}

const selectChallenge = `
	SELECT id, target, channel, code_hash, created_at, last_sent_at, expires_at, used, attempts
	FROM otp_challenges
`

func scanChallenge(row pgx.Row) (entity.OtpChallenge, error) {
	var c entity.OtpChallenge

	err := row.Scan(
		&c.ID, &c.Target, &c.Channel, &c.CodeHash,
		&c.CreatedAt, &c.LastSentAt, &c.ExpiresAt, &c.Used, &c.Attempts,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c, entity.ErrNotFound
		}

		return c, err
	}

	return c, nil
}

// LatestUnused returns the most recent unused challenge regardless of expiry.
func (r *OtpRepository) LatestUnused(ctx context.Context, target string, channel entity.Channel) (entity.OtpChallenge, error) {
	q := selectChallenge + `
	WHERE target = $1 AND channel = $2 AND used = FALSE
	ORDER BY created_at DESC
	LIMIT 1
	`

	return scanChallenge(r.db.QueryRow(ctx, q, target, channel))
}

// FindActive returns the most recent unused challenge that has not expired at now.
func (r *OtpRepository) FindActive(
	ctx context.Context,
	target string,
	channel entity.Channel,
	now time.Time,
) (entity.OtpChallenge, error) {
	q := selectChallenge + `
	WHERE target = $1 AND channel = $2 AND used = FALSE AND expires_at > $3
	ORDER BY created_at DESC
	LIMIT 1
	`

	return scanChallenge(r.db.QueryRow(ctx, q, target, channel, now))
}

// IncrementAttempts bumps the counter only while it is below limit and the
// challenge is unused. It returns entity.ErrNotFound when no row qualified.
func (r *OtpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID, limit int) (int, error) {
	var attempts int

	q := `
	UPDATE otp_challenges SET attempts = attempts + 1
	WHERE id = $1 AND used = FALSE AND attempts < $2
	RETURNING attempts
	`

	err := r.db.QueryRow(ctx, q, id, limit).Scan(&attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrNotFound
		}

		return 0, err
	}

	return attempts, nil
}

// MarkUsed flips the used flag exactly once. Losing a concurrent race yields
// entity.ErrNotFound.
func (r *OtpRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE otp_challenges SET used = TRUE WHERE id = $1 AND used = FALSE`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteStale removes challenges that expired before the given moment.
func (r *OtpRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	q := `DELETE FROM otp_challenges WHERE expires_at < $1`

	result, err := r.db.Exec(ctx, q, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
