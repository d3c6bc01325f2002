package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

// RefreshTokenRepository stores refresh tokens by their SHA-256 digest.
type RefreshTokenRepository struct {
	db *pgxpool.Pool
}

func NewRefreshTokenRepository(db *pgxpool.Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r *RefreshTokenRepository) SaveRefreshToken(ctx context.Context, accountID uuid.UUID, token string, expiresAt time.Time) error {
	q := `INSERT INTO token (user_id, refresh_token, refresh_token_expire) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, accountID, digest(token), expiresAt.Unix())
	if err != nil {
		return err
	}

	return nil
}

// ConsumeRefreshToken deletes an unexpired token and returns its owner.
// Each token can be consumed once.
func (r *RefreshTokenRepository) ConsumeRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	var accountID uuid.UUID

	q := `
	DELETE FROM token
	WHERE refresh_token = $1
	AND refresh_token_expire > EXTRACT(EPOCH FROM NOW())
	RETURNING user_id`

	err := r.db.QueryRow(ctx, q, digest(token)).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, entity.ErrTokenNotFound
		}

		return uuid.Nil, err
	}

	return accountID, nil
}

func (r *RefreshTokenRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	q := `DELETE FROM token WHERE user_id = $1`

	_, err := r.db.Exec(ctx, q, accountID)
	if err != nil {
		return err
	}

	return nil
}

func (r *RefreshTokenRepository) CleanExpired(ctx context.Context) error {
	q := `DELETE FROM token WHERE refresh_token_expire < EXTRACT(EPOCH FROM NOW())`

	_, err := r.db.Exec(ctx, q)
	if err != nil {
		return err
	}

	return nil
}
