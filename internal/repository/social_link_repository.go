package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

const accountProviderConstraint = "social_accounts_account_provider_uniq"

type SocialLinkRepository struct {
	db *pgxpool.Pool
}

func NewSocialLinkRepository(db *pgxpool.Pool) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

var socialLinkColumns = []string{
	"id", "account_id", "provider", "provider_user_id", "email", "email_verified",
	"picture_url", "raw_response", "last_login_at", "created_at",
}

func scanSocialLink(row pgx.Row) (entity.SocialAccountLink, error) {
	var (
		l   entity.SocialAccountLink
		raw []byte
	)

	err := row.Scan(
		&l.ID, &l.AccountID, &l.Provider, &l.ProviderUserID, &l.Email, &l.EmailVerified,
		&l.PictureURL, &raw, &l.LastLoginAt, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return l, entity.ErrNotFound
		}

		return l, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &l.RawResponse); err != nil {
			return l, fmt.Errorf("decode raw response: %w", err)
		}
	}

	return l, nil
}

func (r *SocialLinkRepository) findOne(ctx context.Context, where sq.Eq) (entity.SocialAccountLink, error) {
	q, args, err := psql.Select(socialLinkColumns...).From("social_accounts").Where(where).Limit(1).ToSql()
	if err != nil {
		return entity.SocialAccountLink{}, fmt.Errorf("build query: %w", err)
	}

	return scanSocialLink(r.db.QueryRow(ctx, q, args...))
}

func (r *SocialLinkRepository) FindByProviderUser(
	ctx context.Context,
	provider, providerUserID string,
) (entity.SocialAccountLink, error) {
	return r.findOne(ctx, sq.Eq{"provider": provider, "provider_user_id": providerUserID})
}

func (r *SocialLinkRepository) FindByAccountProvider(
	ctx context.Context,
	accountID uuid.UUID,
	provider string,
) (entity.SocialAccountLink, error) {
	return r.findOne(ctx, sq.Eq{"account_id": accountID, "provider": provider})
}

func (r *SocialLinkRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.SocialAccountLink, error) {
	q, args, err := psql.Select(socialLinkColumns...).
		From("social_accounts").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []entity.SocialAccountLink

	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}

		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

// UpsertLink inserts the link or refreshes the existing (provider,
// provider_user_id) row. A row owned by a different account is never
// reassigned: that case, and an account that already holds another identity
// of the same provider, yield entity.ErrConflict.
func (r *SocialLinkRepository) UpsertLink(ctx context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error) {
	raw, err := json.Marshal(l.RawResponse)
	if err != nil {
		return l, false, fmt.Errorf("encode raw response: %w", err)
	}

	if l.RawResponse == nil {
		raw = []byte("{}")
	}

	q := `
	INSERT INTO social_accounts (
		id, account_id, provider, provider_user_id, email, email_verified,
		picture_url, raw_response, last_login_at, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (provider, provider_user_id) DO UPDATE SET
		email = EXCLUDED.email,
		email_verified = EXCLUDED.email_verified,
		picture_url = EXCLUDED.picture_url,
		raw_response = EXCLUDED.raw_response,
		last_login_at = EXCLUDED.last_login_at
	WHERE social_accounts.account_id = EXCLUDED.account_id
	RETURNING id, created_at, (xmax = 0) AS inserted
	`

	var created bool

	err = r.db.QueryRow(
		ctx, q,
		l.ID, l.AccountID, l.Provider, l.ProviderUserID, l.Email, l.EmailVerified,
		l.PictureURL, raw, l.LastLoginAt, l.CreatedAt,
	).Scan(&l.ID, &l.CreatedAt, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err, accountProviderConstraint) {
			return l, false, entity.ErrConflict
		}

		return l, false, err
	}

	return l, created, nil
}

// DeleteLink removes the link of the given provider from the account.
func (r *SocialLinkRepository) DeleteLink(ctx context.Context, accountID uuid.UUID, provider string) error {
	q := `DELETE FROM social_accounts WHERE account_id = $1 AND provider = $2`

	result, err := r.db.Exec(ctx, q, accountID, provider)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
