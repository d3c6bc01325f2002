package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

var accountColumns = []string{
	"id", "email", "phone", "username", "password_hash",
	"is_active", "is_verified", "terms_accepted_at", "created_at", "updated_at",
}

func scanAccount(row pgx.Row) (entity.Account, error) {
	var a entity.Account

	err := row.Scan(
		&a.ID, &a.Email, &a.Phone, &a.Username, &a.PasswordHash,
		&a.IsActive, &a.IsVerified, &a.TermsAcceptedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return a, entity.ErrNotFound
		}

		return a, err
	}

	return a, nil
}

func (r *AccountRepository) findOne(ctx context.Context, where sq.Sqlizer) (entity.Account, error) {
	q, args, err := psql.Select(accountColumns...).From("accounts").Where(where).Limit(1).ToSql()
	if err != nil {
		return entity.Account{}, fmt.Errorf("build query: %w", err)
	}

	return scanAccount(r.db.QueryRow(ctx, q, args...))
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Account, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindByEmail matches case-insensitively.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (entity.Account, error) {
	return r.findOne(ctx, sq.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email)))
}

func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (entity.Account, error) {
	return r.findOne(ctx, sq.Eq{"phone": phone})
}

// FindByLogin looks an account up by email or username.
func (r *AccountRepository) FindByLogin(ctx context.Context, login string) (entity.Account, error) {
	login = strings.TrimSpace(login)

	return r.findOne(ctx, sq.Or{
		sq.Expr("LOWER(email) = LOWER(?)", login),
		sq.Eq{"username": login},
	})
}

func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool

	q := `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`

	err := r.db.QueryRow(ctx, q, username).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// CreateWithProfile inserts the account and its default profile atomically.
// A duplicate email, phone or username yields entity.ErrAlreadyExists.
func (r *AccountRepository) CreateWithProfile(ctx context.Context, a entity.Account, p entity.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	q, args, err := psql.Insert("accounts").
		Columns(accountColumns...).
		Values(
			a.ID, a.Email, a.Phone, a.Username, a.PasswordHash,
			a.IsActive, a.IsVerified, a.TermsAcceptedAt, a.CreatedAt, a.UpdatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := tx.Exec(ctx, q, args...); err != nil {
		if isUniqueViolation(err, "") {
			return entity.ErrAlreadyExists
		}

		return fmt.Errorf("insert account: %w", err)
	}

	if err := insertProfile(ctx, tx, p); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *AccountRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE accounts SET is_verified = TRUE, updated_at = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
