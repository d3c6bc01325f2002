package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func insertProfile(ctx context.Context, tx pgx.Tx, p entity.Profile) error {
	q := `
	INSERT INTO profiles (id, account_id, first_name, last_name, role, is_default, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, q, p.ID, p.AccountID, p.FirstName, p.LastName, p.Role, p.IsDefault, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "profiles_default_uidx") {
			return entity.ErrAlreadyExists
		}

		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) FindDefault(ctx context.Context, accountID uuid.UUID) (entity.Profile, error) {
	var p entity.Profile

	q := `
	SELECT id, account_id, first_name, last_name, role, is_default, picture_name, picture_content_type, created_at
	FROM profiles
	WHERE account_id = $1 AND is_default = TRUE
	LIMIT 1
	`

	err := r.db.QueryRow(ctx, q, accountID).Scan(
		&p.ID, &p.AccountID, &p.FirstName, &p.LastName, &p.Role, &p.IsDefault,
		&p.PictureName, &p.PictureContentType, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, entity.ErrNotFound
		}

		return p, err
	}

	return p, nil
}

// CreateDefault inserts a default profile. A concurrent insert of another
// default profile for the same account yields entity.ErrAlreadyExists.
func (r *ProfileRepository) CreateDefault(ctx context.Context, p entity.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	p.IsDefault = true

	if err := insertProfile(ctx, tx, p); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ProfileRepository) UpdatePicture(ctx context.Context, id uuid.UUID, name, contentType string, picture []byte) error {
	q := `UPDATE profiles SET picture_name = $2, picture_content_type = $3, picture = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id, name, contentType, picture)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
