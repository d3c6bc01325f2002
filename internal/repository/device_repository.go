package repository

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

type DeviceRepository struct {
	db *pgxpool.Pool
}

func NewDeviceRepository(db *pgxpool.Pool) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// SaveDevice inserts a device. When d.Token is set, an existing row for the
// same (account, token) pair is updated in place and its id returned.
func (r *DeviceRepository) SaveDevice(ctx context.Context, d entity.Device) (entity.Device, error) {
	b := psql.Insert("devices").
		Columns("id", "account_id", "platform", "name", "token", "notification_token", "linked_at").
		Values(d.ID, d.AccountID, d.Platform, d.Name, d.Token, d.NotificationToken, d.LinkedAt)

	if d.Token != nil {
		b = b.Suffix(`
		ON CONFLICT (account_id, token) WHERE token IS NOT NULL DO UPDATE SET
			platform = EXCLUDED.platform,
			name = EXCLUDED.name,
			notification_token = EXCLUDED.notification_token,
			linked_at = EXCLUDED.linked_at`)
	}

	q, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return d, fmt.Errorf("build query: %w", err)
	}

	if err := r.db.QueryRow(ctx, q, args...).Scan(&d.ID); err != nil {
		return d, err
	}

	return d, nil
}

func (r *DeviceRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	var n int

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM devices WHERE account_id = $1`, accountID).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}
