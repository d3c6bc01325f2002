package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/identity/internal/entity"
)

// DeliveryLogRepository appends delivery outcomes to sms_logs or email_logs.
type DeliveryLogRepository struct {
	db           *pgxpool.Pool
	table        string
	targetColumn string
}

func NewSMSLogRepository(db *pgxpool.Pool) *DeliveryLogRepository {
	return &DeliveryLogRepository{db: db, table: "sms_logs", targetColumn: "phone"}
}

func NewEmailLogRepository(db *pgxpool.Pool) *DeliveryLogRepository {
	return &DeliveryLogRepository{db: db, table: "email_logs", targetColumn: "email"}
}

func (r *DeliveryLogRepository) SaveDeliveryLog(ctx context.Context, l entity.DeliveryLog) error {
	q, args, err := psql.Insert(r.table).
		Columns("id", r.targetColumn, "provider", "status", "error_message", "created_at").
		Values(l.ID, l.Target, l.Provider, l.Status, l.ErrorMessage, l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}

	return nil
}
