package repository

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status, attempts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $5)`

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, insertNotificationJobSQL,
		uuid.New(), kind, topic, payload, runAt, shared.JobStatusPending)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
