package readstore

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/pkg/pgconv"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	claimDueJobsSQL = `
WITH claimed AS (
    UPDATE notification_jobs
    SET run_at = $2, updated_at = $1
    WHERE id IN (
        SELECT id
        FROM notification_jobs
        WHERE status = 'pending' AND run_at <= $1
        ORDER BY run_at, id
        LIMIT $3
        FOR UPDATE SKIP LOCKED
    )
    RETURNING id, kind, topic, payload, run_at, attempts, status, last_error, created_at
)
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at
FROM claimed
ORDER BY created_at, id`

	markJobSentSQL = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = $2
WHERE id = $1`

	markJobFailedSQL = `
UPDATE notification_jobs
SET status = CASE WHEN $4 THEN 'failed' ELSE status END,
    attempts = attempts + 1,
    last_error = $2,
    run_at = $3,
    updated_at = now()
WHERE id = $1`
)

// Outbox lets relay workers drain notification jobs written by booking transactions.
type Outbox struct {
	db db.DBTX
}

func NewOutbox(db db.DBTX) *Outbox {
	return &Outbox{db: db}
}

// ClaimDue pushes run_at of the claimed rows to the lease end in the same
// statement that selects them, so concurrent relays never share a job.
func (o *Outbox) ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]shared.NotificationJob, error) {
	rows, err := o.db.Query(ctx, claimDueJobsSQL, now, now.Add(lease), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	jobs := make([]shared.NotificationJob, 0)
	for rows.Next() {
		var (
			job       shared.NotificationJob
			attempts  int32
			lastError pgtype.Text
		)
		if err := rows.Scan(
			&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt,
			&attempts, &job.Status, &lastError, &job.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		job.Attempts = int(attempts)
		job.LastError = pgconv.StringPtrFromPgtype(lastError)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (o *Outbox) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := o.db.Exec(ctx, markJobSentSQL, id, at); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (o *Outbox) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt time.Time, giveUp bool) error {
	if _, err := o.db.Exec(ctx, markJobFailedSQL, id, reason, retryAt, giveUp); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
