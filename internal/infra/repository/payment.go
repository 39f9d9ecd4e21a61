package repository

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertPaymentSQL = `
INSERT INTO payments (id, reservation_id, user_id, amount_cents, method, status, paid_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectPaymentByReservationSQL = `
SELECT id, reservation_id, user_id, amount_cents, method, status, paid_at, updated_at
FROM payments
WHERE reservation_id = $1`

	updatePaymentStatusSQL = `
UPDATE payments
SET status = $2, updated_at = $3
WHERE id = $1`
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(db db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create relies on the unique reservation_id constraint to refuse a second payment.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx, insertPaymentSQL,
		p.ID(),
		p.ReservationID(),
		p.UserID(),
		p.Amount().Cents(),
		p.Method().String(),
		p.Status().String(),
		p.PaidAt(),
		p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	var (
		id, resID, userID uuid.UUID
		amountCents       int64
		method, status    string
		paidAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, selectPaymentByReservationSQL, reservationID).Scan(
		&id, &resID, &userID, &amountCents, &method, &status, &paidAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get payment", err)
	}
	return payment.Reconstruct(
		id, resID, userID,
		pricing.NewMoney(amountCents),
		payment.Method(method),
		payment.Status(status),
		paidAt, updatedAt,
	), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status payment.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updatePaymentStatusSQL, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("payment not found")
	}
	return nil
}
