package readstore

import (
	"context"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

const selectPaymentViewsByUserSQL = `
SELECT p.id, p.reservation_id, p.user_id, r.location_id, l.name,
       p.amount_cents, p.method, p.status, p.paid_at, p.updated_at
FROM payments p
JOIN reservations r ON r.id = p.reservation_id
JOIN parking_locations l ON l.id = r.location_id
WHERE p.user_id = $1
ORDER BY p.paid_at DESC, p.id`

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(db db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

func (s *PaymentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := s.db.Query(ctx, selectPaymentViewsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	views := make([]*queries.PaymentView, 0)
	for rows.Next() {
		var v queries.PaymentView
		if err := rows.Scan(
			&v.ID, &v.ReservationID, &v.UserID, &v.LocationID, &v.LocationName,
			&v.AmountCents, &v.Method, &v.Status, &v.PaidAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return views, nil
}
