package repository

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (id, user_id, location_id, car_id, arrival, exit_at, price_cents, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	selectReservationForUpdateSQL = `
SELECT id, user_id, location_id, car_id, arrival, exit_at, price_cents, status, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

	updateReservationStatusSQL = `
UPDATE reservations
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

	selectDueReservationsSQL = `
SELECT id
FROM reservations
WHERE status = 'paid' AND exit_at <= $1
ORDER BY exit_at
LIMIT $2`

	countActiveByCarSQL = `
SELECT count(*)
FROM reservations
WHERE car_id = $1 AND status IN ('pending', 'paid')`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.UserID(),
		res.LocationID(),
		res.CarID(),
		res.Interval().Arrival(),
		res.Interval().Exit(),
		res.Price().Cents(),
		res.Status().String(),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var rec reservationRow
	err := r.db.QueryRow(ctx, selectReservationForUpdateSQL, id).Scan(
		&rec.ID, &rec.UserID, &rec.LocationID, &rec.CarID,
		&rec.Arrival, &rec.Exit, &rec.PriceCents, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return rec.toDomain()
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updateReservationStatusSQL, id, from.String(), to.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrStatusConflict
	}
	return nil
}

func (r *ReservationRepository) ListDueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, selectDueReservationsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due reservations", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan due reservation", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due reservations", err)
	}
	return ids, nil
}

func (r *ReservationRepository) CountActiveByCar(ctx context.Context, carID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countActiveByCarSQL, carID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations for car", err)
	}
	return n, nil
}

type reservationRow struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LocationID uuid.UUID
	CarID      uuid.UUID
	Arrival    time.Time
	Exit       time.Time
	PriceCents int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r reservationRow) toDomain() (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has unknown status "+r.Status, err, infra.KindDBFailure)
	}
	return reservation.Reconstruct(
		r.ID,
		r.UserID,
		r.LocationID,
		r.CarID,
		reservation.ReconstructInterval(r.Arrival, r.Exit),
		pricing.NewMoney(r.PriceCents),
		status,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}
