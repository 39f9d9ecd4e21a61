package readstore

import (
	"context"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	reservationViewColumns = `
SELECT r.id, r.user_id, r.location_id, l.name, r.car_id, COALESCE(c.license_plate, ''),
       r.arrival, r.exit_at, r.price_cents, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN parking_locations l ON l.id = r.location_id
LEFT JOIN cars c ON c.id = r.car_id`

	selectReservationViewSQL = reservationViewColumns + `
WHERE r.id = $1`

	selectReservationViewsByUserSQL = reservationViewColumns + `
WHERE r.user_id = $1
ORDER BY r.arrival DESC, r.id`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := scanReservationView(s.db.QueryRow(ctx, selectReservationViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, selectReservationViewsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.UserID, &v.LocationID, &v.LocationName, &v.CarID, &v.LicensePlate,
		&v.Arrival, &v.Exit, &v.PriceCents, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
