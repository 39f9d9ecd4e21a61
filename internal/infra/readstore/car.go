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
	carViewColumns = `
SELECT id, user_id, name, license_plate, make, model, year, color, created_at, updated_at
FROM cars`

	selectCarViewSQL = carViewColumns + `
WHERE id = $1`

	selectCarViewsByUserSQL = carViewColumns + `
WHERE user_id = $1
ORDER BY created_at, id`
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(db db.DBTX) *CarReadStore {
	return &CarReadStore{db: db}
}

func (s *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	view, err := scanCarView(s.db.QueryRow(ctx, selectCarViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return view, nil
}

func (s *CarReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CarView, error) {
	rows, err := s.db.Query(ctx, selectCarViewsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	views := make([]*queries.CarView, 0)
	for rows.Next() {
		view, err := scanCarView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cars", err)
	}
	return views, nil
}

func scanCarView(row pgx.Row) (*queries.CarView, error) {
	var v queries.CarView
	err := row.Scan(
		&v.ID, &v.UserID, &v.Name, &v.LicensePlate, &v.Make, &v.Model, &v.Year, &v.Color,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
