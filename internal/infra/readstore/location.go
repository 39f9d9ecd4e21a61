package readstore

import (
	"context"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/pkg/pgconv"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	locationViewColumns = `
SELECT id, name, address, latitude, longitude, capacity, available_spots, updated_at
FROM parking_locations`

	selectLocationViewSQL = locationViewColumns + `
WHERE id = $1`

	selectLocationViewsSQL = locationViewColumns + `
ORDER BY name, id`
)

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(db db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: db}
}

func (s *LocationReadStore) FindAll(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := s.db.Query(ctx, selectLocationViewsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	views := make([]*queries.LocationView, 0)
	for rows.Next() {
		view, err := scanLocationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan location", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locations", err)
	}
	return views, nil
}

func (s *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	view, err := scanLocationView(s.db.QueryRow(ctx, selectLocationViewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find location by ID", err)
	}
	return view, nil
}

func scanLocationView(row pgx.Row) (*queries.LocationView, error) {
	var (
		v         queries.LocationView
		capacity  pgtype.Int4
		available int32
	)
	if err := row.Scan(
		&v.ID, &v.Name, &v.Address, &v.Latitude, &v.Longitude, &capacity, &available, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.Capacity = pgconv.IntPtrFromPgtype(capacity)
	v.AvailableSpots = int(available)
	return &v, nil
}
