package repository

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertLocationSQL = `
INSERT INTO parking_locations (id, name, address, latitude, longitude, capacity, available_spots, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectLocationSQL = `
SELECT id, name, address, latitude, longitude, capacity, available_spots, created_at, updated_at
FROM parking_locations
WHERE id = $1`

	debitLocationSQL = `
UPDATE parking_locations
SET available_spots = available_spots - 1, updated_at = now()
WHERE id = $1 AND available_spots > 0`

	creditLocationSQL = `
UPDATE parking_locations
SET available_spots = CASE
        WHEN capacity IS NULL THEN available_spots + 1
        ELSE LEAST(available_spots + 1, capacity)
    END,
    updated_at = now()
WHERE id = $1`

	locationExistsSQL = `SELECT EXISTS (SELECT 1 FROM parking_locations WHERE id = $1)`
)

type LocationRepository struct {
	db db.DBTX
}

func NewLocationRepository(db db.DBTX) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Get(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	var (
		locID              uuid.UUID
		name, address      string
		lat, lng           float64
		capacity           *int32
		available          int32
		createdAt, updated time.Time
	)
	err := r.db.QueryRow(ctx, selectLocationSQL, id).Scan(
		&locID, &name, &address, &lat, &lng, &capacity, &available, &createdAt, &updated,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get location", err)
	}

	var capPtr *int
	if capacity != nil {
		c := int(*capacity)
		capPtr = &c
	}
	return location.Reconstruct(
		locID, name, address,
		location.Coordinates{Latitude: lat, Longitude: lng},
		capPtr, int(available),
		createdAt, updated,
	), nil
}

func (r *LocationRepository) Create(ctx context.Context, loc *location.Location) error {
	var capacity *int32
	if loc.Capacity() != nil {
		c := int32(*loc.Capacity())
		capacity = &c
	}
	_, err := r.db.Exec(ctx, insertLocationSQL,
		loc.ID(),
		loc.Name(),
		loc.Address(),
		loc.Coordinates().Latitude,
		loc.Coordinates().Longitude,
		capacity,
		int32(loc.AvailableSpots()),
		loc.CreatedAt(),
		loc.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create location", err)
	}
	return nil
}

// CapacityLedger updates the spot counter with single conditional statements,
// so concurrent debits serialize on the row and can never drive it negative.
type CapacityLedger struct {
	db db.DBTX
}

func NewCapacityLedger(db db.DBTX) *CapacityLedger {
	return &CapacityLedger{db: db}
}

func (l *CapacityLedger) Debit(ctx context.Context, locationID uuid.UUID) error {
	tag, err := l.db.Exec(ctx, debitLocationSQL, locationID)
	if err != nil {
		return infra.WrapRepoErr("failed to debit location", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if err := l.ensureExists(ctx, locationID); err != nil {
		return err
	}
	return location.ErrLocationFull
}

func (l *CapacityLedger) Credit(ctx context.Context, locationID uuid.UUID) error {
	tag, err := l.db.Exec(ctx, creditLocationSQL, locationID)
	if err != nil {
		return infra.WrapRepoErr("failed to credit location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("location not found")
	}
	return nil
}

func (l *CapacityLedger) ensureExists(ctx context.Context, locationID uuid.UUID) error {
	var exists bool
	if err := l.db.QueryRow(ctx, locationExistsSQL, locationID).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check location", err)
	}
	if !exists {
		return infra.NotFound("location not found")
	}
	return nil
}
