package repository

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertCarSQL = `
INSERT INTO cars (id, user_id, name, license_plate, make, model, year, color, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	selectCarForUpdateSQL = `
SELECT id, user_id, name, license_plate, make, model, year, color, created_at, updated_at
FROM cars
WHERE id = $1
FOR UPDATE`

	updateCarSQL = `
UPDATE cars
SET name = $2, license_plate = $3, make = $4, model = $5, year = $6, color = $7, updated_at = $8
WHERE id = $1`

	deleteCarSQL = `DELETE FROM cars WHERE id = $1`
)

type carRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Details   car.Details
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CarRepository struct {
	db db.DBTX
}

func NewCarRepository(db db.DBTX) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	var rec carRow
	err := r.db.QueryRow(ctx, selectCarForUpdateSQL, id).Scan(
		&rec.ID, &rec.UserID, &rec.Details.Name, &rec.Details.LicensePlate,
		&rec.Details.Make, &rec.Details.Model, &rec.Details.Year, &rec.Details.Color,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get car", err)
	}
	return car.Reconstruct(rec.ID, rec.UserID, rec.Details, rec.CreatedAt, rec.UpdatedAt), nil
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) error {
	d := c.Details()
	_, err := r.db.Exec(ctx, insertCarSQL,
		c.ID(), c.UserID(), d.Name, d.LicensePlate, d.Make, d.Model, d.Year, d.Color,
		c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create car", err)
	}
	return nil
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) error {
	d := c.Details()
	tag, err := r.db.Exec(ctx, updateCarSQL,
		c.ID(), d.Name, d.LicensePlate, d.Make, d.Model, d.Year, d.Color, c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("car not found")
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteCarSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("car not found")
	}
	return nil
}
