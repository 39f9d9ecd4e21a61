//go:build unit || e2e

package builder

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Details   car.Details
	CreatedAt time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Details: car.Details{
			Name:         "Daily",
			LicensePlate: "KA-01-1234",
			Make:         "Toyota",
			Model:        "Corolla",
			Year:         2019,
			Color:        "Blue",
		},
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) OwnedBy(userID uuid.UUID) *CarBuilder {
	b.UserID = userID
	return b
}

func (b *CarBuilder) BuildDomain() *car.Car {
	return car.Reconstruct(b.ID, b.UserID, b.Details, b.CreatedAt, b.CreatedAt)
}

func (b *CarBuilder) BuildView() *queries.CarView {
	return &queries.CarView{
		ID:           b.ID,
		UserID:       b.UserID,
		Name:         b.Details.Name,
		LicensePlate: b.Details.LicensePlate,
		Make:         b.Details.Make,
		Model:        b.Details.Model,
		Year:         b.Details.Year,
		Color:        b.Details.Color,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *CarBuilder) BuildRequestDTO() reqdto.CarRequest {
	return reqdto.CarRequest{
		Name:         b.Details.Name,
		LicensePlate: b.Details.LicensePlate,
		Make:         b.Details.Make,
		Model:        b.Details.Model,
		Year:         b.Details.Year,
		Color:        b.Details.Color,
	}
}
