//go:build unit || e2e

package builder

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/location"
	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationBuilder struct {
	ID             uuid.UUID
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	Capacity       *int
	AvailableSpots int
	CreatedAt      time.Time
}

func NewLocationBuilder() *LocationBuilder {
	capacity := 10
	return &LocationBuilder{
		ID:             uuid.New(),
		Name:           "Central Garage",
		Address:        "1 Station Square",
		Latitude:       35.681,
		Longitude:      139.767,
		Capacity:       &capacity,
		AvailableSpots: capacity,
		CreatedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) WithSpots(available int) *LocationBuilder {
	b.AvailableSpots = available
	if b.Capacity != nil && *b.Capacity < available {
		c := available
		b.Capacity = &c
	}
	return b
}

// WithCapacity sets a tracked capacity with every spot free.
func (b *LocationBuilder) WithCapacity(capacity int) *LocationBuilder {
	b.Capacity = &capacity
	b.AvailableSpots = capacity
	return b
}

func (b *LocationBuilder) BuildDomain() *location.Location {
	return location.Reconstruct(
		b.ID,
		b.Name,
		b.Address,
		location.Coordinates{Latitude: b.Latitude, Longitude: b.Longitude},
		b.Capacity,
		b.AvailableSpots,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *LocationBuilder) BuildView() *queries.LocationView {
	return &queries.LocationView{
		ID:             b.ID,
		Name:           b.Name,
		Address:        b.Address,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		Capacity:       b.Capacity,
		AvailableSpots: b.AvailableSpots,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *LocationBuilder) BuildCreateRequestDTO() reqdto.CreateLocationRequest {
	lat, lng := b.Latitude, b.Longitude
	return reqdto.CreateLocationRequest{
		Name:      b.Name,
		Address:   b.Address,
		Latitude:  &lat,
		Longitude: &lng,
		Capacity:  b.Capacity,
	}
}
