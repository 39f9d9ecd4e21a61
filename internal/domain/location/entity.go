package location

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLocationFull        = errors.New("no available spots at this location")
	ErrNameRequired        = errors.New("location name is required")
	ErrInvalidCapacity     = errors.New("capacity cannot be negative")
	ErrInvalidAvailability = errors.New("available spots must be between 0 and capacity")
	ErrInvalidCoordinates  = errors.New("coordinates out of range")
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Latitude: lat, Longitude: lng}, nil
}

// Location is a parking site. Capacity is nil when the operator does not track it.
type Location struct {
	id             uuid.UUID
	name           string
	address        string
	coordinates    Coordinates
	capacity       *int
	availableSpots int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewLocation(name, address string, coords Coordinates, capacity *int, availableSpots int, now time.Time) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if capacity != nil && *capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if availableSpots < 0 || (capacity != nil && availableSpots > *capacity) {
		return nil, ErrInvalidAvailability
	}
	return &Location{
		id:             uuid.New(),
		name:           name,
		address:        strings.TrimSpace(address),
		coordinates:    coords,
		capacity:       capacity,
		availableSpots: availableSpots,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, address string,
	coords Coordinates,
	capacity *int,
	availableSpots int,
	createdAt, updatedAt time.Time,
) *Location {
	return &Location{
		id:             id,
		name:           name,
		address:        address,
		coordinates:    coords,
		capacity:       capacity,
		availableSpots: availableSpots,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (l *Location) HasAvailability() bool {
	return l.availableSpots > 0
}

// Debit takes one spot.
func (l *Location) Debit() error {
	if l.availableSpots <= 0 {
		return ErrLocationFull
	}
	l.availableSpots--
	return nil
}

// Credit returns one spot, never past capacity.
func (l *Location) Credit() {
	if l.capacity != nil && l.availableSpots >= *l.capacity {
		return
	}
	l.availableSpots++
}

func (l *Location) ID() uuid.UUID            { return l.id }
func (l *Location) Name() string             { return l.name }
func (l *Location) Address() string          { return l.address }
func (l *Location) Coordinates() Coordinates { return l.coordinates }
func (l *Location) Capacity() *int           { return l.capacity }
func (l *Location) AvailableSpots() int      { return l.availableSpots }
func (l *Location) CreatedAt() time.Time     { return l.createdAt }
func (l *Location) UpdatedAt() time.Time     { return l.updatedAt }
