package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock . CarCommands,LocationCacheInvalidator,LocationCommands,ReservationCommands

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"

	"github.com/google/uuid"
)

// LocationCacheInvalidator drops cached location reads after spot counts change.
type LocationCacheInvalidator interface {
	Invalidate(ctx context.Context, ids ...uuid.UUID) error
}

type Config struct {
	// GatewayTimeout bounds every command, including all persistence calls it makes.
	GatewayTimeout  time.Duration
	EventTopic      string
	ExpiryBatchSize int
}

type CreateReservationInput struct {
	LocationID uuid.UUID
	CarID      uuid.UUID
	Arrival    time.Time
	Exit       time.Time
}

type ReservationResult struct {
	Reservation *reservation.Reservation
	Payment     *payment.Payment
	// IsReplayed is set when a payment confirmation found the reservation already paid.
	IsReplayed bool
}

type ExpireSummary struct {
	Completed int
	Skipped   int
	Failed    int
}

type CreateLocationInput struct {
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	Capacity       *int
	AvailableSpots *int
}

type CarInput struct {
	Name         string
	LicensePlate string
	Make         string
	Model        string
	Year         int
	Color        string
}

func (in CarInput) details() car.Details {
	return car.Details{
		Name:         in.Name,
		LicensePlate: in.LicensePlate,
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		Color:        in.Color,
	}
}

type CarResult struct {
	Car *car.Car
}

type LocationResult struct {
	Location *location.Location
}

const defaultGatewayTimeout = 5 * time.Second
