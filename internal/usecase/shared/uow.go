package shared

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrStatusConflict means the reservation left the expected status between read and write.
var ErrStatusConflict = errs.New("reservation status changed concurrently")

type UnitOfWork interface {
	// Within runs fn in one transaction; every write made through tx commits or none does.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Locations() LocationRepository
	Ledger() CapacityLedger
	Cars() CarRepository
	Notifications() NotificationRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	// GetForUpdate locks the row until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// UpdateStatus only applies when the stored status still equals from, otherwise ErrStatusConflict.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to reservation.Status, updatedAt time.Time) error
	ListDueForExpiry(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	// CountActiveByCar counts pending and paid reservations that reference the car.
	CountActiveByCar(ctx context.Context, carID uuid.UUID) (int, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status payment.Status, updatedAt time.Time) error
}

type LocationRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*location.Location, error)
	Create(ctx context.Context, loc *location.Location) error
}

// CapacityLedger is the only writer of available spot counts.
type CapacityLedger interface {
	// Debit fails with location.ErrLocationFull when no spot is left.
	Debit(ctx context.Context, locationID uuid.UUID) error
	// Credit never raises the count above capacity.
	Credit(ctx context.Context, locationID uuid.UUID) error
}

type CarRepository interface {
	// GetForUpdate locks the row until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*car.Car, error)
	Create(ctx context.Context, c *car.Car) error
	Update(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
