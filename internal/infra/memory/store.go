package memory

import (
	"context"
	"sync"
	"time"

	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type reservationRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LocationID uuid.UUID
	CarID      uuid.UUID
	Arrival    time.Time
	Exit       time.Time
	PriceCents int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type paymentRecord struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	UserID        uuid.UUID
	AmountCents   int64
	Method        string
	Status        string
	PaidAt        time.Time
	UpdatedAt     time.Time
}

type locationRecord struct {
	ID             uuid.UUID
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	Capacity       *int
	AvailableSpots int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type carRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	LicensePlate string
	Make         string
	Model        string
	Year         int
	Color        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type state struct {
	reservations         map[uuid.UUID]reservationRecord
	payments             map[uuid.UUID]paymentRecord
	paymentByReservation map[uuid.UUID]uuid.UUID
	locations            map[uuid.UUID]locationRecord
	cars                 map[uuid.UUID]carRecord
	jobs                 map[uuid.UUID]shared.NotificationJob
}

func newState() *state {
	return &state{
		reservations:         map[uuid.UUID]reservationRecord{},
		payments:             map[uuid.UUID]paymentRecord{},
		paymentByReservation: map[uuid.UUID]uuid.UUID{},
		locations:            map[uuid.UUID]locationRecord{},
		cars:                 map[uuid.UUID]carRecord{},
		jobs:                 map[uuid.UUID]shared.NotificationJob{},
	}
}

func (s *state) clone() *state {
	c := &state{
		reservations:         make(map[uuid.UUID]reservationRecord, len(s.reservations)),
		payments:             make(map[uuid.UUID]paymentRecord, len(s.payments)),
		paymentByReservation: make(map[uuid.UUID]uuid.UUID, len(s.paymentByReservation)),
		locations:            make(map[uuid.UUID]locationRecord, len(s.locations)),
		cars:                 make(map[uuid.UUID]carRecord, len(s.cars)),
		jobs:                 make(map[uuid.UUID]shared.NotificationJob, len(s.jobs)),
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.paymentByReservation {
		c.paymentByReservation[k] = v
	}
	for k, v := range s.locations {
		if v.Capacity != nil {
			capacity := *v.Capacity
			v.Capacity = &capacity
		}
		c.locations[k] = v
	}
	for k, v := range s.cars {
		c.cars[k] = v
	}
	for k, v := range s.jobs {
		c.jobs[k] = v
	}
	return c
}

// Store is the in-process persistence gateway. Transactions run one at a time
// against a private copy of the state that replaces it only on success.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	// a deadline hit inside fn discards the work
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = work
	return nil
}

func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

type memTx struct {
	st *state
}

func (t *memTx) Reservations() shared.ReservationRepository   { return &reservationRepo{st: t.st} }
func (t *memTx) Payments() shared.PaymentRepository           { return &paymentRepo{st: t.st} }
func (t *memTx) Locations() shared.LocationRepository         { return &locationRepo{st: t.st} }
func (t *memTx) Ledger() shared.CapacityLedger                { return &ledger{st: t.st} }
func (t *memTx) Cars() shared.CarRepository                   { return &carRepo{st: t.st} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{st: t.st} }
