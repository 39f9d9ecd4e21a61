package payment

import (
	"errors"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentMethod     = errors.New("payment method is required")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrAlreadyReturned          = errors.New("payment is already returned")
)

type Method string

const (
	MethodCard      Method = "card"
	MethodApplePay  Method = "apple-pay"
	MethodGooglePay Method = "google-pay"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) Validate() error {
	switch m {
	case "":
		return ErrMissingPaymentMethod
	case MethodCard, MethodApplePay, MethodGooglePay:
		return nil
	default:
		return ErrUnsupportedPaymentMethod
	}
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusReturned  Status = "returned"
)

func (s Status) String() string {
	return string(s)
}

type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	userID        uuid.UUID
	amount        pricing.Money
	method        Method
	status        Status
	paidAt        time.Time
	updatedAt     time.Time
}

// NewPayment records a completed payment. The method must already be validated.
func NewPayment(reservationID, userID uuid.UUID, amount pricing.Money, method Method, now time.Time) *Payment {
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		userID:        userID,
		amount:        amount,
		method:        method,
		status:        StatusCompleted,
		paidAt:        now,
		updatedAt:     now,
	}
}

func Reconstruct(
	id, reservationID, userID uuid.UUID,
	amount pricing.Money,
	method Method,
	status Status,
	paidAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		userID:        userID,
		amount:        amount,
		method:        method,
		status:        status,
		paidAt:        paidAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payment) MarkReturned(now time.Time) error {
	if p.status == StatusReturned {
		return ErrAlreadyReturned
	}
	p.status = StatusReturned
	p.updatedAt = now
	return nil
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) UserID() uuid.UUID        { return p.userID }
func (p *Payment) Amount() pricing.Money    { return p.amount }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) PaidAt() time.Time        { return p.paidAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
