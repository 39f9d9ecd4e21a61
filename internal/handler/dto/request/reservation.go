package request

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	LocationID uuid.UUID `json:"locationId" binding:"required"`
	CarID      uuid.UUID `json:"carId" binding:"required"`
	Arrival    time.Time `json:"arrival" binding:"required"`
	Exit       time.Time `json:"exit" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		LocationID: r.LocationID,
		CarID:      r.CarID,
		Arrival:    r.Arrival,
		Exit:       r.Exit,
	}
}

// Method is validated by the domain so that missing and unsupported methods get distinct errors.
type ConfirmPaymentRequest struct {
	Method string `json:"method"`
}

func (r ConfirmPaymentRequest) PaymentMethod() payment.Method {
	return payment.Method(r.Method)
}
