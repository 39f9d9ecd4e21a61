package commands

import (
	"context"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrLocationNotFound    = errs.Mark(errs.New("location not found"), errs.ErrNotFound)
	ErrPaymentNotFound     = errs.Mark(errs.New("payment not found"), errs.ErrNotFound)
	ErrCarNotFound         = errs.Mark(errs.New("car not found"), errs.ErrNotFound)
	ErrNotCarOwner         = errs.Mark(errs.New("car belongs to another user"), errs.ErrForbidden)
	ErrCarInUse            = errs.New("car has pending or paid reservations")
	ErrNotReservationOwner = errs.Mark(errs.New("reservation belongs to another user"), errs.ErrForbidden)
	ErrAdminOnly           = errs.Mark(errs.New("admin privileges required"), errs.ErrForbidden)
)

// deterministic outcomes that must reach the caller unchanged
var domainErrors = []error{
	errs.ErrNotFound,
	errs.ErrForbidden,
	errs.ErrGatewayUnavailable,
	reservation.ErrInvalidInterval,
	reservation.ErrIntervalTooLong,
	reservation.ErrInvalidTransition,
	reservation.ErrTooLateToCancel,
	reservation.ErrNotYetEnded,
	reservation.ErrCarRequired,
	location.ErrLocationFull,
	location.ErrNameRequired,
	location.ErrInvalidCapacity,
	location.ErrInvalidAvailability,
	location.ErrInvalidCoordinates,
	payment.ErrMissingPaymentMethod,
	payment.ErrUnsupportedPaymentMethod,
	payment.ErrAlreadyReturned,
	car.ErrNameRequired,
	car.ErrLicensePlateRequired,
	car.ErrMakeRequired,
	car.ErrModelRequired,
	car.ErrColorRequired,
	car.ErrInvalidYear,
	ErrCarInUse,
}

// classify marks everything that is not a domain outcome as a gateway failure,
// which is the only kind a caller may retry.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, domainErrors...) {
		return err
	}
	if errs.IsAny(err, context.DeadlineExceeded, context.Canceled) {
		return errs.Mark(errs.Wrap(err, "persistence call timed out"), errs.ErrGatewayUnavailable)
	}
	return errs.Mark(err, errs.ErrGatewayUnavailable)
}

func notFoundAs(err error, target error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return target
	}
	return err
}

// A status CAS that loses to a concurrent transition reads as an invalid transition.
func conflictAsTransition(err error, conflict error) error {
	if errs.Is(err, conflict) {
		return reservation.ErrInvalidTransition
	}
	return err
}
