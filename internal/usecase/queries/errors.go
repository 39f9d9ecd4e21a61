package queries

import (
	"context"

	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
)

var (
	ErrReservationNotFound  = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrLocationNotFound     = errs.Mark(errs.New("location not found"), errs.ErrNotFound)
	ErrCarNotFound          = errs.Mark(errs.New("car not found"), errs.ErrNotFound)
	ErrAccessDenied         = errs.Mark(errs.New("cannot read another user's data"), errs.ErrForbidden)
	ErrAdminOnly            = errs.Mark(errs.New("admin privileges required"), errs.ErrForbidden)
	ErrInvalidRevenuePeriod = errs.New("invalid revenue period")
)

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, errs.ErrNotFound, errs.ErrForbidden, errs.ErrGatewayUnavailable, ErrInvalidRevenuePeriod) {
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
