package api

import (
	"errors"
	"net/http"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// sentinelMappings are matched by identity. Use case sentinels share kind marks,
// so a mark-aware match would confuse a missing location with a missing reservation.
var sentinelMappings = []errorMapping{
	{reservation.ErrInvalidInterval, http.StatusBadRequest, "Exit time must be after arrival time"},
	{reservation.ErrIntervalTooLong, http.StatusBadRequest, "Bookings cannot be longer than 31 days"},
	{reservation.ErrCarRequired, http.StatusBadRequest, "A car must be selected"},
	{payment.ErrMissingPaymentMethod, http.StatusBadRequest, "Payment method is required"},
	{payment.ErrUnsupportedPaymentMethod, http.StatusBadRequest, "Payment method is not supported"},
	{queries.ErrInvalidRevenuePeriod, http.StatusBadRequest, "Invalid revenue period"},
	{location.ErrNameRequired, http.StatusBadRequest, "Location name is required"},
	{location.ErrInvalidCapacity, http.StatusBadRequest, "Capacity cannot be negative"},
	{location.ErrInvalidAvailability, http.StatusBadRequest, "Available spots must be between 0 and capacity"},
	{location.ErrInvalidCoordinates, http.StatusBadRequest, "Coordinates are out of range"},
	{car.ErrNameRequired, http.StatusBadRequest, "Car name is required"},
	{car.ErrLicensePlateRequired, http.StatusBadRequest, "License plate is required"},
	{car.ErrMakeRequired, http.StatusBadRequest, "Make is required"},
	{car.ErrModelRequired, http.StatusBadRequest, "Model is required"},
	{car.ErrColorRequired, http.StatusBadRequest, "Color is required"},
	{car.ErrInvalidYear, http.StatusBadRequest, "Year must be between 1900 and the current year"},
	{location.ErrLocationFull, http.StatusConflict, "No spots are available at this location"},
	{reservation.ErrInvalidTransition, http.StatusConflict, "Reservation status does not allow this action"},
	{reservation.ErrTooLateToCancel, http.StatusConflict, "Reservation can no longer be cancelled"},
	{reservation.ErrNotYetEnded, http.StatusConflict, "Reservation has not ended yet"},
	{payment.ErrAlreadyReturned, http.StatusConflict, "Payment has already been returned"},
	{commands.ErrCarInUse, http.StatusConflict, "Car has active reservations"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrLocationNotFound, http.StatusNotFound, "Location not found"},
	{queries.ErrLocationNotFound, http.StatusNotFound, "Location not found"},
	{commands.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{commands.ErrCarNotFound, http.StatusNotFound, "Car not found"},
	{queries.ErrCarNotFound, http.StatusNotFound, "Car not found"},
	{commands.ErrNotCarOwner, http.StatusForbidden, "Car belongs to another user"},
}

// kindMappings catch anything else carrying a kind mark.
var kindMappings = []errorMapping{
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Access denied"},
	{errs.ErrGatewayUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"},
}

// respondError renders a use case error with the status of its kind.
func respondError(c *gin.Context, err error) {
	for _, m := range sentinelMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	for _, m := range kindMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
