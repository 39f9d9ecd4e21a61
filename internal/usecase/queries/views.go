package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock . CarQueries,LocationCache,LocationQueries,LocationViewRepo,PaymentQueries,ReservationQueries,RevenueQueries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	CarID        uuid.UUID `json:"car_id"`
	LicensePlate string    `json:"license_plate"`
	Arrival      time.Time `json:"arrival"`
	Exit         time.Time `json:"exit"`
	PriceCents   int64     `json:"price_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CarView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	LicensePlate string    `json:"license_plate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	UserID        uuid.UUID `json:"user_id"`
	LocationID    uuid.UUID `json:"location_id"`
	LocationName  string    `json:"location_name"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paid_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LocationView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Capacity       *int      `json:"capacity,omitempty"`
	AvailableSpots int       `json:"available_spots"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MonthlyRevenue struct {
	Month        int   `json:"month"`
	TotalCents   int64 `json:"total_cents"`
	PaymentCount int   `json:"payment_count"`
}

type RevenueReport struct {
	Year         int              `json:"year"`
	Month        *int             `json:"month,omitempty"`
	LocationID   *uuid.UUID       `json:"location_id,omitempty"`
	TotalCents   int64            `json:"total_cents"`
	PaymentCount int              `json:"payment_count"`
	Months       []MonthlyRevenue `json:"months"`
}
