package response

import (
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	LicensePlate string    `json:"licensePlate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromCarView(v *queries.CarView) *CarResponse {
	return &CarResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		Name:         v.Name,
		LicensePlate: v.LicensePlate,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Color:        v.Color,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromCarViews(views []*queries.CarView) []*CarResponse {
	res := make([]*CarResponse, len(views))
	for i, v := range views {
		res[i] = FromCarView(v)
	}
	return res
}

func FromCar(c *car.Car) *CarResponse {
	d := c.Details()
	return &CarResponse{
		ID:           c.ID(),
		UserID:       c.UserID(),
		Name:         d.Name,
		LicensePlate: d.LicensePlate,
		Make:         d.Make,
		Model:        d.Model,
		Year:         d.Year,
		Color:        d.Color,
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}
