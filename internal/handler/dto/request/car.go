package request

import "github.com/antoninkin/parkmate-app/internal/usecase/commands"

// CarRequest is used for both registration and full replacement of a car.
type CarRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	LicensePlate string `json:"licensePlate" binding:"required,max=20"`
	Make         string `json:"make" binding:"required,max=50"`
	Model        string `json:"model" binding:"required,max=50"`
	Year         int    `json:"year" binding:"required"`
	Color        string `json:"color" binding:"required,max=30"`
}

func (r CarRequest) ToInput() commands.CarInput {
	return commands.CarInput{
		Name:         r.Name,
		LicensePlate: r.LicensePlate,
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		Color:        r.Color,
	}
}
