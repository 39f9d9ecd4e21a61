package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const minYear = 1900

var (
	ErrNameRequired         = errors.New("car name is required")
	ErrLicensePlateRequired = errors.New("license plate is required")
	ErrMakeRequired         = errors.New("make is required")
	ErrModelRequired        = errors.New("model is required")
	ErrColorRequired        = errors.New("color is required")
	ErrInvalidYear          = errors.New("year must be between 1900 and the current year")
)

// Details are the user-editable fields of a car.
type Details struct {
	Name         string
	LicensePlate string
	Make         string
	Model        string
	Year         int
	Color        string
}

func (d Details) normalize() Details {
	return Details{
		Name:         strings.TrimSpace(d.Name),
		LicensePlate: strings.ToUpper(strings.TrimSpace(d.LicensePlate)),
		Make:         strings.TrimSpace(d.Make),
		Model:        strings.TrimSpace(d.Model),
		Year:         d.Year,
		Color:        strings.TrimSpace(d.Color),
	}
}

func (d Details) validate(now time.Time) error {
	switch {
	case d.Name == "":
		return ErrNameRequired
	case d.LicensePlate == "":
		return ErrLicensePlateRequired
	case d.Make == "":
		return ErrMakeRequired
	case d.Model == "":
		return ErrModelRequired
	case d.Year < minYear || d.Year > now.Year():
		return ErrInvalidYear
	case d.Color == "":
		return ErrColorRequired
	}
	return nil
}

// Car is a vehicle registered by a user and picked when booking.
type Car struct {
	id        uuid.UUID
	userID    uuid.UUID
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

func NewCar(userID uuid.UUID, d Details, now time.Time) (*Car, error) {
	d = d.normalize()
	if err := d.validate(now); err != nil {
		return nil, err
	}
	return &Car{
		id:        uuid.New(),
		userID:    userID,
		details:   d,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, userID uuid.UUID, d Details, createdAt, updatedAt time.Time) *Car {
	return &Car{
		id:        id,
		userID:    userID,
		details:   d,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces every editable field; a failed update leaves the car unchanged.
func (c *Car) Update(d Details, now time.Time) error {
	d = d.normalize()
	if err := d.validate(now); err != nil {
		return err
	}
	c.details = d
	c.updatedAt = now
	return nil
}

func (c *Car) OwnedBy(userID uuid.UUID) bool {
	return c.userID == userID
}

func (c *Car) ID() uuid.UUID        { return c.id }
func (c *Car) UserID() uuid.UUID    { return c.userID }
func (c *Car) Details() Details     { return c.details }
func (c *Car) CreatedAt() time.Time { return c.createdAt }
func (c *Car) UpdatedAt() time.Time { return c.updatedAt }
