package services

import (
	"errors"

	"hotel-booking/models"
)

// ErrInvalidDateRange is returned when a booking's check-out date is not
// strictly after its check-in date.
var ErrInvalidDateRange = errors.New("to_date must be after from_date")

// CalculatePrice returns the total price of a stay: whole nights between
// from and to, multiplied by the room's nightly rate. Ranges with fewer than
// one night are rejected up front, so a non-positive price never reaches the
// persistence layer. Rate positivity is the Room invariant's responsibility.
func CalculatePrice(from, to models.Date, nightlyRate int) (int, error) {
	nights := from.DaysUntil(to)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}
	return nights * nightlyRate, nil
}
