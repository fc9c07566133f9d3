package services

import (
	"errors"

	"hotel-booking/models"

	"gorm.io/gorm"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	CustomerID uint
	RoomID     uint
	FromDate   models.Date
	ToDate     models.Date
}

// UpdateBookingInput carries a partial update. The customer of a booking is
// fixed for its lifetime and cannot be changed here.
type UpdateBookingInput struct {
	FromDate *models.Date
	ToDate   *models.Date
	RoomID   *uint
}

// Create persists a booking priced at the room's current nightly rate. The
// rate is snapshotted: later room price changes never touch this booking.
func (s *BookingService) Create(input CreateBookingInput) (models.Booking, error) {
	var customer models.User
	if err := s.DB.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFoundErr("customer", input.CustomerID)
		}
		return models.Booking{}, err
	}

	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFoundErr("room", input.RoomID)
		}
		return models.Booking{}, err
	}

	price, err := CalculatePrice(input.FromDate, input.ToDate, room.Price)
	if err != nil {
		return models.Booking{}, validationErrorf("to_date", "to_date must be after from_date")
	}

	booking := models.Booking{
		FromDate:   input.FromDate,
		ToDate:     input.ToDate,
		CustomerID: customer.ID,
		RoomID:     room.ID,
		Price:      price,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// Update applies the provided fields against a fresh copy of the booking.
// Every mutable field feeds the price, so any change triggers one
// recomputation over the merged date range and room rate; the write touches
// only the dirty columns. A call that changes nothing performs no write.
func (s *BookingService) Update(id uint, input UpdateBookingInput) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFoundErr("booking", id)
		}
		return models.Booking{}, err
	}

	updates := map[string]interface{}{}
	if input.FromDate != nil && !input.FromDate.Equal(booking.FromDate) {
		booking.FromDate = *input.FromDate
		updates["from_date"] = *input.FromDate
	}
	if input.ToDate != nil && !input.ToDate.Equal(booking.ToDate) {
		booking.ToDate = *input.ToDate
		updates["to_date"] = *input.ToDate
	}

	roomID := booking.RoomID
	if input.RoomID != nil && *input.RoomID != booking.RoomID {
		roomID = *input.RoomID
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFoundErr("room", roomID)
		}
		return models.Booking{}, err
	}
	if room.ID != booking.RoomID {
		booking.RoomID = room.ID
		updates["room_id"] = room.ID
	}

	if len(updates) == 0 {
		return booking, nil
	}

	price, err := CalculatePrice(booking.FromDate, booking.ToDate, room.Price)
	if err != nil {
		return models.Booking{}, validationErrorf("to_date", "to_date must be after from_date")
	}
	if price != booking.Price {
		booking.Price = price
		updates["price"] = price
	}

	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Order("id").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFoundErr("booking", id)
		}
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErr("booking", id)
	}
	return nil
}
