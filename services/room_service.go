package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type CreateRoomInput struct {
	Number string
	Size   int
	Price  int
}

// UpdateRoomInput carries a partial update; nil fields are left untouched.
type UpdateRoomInput struct {
	Number *string
	Size   *int
	Price  *int
}

func validateRoom(number string, size, price int) error {
	ve := newValidationError()
	if number == "" {
		ve.add("number", "number is required")
	}
	if size <= 0 {
		ve.add("size", "size must be greater than 0")
	}
	if price <= 0 {
		ve.add("price", "price must be greater than 0")
	}
	return ve.orNil()
}

func (s *RoomService) Create(input CreateRoomInput) (models.Room, error) {
	number := strings.TrimSpace(input.Number)
	if err := validateRoom(number, input.Size, input.Price); err != nil {
		return models.Room{}, err
	}

	room := models.Room{Number: number, Size: input.Size, Price: input.Price}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, &DuplicateError{
				Field:   "number",
				Message: fmt.Sprintf("room number %q already exists", number),
			}
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, notFoundErr("room", id)
		}
		return models.Room{}, err
	}
	return room, nil
}

// Update applies the provided fields, re-validates the merged record and
// writes only the columns that actually changed.
func (s *RoomService) Update(id uint, input UpdateRoomInput) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}

	updates := map[string]interface{}{}
	if input.Number != nil {
		if number := strings.TrimSpace(*input.Number); number != room.Number {
			room.Number = number
			updates["number"] = number
		}
	}
	if input.Size != nil && *input.Size != room.Size {
		room.Size = *input.Size
		updates["size"] = *input.Size
	}
	if input.Price != nil && *input.Price != room.Price {
		room.Price = *input.Price
		updates["price"] = *input.Price
	}

	if err := validateRoom(room.Number, room.Size, room.Price); err != nil {
		return models.Room{}, err
	}
	if len(updates) == 0 {
		return room, nil
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, &DuplicateError{
				Field:   "number",
				Message: fmt.Sprintf("room number %q already exists", room.Number),
			}
		}
		return models.Room{}, err
	}
	return room, nil
}

// Delete removes the room; the database cascades over its bookings.
func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErr("room", id)
	}
	return nil
}
