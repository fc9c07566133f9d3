package models

import "time"

// Booking reserves one room for one customer over a date range. Price is
// derived from the room's nightly rate at creation/update time and is never
// supplied by callers; it stays fixed if the room's rate changes later.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FromDate Date `gorm:"column:from_date;not null" json:"from_date"`
	ToDate   Date `gorm:"column:to_date;not null" json:"to_date"`

	CustomerID uint `gorm:"column:customer_id;index;not null" json:"customer_id"`
	RoomID     uint `gorm:"column:room_id;index;not null" json:"room_id"`

	Price int `gorm:"column:price;not null;check:price > 0" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer User `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Room     Room `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
