package models

import "time"

// Room is a bookable hotel room. Size and price must be positive; the check
// constraints back up the service-level validation at the database layer.
type Room struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"column:number;uniqueIndex;size:10;not null" json:"number"`
	Size   int    `gorm:"column:size;not null;check:size > 0" json:"size"`
	Price  int    `gorm:"column:price;not null;check:price > 0" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
