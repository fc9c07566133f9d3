package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the companion record created alongside every user and removed
// with it (unique FK with cascade delete).
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`

	Preferences datatypes.JSON `gorm:"column:preferences" json:"preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
