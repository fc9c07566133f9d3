package models

import "time"

// User is a customer account. The password holds a bcrypt hash and is never
// serialized outward.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"column:email;uniqueIndex;size:100;not null" json:"email"`
	Password    string    `gorm:"column:password;size:255" json:"-"`
	IsStaff     bool      `gorm:"column:is_staff;default:false" json:"is_staff"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	IsSuperuser bool      `gorm:"column:is_superuser;default:false" json:"is_superuser"`
	DateJoined  time.Time `gorm:"column:date_joined" json:"date_joined"`
	LastLogin   time.Time `gorm:"column:last_login" json:"last_login"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
