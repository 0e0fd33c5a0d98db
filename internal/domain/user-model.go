package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Otp and OtpExpires are set together on login and cleared together
	// on verify. A user with no pending code has both NULL.
	Otp        *string    `json:"-"`
	OtpExpires *time.Time `json:"-"`

	gorm.Model
}
