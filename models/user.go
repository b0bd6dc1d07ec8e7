package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an optional account record that voters and candidates may link to.
// Not involved in vote casting.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash    string    `json:"-" gorm:"not null"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
