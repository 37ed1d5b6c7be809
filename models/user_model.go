package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"size:30" json:"first_name"`
	LastName  string    `gorm:"size:30" json:"last_name"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Phone     string    `gorm:"size:120" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`

	IsOrganizer bool `gorm:"default:false" json:"is_organizer"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
