package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MembershipStatusActive  = "ACTIVE"
	MembershipStatusLeft    = "LEFT"
	MembershipStatusRemoved = "REMOVED"
)

type Membership struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CommitteeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"committee_id"`
	MemberID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"member_id"`
	Status      string     `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	JoinedAt    time.Time  `json:"joined_at"`
	LeftAt      *time.Time `json:"left_at"`

	Committee     Committee      `gorm:"foreignkey:CommitteeID" json:"-"`
	Member        User           `gorm:"foreignkey:MemberID" json:"-"`
	Contributions []Contribution `gorm:"foreignkey:MembershipID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
