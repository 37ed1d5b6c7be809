package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payout records the one-time disbursement of the pooled total to a membership.
// The unique index on MembershipID backs the at-most-one-payout invariant.
type Payout struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CommitteeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"committee_id"`
	MembershipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"membership_id"`
	TotalAmount  float64   `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	PaidAt       time.Time `json:"paid_at"`

	IsConfirmed    bool       `gorm:"default:false" json:"is_confirmed"`
	ConfirmedAt    *time.Time `json:"confirmed_at"`
	ReceivedInCash bool       `gorm:"default:true" json:"received_in_cash"`

	Committee  Committee  `gorm:"foreignkey:CommitteeID" json:"-"`
	Membership Membership `gorm:"foreignkey:MembershipID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payout) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
