package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusOnTime = "ON_TIME"
	PaymentStatusLate   = "LATE"
	PaymentStatusUnpaid = "UNPAID"
)

type Contribution struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	MembershipID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_membership_month" json:"membership_id"`
	AmountPaid   float64    `gorm:"type:numeric(10,2);not null" json:"amount_paid"`
	ForMonth     time.Time  `gorm:"type:date;not null;uniqueIndex:idx_membership_month" json:"for_month"`
	DueDate      time.Time  `gorm:"type:date;not null" json:"due_date"`
	PaymentDate  *time.Time `gorm:"type:date" json:"payment_date"`

	PaymentStatus       string `gorm:"size:10;not null;default:'UNPAID'" json:"payment_status"`
	VerifiedByOrganizer bool   `gorm:"default:false" json:"verified_by_organizer"`

	Membership Membership `gorm:"foreignkey:MembershipID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contribution) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// DerivePaymentStatus classifies a payment against its due date.
// A nil payment date means the month is still owed.
func DerivePaymentStatus(paymentDate *time.Time, dueDate time.Time) string {
	if paymentDate == nil {
		return PaymentStatusUnpaid
	}
	if paymentDate.After(dueDate) {
		return PaymentStatusLate
	}
	return PaymentStatusOnTime
}
