package models

import (
	"time"

	"github.com/hamzaiqbal08/committee_fund/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CommitteeStatusDraft     = "DRAFT"
	CommitteeStatusActive    = "ACTIVE"
	CommitteeStatusCompleted = "COMPLETED"
)

// AllowedDurations are the only committee lengths (in months) an organizer can pick.
var AllowedDurations = []int{3, 6, 8, 9, 12, 18, 24}

type Committee struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Status         string    `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	MonthlyAmount  float64   `gorm:"type:numeric(10,2);not null" json:"monthly_amount"`
	DurationMonths int       `gorm:"not null" json:"duration_months"`
	OrganizerID    uuid.UUID `gorm:"type:uuid;not null" json:"organizer"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date" json:"end_date"`

	Organizer   User         `gorm:"foreignkey:OrganizerID" json:"-"`
	Memberships []Membership `gorm:"foreignkey:CommitteeID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Committee) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TotalAmount is always derived, never stored, so it cannot go stale.
func (c *Committee) TotalAmount() float64 {
	return c.MonthlyAmount * float64(c.DurationMonths)
}

// ComputeEndDate recalculates EndDate from StartDate and DurationMonths.
func (c *Committee) ComputeEndDate() {
	c.EndDate = utils.AddMonths(c.StartDate, c.DurationMonths)
}

func IsAllowedDuration(months int) bool {
	for _, d := range AllowedDurations {
		if months == d {
			return true
		}
	}
	return false
}
