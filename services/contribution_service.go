package services

import (
	"errors"
	"time"

	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/hamzaiqbal08/committee_fund/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContributionInput struct {
	AmountPaid  float64
	ForMonth    time.Time
	DueDate     time.Time
	PaymentDate *time.Time
}

// RecordContribution creates the single contribution row for a membership
// month. The duplicate check runs inside the insert transaction, with the
// (membership, for_month) unique index as the concurrent-writer backstop.
func RecordContribution(membershipID uuid.UUID, caller Caller, in ContributionInput) (*models.Contribution, error) {
	var contribution models.Contribution
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var membership models.Membership
		err := tx.Preload("Committee").First(&membership, "id = ?", membershipID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "membership"}
			}
			return err
		}

		committee := membership.Committee
		isOrganizer := committee.OrganizerID == caller.ID
		if !isOrganizer && membership.MemberID != caller.ID {
			return &PermissionError{Message: "only the member or organizer can record contributions"}
		}

		if in.AmountPaid <= 0 {
			return &ValidationError{Field: "amount_paid", Message: "amount must be positive"}
		}
		if in.AmountPaid != committee.MonthlyAmount {
			return &ValidationError{Field: "amount_paid", Message: "amount must match the committee monthly amount exactly (no partial payments)"}
		}

		forMonth := utils.MonthStart(in.ForMonth)
		if forMonth.Before(utils.MonthStart(committee.StartDate)) || forMonth.After(committee.EndDate) {
			return &ValidationError{Field: "for_month", Message: "month falls outside the committee period"}
		}

		var existing int64
		err = tx.Model(&models.Contribution{}).
			Where("membership_id = ? AND for_month = ?", membershipID, forMonth).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return &ConflictError{Message: "a contribution for this month is already recorded"}
		}

		contribution = models.Contribution{
			MembershipID:  membershipID,
			AmountPaid:    in.AmountPaid,
			ForMonth:      forMonth,
			DueDate:       in.DueDate,
			PaymentDate:   in.PaymentDate,
			PaymentStatus: models.DerivePaymentStatus(in.PaymentDate, in.DueDate),
			// Organizer-recorded payments are attested by recording them.
			VerifiedByOrganizer: isOrganizer,
		}
		if err := tx.Create(&contribution).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Message: "a contribution for this month is already recorded"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// VerifyContribution flips the one-way organizer attestation. Verifying an
// already verified contribution is a no-op.
func VerifyContribution(contributionID uuid.UUID, caller Caller) (*models.Contribution, error) {
	var contribution models.Contribution
	err := database.DB.Preload("Membership.Committee").
		First(&contribution, "id = ?", contributionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "contribution"}
		}
		return nil, err
	}

	if contribution.Membership.Committee.OrganizerID != caller.ID {
		return nil, &PermissionError{Message: "only the organizer can verify this contribution"}
	}

	if contribution.VerifiedByOrganizer {
		return &contribution, nil
	}

	contribution.VerifiedByOrganizer = true
	if err := database.DB.Model(&contribution).Update("verified_by_organizer", true).Error; err != nil {
		return nil, err
	}
	return &contribution, nil
}

// ListContributions returns a membership's ledger in chronological order.
func ListContributions(membershipID uuid.UUID, caller Caller) ([]models.Contribution, error) {
	var membership models.Membership
	err := database.DB.Preload("Committee").First(&membership, "id = ?", membershipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "membership"}
		}
		return nil, err
	}

	if membership.MemberID != caller.ID && membership.Committee.OrganizerID != caller.ID {
		return nil, &PermissionError{Message: "you don't have permission to view these contributions"}
	}

	var contributions []models.Contribution
	err = database.DB.Where("membership_id = ?", membershipID).
		Order("for_month ASC").
		Find(&contributions).Error
	if err != nil {
		return nil, err
	}
	return contributions, nil
}
