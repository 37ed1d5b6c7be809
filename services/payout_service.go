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

// PayoutDetail is the denormalized payout row for organizer and member views.
type PayoutDetail struct {
	models.Payout
	MemberName    string `json:"member_name"`
	CommitteeName string `json:"committee_name"`
}

// CreatePayout disburses the pooled total to one membership. The whole
// decision runs in a single transaction: payout uniqueness and contribution
// eligibility are re-queried at decision time, never taken from an earlier
// snapshot, and the unique index on membership_id backs the check against
// concurrent creators.
func CreatePayout(committeeID uuid.UUID, caller Caller, membershipID uuid.UUID) (*models.Payout, error) {
	var payout models.Payout
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var committee models.Committee
		if err := tx.First(&committee, "id = ?", committeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "committee"}
			}
			return err
		}
		if committee.OrganizerID != caller.ID {
			return &PermissionError{Message: "only the organizer can create payouts"}
		}

		var membership models.Membership
		err := tx.First(&membership, "id = ? AND committee_id = ? AND status = ?",
			membershipID, committeeID, models.MembershipStatusActive).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "active membership"}
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Payout{}).Where("membership_id = ?", membershipID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return &ConflictError{Message: "this membership has already received a payout"}
		}

		if err := checkPayoutEligibility(tx, membershipID); err != nil {
			return err
		}

		payout = models.Payout{
			CommitteeID:  committeeID,
			MembershipID: membershipID,
			TotalAmount:  committee.TotalAmount(),
			PaidAt:       time.Now(),
			IsConfirmed:  false,
		}
		if err := tx.Create(&payout).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Message: "this membership has already received a payout"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

// checkPayoutEligibility blocks disbursement while any contribution due up to
// the current month is unpaid or still awaiting organizer verification.
func checkPayoutEligibility(tx *gorm.DB, membershipID uuid.UUID) error {
	currentMonth := utils.MonthStart(time.Now())

	var blocking int64
	err := tx.Model(&models.Contribution{}).
		Where("membership_id = ? AND for_month <= ? AND (payment_date IS NULL OR verified_by_organizer = ?)",
			membershipID, currentMonth, false).
		Count(&blocking).Error
	if err != nil {
		return err
	}
	if blocking > 0 {
		return &EligibilityError{Message: "member has unpaid or unverified contributions and cannot be disbursed"}
	}
	return nil
}

// ConfirmPayout marks the disbursement as received, exactly once. The guard is
// a conditional update so two concurrent confirmations cannot both succeed.
func ConfirmPayout(payoutID uuid.UUID, caller Caller) (*models.Payout, error) {
	var payout models.Payout
	err := database.DB.Preload("Committee").First(&payout, "id = ?", payoutID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "payout"}
		}
		return nil, err
	}

	if payout.Committee.OrganizerID != caller.ID {
		return nil, &PermissionError{Message: "only the organizer can confirm this payout"}
	}

	now := time.Now()
	result := database.DB.Model(&models.Payout{}).
		Where("id = ? AND is_confirmed = ?", payoutID, false).
		Updates(map[string]interface{}{"is_confirmed": true, "confirmed_at": now})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, &ConflictError{Message: "payout is already confirmed"}
	}

	payout.IsConfirmed = true
	payout.ConfirmedAt = &now
	return &payout, nil
}

// ListPayouts is organizer-only; members do not see the committee-wide payout
// schedule, only their own records via ListMyPayouts.
func ListPayouts(committeeID uuid.UUID, caller Caller) ([]PayoutDetail, error) {
	var committee models.Committee
	if err := database.DB.First(&committee, "id = ?", committeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "committee"}
		}
		return nil, err
	}
	if committee.OrganizerID != caller.ID {
		return nil, &PermissionError{Message: "only the organizer can view payouts for this committee"}
	}

	var payouts []models.Payout
	err := database.DB.Preload("Membership.Member").Preload("Committee").
		Where("committee_id = ?", committeeID).
		Order("paid_at ASC").
		Find(&payouts).Error
	if err != nil {
		return nil, err
	}
	return payoutDetails(payouts), nil
}

func ListMyPayouts(caller Caller) ([]PayoutDetail, error) {
	var payouts []models.Payout
	err := database.DB.Preload("Membership.Member").Preload("Committee").
		Joins("JOIN memberships ON memberships.id = payouts.membership_id").
		Where("memberships.member_id = ?", caller.ID).
		Order("paid_at ASC").
		Find(&payouts).Error
	if err != nil {
		return nil, err
	}
	return payoutDetails(payouts), nil
}

func payoutDetails(payouts []models.Payout) []PayoutDetail {
	details := make([]PayoutDetail, 0, len(payouts))
	for _, p := range payouts {
		details = append(details, PayoutDetail{
			Payout:        p,
			MemberName:    p.Membership.Member.FullName(),
			CommitteeName: p.Committee.Name,
		})
	}
	return details
}
