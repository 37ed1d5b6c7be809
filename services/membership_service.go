package services

import (
	"errors"
	"time"

	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberSummary is the denormalized membership row consumed by the UI layer.
type MemberSummary struct {
	MembershipID     uuid.UUID  `json:"membership_id"`
	MemberID         uuid.UUID  `json:"member_id"`
	MemberName       string     `json:"member_name"`
	Status           string     `json:"status"`
	JoinedAt         time.Time  `json:"joined_at"`
	LeftAt           *time.Time `json:"left_at"`
	TotalContributed float64    `json:"total_contributed"`
}

func AddMember(committeeID uuid.UUID, caller Caller, memberID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var committee models.Committee
		if err := tx.First(&committee, "id = ?", committeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "committee"}
			}
			return err
		}
		if committee.OrganizerID != caller.ID {
			return &PermissionError{Message: "only the committee organizer can add members"}
		}

		var member models.User
		if err := tx.First(&member, "id = ?", memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "member"}
			}
			return err
		}

		var existing int64
		err := tx.Model(&models.Membership{}).
			Where("committee_id = ? AND member_id = ? AND status = ?", committeeID, memberID, models.MembershipStatusActive).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return &ConflictError{Message: "this member is already active in the committee"}
		}

		membership = models.Membership{
			CommitteeID: committeeID,
			MemberID:    memberID,
			Status:      models.MembershipStatusActive,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// RemoveMember soft-removes a membership, preserving contribution history.
// A membership that has been disbursed (holds a payout) cannot be removed.
func RemoveMember(committeeID uuid.UUID, caller Caller, membershipID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		membership, err := membershipInCommittee(tx, committeeID, membershipID)
		if err != nil {
			return err
		}
		if membership.Committee.OrganizerID != caller.ID {
			return &PermissionError{Message: "only the committee organizer can remove members"}
		}

		var payouts int64
		if err := tx.Model(&models.Payout{}).Where("membership_id = ?", membershipID).Count(&payouts).Error; err != nil {
			return err
		}
		if payouts > 0 {
			return &ConflictError{Message: "membership has a recorded payout and cannot be removed"}
		}

		now := time.Now()
		membership.Status = models.MembershipStatusRemoved
		membership.LeftAt = &now
		return tx.Save(membership).Error
	})
}

// LeaveCommittee lets a member end their own membership. Same payout guard as
// an organizer removal.
func LeaveCommittee(committeeID uuid.UUID, caller Caller, membershipID uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		membership, err := membershipInCommittee(tx, committeeID, membershipID)
		if err != nil {
			return err
		}
		if membership.MemberID != caller.ID {
			return &PermissionError{Message: "you can only change your own membership to LEFT"}
		}

		var payouts int64
		if err := tx.Model(&models.Payout{}).Where("membership_id = ?", membershipID).Count(&payouts).Error; err != nil {
			return err
		}
		if payouts > 0 {
			return &ConflictError{Message: "membership has a recorded payout and cannot be left"}
		}

		now := time.Now()
		membership.Status = models.MembershipStatusLeft
		membership.LeftAt = &now
		return tx.Save(membership).Error
	})
}

// ListMembers is visible to the organizer and to fellow committee members.
func ListMembers(committeeID uuid.UUID, caller Caller) ([]MemberSummary, error) {
	var committee models.Committee
	if err := database.DB.First(&committee, "id = ?", committeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "committee"}
		}
		return nil, err
	}

	if committee.OrganizerID != caller.ID {
		var belongs int64
		err := database.DB.Model(&models.Membership{}).
			Where("committee_id = ? AND member_id = ?", committeeID, caller.ID).
			Count(&belongs).Error
		if err != nil {
			return nil, err
		}
		if belongs == 0 {
			return nil, &PermissionError{Message: "you don't have permission to view members of this committee"}
		}
	}

	var memberships []models.Membership
	err := database.DB.Preload("Member").
		Where("committee_id = ?", committeeID).
		Order("joined_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]MemberSummary, 0, len(memberships))
	for _, m := range memberships {
		total, err := membershipTotalContributed(database.DB, m.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, MemberSummary{
			MembershipID:     m.ID,
			MemberID:         m.MemberID,
			MemberName:       m.Member.FullName(),
			Status:           m.Status,
			JoinedAt:         m.JoinedAt,
			LeftAt:           m.LeftAt,
			TotalContributed: total,
		})
	}
	return summaries, nil
}

func membershipInCommittee(tx *gorm.DB, committeeID, membershipID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := tx.Preload("Committee").
		First(&membership, "id = ? AND committee_id = ?", membershipID, committeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "membership"}
		}
		return nil, err
	}
	return &membership, nil
}

func membershipTotalContributed(tx *gorm.DB, membershipID uuid.UUID) (float64, error) {
	var total float64
	err := tx.Model(&models.Contribution{}).
		Where("membership_id = ? AND payment_date IS NOT NULL", membershipID).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&total).Error
	return total, err
}
