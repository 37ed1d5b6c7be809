package services

import (
	"errors"
	"time"

	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommitteeInput struct {
	Name           string
	Description    string
	MonthlyAmount  float64
	DurationMonths int
	StartDate      time.Time
}

// CommitteeDetail is the denormalized projection returned to read callers.
type CommitteeDetail struct {
	models.Committee
	OrganizerName       string  `json:"organizer_name"`
	TotalAmount         float64 `json:"total_amount"`
	CurrentMembersCount int64   `json:"current_members_count"`
	TotalCollected      float64 `json:"total_collected"`
}

func validateCommitteeInput(in CommitteeInput) error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if in.MonthlyAmount <= 0 {
		return &ValidationError{Field: "monthly_amount", Message: "monthly amount must be positive"}
	}
	if !models.IsAllowedDuration(in.DurationMonths) {
		return &ValidationError{Field: "duration_months", Message: "duration must be one of 3, 6, 8, 9, 12, 18 or 24 months"}
	}
	if in.StartDate.IsZero() {
		return &ValidationError{Field: "start_date", Message: "start date is required"}
	}
	return nil
}

// committeeStatusFor derives the lifecycle status from the committee dates.
// DRAFT before the start date, COMPLETED once the end date has passed.
func committeeStatusFor(start, end time.Time, now time.Time) string {
	if now.Before(start) {
		return models.CommitteeStatusDraft
	}
	if now.After(end) {
		return models.CommitteeStatusCompleted
	}
	return models.CommitteeStatusActive
}

// syncCommitteeStatus applies any due lifecycle transition before the caller
// acts on the committee, so reads between cron sweeps are never stale.
func syncCommitteeStatus(tx *gorm.DB, committee *models.Committee) error {
	desired := committeeStatusFor(committee.StartDate, committee.EndDate, time.Now())
	if committee.Status == desired {
		return nil
	}
	committee.Status = desired
	return tx.Model(committee).Update("status", desired).Error
}

func CreateCommittee(caller Caller, in CommitteeInput) (*models.Committee, error) {
	if !caller.IsOrganizer {
		return nil, &PermissionError{Message: "only organizers can create committees"}
	}
	if err := validateCommitteeInput(in); err != nil {
		return nil, err
	}

	committee := models.Committee{
		Name:           in.Name,
		Description:    in.Description,
		MonthlyAmount:  in.MonthlyAmount,
		DurationMonths: in.DurationMonths,
		OrganizerID:    caller.ID,
		StartDate:      in.StartDate,
	}
	committee.ComputeEndDate()
	committee.Status = committeeStatusFor(committee.StartDate, committee.EndDate, time.Now())

	if err := database.DB.Create(&committee).Error; err != nil {
		return nil, err
	}
	return &committee, nil
}

func UpdateCommittee(committeeID uuid.UUID, caller Caller, in CommitteeInput) (*models.Committee, error) {
	var committee models.Committee
	if err := database.DB.First(&committee, "id = ?", committeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "committee"}
		}
		return nil, err
	}

	if committee.OrganizerID != caller.ID {
		return nil, &PermissionError{Message: "only the committee organizer can update it"}
	}
	if err := syncCommitteeStatus(database.DB, &committee); err != nil {
		return nil, err
	}
	if committee.Status == models.CommitteeStatusCompleted {
		return nil, &ConflictError{Message: "completed committees can no longer be edited"}
	}
	if err := validateCommitteeInput(in); err != nil {
		return nil, err
	}

	committee.Name = in.Name
	committee.Description = in.Description
	committee.MonthlyAmount = in.MonthlyAmount
	committee.DurationMonths = in.DurationMonths
	committee.StartDate = in.StartDate
	committee.ComputeEndDate()
	committee.Status = committeeStatusFor(committee.StartDate, committee.EndDate, time.Now())

	if err := database.DB.Save(&committee).Error; err != nil {
		return nil, err
	}
	return &committee, nil
}

// DeleteCommittee cascades over the committee's children in one transaction.
// A committee holding a confirmed payout is financial history and cannot be
// deleted.
func DeleteCommittee(committeeID uuid.UUID, caller Caller) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var committee models.Committee
		if err := tx.First(&committee, "id = ?", committeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "committee"}
			}
			return err
		}

		if committee.OrganizerID != caller.ID {
			return &PermissionError{Message: "only the committee organizer can delete it"}
		}

		var confirmed int64
		if err := tx.Model(&models.Payout{}).
			Where("committee_id = ? AND is_confirmed = ?", committeeID, true).
			Count(&confirmed).Error; err != nil {
			return err
		}
		if confirmed > 0 {
			return &ConflictError{Message: "committee has confirmed payouts and cannot be deleted"}
		}

		memberIDs := tx.Model(&models.Membership{}).Select("id").Where("committee_id = ?", committeeID)
		if err := tx.Where("membership_id IN (?)", memberIDs).Delete(&models.Contribution{}).Error; err != nil {
			return err
		}
		if err := tx.Where("committee_id = ?", committeeID).Delete(&models.Payout{}).Error; err != nil {
			return err
		}
		if err := tx.Where("committee_id = ?", committeeID).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&committee).Error
	})
}

func GetCommittee(committeeID uuid.UUID) (*CommitteeDetail, error) {
	var committee models.Committee
	if err := database.DB.Preload("Organizer").First(&committee, "id = ?", committeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "committee"}
		}
		return nil, err
	}
	if err := syncCommitteeStatus(database.DB, &committee); err != nil {
		return nil, err
	}
	return committeeDetail(&committee)
}

func ListCommittees() ([]CommitteeDetail, error) {
	var committees []models.Committee
	if err := database.DB.Preload("Organizer").Order("created_at DESC").Find(&committees).Error; err != nil {
		return nil, err
	}

	details := make([]CommitteeDetail, 0, len(committees))
	for i := range committees {
		if err := syncCommitteeStatus(database.DB, &committees[i]); err != nil {
			return nil, err
		}
		detail, err := committeeDetail(&committees[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func committeeDetail(committee *models.Committee) (*CommitteeDetail, error) {
	var membersCount int64
	err := database.DB.Model(&models.Membership{}).
		Where("committee_id = ? AND status = ?", committee.ID, models.MembershipStatusActive).
		Count(&membersCount).Error
	if err != nil {
		return nil, err
	}

	totalCollected, err := committeeTotalCollected(committee.ID)
	if err != nil {
		return nil, err
	}

	return &CommitteeDetail{
		Committee:           *committee,
		OrganizerName:       committee.Organizer.FullName(),
		TotalAmount:         committee.TotalAmount(),
		CurrentMembersCount: membersCount,
		TotalCollected:      totalCollected,
	}, nil
}

// committeeTotalCollected sums every paid contribution in the committee,
// whether on time or late.
func committeeTotalCollected(committeeID uuid.UUID) (float64, error) {
	var total float64
	err := database.DB.Model(&models.Contribution{}).
		Joins("JOIN memberships ON memberships.id = contributions.membership_id").
		Where("memberships.committee_id = ? AND contributions.payment_date IS NOT NULL", committeeID).
		Select("COALESCE(SUM(contributions.amount_paid), 0)").
		Scan(&total).Error
	return total, err
}
