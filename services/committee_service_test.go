package services

import (
	"errors"
	"testing"
	"time"

	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
	"github.com/hamzaiqbal08/committee_fund/utils"
)

func TestCreateCommitteeComputesDerivedFields(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)

	start := time.Now().AddDate(0, 0, -1)
	committee, err := CreateCommittee(callerFor(organizer), CommitteeInput{
		Name:           "Office Committee",
		MonthlyAmount:  100,
		DurationMonths: 6,
		StartDate:      start,
	})
	if err != nil {
		t.Fatalf("CreateCommittee: %v", err)
	}

	if got := committee.TotalAmount(); got != 600 {
		t.Errorf("TotalAmount = %v, want 600", got)
	}
	if want := utils.AddMonths(start, 6); !committee.EndDate.Equal(want) {
		t.Errorf("EndDate = %v, want %v", committee.EndDate, want)
	}
	if committee.Status != models.CommitteeStatusActive {
		t.Errorf("Status = %q, want ACTIVE", committee.Status)
	}
	if committee.OrganizerID != organizer.ID {
		t.Errorf("OrganizerID = %v, want %v", committee.OrganizerID, organizer.ID)
	}
}

func TestCreateCommitteeStartsAsDraftBeforeStartDate(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)

	committee, err := CreateCommittee(callerFor(organizer), CommitteeInput{
		Name:           "Next Year Pool",
		MonthlyAmount:  50,
		DurationMonths: 12,
		StartDate:      time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("CreateCommittee: %v", err)
	}
	if committee.Status != models.CommitteeStatusDraft {
		t.Errorf("Status = %q, want DRAFT", committee.Status)
	}
}

func TestCreateCommitteeValidation(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)

	cases := []struct {
		name   string
		caller Caller
		input  CommitteeInput
		want   interface{}
	}{
		{
			name:   "non-positive amount",
			caller: callerFor(organizer),
			input:  CommitteeInput{Name: "x", MonthlyAmount: 0, DurationMonths: 6, StartDate: time.Now()},
			want:   &ValidationError{},
		},
		{
			name:   "duration outside allowed set",
			caller: callerFor(organizer),
			input:  CommitteeInput{Name: "x", MonthlyAmount: 100, DurationMonths: 7, StartDate: time.Now()},
			want:   &ValidationError{},
		},
		{
			name:   "missing start date",
			caller: callerFor(organizer),
			input:  CommitteeInput{Name: "x", MonthlyAmount: 100, DurationMonths: 6},
			want:   &ValidationError{},
		},
		{
			name:   "non-organizer caller",
			caller: callerFor(member),
			input:  CommitteeInput{Name: "x", MonthlyAmount: 100, DurationMonths: 6, StartDate: time.Now()},
			want:   &PermissionError{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateCommittee(tc.caller, tc.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			switch tc.want.(type) {
			case *ValidationError:
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error = %T(%v), want ValidationError", err, err)
				}
			case *PermissionError:
				var pe *PermissionError
				if !errors.As(err, &pe) {
					t.Errorf("error = %T(%v), want PermissionError", err, err)
				}
			}
		})
	}
}

func TestUpdateCommitteeRecomputesDerivedFields(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	committee := seedCommittee(t, organizer, 100, 6)

	updated, err := UpdateCommittee(committee.ID, callerFor(organizer), CommitteeInput{
		Name:           committee.Name,
		MonthlyAmount:  200,
		DurationMonths: 12,
		StartDate:      committee.StartDate,
	})
	if err != nil {
		t.Fatalf("UpdateCommittee: %v", err)
	}

	if got := updated.TotalAmount(); got != 2400 {
		t.Errorf("TotalAmount = %v, want 2400", got)
	}
	if want := utils.AddMonths(committee.StartDate, 12); !updated.EndDate.Equal(want) {
		t.Errorf("EndDate = %v, want %v", updated.EndDate, want)
	}
}

func TestUpdateCommitteePermissions(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	other := seedUser(t, "other@example.com", true)
	committee := seedCommittee(t, organizer, 100, 6)

	input := CommitteeInput{Name: "hijacked", MonthlyAmount: 1, DurationMonths: 3, StartDate: committee.StartDate}
	_, err := UpdateCommittee(committee.ID, callerFor(other), input)
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T(%v), want PermissionError", err, err)
	}
}

func TestUpdateCompletedCommitteeRejected(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	committee := seedCommittee(t, organizer, 100, 6)

	// Push the committee past its end date; the update should observe the
	// lazy COMPLETED transition and refuse.
	past := utils.MonthStart(time.Now()).AddDate(-1, 0, 0)
	err := database.DB.Model(committee).
		Updates(map[string]interface{}{"start_date": past, "end_date": utils.AddMonths(past, 6)}).Error
	if err != nil {
		t.Fatalf("age committee: %v", err)
	}

	input := CommitteeInput{Name: "too late", MonthlyAmount: 100, DurationMonths: 6, StartDate: past}
	_, err = UpdateCommittee(committee.ID, callerFor(organizer), input)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T(%v), want ConflictError", err, err)
	}
}

func TestGetCommitteeProjections(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	committee := seedCommittee(t, organizer, 100, 6)

	m1 := seedMembership(t, committee, seedUser(t, "m1@example.com", false))
	m2 := seedMembership(t, committee, seedUser(t, "m2@example.com", false))
	removed := seedMembership(t, committee, seedUser(t, "m3@example.com", false))
	if err := database.DB.Model(removed).Update("status", models.MembershipStatusRemoved).Error; err != nil {
		t.Fatalf("remove membership: %v", err)
	}

	seedContribution(t, committee, m1, 0, true, true)
	seedContribution(t, committee, m2, 0, true, false)
	seedContribution(t, committee, m2, 1, false, false) // unpaid, must not count

	detail, err := GetCommittee(committee.ID)
	if err != nil {
		t.Fatalf("GetCommittee: %v", err)
	}

	if detail.CurrentMembersCount != 2 {
		t.Errorf("CurrentMembersCount = %d, want 2", detail.CurrentMembersCount)
	}
	if detail.TotalCollected != 200 {
		t.Errorf("TotalCollected = %v, want 200", detail.TotalCollected)
	}
	if detail.TotalAmount != 600 {
		t.Errorf("TotalAmount = %v, want 600", detail.TotalAmount)
	}
}

func TestDeleteCommitteeCascades(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	committee := seedCommittee(t, organizer, 100, 6)
	membership := seedMembership(t, committee, seedUser(t, "m1@example.com", false))
	seedContribution(t, committee, membership, 0, true, true)

	if err := DeleteCommittee(committee.ID, callerFor(organizer)); err != nil {
		t.Fatalf("DeleteCommittee: %v", err)
	}

	for _, check := range []struct {
		name  string
		model interface{}
	}{
		{"committees", &models.Committee{}},
		{"memberships", &models.Membership{}},
		{"contributions", &models.Contribution{}},
	} {
		var count int64
		if err := database.DB.Model(check.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", check.name, err)
		}
		if count != 0 {
			t.Errorf("%s remaining = %d, want 0", check.name, count)
		}
	}
}

func TestDeleteCommitteeWithConfirmedPayoutRejected(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	committee := seedCommittee(t, organizer, 100, 6)
	membership := seedMembership(t, committee, seedUser(t, "m1@example.com", false))

	now := time.Now()
	payout := models.Payout{
		CommitteeID:  committee.ID,
		MembershipID: membership.ID,
		TotalAmount:  600,
		PaidAt:       now,
		IsConfirmed:  true,
		ConfirmedAt:  &now,
	}
	if err := database.DB.Create(&payout).Error; err != nil {
		t.Fatalf("seed payout: %v", err)
	}

	err := DeleteCommittee(committee.ID, callerFor(organizer))
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T(%v), want ConflictError", err, err)
	}
}
