package services

import (
	"errors"
	"testing"
	"time"

	"github.com/hamzaiqbal08/committee_fund/database"
	"github.com/hamzaiqbal08/committee_fund/models"
)

func TestAddMember(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)

	membership, err := AddMember(committee.ID, callerFor(organizer), member.ID)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if membership.Status != models.MembershipStatusActive {
		t.Errorf("Status = %q, want ACTIVE", membership.Status)
	}
	if membership.JoinedAt.IsZero() {
		t.Error("JoinedAt not set")
	}
}

func TestAddMemberDuplicateActiveConflict(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)

	if _, err := AddMember(committee.ID, callerFor(organizer), member.ID); err != nil {
		t.Fatalf("first AddMember: %v", err)
	}

	_, err := AddMember(committee.ID, callerFor(organizer), member.ID)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T(%v), want ConflictError", err, err)
	}
}

func TestAddMemberPermission(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	stranger := seedUser(t, "stranger@example.com", true)
	member := seedUser(t, "member@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)

	_, err := AddMember(committee.ID, callerFor(stranger), member.ID)
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T(%v), want PermissionError", err, err)
	}
}

func TestRemoveMemberSoftDeletes(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)
	membership := seedMembership(t, committee, member)
	seedContribution(t, committee, membership, 0, true, true)

	if err := RemoveMember(committee.ID, callerFor(organizer), membership.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}

	var reloaded models.Membership
	if err := database.DB.First(&reloaded, "id = ?", membership.ID).Error; err != nil {
		t.Fatalf("reload membership: %v", err)
	}
	if reloaded.Status != models.MembershipStatusRemoved {
		t.Errorf("Status = %q, want REMOVED", reloaded.Status)
	}
	if reloaded.LeftAt == nil {
		t.Error("LeftAt not set")
	}

	// Contribution history survives the removal.
	var contributions int64
	if err := database.DB.Model(&models.Contribution{}).Where("membership_id = ?", membership.ID).Count(&contributions).Error; err != nil {
		t.Fatalf("count contributions: %v", err)
	}
	if contributions != 1 {
		t.Errorf("contributions = %d, want 1", contributions)
	}

	// A removed member can be enrolled again.
	if _, err := AddMember(committee.ID, callerFor(organizer), member.ID); err != nil {
		t.Fatalf("re-add after removal: %v", err)
	}
}

func TestRemoveMemberWithPayoutConflict(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)
	membership := seedMembership(t, committee, member)

	payout := models.Payout{
		CommitteeID:  committee.ID,
		MembershipID: membership.ID,
		TotalAmount:  600,
		PaidAt:       time.Now(),
	}
	if err := database.DB.Create(&payout).Error; err != nil {
		t.Fatalf("seed payout: %v", err)
	}

	err := RemoveMember(committee.ID, callerFor(organizer), membership.ID)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T(%v), want ConflictError", err, err)
	}
}

func TestLeaveCommittee(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)
	other := seedUser(t, "other@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)
	membership := seedMembership(t, committee, member)

	err := LeaveCommittee(committee.ID, callerFor(other), membership.ID)
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T(%v), want PermissionError", err, err)
	}

	if err := LeaveCommittee(committee.ID, callerFor(member), membership.ID); err != nil {
		t.Fatalf("LeaveCommittee: %v", err)
	}

	var reloaded models.Membership
	if err := database.DB.First(&reloaded, "id = ?", membership.ID).Error; err != nil {
		t.Fatalf("reload membership: %v", err)
	}
	if reloaded.Status != models.MembershipStatusLeft {
		t.Errorf("Status = %q, want LEFT", reloaded.Status)
	}
}

func TestListMembers(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, "organizer@example.com", true)
	member := seedUser(t, "member@example.com", false)
	stranger := seedUser(t, "stranger@example.com", false)
	committee := seedCommittee(t, organizer, 100, 6)
	membership := seedMembership(t, committee, member)
	seedContribution(t, committee, membership, 0, true, true)
	seedContribution(t, committee, membership, 1, true, true)

	_, err := ListMembers(committee.ID, callerFor(stranger))
	var pe *PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T(%v), want PermissionError", err, err)
	}

	// Both the organizer and a fellow member can list.
	for _, caller := range []Caller{callerFor(organizer), callerFor(member)} {
		members, err := ListMembers(committee.ID, caller)
		if err != nil {
			t.Fatalf("ListMembers: %v", err)
		}
		if len(members) != 1 {
			t.Fatalf("len(members) = %d, want 1", len(members))
		}
		if members[0].MemberName != "Test User" {
			t.Errorf("MemberName = %q, want %q", members[0].MemberName, "Test User")
		}
		if members[0].TotalContributed != 200 {
			t.Errorf("TotalContributed = %v, want 200", members[0].TotalContributed)
		}
	}
}
